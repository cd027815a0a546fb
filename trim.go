// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import (
	"strings"
	"unicode/utf8"
)

// trimPunct returns the length of s after removing trailing punctuation
// that ends a sentence rather than a URL. It never trims s below min bytes.
func trimPunct(s string, min int) int {
	paren := strings.Count(s, "(") - strings.Count(s, ")")
	i := len(s)
Trim:
	for i > min {
		switch s[i-1] {
		case '.', ',', '!', '?', ':':
			i--
			continue Trim

		case ')':
			// Trim trailing unmatched (by count only) parens.
			if paren < 0 {
				paren++
				i--
				continue Trim
			}

		case ';':
			// Trim a trailing entity reference, or else just the semicolon.
			for j := i - 2; j >= min; j-- {
				if s[j] == '&' && j < i-2 {
					i = j
					continue Trim
				}
				if !isLetterDigit(s[j]) && s[j] != '#' {
					break
				}
			}
			i--
			continue Trim
		}
		break Trim
	}
	return i
}

// Display text longer than maxDisplay runes is shortened
// to its first headDisplay runes, " ... ", and its last tailDisplay runes.
const (
	maxDisplay  = 55
	headDisplay = 39
	tailDisplay = 10
)

// shorten returns the display form of the link text s.
func shorten(s string) string {
	if utf8.RuneCountInString(s) <= maxDisplay {
		return s
	}
	r := []rune(s)
	return string(r[:headDisplay]) + " ... " + string(r[len(r)-tailDisplay:])
}

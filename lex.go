// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/unicode/rangetable"
)

// Byte classes for ASCII input. A byte may be in several classes.
const (
	cScheme         uint8 = 1 << iota // scheme continuation: letter, digit, + - .
	cDomain                           // domain label: letter, digit, - .
	cAuthority                        // domain plus userinfo and port punctuation
	cUser                             // email local part
	cBoundary                         // may precede any link
	cSchemeBoundary                   // may precede a scheme URL
)

var asciiClass = func() (t [utf8.RuneSelf]uint8) {
	set := func(class uint8, chars string) {
		for i := 0; i < len(chars); i++ {
			t[chars[i]] |= class
		}
	}
	for c := 0; c < utf8.RuneSelf; c++ {
		if isLetterDigit(byte(c)) {
			t[c] |= cScheme | cDomain | cAuthority | cUser
		}
	}
	set(cScheme, "+-.")
	set(cDomain, "-.")
	set(cAuthority, "-._~!$&'*+,;=:@")
	set(cUser, "!#$%&'*+-/=?^_`{|}~.")
	set(cBoundary|cSchemeBoundary, "\n\r\t (>")
	set(cSchemeBoundary, ".")
	return t
}()

// idnTable holds the non-ASCII code points allowed in internationalized
// domain labels: letters, combining marks, and decimal digits.
var idnTable = rangetable.Merge(unicode.L, unicode.M, unicode.Nd)

func is(class uint8, c byte) bool {
	return c < utf8.RuneSelf && asciiClass[c]&class != 0
}

// isLetter reports whether c is an ASCII letter.
func isLetter(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z'
}

// isLetterDigit reports whether c is an ASCII letter or digit.
func isLetterDigit(c byte) bool {
	return 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' || '0' <= c && c <= '9'
}

// isHexDigit reports whether c is an ASCII hexadecimal digit.
func isHexDigit(c byte) bool {
	return 'A' <= c && c <= 'F' || 'a' <= c && c <= 'f' || '0' <= c && c <= '9'
}

// isIDN reports whether r is a non-ASCII code point
// allowed in an internationalized domain label.
func isIDN(r rune) bool {
	return r >= utf8.RuneSelf && r != utf8.RuneError && unicode.Is(idnTable, r)
}

// isURLBody reports whether r may appear in the path, query,
// or fragment of a URL: printable, not space, and not one of " < >.
func isURLBody(r rune) bool {
	if r < utf8.RuneSelf {
		return r > ' ' && r < 0x7f && r != '"' && r != '<' && r != '>'
	}
	return r != utf8.RuneError && !unicode.IsSpace(r) && !unicode.In(r, unicode.C)
}

// isBoundary reports whether a link may start right after the byte c.
// If scheme is true, the rules for scheme URLs apply, which also allow a dot.
func isBoundary(c byte, scheme bool) bool {
	if scheme {
		return is(cSchemeBoundary, c)
	}
	return is(cBoundary, c)
}

// escapedDelims are the HTML-escaped forms of characters that end a URL.
var escapedDelims = []string{"&lt;", "&gt;", "&quot;"}

// isEscapedDelim reports whether s begins with an escaped URL delimiter.
func isEscapedDelim(s string) bool {
	for _, d := range escapedDelims {
		if len(s) >= len(d) && s[:len(d)] == d {
			return true
		}
	}
	return false
}

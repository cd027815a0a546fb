// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import (
	"strings"
	"unicode/utf8"
)

// A MatchKind identifies what a [Span] or [Candidate] holds.
type MatchKind int

const (
	Plain    MatchKind = iota // literal text
	FullURL                   // scheme://... URL
	LocalURL                  // URL below the configured board address
	LazyURL                   // www.... URL without a scheme
	Email                     // user@domain address
)

// String returns the sentinel tag for k: m, l, w, or e.
// It returns the empty string for [Plain].
func (k MatchKind) String() string {
	switch k {
	case FullURL:
		return "m"
	case LocalURL:
		return "l"
	case LazyURL:
		return "w"
	case Email:
		return "e"
	}
	return ""
}

// A Candidate is a link found in the input text.
type Candidate struct {
	Start, End int // input[Start:End] is the link text
	Kind       MatchKind
	Scheme     string // scheme token, without "://"; empty for LazyURL and Email
	Text       string // input[Start:End]
	URL        string // link target
	Display    string // anchor text, possibly shortened

	// min is the length of the prefix of Text
	// that must remain after trimming punctuation.
	min int
}

// A scanner finds candidate links in a single left-to-right pass.
type scanner struct {
	s     string
	prev  byte // byte before s[0]
	cut   int  // no scheme URL starts before this index
	after int  // end of the last sentinel region, where no link starts
}

// scan returns the raw candidates in s, before validation and trimming.
// The byte prev precedes s in its document; use '\n' for a whole text.
func scan(s string, prev byte) []Candidate {
	sc := &scanner{s: s, prev: prev, after: -1}
	var out []Candidate
	for i := 0; i < len(s); {
		if s[i] == '<' {
			if end, ok := skipSentinel(s, i); ok {
				i = end
				sc.after = end
				continue
			}
		}
		if c, ok := sc.token(i); ok {
			out = append(out, c)
			i = c.End
			continue
		}
		i++
	}
	return out
}

// token reports the link starting at s[i], if any.
func (sc *scanner) token(i int) (c Candidate, ok bool) {
	s := sc.s
	prev := sc.prev
	switch {
	case i == sc.after:
		// A link never starts right after an existing one.
		return
	case i > 0:
		prev = s[i-1]
	}
	if isLetter(s[i]) && i >= sc.cut && isBoundary(prev, true) {
		if c, ok := sc.schemeURL(i); ok {
			return c, true
		}
	}
	if !isBoundary(prev, false) {
		return
	}
	if (s[i] == 'w' || s[i] == 'W') && len(s)-i > 4 && strings.EqualFold(s[i:i+4], "www.") {
		if end := sc.urlRest(i + 4); end > i+4 {
			return Candidate{Start: i, End: end, Kind: LazyURL, Text: s[i:end], min: 4}, true
		}
	}
	if is(cUser, s[i]) {
		return sc.email(i)
	}
	return
}

// schemeURL parses a scheme URL starting at s[i].
// The caller has checked that s[i] is a letter.
func (sc *scanner) schemeURL(i int) (c Candidate, ok bool) {
	s := sc.s
	j := i + 1
	for j < len(s) && is(cScheme, s[j]) {
		j++
	}
	// Every scheme run starting inside s[i:j] ends at j too,
	// so a failure here rules them all out.
	if !strings.HasPrefix(s[j:], "://") {
		sc.cut = j
		return
	}
	end := sc.urlRest(j + 3)
	if end == j+3 {
		sc.cut = j
		return
	}
	return Candidate{Start: i, End: end, Kind: FullURL, Scheme: s[i:j], Text: s[i:end], min: j + 3 - i}, true
}

// urlRest returns the end of the authority and optional path, query,
// and fragment starting at s[i]. It returns i if there is no authority.
func (sc *scanner) urlRest(i int) int {
	s := sc.s
	j := i
Authority:
	for j < len(s) {
		c := s[j]
		switch {
		case c == '%' && j+2 < len(s) && isHexDigit(s[j+1]) && isHexDigit(s[j+2]):
			j += 3
		case c == '&' && isEscapedDelim(s[j:]):
			break Authority
		case is(cAuthority, c):
			j++
		case c < utf8.RuneSelf:
			break Authority
		default:
			r, n := utf8.DecodeRuneInString(s[j:])
			if !isIDN(r) {
				break Authority
			}
			j += n
		}
	}
	if j == i {
		return i
	}
	if j < len(s) && (s[j] == '/' || s[j] == '?' || s[j] == '#') {
		for j < len(s) {
			if s[j] == '&' && isEscapedDelim(s[j:]) {
				break
			}
			r, n := utf8.DecodeRuneInString(s[j:])
			if !isURLBody(r) {
				break
			}
			j += n
		}
	}
	return j
}

// email parses an email address starting at s[i].
// The caller has checked that s[i] is a local-part byte.
func (sc *scanner) email(i int) (c Candidate, ok bool) {
	s := sc.s
	j := i
	for j < len(s) && is(cUser, s[j]) {
		j++
	}
	if j >= len(s) || s[j] != '@' {
		return
	}
	user := s[i:j]
	if user[0] == '.' || user[len(user)-1] == '.' || strings.Contains(user, "..") {
		return
	}

	// The domain run accepts IDN code points only to reject them:
	// an address with a non-ASCII domain is not linked at all.
	k := j + 1
	end := k
	for end < len(s) {
		if is(cDomain, s[end]) {
			end++
			continue
		}
		r, _ := utf8.DecodeRuneInString(s[end:])
		if !isIDN(r) {
			break
		}
		return
	}
	for end > k && s[end-1] == '.' {
		end--
	}
	if !validEmailDomain(s[k:end]) {
		return
	}
	return Candidate{Start: i, End: end, Kind: Email, Text: s[i:end]}, true
}

// validEmailDomain reports whether d is a dotted ASCII host name
// with at least two labels and a final label of two or more letters or digits.
func validEmailDomain(d string) bool {
	labels := strings.Split(d, ".")
	if len(labels) < 2 {
		return false
	}
	for _, l := range labels {
		if l == "" || l[0] == '-' || l[len(l)-1] == '-' {
			return false
		}
	}
	tld := labels[len(labels)-1]
	if len(tld) < 2 {
		return false
	}
	for i := 0; i < len(tld); i++ {
		if !isLetterDigit(tld[i]) {
			return false
		}
	}
	return true
}

// skipSentinel reports whether s[i:] begins a sentinel-wrapped anchor
// such as <!-- m -->...<!-- m --> and if so returns the index just past it.
func skipSentinel(s string, i int) (end int, ok bool) {
	open, ok := sentinelAt(s, i)
	if !ok {
		return 0, false
	}
	j := strings.Index(s[i+len(open):], open)
	if j < 0 {
		return 0, false
	}
	return i + len(open) + j + len(open), true
}

// sentinelAt returns the sentinel marker at s[i:], if any.
func sentinelAt(s string, i int) (string, bool) {
	const n = len("<!-- m -->")
	if len(s)-i < n || !strings.HasPrefix(s[i:], "<!-- ") || s[i+6:i+n] != " -->" {
		return "", false
	}
	switch s[i+5] {
	case 'm', 'l', 'w', 'e':
		return s[i : i+n], true
	}
	return "", false
}

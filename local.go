// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "strings"

// isLocal reports whether the untrimmed URL text refers to a page
// below the board address. The board address must be followed by
// the end of the URL, a path, query or fragment, or trailing punctuation.
func isLocal(board, text string) bool {
	if board == "" || !strings.HasPrefix(text, board) {
		return false
	}
	rest := text[len(board):]
	if rest == "" {
		return true
	}
	switch rest[0] {
	case '/', '?', '#':
		return true
	}
	return trimPunct(rest, 0) == 0
}

// localTarget splits a local URL into the link target and the display text
// relative to the board address, removing any session id from both.
func localTarget(board, url string) (target, rel string, ok bool) {
	rest, ok := strings.CutPrefix(url, board)
	if !ok {
		return "", "", false
	}
	rest = stripSID(rest)
	return board + rest, strings.TrimPrefix(rest, "/"), true
}

const sidLen = len("sid=") + 32

// stripSID removes session id query parameters (sid= followed by
// 32 lower-case hex digits) from the URL u.
func stripSID(u string) string {
	for i := 0; i < len(u); i++ {
		if u[i] != '?' && u[i] != '&' || !isSID(u[i+1:]) {
			continue
		}
		end := i + 1 + sidLen
		switch {
		case end == len(u):
			// Last parameter: drop the separator too.
			u = u[:i]
		case u[end] == '&':
			u = u[:i+1] + u[end+1:]
			i--
		}
	}
	return u
}

// isSID reports whether s begins with a complete session id parameter.
func isSID(s string) bool {
	if len(s) < sidLen || !strings.HasPrefix(s, "sid=") {
		return false
	}
	for i := len("sid="); i < sidLen; i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f') {
			return false
		}
	}
	return len(s) == sidLen || s[sidLen] == '&'
}

// Copyright 2021 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/idna"
)

// htmlEscaper escapes text for use in element content
// or a double-quoted attribute value.
var htmlEscaper = strings.NewReplacer(
	`&`, `&amp;`,
	`<`, `&lt;`,
	`>`, `&gt;`,
	`"`, `&quot;`,
)

// htmlUnescape decodes HTML character references in s.
// Link text is decoded before escaping again so that text that
// was escaped before it reached us is not escaped twice.
func htmlUnescape(s string) string {
	if !strings.Contains(s, "&") {
		return s
	}
	return html.UnescapeString(s)
}

// punycodeHost returns u with its host converted to the ASCII
// (punycode) form. If u has no non-ASCII host or the host is not
// a valid internationalized domain name, punycodeHost returns u unchanged.
func punycodeHost(u string) string {
	i := strings.Index(u, "://")
	if i < 0 {
		return u
	}
	start := i + len("://")
	end := len(u)
	if j := strings.IndexAny(u[start:], "/?#"); j >= 0 {
		end = start + j
	}
	authority := u[start:end]
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		start += at + 1
	}
	host := u[start:end]
	if j := strings.LastIndexByte(host, ':'); j >= 0 && isPort(host[j+1:]) {
		host = host[:j]
		end = start + j
	}
	if isASCII(host) {
		return u
	}
	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil {
		return u
	}
	return u[:start] + ascii + u[end:]
}

func isPort(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}

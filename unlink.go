// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "strings"

// Unlink reverses [Linkify]: it replaces each sentinel-wrapped anchor
// in markup with the text it was made from. Local and full URLs become
// their link target, www. links lose the scheme that was added,
// and email links become the bare address.
// Anything that is not a well-formed sentinel anchor is left alone.
func Unlink(markup string) string {
	return UnlinkScheme(markup, "http://")
}

// UnlinkScheme is like [Unlink] but removes lazy, rather than http://,
// from the targets of www. links. Use it to reverse the output of
// a Linkifier configured with a different [Options.LazyScheme].
func UnlinkScheme(markup, lazy string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(markup); i++ {
		if markup[i] != '<' {
			continue
		}
		end, ok := skipSentinel(markup, i)
		if !ok {
			continue
		}
		src, ok := anchorSource(markup[i:end], lazy)
		if !ok {
			i = end - 1
			continue
		}
		b.WriteString(markup[last:i])
		b.WriteString(src)
		last = end
		i = end - 1
	}
	if last == 0 {
		return markup
	}
	b.WriteString(markup[last:])
	return b.String()
}

// anchorSource returns the source text for the sentinel-wrapped anchor s.
func anchorSource(s, lazy string) (string, bool) {
	const n = len("<!-- m -->")
	kind := s[5]
	inner := s[n : len(s)-n]
	if !strings.HasPrefix(inner, "<a ") || !strings.HasSuffix(inner, "</a>") {
		return "", false
	}
	_, href, ok := strings.Cut(inner, ` href="`)
	if !ok {
		return "", false
	}
	href, _, ok = strings.Cut(href, `"`)
	if !ok {
		return "", false
	}
	href = htmlUnescape(href)
	switch kind {
	case 'w':
		href, ok = strings.CutPrefix(href, lazy)
	case 'e':
		href, ok = strings.CutPrefix(href, "mailto:")
	}
	return href, ok
}

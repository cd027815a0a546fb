// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package linkify rewrites URLs and email addresses in user-written text
// as HTML anchors, the way a bulletin board does when it renders a post.
//
// Four kinds of links are recognized:
//
//   - full URLs with a scheme, like http://example.com/ or sip://user@example.com,
//   - local URLs, full URLs below the configured board address,
//   - lazy URLs, which start with www. and have no scheme,
//   - email addresses, like user@example.com.
//
// Each anchor is wrapped in a pair of sentinel comments naming its kind,
// so that it can be found again later (see [Unlink]):
//
//	<!-- m --><a class="postlink" href="http://example.com/">http://example.com/</a><!-- m -->
//	<!-- l --><a class="postlink-local" href="http://board/viewtopic.php?t=1">viewtopic.php?t=1</a><!-- l -->
//	<!-- w --><a class="postlink" href="http://www.example.com/">www.example.com/</a><!-- w -->
//	<!-- e --><a href="mailto:user@example.com">user@example.com</a><!-- e -->
//
// Text outside the links is copied unchanged, including text that
// is already inside sentinel comments, so linkifying twice is the
// same as linkifying once.
//
// A link starts only at the beginning of the text or after a space,
// tab, line break, '(' or '>'; full URLs may also start after a '.'.
// Trailing sentence punctuation is left outside the link, and link text
// longer than 55 characters is shortened for display.
// URLs with a script scheme, like javascript:, are never linked
// (see [DeniedSchemes]).
//
// Host names may contain non-ASCII letters, marks, and digits.
// A host stops at the first other character, even if that leaves
// a fragment of the name outside the link.
// Email addresses must have an ASCII domain.
package linkify

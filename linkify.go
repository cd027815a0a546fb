// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "strings"

// Options configures a [Linkifier]. The zero value links everything
// as external with the default class.
type Options struct {
	// BoardURL is the absolute URL of this board, such as
	// "http://example.com/forum". URLs below it become [LocalURL] links
	// whose text is relative to it. A trailing slash is ignored.
	BoardURL string

	// Class overrides DefaultClass.
	Class string

	// DenySchemes lists schemes to reject in addition to [DeniedSchemes].
	DenySchemes []string

	// PunycodeHosts converts internationalized host names in link
	// targets to their ASCII form. The link text is left as written.
	PunycodeHosts bool

	// LazyScheme is prepended to www. links. It defaults to "http://".
	LazyScheme string
}

// A Linkifier rewrites URLs and email addresses in text as anchor markup.
// A Linkifier is immutable and safe for concurrent use.
type Linkifier struct {
	board string
	class string
	lazy  string
	deny  schemeSet
	ascii bool
}

// New returns a Linkifier using the given options.
func New(opts Options) *Linkifier {
	l := &Linkifier{
		board: strings.TrimRight(opts.BoardURL, "/"),
		class: opts.Class,
		lazy:  opts.LazyScheme,
		deny:  newSchemeSet(DeniedSchemes, opts.DenySchemes),
		ascii: opts.PunycodeHosts,
	}
	if l.class == "" {
		l.class = DefaultClass
	}
	if l.lazy == "" {
		l.lazy = "http://"
	}
	return l
}

// Linkify returns text with its URLs and email addresses rewritten
// as sentinel-wrapped anchors. An empty boardURL disables local links;
// an empty class selects DefaultClass.
func Linkify(text, boardURL, class string) string {
	return New(Options{BoardURL: boardURL, Class: class}).Linkify(text)
}

// Linkify returns text with its URLs and email addresses rewritten
// as sentinel-wrapped anchors. All other text is copied unchanged.
func (l *Linkifier) Linkify(text string) string {
	list := l.Scan(text)
	if len(list) == 0 {
		return text
	}
	var p printer
	last := 0
	for i := range list {
		c := &list[i]
		p.html(text[last:c.Start])
		p.anchor(c, l.class)
		last = c.End
	}
	p.html(text[last:])
	return p.buf.String()
}

// A Span is a piece of linkified output.
// For [Plain] spans the output is Text; otherwise it is Markup.
type Span struct {
	Kind       MatchKind
	Start, End int    // input[Start:End] is Text
	Text       string // input text
	Markup     string // anchor markup, empty for Plain
}

// Spans splits text into literal and link spans, in order.
// Concatenating the output of the spans gives l.Linkify(text).
func (l *Linkifier) Spans(text string) []Span {
	return l.SpansAfter('\n', text)
}

// SpansAfter is like [Linkifier.Spans] for text that is part of a larger
// document, where it follows the byte prev. A link at the start of text
// is made only if prev allows one, as it would be for the whole document.
func (l *Linkifier) SpansAfter(prev byte, text string) []Span {
	var spans []Span
	last := 0
	for _, c := range l.scan(text, prev) {
		if c.Start > last {
			spans = append(spans, Span{Kind: Plain, Start: last, End: c.Start, Text: text[last:c.Start]})
		}
		spans = append(spans, Span{Kind: c.Kind, Start: c.Start, End: c.End, Text: c.Text, Markup: markup(&c, l.class)})
		last = c.End
	}
	if last < len(text) || len(spans) == 0 {
		spans = append(spans, Span{Kind: Plain, Start: last, End: len(text), Text: text[last:]})
	}
	return spans
}

// Scan returns the links that l would make in text, in order,
// with their final boundaries, targets, and display text.
func (l *Linkifier) Scan(text string) []Candidate {
	return l.scan(text, '\n')
}

func (l *Linkifier) scan(text string, prev byte) []Candidate {
	raw := scan(text, prev)
	out := raw[:0]
	for _, c := range raw {
		if l.finish(&c) {
			out = append(out, c)
		}
	}
	return out
}

// finish validates and resolves the raw candidate c,
// reporting whether it is still a link.
func (l *Linkifier) finish(c *Candidate) bool {
	if l.deny.denies(c.Scheme) {
		return false
	}
	local := c.Kind == FullURL && isLocal(l.board, c.Text)
	if c.Kind != Email {
		n := trimPunct(c.Text, c.min)
		if n <= c.min {
			return false
		}
		c.Text = c.Text[:n]
		c.End = c.Start + n
	}

	text := htmlUnescape(c.Text)
	switch c.Kind {
	case FullURL:
		c.URL, c.Display = text, shorten(text)
		if local {
			if target, rel, ok := localTarget(l.board, text); ok {
				c.Kind = LocalURL
				c.URL, c.Display = target, shorten(rel)
			}
		}
	case LazyURL:
		c.URL, c.Display = l.lazy+text, shorten(text)
	case Email:
		c.URL, c.Display = "mailto:"+text, text
	}
	if l.ascii && c.Kind != Email {
		c.URL = punycodeHost(c.URL)
	}
	return true
}

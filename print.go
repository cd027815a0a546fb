// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "strings"

// DefaultClass is the anchor class used when [Options.Class] is empty.
// Local links get the class with a "-local" suffix.
const DefaultClass = "postlink"

// A printer accumulates generated markup.
type printer struct {
	buf strings.Builder
}

// html writes the strings as raw markup.
func (p *printer) html(list ...string) {
	for _, s := range list {
		p.buf.WriteString(s)
	}
}

// text writes the strings escaped for HTML.
func (p *printer) text(list ...string) {
	for _, s := range list {
		htmlEscaper.WriteString(&p.buf, s)
	}
}

// anchor writes the sentinel-wrapped anchor for the finished candidate c.
func (p *printer) anchor(c *Candidate, class string) {
	sentinel := "<!-- " + c.Kind.String() + " -->"
	p.html(sentinel, "<a ")
	switch c.Kind {
	case FullURL, LazyURL:
		p.html(`class="`)
		p.text(class)
		p.html(`" `)
	case LocalURL:
		p.html(`class="`)
		p.text(class, "-local")
		p.html(`" `)
	}
	p.html(`href="`)
	p.text(c.URL)
	p.html(`">`)
	p.text(c.Display)
	p.html("</a>", sentinel)
}

// markup returns the anchor markup for c.
func markup(c *Candidate, class string) string {
	var p printer
	p.anchor(c, class)
	return p.buf.String()
}

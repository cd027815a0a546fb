// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mdlink is a goldmark extension that linkifies the text
// of a Markdown document the way a bulletin board does,
// using a [linkify.Linkifier].
//
// Only plain text is linkified. Text inside links, images,
// code spans, code blocks, and raw HTML is rendered as usual.
package mdlink

import (
	"bytes"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"
	"github.com/yuin/goldmark/util"
	"rsc.io/linkify"
)

// priority places the text renderer ahead of the default HTML renderer.
const priority = 100

type extender struct {
	l *linkify.Linkifier
}

// New returns a goldmark extension that linkifies text with l.
func New(l *linkify.Linkifier) goldmark.Extender {
	return &extender{l: l}
}

func (e *extender) Extend(m goldmark.Markdown) {
	m.Renderer().AddOptions(renderer.WithNodeRenderers(
		util.Prioritized(newTextRenderer(e.l), priority),
	))
}

// Convert renders the Markdown source as HTML to w,
// linkifying its text with l.
// Raw HTML in the source is passed through.
func Convert(source []byte, w io.Writer, l *linkify.Linkifier) error {
	md := goldmark.New(
		goldmark.WithExtensions(New(l)),
		goldmark.WithRendererOptions(html.WithUnsafe()),
	)
	return md.Convert(source, w)
}

// ToHTML is like [Convert] but returns the HTML as a string.
func ToHTML(source string, l *linkify.Linkifier) (string, error) {
	var buf bytes.Buffer
	if err := Convert([]byte(source), &buf, l); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// A textRenderer renders ast.Text nodes, linkifying their content.
// Options meant for the HTML renderer, such as XHTML and hard wraps,
// apply here too.
type textRenderer struct {
	html.Config
	l *linkify.Linkifier
}

func newTextRenderer(l *linkify.Linkifier) *textRenderer {
	return &textRenderer{Config: html.NewConfig(), l: l}
}

func (r *textRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindText, r.renderText)
}

func (r *textRenderer) renderText(w util.BufWriter, source []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !entering {
		return ast.WalkContinue, nil
	}
	n := node.(*ast.Text)
	switch {
	case n.IsRaw():
		r.Writer.RawWrite(w, n.Segment.Value(source))
		return ast.WalkContinue, nil
	case inLink(n):
		r.Writer.Write(w, n.Segment.Value(source))
	case continues(n.PreviousSibling(), n):
		// Written with the first node of the run.
	default:
		// The parser splits text at delimiters such as _ and *,
		// which may be inside a URL or address. Linkify the whole run.
		last := n
		for {
			next, ok := last.NextSibling().(*ast.Text)
			if !ok || !continues(last, next) {
				break
			}
			last = next
		}
		start, stop := n.Segment.Start, last.Segment.Stop
		prev := byte('\n')
		if start > 0 {
			prev = source[start-1]
		}
		for _, sp := range r.l.SpansAfter(prev, string(source[start:stop])) {
			if sp.Kind == linkify.Plain {
				r.Writer.Write(w, []byte(sp.Text))
				continue
			}
			_, _ = w.WriteString(sp.Markup)
		}
	}

	switch {
	case n.HardLineBreak() || n.SoftLineBreak() && r.HardWraps:
		if r.XHTML {
			_, _ = w.WriteString("<br />\n")
		} else {
			_, _ = w.WriteString("<br>\n")
		}
	case n.SoftLineBreak():
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

// continues reports whether b is a text node that directly follows
// the text node a in the source, on the same line.
func continues(a, b ast.Node) bool {
	at, ok := a.(*ast.Text)
	if !ok {
		return false
	}
	bt, ok := b.(*ast.Text)
	if !ok {
		return false
	}
	return !at.IsRaw() && !bt.IsRaw() && !at.SoftLineBreak() && !at.HardLineBreak() &&
		at.Segment.Stop == bt.Segment.Start
}

// inLink reports whether n is already part of a link or image,
// or of a code span.
func inLink(n ast.Node) bool {
	for p := n.Parent(); p != nil; p = p.Parent() {
		switch p.(type) {
		case *ast.Link, *ast.AutoLink, *ast.Image, *ast.CodeSpan:
			return true
		}
	}
	return false
}

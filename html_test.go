// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import (
	"io"
	"strings"
	"testing"

	"golang.org/x/net/html"
)

var punycodeTests = []struct {
	in  string
	out string
}{
	{"http://example.com/", "http://example.com/"},
	{"http://www.täst.de/community/", "http://www.xn--tst-qla.de/community/"},
	{"http://www.täst.de", "http://www.xn--tst-qla.de"},
	{"sip://bantu@täst.de:5060", "sip://bantu@xn--tst-qla.de:5060"},
	{"http://täst.de?q=ä", "http://xn--tst-qla.de?q=ä"},
	{"http://täst.de/ä", "http://xn--tst-qla.de/ä"},
	{"mailto:user@example.com", "mailto:user@example.com"},
}

func TestPunycodeHost(t *testing.T) {
	for _, tt := range punycodeTests {
		if out := punycodeHost(tt.in); out != tt.out {
			t.Errorf("punycodeHost(%q) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestUnescape(t *testing.T) {
	for in, out := range map[string]string{
		"plain":         "plain",
		"a&amp;b":       "a&b",
		"a&lt;b&gt;":    "a<b>",
		"&quot;x&quot;": `"x"`,
		"&#39;":         "'",
		"&bogus;":       "&bogus;",
		"1 & 2":         "1 & 2",
		"&amp;amp;":     "&amp;",
		"&#x41;&#66;":   "AB",
	} {
		if have := htmlUnescape(in); have != out {
			t.Errorf("htmlUnescape(%q) = %q, want %q", in, have, out)
		}
	}
}

// TestMarkup checks that the markup for every link parses as exactly
// one anchor whose attributes and text decode to the link's target and display.
func TestMarkup(t *testing.T) {
	l := New(Options{BoardURL: "http://testhost"})
	text := `http://a.com/?x=1&y="2" www.b.com/<p> a@b.com http://testhost/?q=a&amp;b ` +
		"http://a.com/" + strings.Repeat("&amp;", 20)
	for _, c := range l.Scan(text) {
		m := markup(&c, l.class)
		z := html.NewTokenizer(strings.NewReader(m))
		var href, class, body string
		var anchors int
	Tokens:
		for {
			switch z.Next() {
			case html.ErrorToken:
				if z.Err() != io.EOF {
					t.Fatalf("tokenize %q: %v", m, z.Err())
				}
				break Tokens
			case html.StartTagToken:
				tok := z.Token()
				if tok.Data != "a" {
					t.Errorf("%q: unexpected <%s>", m, tok.Data)
				}
				anchors++
				for _, a := range tok.Attr {
					switch a.Key {
					case "href":
						href = a.Val
					case "class":
						class = a.Val
					}
				}
			case html.TextToken:
				body += string(z.Text())
			}
		}
		if anchors != 1 {
			t.Errorf("%q: %d anchors, want 1", m, anchors)
		}
		if href != c.URL {
			t.Errorf("%q: href %q, want %q", m, href, c.URL)
		}
		if body != c.Display {
			t.Errorf("%q: text %q, want %q", m, body, c.Display)
		}
		switch c.Kind {
		case Email:
			if class != "" {
				t.Errorf("%q: email has class %q", m, class)
			}
		case LocalURL:
			if class != DefaultClass+"-local" {
				t.Errorf("%q: class %q", m, class)
			}
		default:
			if class != DefaultClass {
				t.Errorf("%q: class %q", m, class)
			}
		}
	}
}

// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "testing"

var unlinkTests = []struct {
	in  string
	out string
}{
	{"no links", "no links"},
	{
		"see http://example.com/?a=1&b=2.",
		"see http://example.com/?a=1&b=2.",
	},
	{
		"www.example.com and user@example.com",
		"www.example.com and user@example.com",
	},
	{
		"http://testhost/viewtopic.php?t=1!",
		"http://testhost/viewtopic.php?t=1!",
	},
	{
		"http://www.phpbb.com/community/path/to/long/url/file.ext#section",
		"http://www.phpbb.com/community/path/to/long/url/file.ext#section",
	},
	{
		"http://testhost/",
		"http://testhost/",
	},
}

func TestUnlink(t *testing.T) {
	l := New(Options{BoardURL: "http://testhost"})
	for _, tt := range unlinkTests {
		if out := Unlink(l.Linkify(tt.in)); out != tt.out {
			t.Errorf("Unlink(Linkify(%q)) = %q, want %q", tt.in, out, tt.out)
		}
	}
}

func TestUnlinkScheme(t *testing.T) {
	l := New(Options{LazyScheme: "https://"})
	in := "www.example.com/x"
	if out := UnlinkScheme(l.Linkify(in), "https://"); out != in {
		t.Errorf("UnlinkScheme = %q, want %q", out, in)
	}
	// The wrong scheme leaves the anchor in place.
	markup := l.Linkify(in)
	if out := Unlink(markup); out != markup {
		t.Errorf("Unlink with wrong scheme = %q, want %q", out, markup)
	}
}

func TestUnlinkMalformed(t *testing.T) {
	for _, in := range []string{
		"<!-- m -->not an anchor<!-- m -->",
		`<!-- m --><a class="postlink">x</a><!-- m -->`,
		`<!-- m --><a href="http://x.com/>x</a><!-- m -->`,
		"<!-- m --><a href=\"http://x.com/\">x</a>",
		"<!-- x --><a href=\"http://x.com/\">x</a><!-- x -->",
	} {
		if out := Unlink(in); out != in {
			t.Errorf("Unlink(%q) = %q, want unchanged", in, out)
		}
	}
}

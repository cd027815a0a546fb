// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package linkify

import "strings"

// DeniedSchemes lists the URL schemes that are never linked,
// because following such a link runs script in the reader's browser.
var DeniedSchemes = []string{"javascript", "vbscript", "data"}

// schemeSet is a case-insensitive set of scheme names.
type schemeSet map[string]bool

func newSchemeSet(lists ...[]string) schemeSet {
	set := make(schemeSet)
	for _, list := range lists {
		for _, s := range list {
			set[strings.ToLower(s)] = true
		}
	}
	return set
}

// denies reports whether the scheme token is in the set.
// The comparison is exact apart from case: a scheme split by a line break
// was already cut short by the scanner and is checked in that form.
func (set schemeSet) denies(scheme string) bool {
	return scheme != "" && set[strings.ToLower(scheme)]
}

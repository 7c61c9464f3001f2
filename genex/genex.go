// Copyright 2026 Google Inc. All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package genex implements the pieces of the generator expression language
// that export file generation needs: splitting semicolon lists without
// breaking "$<...>" constructs apart, parsing constructs into fragments,
// stripping build-only or install-only content, and evaluating the small
// unconditional subset used for install include destinations.
package genex

import (
	"strings"

	"github.com/google/cmexport/pathtools"
)

// ImportPrefix is the variable the generated script sets to the root of the
// installation it was loaded from.
const ImportPrefix = "${_IMPORT_PREFIX}"

// Find returns the offset of the first construct in s, or -1.
func Find(s string) int {
	return strings.Index(s, "$<")
}

// Split breaks a list on ';' separators that are not escaped and not inside
// a construct.  Empty items are dropped.  Escaped separators are kept as
// written so that Join(Split(s)) does not change them.
func Split(s string) []string {
	var items []string
	depth := 0
	start := 0
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == ';':
			i++
		case s[i] == '$' && i+1 < len(s) && s[i+1] == '<':
			depth++
			i++
		case s[i] == '>' && depth > 0:
			depth--
		case s[i] == ';' && depth == 0:
			if i > start {
				items = append(items, s[start:i])
			}
			start = i + 1
		}
	}
	if start < len(s) {
		items = append(items, s[start:])
	}
	return items
}

// Join is the inverse of Split.
func Join(items []string) string {
	return strings.Join(items, ";")
}

// ExpandList splits a plain list value, unescaping "\;" and dropping empty
// elements.  It does not treat constructs specially.
func ExpandList(s string) []string {
	var items []string
	cur := &strings.Builder{}
	flush := func() {
		if cur.Len() > 0 {
			items = append(items, cur.String())
			cur.Reset()
		}
	}
	for i := 0; i < len(s); i++ {
		switch {
		case s[i] == '\\' && i+1 < len(s) && s[i+1] == ';':
			cur.WriteByte(';')
			i++
		case s[i] == ';':
			flush()
		default:
			cur.WriteByte(s[i])
		}
	}
	flush()
	return items
}

// StripEmptyListElements collapses runs of separators and removes leading
// and trailing ones.
func StripEmptyListElements(s string) string {
	if s == "" || s == ";" {
		return ""
	}
	b := &strings.Builder{}
	b.Grow(len(s))
	last := 0
	skip := true
	for i := 0; i < len(s); i++ {
		if s[i] == ';' {
			if skip {
				b.WriteString(s[last:i])
				last = i + 1
			}
			skip = true
		} else {
			skip = false
		}
	}
	b.WriteString(s[last:])
	out := b.String()
	return strings.TrimSuffix(out, ";")
}

// Rule selects how Preprocess treats build-only and install-only content.
type Rule int

const (
	// StripAll removes every construct.
	StripAll Rule = iota
	// BuildInterface keeps $<BUILD_INTERFACE:...> content and drops
	// $<INSTALL_INTERFACE:...>.
	BuildInterface
	// InstallInterface keeps $<INSTALL_INTERFACE:...> content and drops
	// $<BUILD_INTERFACE:...>.
	InstallInterface
)

func (r Rule) String() string {
	switch r {
	case StripAll:
		return "strip-all"
	case BuildInterface:
		return "build-interface"
	case InstallInterface:
		return "install-interface"
	default:
		return "unknown"
	}
}

// Preprocess rewrites input for the consumption context selected by rule.
// With resolveRelative set, relative items inside kept install-only content
// are prefixed with ImportPrefix.  Empty list elements are removed from the
// result.  ErrIncomplete is returned alongside a usable result when a
// construct is left open; the open construct is kept as written.
func Preprocess(input string, rule Rule, resolveRelative bool) (string, error) {
	frags, parseErr := Parse(input)

	var fn RewriteFunc
	switch rule {
	case StripAll:
		fn = func(c *Construct) (Fragment, error) {
			if !c.Closed {
				return Text(c.String()), nil
			}
			return nil, nil
		}
	default:
		fn = func(c *Construct) (Fragment, error) {
			id := c.Identifier()
			if id != "BUILD_INTERFACE" && id != "INSTALL_INTERFACE" {
				return c, nil
			}
			if !c.Closed || !c.HasArgs {
				return Text(c.String()), nil
			}
			install := id == "INSTALL_INTERFACE"
			switch {
			case rule == BuildInterface && !install:
				return Text(c.Content()), nil
			case rule == InstallInterface && install:
				if resolveRelative {
					return Text(prefixItems(c.Content(), ImportPrefix+"/")), nil
				}
				return Text(c.Content()), nil
			}
			return nil, nil
		}
	}

	out, err := frags.Rewrite(fn)
	if err != nil {
		return "", err
	}
	return StripEmptyListElements(out.String()), parseErr
}

// prefixItems prefixes every relative item of content that does not start
// with a construct.
func prefixItems(content, prefix string) string {
	items := Split(content)
	for i, item := range items {
		if !pathtools.IsFullPath(item) && Find(item) != 0 {
			items[i] = prefix + item
		}
	}
	return Join(items)
}

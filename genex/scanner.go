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

package genex

import (
	"errors"
	"strings"
)

const eof = -1

// ErrIncomplete is returned when a construct is opened with "$<" but never
// closed.  The fragments returned alongside it are still usable: the open
// construct renders back to exactly the text it was parsed from.
var ErrIncomplete = errors.New("expression incomplete")

// A Fragment is one piece of a parsed expression: Text, a *Construct, or a
// nested Fragments list produced by a rewrite.
type Fragment interface {
	writeTo(b *strings.Builder)
}

// Text is literal text outside of any construct delimiters.
type Text string

func (t Text) writeTo(b *strings.Builder) {
	b.WriteString(string(t))
}

// Fragments is an ordered list of fragments.  Rendering a parsed list with
// String reproduces the input byte for byte.
type Fragments []Fragment

func (f Fragments) writeTo(b *strings.Builder) {
	for _, frag := range f {
		frag.writeTo(b)
	}
}

func (f Fragments) String() string {
	b := &strings.Builder{}
	f.writeTo(b)
	return b.String()
}

// Literal returns the concatenated text of f and true if f contains no
// constructs.
func (f Fragments) Literal() (string, bool) {
	if f.HasConstruct() {
		return "", false
	}
	return f.String(), true
}

// HasConstruct reports whether any construct appears directly in f.
func (f Fragments) HasConstruct() bool {
	for _, frag := range f {
		switch fr := frag.(type) {
		case *Construct:
			return true
		case Fragments:
			if fr.HasConstruct() {
				return true
			}
		}
	}
	return false
}

// A Construct is a "$<name:arg,arg...>" fragment.  Name holds everything
// between "$<" and the first ':' at this nesting level; Args holds the
// comma separated parameters after it.
type Construct struct {
	Name    Fragments
	Args    []Fragments
	HasArgs bool
	Closed  bool
}

func (c *Construct) writeTo(b *strings.Builder) {
	b.WriteString("$<")
	c.Name.writeTo(b)
	if c.HasArgs {
		b.WriteByte(':')
		c.writeContent(b)
	}
	if c.Closed {
		b.WriteByte('>')
	}
}

func (c *Construct) writeContent(b *strings.Builder) {
	for i, arg := range c.Args {
		if i > 0 {
			b.WriteByte(',')
		}
		arg.writeTo(b)
	}
}

func (c *Construct) String() string {
	b := &strings.Builder{}
	c.writeTo(b)
	return b.String()
}

// Identifier returns the construct name if it is literal text, or "" if the
// name is itself computed by a nested construct.
func (c *Construct) Identifier() string {
	name, _ := c.Name.Literal()
	return name
}

// Content returns the raw text after the name separator, commas included.
func (c *Construct) Content() string {
	b := &strings.Builder{}
	c.writeContent(b)
	return b.String()
}

// ContentFragments returns the parameters joined back into a single list,
// with the separating commas restored as text.
func (c *Construct) ContentFragments() Fragments {
	var out Fragments
	for i, arg := range c.Args {
		if i > 0 {
			out = append(out, Text(","))
		}
		out = append(out, arg...)
	}
	return out
}

type parseState struct {
	str       string
	textStart int
	stack     []*Construct
	root      Fragments
}

// current returns the fragment list that text and constructs are appended
// to at the current nesting level.
func (ps *parseState) current() *Fragments {
	if len(ps.stack) == 0 {
		return &ps.root
	}
	c := ps.stack[len(ps.stack)-1]
	if !c.HasArgs {
		return &c.Name
	}
	return &c.Args[len(c.Args)-1]
}

func (ps *parseState) top() *Construct {
	if len(ps.stack) == 0 {
		return nil
	}
	return ps.stack[len(ps.stack)-1]
}

func (ps *parseState) pushText(end int) {
	if end > ps.textStart {
		cur := ps.current()
		*cur = append(*cur, Text(ps.str[ps.textStart:end]))
	}
}

func (ps *parseState) open() {
	ps.stack = append(ps.stack, &Construct{})
}

// pop removes the innermost construct and appends it to its parent's
// current list.
func (ps *parseState) pop() {
	c := ps.stack[len(ps.stack)-1]
	ps.stack = ps.stack[:len(ps.stack)-1]
	cur := ps.current()
	*cur = append(*cur, c)
}

type stateFunc func(*parseState, int, rune) stateFunc

// Parse splits str into literal text and constructs.  Constructs may nest to
// any depth.  An unterminated construct yields ErrIncomplete together with
// fragments that still render back to str.
func Parse(str string) (Fragments, error) {
	if !strings.Contains(str, "$<") {
		if str == "" {
			return nil, nil
		}
		return Fragments{Text(str)}, nil
	}

	ps := &parseState{str: str}
	state := parseTextState
	for i := 0; i < len(str); i++ {
		state = state(ps, i, rune(str[i]))
	}

	incomplete := len(ps.stack) > 0
	state(ps, len(str), eof)

	if incomplete {
		return ps.root, ErrIncomplete
	}
	return ps.root, nil
}

func parseTextState(ps *parseState, i int, r rune) stateFunc {
	c := ps.top()
	switch {
	case r == '$':
		return parseDollarState

	case r == eof:
		ps.pushText(i)
		for len(ps.stack) > 0 {
			ps.pop()
		}
		return nil

	case c == nil:
		// Separators outside of a construct are plain text.
		return parseTextState

	case r == ':' && !c.HasArgs:
		ps.pushText(i)
		c.HasArgs = true
		c.Args = []Fragments{nil}
		ps.textStart = i + 1
		return parseTextState

	case r == ',' && c.HasArgs:
		ps.pushText(i)
		c.Args = append(c.Args, nil)
		ps.textStart = i + 1
		return parseTextState

	case r == '>':
		ps.pushText(i)
		c.Closed = true
		ps.pop()
		ps.textStart = i + 1
		return parseTextState

	default:
		return parseTextState
	}
}

func parseDollarState(ps *parseState, i int, r rune) stateFunc {
	if r == '<' {
		ps.pushText(i - 1)
		ps.open()
		ps.textStart = i + 1
		return parseTextState
	}
	// A lone '$' is literal; let the text state look at this rune again.
	return parseTextState(ps, i, r)
}

// A RewriteFunc returns the replacement for a construct.  Returning the
// construct itself (or another *Construct) continues the rewrite inside its
// name and arguments; returning nil drops it.
type RewriteFunc func(c *Construct) (Fragment, error)

// Rewrite returns a copy of f with every construct replaced by fn, visiting
// outer constructs before the constructs nested inside them.
func (f Fragments) Rewrite(fn RewriteFunc) (Fragments, error) {
	out := make(Fragments, 0, len(f))
	for _, frag := range f {
		switch fr := frag.(type) {
		case *Construct:
			repl, err := fn(fr)
			if err != nil {
				return nil, err
			}
			switch r := repl.(type) {
			case nil:
			case *Construct:
				nc, err := r.rewriteChildren(fn)
				if err != nil {
					return nil, err
				}
				out = append(out, nc)
			case Fragments:
				rr, err := r.Rewrite(fn)
				if err != nil {
					return nil, err
				}
				out = append(out, rr...)
			default:
				out = append(out, r)
			}
		case Fragments:
			rr, err := fr.Rewrite(fn)
			if err != nil {
				return nil, err
			}
			out = append(out, rr...)
		default:
			out = append(out, frag)
		}
	}
	return out, nil
}

func (c *Construct) rewriteChildren(fn RewriteFunc) (*Construct, error) {
	nc := *c
	var err error
	nc.Name, err = c.Name.Rewrite(fn)
	if err != nil {
		return nil, err
	}
	if c.Args != nil {
		nc.Args = make([]Fragments, len(c.Args))
		for i, arg := range c.Args {
			nc.Args[i], err = arg.Rewrite(fn)
			if err != nil {
				return nil, err
			}
		}
	}
	return &nc, nil
}

// Walk calls fn for every construct in f, outer constructs first.
func (f Fragments) Walk(fn func(c *Construct)) {
	for _, frag := range f {
		switch fr := frag.(type) {
		case *Construct:
			fn(fr)
			fr.Name.Walk(fn)
			for _, arg := range fr.Args {
				arg.Walk(fn)
			}
		case Fragments:
			fr.Walk(fn)
		}
	}
}

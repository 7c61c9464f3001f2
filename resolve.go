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

package cmexport

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/cmexport/genex"
)

// ResolveMode selects which parts of a value Resolve rewrites.
type ResolveMode int

const (
	// ExpressionsOnly rewrites target references inside
	// $<TARGET_PROPERTY:...> and $<TARGET_NAME:...> constructs.
	ExpressionsOnly ResolveMode = iota
	// ReplaceFreeTargets additionally rewrites list items that are target
	// names themselves, as found in link library lists.
	ReplaceFreeTargets
)

// A PrefixRewriter rewrites a resolved value before it is stored.
type PrefixRewriter func(string) string

const installPrefixExpression = "$<INSTALL_PREFIX>"

// InstallPrefixRewriter replaces $<INSTALL_PREFIX> with a reference to the
// prefix the generated script computes for itself.
func InstallPrefixRewriter(s string) string {
	return strings.ReplaceAll(s, installPrefixExpression, genex.ImportPrefix)
}

// A Resolver rewrites references to targets so that they make sense to
// consumers of one export set.
type Resolver struct {
	model   Model
	set     *ExportSet
	handler MissingTargetHandler
	rewrite PrefixRewriter

	members   map[string]bool
	qualified map[string]bool
}

// NewResolver returns a Resolver for set.  handler and rewrite may be nil.
func NewResolver(model Model, set *ExportSet, handler MissingTargetHandler,
	rewrite PrefixRewriter) *Resolver {

	r := &Resolver{
		model:     model,
		set:       set,
		handler:   handler,
		rewrite:   rewrite,
		members:   make(map[string]bool, len(set.Members)),
		qualified: make(map[string]bool, len(set.Members)),
	}
	for _, m := range set.Members {
		r.members[m.Target.Name()] = true
		r.qualified[set.QualifiedName(m.Target)] = true
	}
	return r
}

// AddTargetNamespace returns the name consumers of the export set know the
// target name by.  ok is false if name is not a target at all, in which case
// it is returned unchanged.
//
// Names already qualified for this export set are returned unchanged.
// Imported targets keep their name.  Targets outside the export set are
// recorded in missing, which may be nil, under the name the
// MissingTargetHandler supplies or under their own name.
func (r *Resolver) AddTargetNamespace(name string, missing *MissingTargets) (string, bool) {
	if r.qualified[name] {
		return name, true
	}
	t, found := r.model.FindTarget(name)
	if !found {
		return name, false
	}
	if t.IsImported() {
		return name, true
	}
	if r.members[t.Name()] {
		return r.set.QualifiedName(t), true
	}

	resolved := name
	if r.handler != nil {
		if sub := r.handler.NamespacedName(r.set, t); sub != "" {
			resolved = sub
		}
	}
	if missing != nil {
		missing.Add(resolved)
	}
	return resolved, true
}

// Resolve rewrites the target references in input.  A construct left open
// is kept as written and ErrIncompleteExpression is returned together with
// the otherwise resolved value.  Any other error is fatal.
func (r *Resolver) Resolve(input string, mode ResolveMode, missing *MissingTargets) (string, error) {
	if mode == ExpressionsOnly {
		return r.resolveExpression(input, missing)
	}

	items := genex.Split(input)
	var incomplete error
	for i, item := range items {
		if genex.Find(item) < 0 {
			items[i], _ = r.AddTargetNamespace(item, missing)
			continue
		}
		resolved, err := r.resolveExpression(item, missing)
		if errors.Is(err, ErrIncompleteExpression) {
			incomplete = err
		} else if err != nil {
			return "", err
		}
		items[i] = resolved
	}
	return genex.Join(items), incomplete
}

func (r *Resolver) resolveExpression(input string, missing *MissingTargets) (string, error) {
	frags, parseErr := genex.Parse(input)

	out, err := frags.Rewrite(func(c *genex.Construct) (genex.Fragment, error) {
		switch c.Identifier() {
		case "TARGET_PROPERTY":
			return r.resolveTargetProperty(c, missing), nil
		case "TARGET_NAME":
			return r.resolveTargetName(c, missing)
		}
		return c, nil
	})
	if err != nil {
		return "", err
	}

	resolved := out.String()
	if r.rewrite != nil {
		resolved = r.rewrite(resolved)
	}
	return resolved, parseErr
}

// resolveTargetProperty rewrites the target of $<TARGET_PROPERTY:tgt,prop>.
// Single argument forms refer to the target being exported and are kept,
// as are open constructs and computed target names.
func (r *Resolver) resolveTargetProperty(c *genex.Construct, missing *MissingTargets) genex.Fragment {
	if !c.Closed || len(c.Args) < 2 {
		return c
	}
	name, ok := c.Args[0].Literal()
	if !ok {
		return c
	}
	resolved, ok := r.AddTargetNamespace(name, missing)
	if !ok {
		return c
	}

	nc := *c
	nc.Args = append([]genex.Fragments{{genex.Text(resolved)}}, c.Args[1:]...)
	return &nc
}

// resolveTargetName replaces $<TARGET_NAME:tgt> with the resolved name of
// tgt.
func (r *Resolver) resolveTargetName(c *genex.Construct, missing *MissingTargets) (genex.Fragment, error) {
	if !c.Closed {
		return c, nil
	}
	if c.ContentFragments().HasConstruct() {
		return nil, fmt.Errorf("%w: %s", ErrNonLiteralArgument, c)
	}
	resolved, ok := r.AddTargetNamespace(c.Content(), missing)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnreachableTarget, c)
	}
	return genex.Text(resolved), nil
}

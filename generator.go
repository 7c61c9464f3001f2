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
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/cmexport/genex"
	"github.com/google/cmexport/policy"
)

// DefaultToolVersion is written into the header of generated files when the
// Generator does not name a version.
const DefaultToolVersion = "3.0.2"

// A Generator produces import files for export sets of one Model.  A
// Generator holds no state between calls to Generate.
type Generator struct {
	Model    Model
	Policies policy.Table

	// MissingTargets supplies names for targets referenced from outside the
	// export set being generated.  May be nil.
	MissingTargets MissingTargetHandler

	// PrefixRewriter rewrites resolved values before they are stored.  If
	// nil, InstallPrefixRewriter is used for InstallTree sets and values
	// are left alone for BuildTree sets.
	PrefixRewriter PrefixRewriter

	Logger      *slog.Logger
	ToolVersion string
}

// A Result is the outcome of generating one export set.
type Result struct {
	Script []byte
	// MissingTargets are the names checked for when the script is loaded.
	MissingTargets []string
	// Warnings are the diagnostics issued under policies set to WARN and for
	// incomplete expressions.
	Warnings []string
}

// Generate resolves and serializes set.  On error no partial script is
// returned.
func (g *Generator) Generate(set *ExportSet) (*Result, error) {
	p := g.newPass(set)

	logger := p.logger()
	logger.Debug("generating export set",
		slog.String("export", set.Name),
		slog.String("mode", set.Mode.String()),
		slog.Int("targets", len(set.Members)))

	exports := make([]*targetExport, 0, len(set.Members))
	for _, m := range set.Members {
		te, err := p.exportTarget(m)
		if err != nil {
			return nil, err
		}
		exports = append(exports, te)
	}

	buf := &bytes.Buffer{}
	if err := p.emit(newScriptWriter(buf), exports); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrIO, err)
	}

	logger.Debug("generated export set",
		slog.String("export", set.Name),
		slog.Int("missing", p.missing.Len()),
		slog.Int("warnings", len(p.warnings)))

	return &Result{
		Script:         buf.Bytes(),
		MissingTargets: p.missing.Names(),
		Warnings:       p.warnings,
	}, nil
}

// A pass holds the state of one call to Generate.
type pass struct {
	*Generator
	set      *ExportSet
	rule     genex.Rule
	resolver *Resolver

	missing  MissingTargets
	warnings []string

	requireInterfaceLibraries bool
	requireLinkLibraries      bool
}

// targetExport is everything emitted for one member.
type targetExport struct {
	member     *Member
	name       string
	properties PropertyMap
	configs    []*configExport
}

type configExport struct {
	config     string
	properties PropertyMap
	files      []string
}

func (g *Generator) newPass(set *ExportSet) *pass {
	p := &pass{
		Generator: g,
		set:       set,
		rule:      genex.InstallInterface,
	}
	rewrite := g.PrefixRewriter
	if set.Mode == BuildTree {
		p.rule = genex.BuildInterface
	} else if rewrite == nil {
		rewrite = InstallPrefixRewriter
	}
	p.resolver = NewResolver(g.Model, set, g.MissingTargets, rewrite)
	return p
}

func (p *pass) logger() *slog.Logger {
	if p.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return p.Logger
}

func (p *pass) warn(t Target, property, msg string) {
	p.logger().Warn(msg,
		slog.String("export", p.set.Name),
		slog.String("target", t.Name()),
		slog.String("property", property))
	p.warnings = append(p.warnings, fmt.Sprintf("target %q: %s: %s", t.Name(), property, msg))
}

func (p *pass) exportTarget(m *Member) (*targetExport, error) {
	t := m.Target
	te := &targetExport{
		member: m,
		name:   p.set.QualifiedName(t),
	}

	if t.Kind() == InterfaceLibrary {
		p.requireInterfaceLibraries = true
	}

	props, err := p.populateInterface(m)
	if err != nil {
		return nil, err
	}
	te.properties = props

	// Interface libraries have no artifacts and no per-configuration
	// details.
	if t.Kind() == InterfaceLibrary {
		return te, nil
	}

	for _, config := range p.set.configurations() {
		ce, err := p.exportConfig(t, config)
		if err != nil {
			return nil, err
		}
		te.configs = append(te.configs, ce)
	}
	return te, nil
}

func (p *pass) exportConfig(t Target, config string) (*configExport, error) {
	ce := &configExport{
		config:     config,
		properties: PropertyMap{},
	}
	ce.files = p.setImportLocationProperties(config, t, ce.properties)
	p.setImportDetailProperties(config, t, ce.properties)
	if err := p.setImportLinkInterface(config, t, ce.properties); err != nil {
		return nil, err
	}
	return ce, nil
}

// preprocess wraps genex.Preprocess, downgrading incomplete expressions to
// warnings.
func (p *pass) preprocess(t Target, property, input string, resolveRelative bool) string {
	out, err := genex.Preprocess(input, p.rule, resolveRelative)
	if errors.Is(err, genex.ErrIncomplete) {
		p.warn(t, property, fmt.Sprintf("%s: %q", err, input))
	}
	return out
}

// resolve wraps Resolver.Resolve and attributes fatal errors to t.  Every
// input has been through preprocess, which already reported open
// constructs.
func (p *pass) resolve(t Target, property, input string, mode ResolveMode) (string, error) {
	out, err := p.resolver.Resolve(input, mode, &p.missing)
	if errors.Is(err, ErrIncompleteExpression) {
		return out, nil
	}
	if err != nil {
		return "", targetError(t, property, err)
	}
	return out, nil
}

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


// Package description loads the build description that export files are
// generated from.  A description names the project directories, the
// targets with their properties and artifacts, and the export sets.  It is
// written in HCL or YAML; both formats share one schema.
//
// A loaded Project is read-only and may be shared between generators
// running concurrently.
package description

import (
	"sort"
	"strings"

	"github.com/google/cmexport"
	"github.com/google/cmexport/genex"
	"github.com/google/cmexport/policy"
	"github.com/google/cmexport/proptools"
)

// DefaultLinkerLanguage is used for targets that do not name one.
const DefaultLinkerLanguage = "CXX"

// A Project is a loaded build description.  It implements cmexport.Model.
type Project struct {
	sourceDir      string
	binaryDir      string
	installPrefix  string
	configurations []string
	dllPlatform    bool
	installNameDir *string

	// Policies are the policy settings of the project.
	Policies policy.Table
	// ExportSets are the export sets in definition order.
	ExportSets cmexport.ExportSets
	// Files are the description files the project was loaded from.
	Files []string

	targets map[string]*Target
}

var _ cmexport.Model = (*Project)(nil)

func (p *Project) FindTarget(name string) (cmexport.Target, bool) {
	if t, ok := p.targets[name]; ok {
		return t, true
	}
	return nil, false
}

// Target returns the target named name, or nil.
func (p *Project) Target(name string) *Target {
	return p.targets[name]
}

// Targets returns every target sorted by name.
func (p *Project) Targets() []*Target {
	targets := make([]*Target, 0, len(p.targets))
	for _, t := range p.targets {
		targets = append(targets, t)
	}
	sort.Slice(targets, func(i, j int) bool {
		return targets[i].name < targets[j].name
	})
	return targets
}

func (p *Project) SourceDir() string        { return p.sourceDir }
func (p *Project) BinaryDir() string        { return p.binaryDir }
func (p *Project) InstallPrefix() string    { return p.installPrefix }
func (p *Project) Configurations() []string { return p.configurations }
func (p *Project) IsDLLPlatform() bool      { return p.dllPlatform }

// InstallNameDir returns the project wide install name directory for
// shared libraries built by the project.
func (p *Project) InstallNameDir(t cmexport.Target, config string) (string, bool) {
	if p.installNameDir == nil || t.IsImported() || t.Kind() != cmexport.SharedLibrary {
		return "", false
	}
	dir := *p.installNameDir
	if dir != "" && !strings.HasSuffix(dir, "/") {
		dir += "/"
	}
	return dir, true
}

type configDetails struct {
	soname        *string
	location      string
	importLibrary string
	linkLibraries []string
	linkInterface *linkInterfaceDef
}

// A Target is a library or executable of a Project.  It implements
// cmexport.Target.
type Target struct {
	name           string
	exportName     string
	kind           cmexport.TargetKind
	imported       bool
	linkerLanguage string
	framework      bool
	appBundle      bool
	bundle         bool
	exports        bool
	properties     map[string]string

	defaults configDetails
	// configs are keyed by upper case configuration name.
	configs map[string]*configDetails

	project *Project
	pos     Position
}

var _ cmexport.Target = (*Target)(nil)

func (t *Target) Name() string              { return t.name }
func (t *Target) ExportName() string        { return t.exportName }
func (t *Target) Kind() cmexport.TargetKind { return t.kind }
func (t *Target) IsImported() bool          { return t.imported }
func (t *Target) IsFramework() bool         { return t.framework }
func (t *Target) IsAppBundle() bool         { return t.appBundle }
func (t *Target) IsBundle() bool            { return t.bundle }
func (t *Target) HasExports() bool          { return t.exports }
func (t *Target) Pos() Position             { return t.pos }
func (t *Target) LinkerLanguage() string    { return t.linkerLanguage }

func (t *Target) Property(name string) (string, bool) {
	v, ok := t.properties[name]
	return v, ok
}

// PropertyNames returns the names of the properties set on t, sorted.
func (t *Target) PropertyNames() []string {
	names := make([]string, 0, len(t.properties))
	for name := range t.properties {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t *Target) IsLinkable() bool {
	return t.kind.IsLibrary() || (t.kind == cmexport.Executable && t.exports)
}

func (t *Target) config(config string) *configDetails {
	return t.configs[strings.ToUpper(config)]
}

func (t *Target) SOName(config string) (string, bool) {
	if t.kind != cmexport.SharedLibrary && t.kind != cmexport.ModuleLibrary {
		return "", false
	}
	soname := t.defaults.soname
	if c := t.config(config); c != nil && c.soname != nil {
		soname = c.soname
	}
	if soname == nil || *soname == "" {
		return "", false
	}
	return *soname, true
}

func (t *Target) Artifacts(config string) cmexport.Artifacts {
	a := cmexport.Artifacts{
		Location:      t.defaults.location,
		ImportLibrary: t.defaults.importLibrary,
	}
	if c := t.config(config); c != nil {
		if c.location != "" {
			a.Location = c.location
		}
		if c.importLibrary != "" {
			a.ImportLibrary = c.importLibrary
		}
	}
	if t.kind == cmexport.InterfaceLibrary {
		return cmexport.Artifacts{}
	}
	return a
}

func (t *Target) linkLibraries(config string) []string {
	if c := t.config(config); c != nil && c.linkLibraries != nil {
		return c.linkLibraries
	}
	return t.defaults.linkLibraries
}

// LinkInterface returns, in order of preference, the link_interface
// declared for config, the one declared for the target, and then the
// interface selected by CMP0022: INTERFACE_LINK_LIBRARIES under the new
// behavior, otherwise the legacy LINK_INTERFACE_LIBRARIES properties or the
// link implementation.
func (t *Target) LinkInterface(config string) *cmexport.LinkInterface {
	if !t.IsLinkable() || t.kind == cmexport.InterfaceLibrary {
		return nil
	}

	def := t.defaults.linkInterface
	if c := t.config(config); c != nil && c.linkInterface != nil {
		def = c.linkInterface
	}
	if def != nil {
		return &cmexport.LinkInterface{
			Libraries:    def.Libraries,
			Languages:    def.Languages,
			SharedDeps:   def.SharedDeps,
			Multiplicity: def.Multiplicity,
		}
	}

	if t.project.Policies.Status(policy.CMP0022).IsNew() {
		v, _ := t.Property(proptools.InterfaceLinkLibraries)
		return t.explicitLinkInterface(config, genex.ExpandList(v))
	}

	suffix := proptools.ConfigSuffix(config)
	if v, ok := t.Property(proptools.LinkInterfaceLibraries + suffix); ok {
		return t.explicitLinkInterface(config, genex.ExpandList(v))
	}
	if v, ok := t.Property(proptools.LinkInterfaceLibraries); ok {
		return t.explicitLinkInterface(config, genex.ExpandList(v))
	}

	iface := &cmexport.LinkInterface{
		Libraries:                 t.linkLibraries(config),
		ImplementationIsInterface: true,
	}
	t.setLinkLanguages(iface)
	return iface
}

// explicitLinkInterface builds an interface from libraries.  Shared
// libraries the implementation links to but does not pass on are still
// needed at runtime and are reported as SharedDeps.
func (t *Target) explicitLinkInterface(config string, libraries []string) *cmexport.LinkInterface {
	iface := &cmexport.LinkInterface{Libraries: libraries}
	t.setLinkLanguages(iface)
	if t.kind == cmexport.StaticLibrary {
		return iface
	}

	emitted := make(map[string]bool, len(libraries))
	for _, lib := range libraries {
		emitted[lib] = true
	}
	for _, lib := range t.linkLibraries(config) {
		if emitted[lib] {
			continue
		}
		emitted[lib] = true
		if dep, ok := t.project.targets[lib]; ok && dep.kind == cmexport.SharedLibrary {
			iface.SharedDeps = append(iface.SharedDeps, lib)
		}
	}
	return iface
}

// Consumers of a static library link its objects, so they need the runtime
// of the language it was compiled with.
func (t *Target) setLinkLanguages(iface *cmexport.LinkInterface) {
	if t.kind == cmexport.StaticLibrary && t.linkerLanguage != "" {
		iface.Languages = []string{t.linkerLanguage}
	}
}

// LinkItems returns the targets t links to for config, followed by the
// targets reachable through their link interfaces.  The walk follows
// LinkInterface, so it honors CMP0022 the same way.  ok is false when t has
// no linker language.
func (t *Target) LinkItems(config string) ([]cmexport.Target, bool) {
	if t.kind != cmexport.InterfaceLibrary && t.linkerLanguage == "" {
		return nil, false
	}

	var items []cmexport.Target
	seen := map[string]bool{t.name: true}
	var visit func(names []string)
	visit = func(names []string) {
		for _, name := range names {
			dep, ok := t.project.targets[name]
			if !ok || seen[name] {
				continue
			}
			seen[name] = true
			items = append(items, dep)
			if iface := dep.LinkInterface(config); iface != nil {
				visit(iface.Libraries)
			} else if v, ok := dep.Property(proptools.InterfaceLinkLibraries); ok {
				visit(genex.ExpandList(v))
			}
		}
	}
	visit(t.linkLibraries(config))
	return items, true
}

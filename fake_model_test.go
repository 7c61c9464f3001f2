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
	"strings"
)

type fakeTarget struct {
	model *fakeModel

	name       string
	exportName string
	kind       TargetKind
	props      map[string]string
	imported   bool
	framework  bool
	appBundle  bool
	bundle     bool
	exports    bool
	sonames    map[string]string
	iface      map[string]*LinkInterface
	linkItems  []string
	noLinker   bool
	artifacts  map[string]Artifacts
}

func (t *fakeTarget) Name() string { return t.name }

func (t *fakeTarget) ExportName() string {
	if t.exportName != "" {
		return t.exportName
	}
	return t.name
}

func (t *fakeTarget) Kind() TargetKind { return t.kind }

func (t *fakeTarget) Property(name string) (string, bool) {
	v, ok := t.props[name]
	return v, ok
}

func (t *fakeTarget) IsImported() bool  { return t.imported }
func (t *fakeTarget) IsLinkable() bool  { return t.kind.IsLibrary() || t.exports }
func (t *fakeTarget) IsFramework() bool { return t.framework }
func (t *fakeTarget) IsAppBundle() bool { return t.appBundle }
func (t *fakeTarget) IsBundle() bool    { return t.bundle }
func (t *fakeTarget) HasExports() bool  { return t.exports }

func (t *fakeTarget) SOName(config string) (string, bool) {
	v, ok := t.sonames[strings.ToUpper(config)]
	return v, ok
}

func (t *fakeTarget) LinkInterface(config string) *LinkInterface {
	if iface, ok := t.iface[strings.ToUpper(config)]; ok {
		return iface
	}
	return t.iface["*"]
}

func (t *fakeTarget) LinkItems(config string) ([]Target, bool) {
	if t.noLinker {
		return nil, false
	}
	var items []Target
	for _, name := range t.linkItems {
		if dep, ok := t.model.FindTarget(name); ok {
			items = append(items, dep)
		}
	}
	return items, true
}

func (t *fakeTarget) Artifacts(config string) Artifacts {
	return t.artifacts[strings.ToUpper(config)]
}

type fakeModel struct {
	targets        map[string]*fakeTarget
	sourceDir      string
	binaryDir      string
	installPrefix  string
	configs        []string
	dll            bool
	installNameDir string
}

func newFakeModel(targets ...*fakeTarget) *fakeModel {
	m := &fakeModel{
		targets:       make(map[string]*fakeTarget),
		sourceDir:     "/src",
		binaryDir:     "/src/build",
		installPrefix: "/usr/local",
	}
	for _, t := range targets {
		t.model = m
		m.targets[t.name] = t
	}
	return m
}

func (m *fakeModel) FindTarget(name string) (Target, bool) {
	t, ok := m.targets[name]
	if !ok {
		return nil, false
	}
	return t, true
}

func (m *fakeModel) SourceDir() string        { return m.sourceDir }
func (m *fakeModel) BinaryDir() string        { return m.binaryDir }
func (m *fakeModel) InstallPrefix() string    { return m.installPrefix }
func (m *fakeModel) Configurations() []string { return m.configs }
func (m *fakeModel) IsDLLPlatform() bool      { return m.dll }

func (m *fakeModel) InstallNameDir(t Target, config string) (string, bool) {
	return m.installNameDir, m.installNameDir != ""
}

func exportSet(m *fakeModel, names ...string) *ExportSet {
	set := &ExportSet{
		Name:        "PkgTargets",
		Namespace:   "Pkg::",
		Mode:        InstallTree,
		Destination: "lib/cmake/Pkg/PkgTargets.cmake",
	}
	for _, name := range names {
		set.Members = append(set.Members, &Member{Target: m.targets[name]})
	}
	return set
}

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
	"sort"
	"strings"

	"github.com/google/cmexport/genex"
	"github.com/google/cmexport/pathtools"
	"github.com/google/cmexport/policy"
	"github.com/google/cmexport/proptools"
)

// populateInterface computes the configuration independent properties of
// a member.
func (p *pass) populateInterface(m *Member) (PropertyMap, error) {
	t := m.Target
	props := PropertyMap{}

	var err error
	if p.set.Mode == InstallTree {
		err = p.populateIncludeDirectories(m, props)
	} else {
		err = p.populateInterfaceProperty(t, proptools.InterfaceIncludeDirectories, props)
	}
	if err != nil {
		return nil, err
	}

	for _, name := range proptools.InterfaceProperties {
		if err := p.populateInterfaceProperty(t, name, props); err != nil {
			return nil, err
		}
	}

	if p.Policies.Status(policy.CMP0022).IsNew() {
		populated, err := p.populateLinkLibraries(t, props)
		if err != nil {
			return nil, err
		}
		if populated && !p.set.ExportOld {
			p.requireLinkLibraries = true
		}
	}

	p.populateRawProperty(t, proptools.InterfacePositionIndependentCode, props)

	if err := p.populateCompatibleInterface(t, props); err != nil {
		return nil, err
	}
	return props, nil
}

// populateRawProperty copies a property without looking at its value.
func (p *pass) populateRawProperty(t Target, name string, props PropertyMap) {
	if v, ok := t.Property(name); ok {
		props.Set(name, v)
	}
}

// populateInterfaceProperty copies a property after preprocessing and
// resolving target references.  A property set to the empty string is
// exported as empty; one that preprocesses to nothing is not exported.
func (p *pass) populateInterfaceProperty(t Target, name string, props PropertyMap) error {
	input, ok := t.Property(name)
	if !ok {
		return nil
	}
	if input == "" {
		props.Set(name, "")
		return nil
	}

	prepro := p.preprocess(t, name, input, false)
	if prepro == "" {
		return nil
	}
	resolved, err := p.resolve(t, name, prepro, ExpressionsOnly)
	if err != nil {
		return err
	}
	props.Set(name, resolved)
	return nil
}

// populateIncludeDirectories merges the target's own include directories
// with those attached to the install rule and validates the result.
func (p *pass) populateIncludeDirectories(m *Member, props PropertyMap) error {
	t := m.Target
	const name = proptools.InterfaceIncludeDirectories
	input, hasInput := t.Property(name)

	dirs := p.preprocess(t, name, m.InterfaceIncludeDirectories, true)
	if p.resolver.rewrite != nil {
		dirs = p.resolver.rewrite(dirs)
	}
	res, err := genex.Evaluate(dirs, genex.Context{})
	if err != nil {
		return targetError(t, name, err)
	}
	if res.ContextSensitive {
		return targetError(t, name, ErrContextSensitiveInterface)
	}
	exportDirs := res.Value

	if !hasInput && exportDirs == "" {
		return nil
	}
	if hasInput && input == "" && exportDirs == "" {
		props.Set(name, "")
		return nil
	}

	includes := input
	if hasInput {
		includes += ";"
	}
	includes += prefixImportItems(exportDirs)

	prepro := p.preprocess(t, name, includes, true)
	if prepro == "" {
		return nil
	}
	resolved, err := p.resolve(t, name, prepro, ExpressionsOnly)
	if err != nil {
		return err
	}

	if err := p.checkInterfaceDirs(t, resolved); err != nil {
		return targetError(t, name, err)
	}
	props.Set(name, resolved)
	return nil
}

// prefixImportItems makes the relative items of an evaluated include
// destination relative to the import prefix.
func prefixImportItems(dirs string) string {
	items := genex.Split(dirs)
	for i, item := range items {
		if !pathtools.IsFullPath(item) && !strings.Contains(item, genex.ImportPrefix) {
			items[i] = genex.ImportPrefix + "/" + item
		}
	}
	return genex.Join(items)
}

// populateLinkLibraries exports INTERFACE_LINK_LIBRARIES of a linkable
// target.  It reports whether the property was exported.
func (p *pass) populateLinkLibraries(t Target, props PropertyMap) (bool, error) {
	if !t.IsLinkable() {
		return false, nil
	}
	const name = proptools.InterfaceLinkLibraries
	input, ok := t.Property(name)
	if !ok {
		return false, nil
	}
	prepro := p.preprocess(t, name, input, false)
	if prepro == "" {
		return false, nil
	}
	resolved, err := p.resolve(t, name, prepro, ReplaceFreeTargets)
	if err != nil {
		return false, err
	}
	props.Set(name, resolved)
	return true, nil
}

// populateCompatibleInterface exports the compatible interface lists and,
// for every property named by the lists of the target or of anything it
// links to, the INTERFACE_ variant of that property.  Consumers may declare
// a property compatible that the target itself does not.
func (p *pass) populateCompatibleInterface(t Target, props PropertyMap) error {
	for _, name := range proptools.CompatibleInterfaceProperties {
		p.populateRawProperty(t, name, props)
	}

	names := make(map[string]bool)
	addCompatibleNames(t, names)

	if t.Kind() != InterfaceLibrary {
		configs := append([]string{""}, p.Model.Configurations()...)
		for _, config := range configs {
			items, ok := t.LinkItems(config)
			if !ok {
				return targetError(t, "", ErrUnlinkableTarget)
			}
			for _, dep := range items {
				addCompatibleNames(dep, names)
			}
		}
	}

	sorted := make([]string, 0, len(names))
	for name := range names {
		sorted = append(sorted, name)
	}
	sort.Strings(sorted)
	for _, name := range sorted {
		p.populateRawProperty(t, proptools.CompatibleInterfaceKey(name), props)
	}
	return nil
}

func addCompatibleNames(t Target, names map[string]bool) {
	for _, list := range proptools.CompatibleInterfaceProperties {
		v, ok := t.Property(list)
		if !ok {
			continue
		}
		for _, name := range genex.ExpandList(v) {
			names[name] = true
		}
	}
}

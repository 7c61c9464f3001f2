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
	"fmt"
	"strconv"
	"strings"

	"github.com/google/cmexport/genex"
	"github.com/google/cmexport/pathtools"
	"github.com/google/cmexport/policy"
	"github.com/google/cmexport/proptools"
)

// setImportLocationProperties exports the artifacts of t for config and
// returns the paths the generated script should check for.
func (p *pass) setImportLocationProperties(config string, t Target, props PropertyMap) []string {
	suffix := proptools.ConfigSuffix(config)
	artifacts := t.Artifacts(config)

	paths := map[string]string{
		proptools.ImportedLocation: artifacts.Location,
		proptools.ImportedImplib:   artifacts.ImportLibrary,
	}
	var files []string
	for _, key := range proptools.LocationProperties {
		if paths[key] == "" {
			continue
		}
		value := p.artifactPath(paths[key])
		props.Set(key+suffix, value)
		files = append(files, value)
	}
	return files
}

func (p *pass) artifactPath(path string) string {
	if pathtools.IsFullPath(path) || strings.HasPrefix(path, genex.ImportPrefix) {
		return path
	}
	if p.set.Mode == InstallTree {
		return genex.ImportPrefix + "/" + path
	}
	return pathtools.PrefixPaths([]string{path}, p.Model.BinaryDir())[0]
}

// setImportDetailProperties exports the soname and link interface details
// of t for config.
func (p *pass) setImportDetailProperties(config string, t Target, props PropertyMap) {
	suffix := proptools.ConfigSuffix(config)

	if (t.Kind() == SharedLibrary || t.Kind() == ModuleLibrary) && !p.Model.IsDLLPlatform() {
		if soname, ok := t.SOName(config); ok {
			if dir, ok := p.Model.InstallNameDir(t, config); ok {
				soname = dir + soname
			}
			props.Set(proptools.ImportedSoname+suffix, soname)
		} else {
			props.Set(proptools.ImportedNoSoname+suffix, "TRUE")
		}
	}

	iface := t.LinkInterface(config)
	if iface == nil {
		return
	}
	p.setImportLinkProperty(suffix, proptools.ImportedLinkInterfaceLanguages,
		iface.Languages, props, &p.missing)
	// Runtime dependencies are advisory; targets missing from the export set
	// are not checked for.
	p.setImportLinkProperty(suffix, proptools.ImportedLinkDependentLibraries,
		iface.SharedDeps, props, nil)
	if iface.Multiplicity > 0 {
		props.Set(proptools.ImportedLinkInterfaceMultiplicity+suffix,
			strconv.Itoa(iface.Multiplicity))
	}
}

// setImportLinkProperty exports entries, namespacing those that name
// targets.  Nothing is exported for an empty list.
func (p *pass) setImportLinkProperty(suffix, name string, entries []string,
	props PropertyMap, missing *MissingTargets) {

	if len(entries) == 0 {
		return
	}
	resolved := make([]string, len(entries))
	for i, entry := range entries {
		resolved[i], _ = p.resolver.AddTargetNamespace(entry, missing)
	}
	props.Set(name+suffix, strings.Join(resolved, ";"))
}

// setImportLinkInterface exports the classic link interface of t for config.
func (p *pass) setImportLinkInterface(config string, t Target, props PropertyMap) error {
	suffix := proptools.ConfigSuffix(config)

	iface := t.LinkInterface(config)
	if iface == nil {
		return nil
	}

	if iface.ImplementationIsInterface {
		p.setImportLinkProperty(suffix, proptools.ImportedLinkInterfaceLibraries,
			iface.Libraries, props, &p.missing)
		return nil
	}

	input, ok := t.Property(proptools.LinkInterfaceLibraries + suffix)
	if !ok {
		input, ok = t.Property(proptools.LinkInterfaceLibraries)
	}
	if !ok {
		return nil
	}

	if p.Policies.Status(policy.CMP0022).IsNew() && !p.set.ExportOld {
		return targetError(t, proptools.LinkInterfaceLibraries, fmt.Errorf(
			"%w: %s is enabled, but old-style LINK_INTERFACE_LIBRARIES properties "+
				"are populated and the target was exported without "+
				"EXPORT_LINK_INTERFACE_LIBRARIES to export them",
			ErrPolicyViolation, policy.CMP0022))
	}

	key := proptools.ImportedLinkInterfaceLibraries + suffix
	if input == "" {
		props.Set(key, "")
		return nil
	}

	prepro := p.preprocess(t, key, input, false)
	if prepro == "" {
		return nil
	}
	resolved, err := p.resolve(t, key, prepro, ReplaceFreeTargets)
	if err != nil {
		return err
	}
	props.Set(key, resolved)
	return nil
}

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


package description

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/google/cmexport"
	"github.com/google/cmexport/pathtools"
	"github.com/google/cmexport/policy"
)

const DefaultInstallPrefix = "/usr/local"

var (
	ErrNoProject     = errors.New("no project block")
	ErrUnknownFormat = errors.New("unknown description format")
)

// Load reads the description files named by paths from fs.  Files ending in
// .hcl are read as HCL, files ending in .yaml or .yml as YAML.  Exactly one
// of the files must contain a project block.
func Load(fs pathtools.FileSystem, paths ...string) (*Project, error) {
	parser := hclparse.NewParser()

	var files []*file
	var pending []*hclFile
	for _, path := range paths {
		src, err := fs.ReadFile(path)
		if err != nil {
			return nil, err
		}
		switch strings.ToLower(filepath.Ext(path)) {
		case ".hcl":
			f, err := parseHCL(parser, path, src)
			if err != nil {
				return nil, err
			}
			files = append(files, f.file)
			pending = append(pending, f)
		case ".yaml", ".yml":
			f, err := parseYAML(path, src)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
		}
	}

	decl, err := findUniqueProject(files)
	if err != nil {
		return nil, err
	}
	normalizeProject(decl.def)

	ctx := evalContext(decl.def)
	for _, f := range pending {
		if err := f.decode(ctx); err != nil {
			return nil, err
		}
	}

	p, err := build(decl, files)
	if err != nil {
		return nil, err
	}
	p.Files = append([]string(nil), paths...)
	return p, nil
}

func findUniqueProject(files []*file) (projectDecl, error) {
	var found *projectDecl
	for _, f := range files {
		for i := range f.projects {
			if found != nil {
				// seven characters at the start of the second line to align with the string "error: "
				return projectDecl{}, fmt.Errorf("project already defined\n"+
					"       %s <-- previous definition here", found.pos)
			}
			found = &f.projects[i]
		}
	}
	if found == nil {
		return projectDecl{}, ErrNoProject
	}
	return *found, nil
}

func normalizeProject(def *projectDef) {
	def.SourceDir = pathtools.Clean(def.SourceDir)
	if def.BinaryDir == "" {
		def.BinaryDir = def.SourceDir
	} else {
		def.BinaryDir = pathtools.Clean(def.BinaryDir)
	}
	if def.InstallPrefix == "" {
		def.InstallPrefix = DefaultInstallPrefix
	} else {
		def.InstallPrefix = pathtools.Clean(def.InstallPrefix)
	}
}

// build checks the declarations of all files against each other and
// assembles the Project.  Errors are collected so that one run reports
// every problem in the description.
func build(decl projectDecl, files []*file) (*Project, error) {
	var errs *multierror.Error

	def := decl.def
	if !pathtools.IsFullPath(def.SourceDir) {
		errs = multierror.Append(errs, fmt.Errorf("%s: source_dir %q is not absolute",
			decl.pos, def.SourceDir))
	}
	if !pathtools.IsFullPath(def.BinaryDir) {
		errs = multierror.Append(errs, fmt.Errorf("%s: binary_dir %q is not absolute",
			decl.pos, def.BinaryDir))
	}

	statuses := make(map[policy.ID]policy.Status, len(def.Policies))
	for id, s := range def.Policies {
		status, err := policy.ParseStatus(s)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: %w", decl.pos, err))
			continue
		}
		statuses[policy.ID(id)] = status
	}
	policies, err := policy.NewTable(statuses)
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("%s: %w", decl.pos, err))
	}

	p := &Project{
		sourceDir:      def.SourceDir,
		binaryDir:      def.BinaryDir,
		installPrefix:  def.InstallPrefix,
		configurations: def.Configurations,
		dllPlatform:    def.DLLPlatform,
		installNameDir: def.InstallNameDir,
		Policies:       policies,
		targets:        make(map[string]*Target),
	}

	for _, f := range files {
		for _, td := range f.targets {
			t, err := newTarget(p, td)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if prev, present := p.targets[t.name]; present {
				// seven characters at the start of the second line to align with the string "error: "
				errs = multierror.Append(errs, fmt.Errorf("%s: target %q already defined\n"+
					"       %s <-- previous definition here", td.pos, t.name, prev.pos))
				continue
			}
			p.targets[t.name] = t
		}
	}

	for _, f := range files {
		for _, ed := range f.exports {
			set, err := newExportSet(p, ed)
			if err != nil {
				errs = multierror.Append(errs, err)
				continue
			}
			if p.ExportSets.Find(set.Name) != nil {
				errs = multierror.Append(errs, fmt.Errorf("%s: export %q already defined",
					ed.pos, set.Name))
				continue
			}
			p.ExportSets = append(p.ExportSets, set)
		}
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return p, nil
}

func newTarget(p *Project, decl targetDecl) (*Target, error) {
	def := decl.def
	if def.Name == "" {
		return nil, fmt.Errorf("%s: target has no name", decl.pos)
	}
	kind, err := cmexport.ParseTargetKind(def.Kind)
	if err != nil {
		return nil, fmt.Errorf("%s: target %q: %w", decl.pos, def.Name, err)
	}

	t := &Target{
		name:       def.Name,
		exportName: def.ExportName,
		kind:       kind,
		imported:   def.Imported,
		framework:  def.Framework,
		appBundle:  def.AppBundle,
		bundle:     def.Bundle,
		exports:    def.EnableExports,
		properties: make(map[string]string, len(def.Properties)),
		defaults: configDetails{
			soname:        def.SOName,
			location:      def.Location,
			importLibrary: def.ImportLibrary,
			linkLibraries: def.LinkLibraries,
			linkInterface: def.LinkInterface,
		},
		configs: make(map[string]*configDetails, len(def.Configs)),
		project: p,
		pos:     decl.pos,
	}
	if t.exportName == "" {
		t.exportName = t.name
	}
	if def.LinkerLanguage != nil {
		t.linkerLanguage = *def.LinkerLanguage
	} else if kind != cmexport.InterfaceLibrary {
		t.linkerLanguage = DefaultLinkerLanguage
	}
	for k, v := range def.Properties {
		t.properties[k] = v
	}

	for _, c := range def.Configs {
		key := strings.ToUpper(c.Name)
		if _, present := t.configs[key]; present {
			return nil, fmt.Errorf("%s: target %q: config %q already defined",
				decl.pos, def.Name, c.Name)
		}
		t.configs[key] = &configDetails{
			soname:        c.SOName,
			location:      c.Location,
			importLibrary: c.ImportLibrary,
			linkLibraries: c.LinkLibraries,
			linkInterface: c.LinkInterface,
		}
	}

	if kind == cmexport.InterfaceLibrary {
		for _, name := range t.PropertyNames() {
			if !interfaceLibraryProperty(name) {
				return nil, fmt.Errorf("%s: target %q: interface libraries may only "+
					"have INTERFACE_ properties, %q is not allowed", decl.pos, def.Name, name)
			}
		}
	}
	return t, nil
}

func interfaceLibraryProperty(name string) bool {
	return strings.HasPrefix(name, "INTERFACE_") ||
		strings.HasPrefix(name, "COMPATIBLE_INTERFACE_") ||
		name == "EXPORT_NAME"
}

func newExportSet(p *Project, decl exportDecl) (*cmexport.ExportSet, error) {
	def := decl.def
	if def.Name == "" {
		return nil, fmt.Errorf("%s: export has no name", decl.pos)
	}
	mode, err := cmexport.ParseMode(def.Mode)
	if err != nil {
		return nil, fmt.Errorf("%s: export %q: %w", decl.pos, def.Name, err)
	}

	set := &cmexport.ExportSet{
		Name:           def.Name,
		Namespace:      def.Namespace,
		Mode:           mode,
		Destination:    def.Destination,
		Configurations: def.Configurations,
		ExportOld:      def.ExportLinkInterfaceLibraries,
	}
	if set.Destination == "" {
		set.Destination = DefaultDestination(def.Name, mode)
	}
	if len(set.Configurations) == 0 {
		set.Configurations = p.configurations
	}

	var errs *multierror.Error
	for _, m := range def.Members {
		t, ok := p.targets[m.Target]
		if !ok {
			errs = multierror.Append(errs, fmt.Errorf("%s: export %q: unknown target %q",
				decl.pos, def.Name, m.Target))
			continue
		}
		if t.imported {
			errs = multierror.Append(errs, fmt.Errorf("%s: export %q: imported target %q "+
				"cannot be exported", decl.pos, def.Name, m.Target))
			continue
		}
		if set.Member(m.Target) != nil {
			errs = multierror.Append(errs, fmt.Errorf("%s: export %q: target %q added twice",
				decl.pos, def.Name, m.Target))
			continue
		}
		set.Members = append(set.Members, &cmexport.Member{
			Target:                      t,
			InterfaceIncludeDirectories: strings.Join(m.Includes, ";"),
		})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	return set, nil
}

// DefaultDestination returns where the export file of the set named name
// goes when the description does not say.
func DefaultDestination(name string, mode cmexport.Mode) string {
	if mode == cmexport.InstallTree {
		return "lib/cmake/" + name + "/" + name + "Targets.cmake"
	}
	return name + "Targets.cmake"
}

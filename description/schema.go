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
	"fmt"
)

// The structs below carry both hcl and yaml tags so the two file formats
// share one schema.  Block labels in HCL map to the name fields in YAML.

type projectDef struct {
	SourceDir      string            `hcl:"source_dir" yaml:"source_dir"`
	BinaryDir      string            `hcl:"binary_dir,optional" yaml:"binary_dir"`
	InstallPrefix  string            `hcl:"install_prefix,optional" yaml:"install_prefix"`
	Configurations []string          `hcl:"configurations,optional" yaml:"configurations"`
	DLLPlatform    bool              `hcl:"dll_platform,optional" yaml:"dll_platform"`
	InstallNameDir *string           `hcl:"install_name_dir,optional" yaml:"install_name_dir"`
	Policies       map[string]string `hcl:"policies,optional" yaml:"policies"`
}

type linkInterfaceDef struct {
	Libraries    []string `hcl:"libraries,optional" yaml:"libraries"`
	Languages    []string `hcl:"languages,optional" yaml:"languages"`
	SharedDeps   []string `hcl:"shared_deps,optional" yaml:"shared_deps"`
	Multiplicity int      `hcl:"multiplicity,optional" yaml:"multiplicity"`
}

type configDef struct {
	Name          string            `hcl:"name,label" yaml:"name"`
	SOName        *string           `hcl:"soname,optional" yaml:"soname"`
	Location      string            `hcl:"location,optional" yaml:"location"`
	ImportLibrary string            `hcl:"import_library,optional" yaml:"import_library"`
	LinkLibraries []string          `hcl:"link_libraries,optional" yaml:"link_libraries"`
	LinkInterface *linkInterfaceDef `hcl:"link_interface,block" yaml:"link_interface"`
}

type targetDef struct {
	Name           string            `yaml:"name"`
	Kind           string            `hcl:"kind" yaml:"kind"`
	ExportName     string            `hcl:"export_name,optional" yaml:"export_name"`
	Imported       bool              `hcl:"imported,optional" yaml:"imported"`
	LinkerLanguage *string           `hcl:"linker_language,optional" yaml:"linker_language"`
	Framework      bool              `hcl:"framework,optional" yaml:"framework"`
	AppBundle      bool              `hcl:"app_bundle,optional" yaml:"app_bundle"`
	Bundle         bool              `hcl:"bundle,optional" yaml:"bundle"`
	EnableExports  bool              `hcl:"enable_exports,optional" yaml:"enable_exports"`
	Properties     map[string]string `hcl:"properties,optional" yaml:"properties"`
	SOName         *string           `hcl:"soname,optional" yaml:"soname"`
	Location       string            `hcl:"location,optional" yaml:"location"`
	ImportLibrary  string            `hcl:"import_library,optional" yaml:"import_library"`
	LinkLibraries  []string          `hcl:"link_libraries,optional" yaml:"link_libraries"`
	LinkInterface  *linkInterfaceDef `hcl:"link_interface,block" yaml:"link_interface"`
	Configs        []*configDef      `hcl:"config,block" yaml:"configs"`
}

type memberDef struct {
	Target   string   `hcl:"target,label" yaml:"target"`
	Includes []string `hcl:"includes,optional" yaml:"includes"`
}

type exportDef struct {
	Name                         string       `yaml:"name"`
	Namespace                    string       `hcl:"namespace,optional" yaml:"namespace"`
	Mode                         string       `hcl:"mode,optional" yaml:"mode"`
	Destination                  string       `hcl:"destination,optional" yaml:"destination"`
	Configurations               []string     `hcl:"configurations,optional" yaml:"configurations"`
	ExportLinkInterfaceLibraries bool         `hcl:"export_link_interface_libraries,optional" yaml:"export_link_interface_libraries"`
	Members                      []*memberDef `hcl:"member,block" yaml:"members"`
}

// Position is a location in a description file.
type Position struct {
	Filename string
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Line == 0 {
		return p.Filename
	}
	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
}

// A file holds the declarations read from one description file, before
// they are checked against each other.
type file struct {
	name     string
	projects []projectDecl
	targets  []targetDecl
	exports  []exportDecl
}

type projectDecl struct {
	def *projectDef
	pos Position
}

type targetDecl struct {
	def *targetDef
	pos Position
}

type exportDecl struct {
	def *exportDef
	pos Position
}

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
	"strings"
)

// TargetKind is the kind of artifact a target produces.
type TargetKind int

const (
	Executable TargetKind = iota
	StaticLibrary
	SharedLibrary
	ModuleLibrary
	UnknownLibrary
	InterfaceLibrary
)

var targetKindNames = []string{
	Executable:       "executable",
	StaticLibrary:    "static",
	SharedLibrary:    "shared",
	ModuleLibrary:    "module",
	UnknownLibrary:   "unknown",
	InterfaceLibrary: "interface",
}

func (k TargetKind) String() string {
	if k < 0 || int(k) >= len(targetKindNames) {
		return fmt.Sprintf("TargetKind(%d)", int(k))
	}
	return targetKindNames[k]
}

// ParseTargetKind returns the TargetKind whose String is s.
func ParseTargetKind(s string) (TargetKind, error) {
	for i, name := range targetKindNames {
		if strings.EqualFold(s, name) {
			return TargetKind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown target kind %q, want one of %s",
		s, strings.Join(targetKindNames, ", "))
}

// IsLibrary reports whether k produces something that can be linked to.
func (k TargetKind) IsLibrary() bool {
	return k != Executable
}

// A LinkInterface is what consumers of a target link against for one
// configuration.
type LinkInterface struct {
	// Libraries are the entries of the link interface, either target names
	// or plain library names.
	Libraries []string
	// Languages are the languages whose runtime libraries a consumer needs.
	Languages []string
	// SharedDeps are shared libraries needed at runtime but not linked.
	SharedDeps []string
	// Multiplicity is the number of times a static library cycle has to be
	// repeated on the link line, or 0.
	Multiplicity int
	// ImplementationIsInterface is set when the link interface was taken
	// from the link implementation because no interface was declared.  The
	// legacy LINK_INTERFACE_LIBRARIES properties must not be consulted then.
	ImplementationIsInterface bool
}

// Artifacts are the files a target produces for one configuration.  Paths
// may be relative to the install prefix or to the build directory,
// depending on the kind of export file being generated.
type Artifacts struct {
	Location      string
	ImportLibrary string
}

// A Target is a library or executable owned by the Model.  Generators only
// read from targets.
type Target interface {
	// Name is unique within the Model.
	Name() string
	// ExportName is the name consumers see, before namespacing.
	ExportName() string
	Kind() TargetKind

	// Property returns the raw value of a property and whether it is set.
	// A property may be set to the empty string.
	Property(name string) (string, bool)

	IsImported() bool
	IsLinkable() bool
	IsFramework() bool
	IsAppBundle() bool
	IsBundle() bool
	// HasExports is set for executables that export symbols for plugins.
	HasExports() bool

	// SOName returns the shared object name for config, if the target has
	// one.
	SOName(config string) (string, bool)
	// LinkInterface returns the link interface for config, or nil.
	LinkInterface(config string) *LinkInterface
	// LinkItems returns the targets on the link line for config.  ok is
	// false if the target's linker language cannot be determined.
	LinkItems(config string) (items []Target, ok bool)
	Artifacts(config string) Artifacts
}

// A Model is the build description targets are exported from.
type Model interface {
	// FindTarget looks up a target by name.
	FindTarget(name string) (Target, bool)

	SourceDir() string
	BinaryDir() string
	InstallPrefix() string

	// Configurations are the configurations the project is built in.
	Configurations() []string

	// IsDLLPlatform reports whether shared libraries are DLLs, which have
	// no soname.
	IsDLLPlatform() bool
	// InstallNameDir returns the directory prefixed to the soname of t on
	// platforms with install names.
	InstallNameDir(t Target, config string) (string, bool)
}

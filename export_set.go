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

// Mode selects whether an export file describes an installation or a build
// tree.
type Mode int

const (
	// InstallTree export files are installed next to the artifacts and
	// locate them relative to their own position.
	InstallTree Mode = iota
	// BuildTree export files refer to artifacts in the build directory.
	BuildTree
)

func (m Mode) String() string {
	switch m {
	case InstallTree:
		return "install"
	case BuildTree:
		return "build"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode returns the Mode whose String is s.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "install", "":
		return InstallTree, nil
	case "build":
		return BuildTree, nil
	}
	return 0, fmt.Errorf("unknown export mode %q, want install or build", s)
}

// A Member is a target added to an export set.
type Member struct {
	Target Target
	// InterfaceIncludeDirectories are the include directories attached when
	// the target was installed, relative to the install prefix unless
	// absolute.
	InterfaceIncludeDirectories string
}

// An ExportSet is a group of targets exported to one file.
type ExportSet struct {
	Name string
	// Namespace is prepended to the export name of every member.
	Namespace string
	Members   []*Member
	// Configurations to emit per-configuration details for.  The empty
	// configuration is used if the list is empty.
	Configurations []string
	Mode           Mode
	// Destination is the path of the generated file.  For InstallTree sets
	// a relative Destination is relative to the install prefix.
	Destination string
	// ExportOld requests that legacy LINK_INTERFACE_LIBRARIES properties
	// are exported even when CMP0022 selects the new behavior.
	ExportOld bool
}

// Member returns the member wrapping the target named name, or nil.
func (s *ExportSet) Member(name string) *Member {
	for _, m := range s.Members {
		if m.Target.Name() == name {
			return m
		}
	}
	return nil
}

// QualifiedName returns the name consumers of s use for t.
func (s *ExportSet) QualifiedName(t Target) string {
	return s.Namespace + t.ExportName()
}

func (s *ExportSet) configurations() []string {
	if len(s.Configurations) == 0 {
		return []string{""}
	}
	return s.Configurations
}

// A MissingTargetHandler supplies the name consumers should use for
// dependee, a target referenced by set but not a member of it.  It returns
// "" if no better name than the target's own is known.
type MissingTargetHandler interface {
	NamespacedName(set *ExportSet, dependee Target) string
}

// ExportSets is every export set of a project.  It resolves references
// between them: a target that is a member of exactly one other set is known
// to consumers under that set's namespace.
type ExportSets []*ExportSet

func (sets ExportSets) NamespacedName(set *ExportSet, dependee Target) string {
	var found *ExportSet
	for _, other := range sets {
		if other == set || other.Member(dependee.Name()) == nil {
			continue
		}
		if found != nil {
			return ""
		}
		found = other
	}
	if found == nil {
		return ""
	}
	return found.QualifiedName(dependee)
}

// Find returns the set named name, or nil.
func (sets ExportSets) Find(name string) *ExportSet {
	for _, s := range sets {
		if s.Name == name {
			return s
		}
	}
	return nil
}

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

// Package proptools defines the closed vocabulary of target properties that
// appear in generated export files.  Keys are fixed names, fixed names
// followed by a configuration suffix, or INTERFACE_<name> for compatible
// interface properties.
package proptools

import (
	"strings"
)

const (
	InterfaceIncludeDirectories       = "INTERFACE_INCLUDE_DIRECTORIES"
	InterfaceSystemIncludeDirectories = "INTERFACE_SYSTEM_INCLUDE_DIRECTORIES"
	InterfaceCompileDefinitions       = "INTERFACE_COMPILE_DEFINITIONS"
	InterfaceCompileOptions           = "INTERFACE_COMPILE_OPTIONS"
	InterfaceAutouicOptions           = "INTERFACE_AUTOUIC_OPTIONS"
	InterfaceLinkLibraries            = "INTERFACE_LINK_LIBRARIES"
	InterfacePositionIndependentCode  = "INTERFACE_POSITION_INDEPENDENT_CODE"

	CompatibleInterfaceBool      = "COMPATIBLE_INTERFACE_BOOL"
	CompatibleInterfaceString    = "COMPATIBLE_INTERFACE_STRING"
	CompatibleInterfaceNumberMin = "COMPATIBLE_INTERFACE_NUMBER_MIN"
	CompatibleInterfaceNumberMax = "COMPATIBLE_INTERFACE_NUMBER_MAX"

	// LinkInterfaceLibraries is the legacy raw property, optionally
	// followed by a configuration suffix.
	LinkInterfaceLibraries = "LINK_INTERFACE_LIBRARIES"
)

// Per-configuration keys; the emitted key is the base followed by
// ConfigSuffix(config).
const (
	ImportedSoname                    = "IMPORTED_SONAME"
	ImportedNoSoname                  = "IMPORTED_NO_SONAME"
	ImportedLinkInterfaceLanguages    = "IMPORTED_LINK_INTERFACE_LANGUAGES"
	ImportedLinkDependentLibraries    = "IMPORTED_LINK_DEPENDENT_LIBRARIES"
	ImportedLinkInterfaceMultiplicity = "IMPORTED_LINK_INTERFACE_MULTIPLICITY"
	ImportedLinkInterfaceLibraries    = "IMPORTED_LINK_INTERFACE_LIBRARIES"
	ImportedLocation                  = "IMPORTED_LOCATION"
	ImportedImplib                    = "IMPORTED_IMPLIB"
)

// InterfaceProperties are copied through preprocessing and target
// resolution, in this order.  INTERFACE_INCLUDE_DIRECTORIES and
// INTERFACE_LINK_LIBRARIES have dedicated handling and are not listed.
var InterfaceProperties = []string{
	InterfaceSystemIncludeDirectories,
	InterfaceCompileDefinitions,
	InterfaceCompileOptions,
	InterfaceAutouicOptions,
}

// CompatibleInterfaceProperties name the lists of property names whose
// values must agree across a link graph.
var CompatibleInterfaceProperties = []string{
	CompatibleInterfaceBool,
	CompatibleInterfaceString,
	CompatibleInterfaceNumberMin,
	CompatibleInterfaceNumberMax,
}

// LocationProperties are the per-configuration keys naming files on disk.
var LocationProperties = []string{
	ImportedLocation,
	ImportedImplib,
}

var configBases = []string{
	ImportedSoname,
	ImportedNoSoname,
	ImportedLinkInterfaceLanguages,
	ImportedLinkDependentLibraries,
	ImportedLinkInterfaceMultiplicity,
	ImportedLinkInterfaceLibraries,
	ImportedLocation,
	ImportedImplib,
}

var fixed = map[string]bool{
	InterfaceIncludeDirectories:       true,
	InterfaceSystemIncludeDirectories: true,
	InterfaceCompileDefinitions:       true,
	InterfaceCompileOptions:           true,
	InterfaceAutouicOptions:           true,
	InterfaceLinkLibraries:            true,
	InterfacePositionIndependentCode:  true,
	CompatibleInterfaceBool:           true,
	CompatibleInterfaceString:         true,
	CompatibleInterfaceNumberMin:      true,
	CompatibleInterfaceNumberMax:      true,
}

// ConfigName returns the upper-cased configuration name used in
// IMPORTED_CONFIGURATIONS, or NOCONFIG for the empty configuration.
func ConfigName(config string) string {
	if config == "" {
		return "NOCONFIG"
	}
	return strings.ToUpper(config)
}

// ConfigSuffix returns the suffix appended to per-configuration keys.
func ConfigSuffix(config string) string {
	return "_" + ConfigName(config)
}

// CompatibleInterfaceKey returns the key exporting the value of the
// compatible interface property name.
func CompatibleInterfaceKey(name string) string {
	return "INTERFACE_" + name
}

// IsKnown reports whether key belongs to the vocabulary.
func IsKnown(key string) bool {
	if fixed[key] {
		return true
	}
	if rest := strings.TrimPrefix(key, "INTERFACE_"); rest != key {
		return rest != ""
	}
	for _, base := range configBases {
		if rest := strings.TrimPrefix(key, base+"_"); rest != key {
			return rest != "" && rest == strings.ToUpper(rest)
		}
	}
	return false
}

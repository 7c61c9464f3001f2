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

	"github.com/google/cmexport/pathtools"
	"github.com/google/cmexport/proptools"
)

const versionGuard = `if("${CMAKE_MAJOR_VERSION}.${CMAKE_MINOR_VERSION}" LESS 2.5)
   message(FATAL_ERROR "CMake >= 2.6.0 required")
endif()
cmake_policy(PUSH)
cmake_policy(VERSION 2.6)
`

const importHeader = `#----------------------------------------------------------------
# Generated CMake target import file.
#----------------------------------------------------------------

# Commands may need to know the format version.
set(CMAKE_IMPORT_FILE_VERSION 1)

`

const importFooter = `# Commands beyond this point should not need to know the version.
set(CMAKE_IMPORT_FILE_VERSION)
cmake_policy(POP)
`

const expectedTargetsPrologue = `# Protect against multiple inclusion, which would fail when already imported targets are added once more.
set(_targetsDefined)
set(_targetsNotDefined)
set(_expectedTargets)
foreach(_expectedTarget `

const expectedTargetsEpilogue = `)
  list(APPEND _expectedTargets ${_expectedTarget})
  if(NOT TARGET ${_expectedTarget})
    list(APPEND _targetsNotDefined ${_expectedTarget})
  endif()
  if(TARGET ${_expectedTarget})
    list(APPEND _targetsDefined ${_expectedTarget})
  endif()
endforeach()
if("${_targetsDefined}" STREQUAL "${_expectedTargets}")
  set(CMAKE_IMPORT_FILE_VERSION)
  cmake_policy(POP)
  return()
endif()
if(NOT "${_targetsDefined}" STREQUAL "")
  message(FATAL_ERROR "Some (but not all) targets in this export set were already defined.\nTargets Defined: ${_targetsDefined}\nTargets not yet defined: ${_targetsNotDefined}\n")
endif()
unset(_targetsDefined)
unset(_targetsNotDefined)
unset(_expectedTargets)


`

const noMissingTargets = `# This file does not depend on other imported targets which have
# been exported from the same project but in a separate export set.

`

const missingTargetsPrologue = `# Make sure the targets which have been exported in some other 
# export set exist.
unset(${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets)
foreach(_target `

const missingTargetsEpilogue = `)
  if(NOT TARGET "${_target}" )
    set(${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets "${${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets} ${_target}")
  endif()
endforeach()

if(DEFINED ${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets)
  if(CMAKE_FIND_PACKAGE_NAME)
    set( ${CMAKE_FIND_PACKAGE_NAME}_FOUND FALSE)
    set( ${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE "The following imported targets are referenced, but are missing: ${${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets}")
  else()
    message(FATAL_ERROR "The following imported targets are referenced, but are missing: ${${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets}")
  endif()
endif()
unset(${CMAKE_FIND_PACKAGE_NAME}_NOT_FOUND_MESSAGE_targets)

`

const importedFileCheckLoop = `# Loop over all imported files and verify that they actually exist
foreach(target ${_IMPORT_CHECK_TARGETS} )
  foreach(file ${_IMPORT_CHECK_FILES_FOR_${target}} )
    if(NOT EXISTS "${file}" )
      message(FATAL_ERROR "The imported target \"${target}\" references the file
   \"${file}\"
but this file does not exist.  Possible reasons include:
* The file was deleted, renamed, or moved to another location.
* An install or uninstall procedure did not complete successfully.
* The installation package was faulty and contained
   \"${CMAKE_CURRENT_LIST_FILE}\"
but not all the files it references.
")
    endif()
  endforeach()
  unset(_IMPORT_CHECK_FILES_FOR_${target})
endforeach()
unset(_IMPORT_CHECK_TARGETS)

`

var createCommands = map[TargetKind][]string{
	Executable:       {"add_executable", "IMPORTED"},
	StaticLibrary:    {"add_library", "STATIC", "IMPORTED"},
	SharedLibrary:    {"add_library", "SHARED", "IMPORTED"},
	ModuleLibrary:    {"add_library", "MODULE", "IMPORTED"},
	UnknownLibrary:   {"add_library", "UNKNOWN", "IMPORTED"},
	InterfaceLibrary: {"add_library", "INTERFACE", "IMPORTED"},
}

// emit writes the import file for the exported targets.
func (p *pass) emit(w *scriptWriter, exports []*targetExport) error {
	version := p.ToolVersion
	if version == "" {
		version = DefaultToolVersion
	}
	if err := w.Comment("Generated by CMake " + version); err != nil {
		return err
	}
	if err := w.BlankLine(); err != nil {
		return err
	}
	if err := w.Verbatim(versionGuard + importHeader); err != nil {
		return err
	}

	switch {
	case p.requireInterfaceLibraries:
		err := p.emitRequiredVersion(w, "3.0.0")
		if err != nil {
			return err
		}
	case p.requireLinkLibraries:
		err := p.emitRequiredVersion(w, "2.8.12")
		if err != nil {
			return err
		}
	}

	names := make([]string, len(exports))
	for i, te := range exports {
		names[i] = te.name
	}
	err := w.Verbatim(expectedTargetsPrologue + strings.Join(names, " ") + expectedTargetsEpilogue)
	if err != nil {
		return err
	}

	if p.set.Mode == InstallTree {
		if err := p.emitImportPrefix(w); err != nil {
			return err
		}
	}

	for _, te := range exports {
		if err := p.emitTarget(w, te); err != nil {
			return err
		}
	}

	for _, config := range p.set.configurations() {
		for _, te := range exports {
			for _, ce := range te.configs {
				if ce.config != config {
					continue
				}
				if err := p.emitConfig(w, te, ce); err != nil {
					return err
				}
			}
		}
	}

	if p.set.Mode == InstallTree {
		err := w.Verbatim("# Cleanup temporary variables.\nset(_IMPORT_PREFIX)\n\n")
		if err != nil {
			return err
		}
	}

	if err := p.emitMissingTargetsCheck(w); err != nil {
		return err
	}
	if err := w.Verbatim(importedFileCheckLoop); err != nil {
		return err
	}
	return w.Verbatim(importFooter)
}

func (p *pass) emitRequiredVersion(w *scriptWriter, version string) error {
	return w.Verbatim("if(CMAKE_VERSION VERSION_LESS " + version + ")\n" +
		"  message(FATAL_ERROR \"This file relies on consumers using CMake " +
		version + " or greater.\")\n" +
		"endif()\n\n")
}

// emitImportPrefix computes the install prefix from the location of the
// import file, so that installations can be relocated.
func (p *pass) emitImportPrefix(w *scriptWriter) error {
	if pathtools.IsFullPath(p.set.Destination) {
		if err := w.Comment("The installation prefix configured by this project."); err != nil {
			return err
		}
		if err := w.Command("set", "_IMPORT_PREFIX", quote(p.Model.InstallPrefix())); err != nil {
			return err
		}
		return w.BlankLine()
	}

	if err := w.Comment("Compute the installation prefix relative to this file."); err != nil {
		return err
	}
	err := w.Command("get_filename_component", "_IMPORT_PREFIX", `"${CMAKE_CURRENT_LIST_FILE}"`, "PATH")
	if err != nil {
		return err
	}
	for i := 0; i < pathtools.DirDepth(p.set.Destination); i++ {
		err := w.Command("get_filename_component", "_IMPORT_PREFIX", `"${_IMPORT_PREFIX}"`, "PATH")
		if err != nil {
			return err
		}
	}
	return w.BlankLine()
}

func (p *pass) emitTarget(w *scriptWriter, te *targetExport) error {
	t := te.member.Target
	if err := w.Comment("Create imported target " + te.name); err != nil {
		return err
	}
	create := createCommands[t.Kind()]
	args := append([]string{te.name}, create[1:]...)
	if err := w.Command(create[0], args...); err != nil {
		return err
	}

	for _, flag := range []struct {
		set      bool
		property string
	}{
		{t.Kind() == Executable && t.HasExports(), "ENABLE_EXPORTS"},
		{t.IsFramework(), "FRAMEWORK"},
		{t.IsAppBundle(), "MACOSX_BUNDLE"},
		{t.IsBundle(), "BUNDLE"},
	} {
		if !flag.set {
			continue
		}
		if err := w.SetProperty(te.name, flag.property, "1"); err != nil {
			return err
		}
	}
	if err := w.BlankLine(); err != nil {
		return err
	}

	if len(te.properties) == 0 {
		return nil
	}
	if err := w.SetTargetProperties(te.name, te.properties, false); err != nil {
		return err
	}
	return w.BlankLine()
}

func (p *pass) emitConfig(w *scriptWriter, te *targetExport, ce *configExport) error {
	if len(ce.properties) == 0 {
		return nil
	}
	err := w.Comment("Import target \"" + te.name + "\" for configuration \"" + ce.config + "\"")
	if err != nil {
		return err
	}
	err = w.Command("set_property", "TARGET", te.name, "APPEND", "PROPERTY",
		"IMPORTED_CONFIGURATIONS", proptools.ConfigName(ce.config))
	if err != nil {
		return err
	}
	if err := w.SetTargetProperties(te.name, ce.properties, true); err != nil {
		return err
	}
	if err := w.BlankLine(); err != nil {
		return err
	}

	if len(ce.files) == 0 {
		return nil
	}
	if err := w.Command("list", "APPEND", "_IMPORT_CHECK_TARGETS", te.name, ""); err != nil {
		return err
	}
	args := []string{"APPEND", "_IMPORT_CHECK_FILES_FOR_" + te.name}
	for _, f := range ce.files {
		args = append(args, quote(f))
	}
	if err := w.Command("list", append(args, "")...); err != nil {
		return err
	}
	return w.BlankLine()
}

func (p *pass) emitMissingTargetsCheck(w *scriptWriter) error {
	if p.missing.Len() == 0 {
		return w.Verbatim(noMissingTargets)
	}
	b := &strings.Builder{}
	for _, name := range p.missing.Names() {
		b.WriteString(quote(name) + " ")
	}
	return w.Verbatim(missingTargetsPrologue + b.String() + missingTargetsEpilogue)
}

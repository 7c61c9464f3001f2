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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/cmexport/policy"
	"github.com/google/cmexport/proptools"
)

func newPolicies(t *testing.T, statuses map[policy.ID]policy.Status) policy.Table {
	t.Helper()
	table, err := policy.NewTable(statuses)
	require.NoError(t, err)
	return table
}

func TestGenerateSingleStaticLibrary(t *testing.T) {
	m := newFakeModel(&fakeTarget{
		name: "core",
		kind: StaticLibrary,
		props: map[string]string{
			proptools.InterfaceIncludeDirectories: "/abs/include",
		},
	})
	g := &Generator{Model: m}

	res, err := g.Generate(exportSet(m, "core"))
	require.NoError(t, err)

	want := "# Generated by CMake " + DefaultToolVersion + "\n\n" +
		versionGuard + importHeader +
		expectedTargetsPrologue + "Pkg::core" + expectedTargetsEpilogue +
		"# Compute the installation prefix relative to this file.\n" +
		"get_filename_component(_IMPORT_PREFIX \"${CMAKE_CURRENT_LIST_FILE}\" PATH)\n" +
		"get_filename_component(_IMPORT_PREFIX \"${_IMPORT_PREFIX}\" PATH)\n" +
		"get_filename_component(_IMPORT_PREFIX \"${_IMPORT_PREFIX}\" PATH)\n" +
		"get_filename_component(_IMPORT_PREFIX \"${_IMPORT_PREFIX}\" PATH)\n" +
		"\n" +
		"# Create imported target Pkg::core\n" +
		"add_library(Pkg::core STATIC IMPORTED)\n" +
		"\n" +
		"set_target_properties(Pkg::core PROPERTIES\n" +
		"  INTERFACE_INCLUDE_DIRECTORIES \"/abs/include\"\n" +
		")\n" +
		"\n" +
		"# Cleanup temporary variables.\n" +
		"set(_IMPORT_PREFIX)\n" +
		"\n" +
		noMissingTargets +
		importedFileCheckLoop +
		importFooter

	if diff := cmp.Diff(want, string(res.Script)); diff != "" {
		t.Errorf("script mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, res.MissingTargets)
	assert.Empty(t, res.Warnings)
}

func TestGenerateIsDeterministic(t *testing.T) {
	m := newFakeModel(&fakeTarget{
		name: "core",
		kind: SharedLibrary,
		props: map[string]string{
			proptools.InterfaceCompileDefinitions: "B;A",
			proptools.InterfaceCompileOptions:     "-Wall",
			proptools.InterfaceIncludeDirectories: "/abs/include",
		},
		sonames: map[string]string{"": "libcore.so"},
	})
	g := &Generator{Model: m}
	first, err := g.Generate(exportSet(m, "core"))
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := g.Generate(exportSet(m, "core"))
		require.NoError(t, err)
		assert.Equal(t, string(first.Script), string(again.Script))
	}
}

func TestGenerateMissingTargets(t *testing.T) {
	m := newFakeModel(
		&fakeTarget{
			name: "core",
			kind: StaticLibrary,
			props: map[string]string{
				proptools.InterfaceLinkLibraries:  "ext;m",
				proptools.InterfaceCompileOptions: "$<TARGET_PROPERTY:ext,INTERFACE_COMPILE_OPTIONS>",
			},
		},
		&fakeTarget{name: "ext", kind: StaticLibrary},
	)
	g := &Generator{
		Model:    m,
		Policies: newPolicies(t, map[policy.ID]policy.Status{policy.CMP0022: policy.New}),
	}

	res, err := g.Generate(exportSet(m, "core"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ext"}, res.MissingTargets)

	script := string(res.Script)
	assert.Contains(t, script, "  INTERFACE_LINK_LIBRARIES \"ext;m\"\n")
	assert.Contains(t, script, missingTargetsPrologue+"\"ext\" "+missingTargetsEpilogue)
	assert.Equal(t, 1, strings.Count(script, "foreach(_target "))
	assert.Contains(t, script, "if(CMAKE_VERSION VERSION_LESS 2.8.12)\n")
	assert.NotContains(t, script, noMissingTargets)
}

func TestGenerateSonamePerConfiguration(t *testing.T) {
	m := newFakeModel(&fakeTarget{
		name:    "core",
		kind:    SharedLibrary,
		sonames: map[string]string{"RELEASE": "libcore.so.1"},
		artifacts: map[string]Artifacts{
			"DEBUG":   {Location: "lib/libcore_d.so"},
			"RELEASE": {Location: "lib/libcore.so.1.0"},
		},
	})
	set := exportSet(m, "core")
	set.Configurations = []string{"Debug", "Release"}
	g := &Generator{Model: m}

	res, err := g.Generate(set)
	require.NoError(t, err)
	script := string(res.Script)

	assert.Contains(t, script, "# Import target \"Pkg::core\" for configuration \"Debug\"\n"+
		"set_property(TARGET Pkg::core APPEND PROPERTY IMPORTED_CONFIGURATIONS DEBUG)\n"+
		"set_target_properties(Pkg::core PROPERTIES\n"+
		"  IMPORTED_LOCATION_DEBUG \"${_IMPORT_PREFIX}/lib/libcore_d.so\"\n"+
		"  IMPORTED_NO_SONAME_DEBUG \"TRUE\"\n"+
		"  )\n"+
		"\n"+
		"list(APPEND _IMPORT_CHECK_TARGETS Pkg::core )\n"+
		"list(APPEND _IMPORT_CHECK_FILES_FOR_Pkg::core \"${_IMPORT_PREFIX}/lib/libcore_d.so\" )\n"+
		"\n")
	assert.Contains(t, script, "  IMPORTED_SONAME_RELEASE \"libcore.so.1\"\n")
	assert.NotContains(t, script, "IMPORTED_SONAME_DEBUG")
	assert.NotContains(t, script, "IMPORTED_NO_SONAME_RELEASE")
	assert.Less(t, strings.Index(script, "_DEBUG"), strings.Index(script, "_RELEASE"))
}

func TestGenerateInterfaceLibrary(t *testing.T) {
	m := newFakeModel(
		&fakeTarget{
			name: "headers",
			kind: InterfaceLibrary,
			props: map[string]string{
				proptools.InterfaceCompileDefinitions: "",
			},
		},
		&fakeTarget{
			name:    "tool",
			kind:    Executable,
			exports: true,
			bundle:  true,
		},
	)
	g := &Generator{Model: m, ToolVersion: "3.0.0"}

	res, err := g.Generate(exportSet(m, "headers", "tool"))
	require.NoError(t, err)
	script := string(res.Script)

	assert.True(t, strings.HasPrefix(script, "# Generated by CMake 3.0.0\n\n"))
	assert.Contains(t, script, "if(CMAKE_VERSION VERSION_LESS 3.0.0)\n")
	assert.Contains(t, script, "foreach(_expectedTarget Pkg::headers Pkg::tool)\n")
	assert.Contains(t, script, "add_library(Pkg::headers INTERFACE IMPORTED)\n")
	assert.Contains(t, script, "  INTERFACE_COMPILE_DEFINITIONS \"\"\n")
	assert.Contains(t, script, "add_executable(Pkg::tool IMPORTED)\n"+
		"set_property(TARGET Pkg::tool PROPERTY ENABLE_EXPORTS 1)\n"+
		"set_property(TARGET Pkg::tool PROPERTY BUNDLE 1)\n\n")
	assert.NotContains(t, script, "IMPORTED_CONFIGURATIONS")
	assert.Less(t, strings.Index(script, "_expectedTargets"), strings.Index(script, "add_library"),
		"the inclusion guard must come before any target is created")
}

func TestGenerateAbsoluteDestination(t *testing.T) {
	m := newFakeModel(&fakeTarget{name: "core", kind: StaticLibrary})
	set := exportSet(m, "core")
	set.Destination = "/usr/local/lib/cmake/Pkg/PkgTargets.cmake"

	res, err := (&Generator{Model: m}).Generate(set)
	require.NoError(t, err)
	assert.Contains(t, string(res.Script),
		"# The installation prefix configured by this project.\n"+
			"set(_IMPORT_PREFIX \"/usr/local\")\n\n")
}

func TestGenerateBuildTree(t *testing.T) {
	m := newFakeModel(&fakeTarget{
		name: "core",
		kind: StaticLibrary,
		props: map[string]string{
			proptools.InterfaceIncludeDirectories: "$<BUILD_INTERFACE:/src/include>;$<INSTALL_INTERFACE:include>",
		},
		artifacts: map[string]Artifacts{"": {Location: "libcore.a"}},
	})
	set := exportSet(m, "core")
	set.Mode = BuildTree
	set.Destination = "/src/build/PkgTargets.cmake"

	res, err := (&Generator{Model: m}).Generate(set)
	require.NoError(t, err)
	script := string(res.Script)

	assert.Contains(t, script, "  INTERFACE_INCLUDE_DIRECTORIES \"/src/include\"\n")
	assert.Contains(t, script, "  IMPORTED_LOCATION_NOCONFIG \"/src/build/libcore.a\"\n")
	assert.NotContains(t, script, "_IMPORT_PREFIX \"")
	assert.NotContains(t, script, "set(_IMPORT_PREFIX)")
}

func TestGenerateFatalErrors(t *testing.T) {
	testCases := []struct {
		name   string
		target *fakeTarget
		want   error
	}{
		{
			name: "unreachable target name",
			target: &fakeTarget{name: "core", kind: StaticLibrary, props: map[string]string{
				proptools.InterfaceCompileDefinitions: "$<TARGET_NAME:nothing>",
			}},
			want: ErrUnreachableTarget,
		},
		{
			name: "non-literal target name",
			target: &fakeTarget{name: "core", kind: StaticLibrary, props: map[string]string{
				proptools.InterfaceCompileOptions: "$<TARGET_NAME:$<1:core>>",
			}},
			want: ErrNonLiteralArgument,
		},
		{
			name:   "unknown linker language",
			target: &fakeTarget{name: "core", kind: StaticLibrary, noLinker: true},
			want:   ErrUnlinkableTarget,
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			m := newFakeModel(testCase.target)
			res, err := (&Generator{Model: m}).Generate(exportSet(m, "core"))
			assert.Nil(t, res)
			require.ErrorIs(t, err, testCase.want)

			var e *Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, "core", e.Target)
		})
	}
}

func TestGenerateIncompleteExpressionWarns(t *testing.T) {
	m := newFakeModel(&fakeTarget{name: "core", kind: StaticLibrary, props: map[string]string{
		proptools.InterfaceCompileDefinitions: "A;$<TARGET_NAME:core",
	}})
	res, err := (&Generator{Model: m}).Generate(exportSet(m, "core"))
	require.NoError(t, err)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "INTERFACE_COMPILE_DEFINITIONS")
	assert.Contains(t, string(res.Script), `  INTERFACE_COMPILE_DEFINITIONS "A;\$<TARGET_NAME:core"`)
}

func TestGenerateIncompleteIncludeDestinationWarns(t *testing.T) {
	m := newFakeModel(&fakeTarget{name: "core", kind: StaticLibrary})
	set := exportSet(m, "core")
	set.Members[0].InterfaceIncludeDirectories = "include/$<foo"

	res, err := (&Generator{Model: m}).Generate(set)
	require.NoError(t, err)
	require.NotEmpty(t, res.Warnings)
	assert.Contains(t, res.Warnings[0], "INTERFACE_INCLUDE_DIRECTORIES")
	assert.Contains(t, res.Warnings[0], "expression incomplete")
	assert.Contains(t, string(res.Script), `  INTERFACE_INCLUDE_DIRECTORIES "${_IMPORT_PREFIX}/include/\$<foo"`)
}

func TestGenerateUnknownIncludeDestinationExpression(t *testing.T) {
	m := newFakeModel(&fakeTarget{name: "core", kind: StaticLibrary})
	set := exportSet(m, "core")
	set.Members[0].InterfaceIncludeDirectories = "include;$<LOWER_CASE:GEN>;$<SHELL_PATH:/opt/inc>"

	res, err := (&Generator{Model: m}).Generate(set)
	require.NoError(t, err)
	assert.Empty(t, res.Warnings)
	assert.Contains(t, string(res.Script),
		`  INTERFACE_INCLUDE_DIRECTORIES "${_IMPORT_PREFIX}/include;${_IMPORT_PREFIX}/gen;${_IMPORT_PREFIX}/\$<SHELL_PATH:/opt/inc>"`)
}

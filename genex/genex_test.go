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

package genex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit(t *testing.T) {
	testCases := []struct {
		input string
		want  []string
	}{
		{"", nil},
		{"a;b;;c", []string{"a", "b", "c"}},
		{"a;$<$<CONFIG:Debug>:x;y>;b", []string{"a", "$<$<CONFIG:Debug>:x;y>", "b"}},
		{"pre$<1:x>post;z", []string{"pre$<1:x>post", "z"}},
		{`a\;b;c`, []string{`a\;b`, "c"}},
		{"a;$<1:open;b", []string{"a", "$<1:open;b"}},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.want, Split(testCase.input), "Split(%q)", testCase.input)
	}
}

func TestFind(t *testing.T) {
	assert.Equal(t, -1, Find("plain"))
	assert.Equal(t, 0, Find("$<1:a>"))
	assert.Equal(t, 3, Find("abc$<1:a>"))
}

func TestExpandList(t *testing.T) {
	assert.Equal(t, []string{"FOO", "BAR"}, ExpandList("FOO;;BAR;"))
	assert.Equal(t, []string{"a;b", "c"}, ExpandList(`a\;b;c`))
	assert.Nil(t, ExpandList(""))
}

func TestStripEmptyListElements(t *testing.T) {
	testCases := map[string]string{
		"":          "",
		";":         "",
		"a;;b":      "a;b",
		";a;b;":     "a;b",
		";;a;;;b;;": "a;b",
		"a":         "a",
	}
	for input, want := range testCases {
		assert.Equal(t, want, StripEmptyListElements(input), "StripEmptyListElements(%q)", input)
	}
}

var preprocessTestCases = []struct {
	input           string
	rule            Rule
	resolveRelative bool
	want            string
	incomplete      bool
}{
	{
		input: "/abs/include",
		rule:  InstallInterface,
		want:  "/abs/include",
	},
	{
		input: "$<BUILD_INTERFACE:/src/include>;$<INSTALL_INTERFACE:include>",
		rule:  InstallInterface,
		want:  "include",
	},
	{
		input:           "$<BUILD_INTERFACE:/src/include>;$<INSTALL_INTERFACE:include>",
		rule:            InstallInterface,
		resolveRelative: true,
		want:            "${_IMPORT_PREFIX}/include",
	},
	{
		input:           "$<INSTALL_INTERFACE:/opt/inc;rel;$<1:gen>>",
		rule:            InstallInterface,
		resolveRelative: true,
		want:            "/opt/inc;${_IMPORT_PREFIX}/rel;$<1:gen>",
	},
	{
		input: "$<BUILD_INTERFACE:/src/include>;$<INSTALL_INTERFACE:include>",
		rule:  BuildInterface,
		want:  "/src/include",
	},
	{
		input: "a;$<$<CONFIG:Debug>:dbg>;b",
		rule:  StripAll,
		want:  "a;b",
	},
	{
		input: "$<$<CONFIG:Debug>:$<BUILD_INTERFACE:x>>",
		rule:  InstallInterface,
		want:  "$<$<CONFIG:Debug>:>",
	},
	{
		input:      "keep;$<INSTALL_INTERFACE:open",
		rule:       InstallInterface,
		want:       "keep;$<INSTALL_INTERFACE:open",
		incomplete: true,
	},
	{
		input: "",
		rule:  InstallInterface,
		want:  "",
	},
}

func TestPreprocess(t *testing.T) {
	for _, testCase := range preprocessTestCases {
		t.Run(testCase.rule.String()+"/"+testCase.input, func(t *testing.T) {
			got, err := Preprocess(testCase.input, testCase.rule, testCase.resolveRelative)
			if testCase.incomplete {
				require.ErrorIs(t, err, ErrIncomplete)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, testCase.want, got)
		})
	}
}

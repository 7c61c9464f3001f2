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

var parseTestCases = []struct {
	input      string
	names      []string
	incomplete bool
}{
	{
		input: "plain;list",
		names: nil,
	},
	{
		input: "$<TARGET_NAME:foo>",
		names: []string{"TARGET_NAME"},
	},
	{
		input: "pre$<TARGET_PROPERTY:foo,INTERFACE_X>post",
		names: []string{"TARGET_PROPERTY"},
	},
	{
		input: "$<$<CONFIG:Debug>:$<TARGET_NAME:foo>>",
		names: []string{"", "CONFIG", "TARGET_NAME"},
	},
	{
		input: "$<TARGET_NAME:Pkg::foo>",
		names: []string{"TARGET_NAME"},
	},
	{
		input: "cost $5 > 3, a:b",
		names: nil,
	},
	{
		input:      "$<TARGET_NAME:foo",
		names:      []string{"TARGET_NAME"},
		incomplete: true,
	},
	{
		input:      "a;$<1:$<BOOL:x>;b",
		names:      []string{"1", "BOOL"},
		incomplete: true,
	},
	{
		input:      "trailing $",
		names:      nil,
		incomplete: false,
	},
	{
		input:      "$<",
		names:      []string{""},
		incomplete: true,
	},
	{
		input: "$<>",
		names: []string{""},
	},
}

func TestParse(t *testing.T) {
	for _, testCase := range parseTestCases {
		t.Run(testCase.input, func(t *testing.T) {
			frags, err := Parse(testCase.input)
			if testCase.incomplete {
				require.ErrorIs(t, err, ErrIncomplete)
			} else {
				require.NoError(t, err)
			}

			assert.Equal(t, testCase.input, frags.String(), "round trip")

			var names []string
			frags.Walk(func(c *Construct) {
				names = append(names, c.Identifier())
			})
			assert.Equal(t, testCase.names, names)
		})
	}
}

func TestParseArgs(t *testing.T) {
	frags, err := Parse("$<TARGET_PROPERTY:ns::foo,INTERFACE_X>")
	require.NoError(t, err)
	require.Len(t, frags, 1)

	c, ok := frags[0].(*Construct)
	require.True(t, ok)
	assert.True(t, c.Closed)
	assert.True(t, c.HasArgs)
	require.Len(t, c.Args, 2)

	name, ok := c.Args[0].Literal()
	assert.True(t, ok)
	assert.Equal(t, "ns::foo", name)
	assert.Equal(t, "ns::foo,INTERFACE_X", c.Content())
}

func TestRewrite(t *testing.T) {
	frags, err := Parse("a$<X:$<Y:1>,$<X:2>>b")
	require.NoError(t, err)

	var visited []string
	out, err := frags.Rewrite(func(c *Construct) (Fragment, error) {
		visited = append(visited, c.Identifier())
		if c.Identifier() == "Y" {
			return Text("y"), nil
		}
		if c.Identifier() == "X" && c.Content() == "2" {
			return nil, nil
		}
		return c, nil
	})
	require.NoError(t, err)

	assert.Equal(t, "a$<X:y,>b", out.String())
	assert.Equal(t, []string{"X", "Y", "X"}, visited)
	assert.Equal(t, "a$<X:$<Y:1>,$<X:2>>b", frags.String(), "input must not change")
}

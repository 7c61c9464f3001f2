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

func TestEvaluate(t *testing.T) {
	testCases := []struct {
		input     string
		want      string
		sensitive bool
		wantErr   bool
	}{
		{input: "include", want: "include"},
		{input: "$<1:a,b>", want: "a,b"},
		{input: "$<0:$<CONFIG>>", want: ""},
		{input: "$<$<BOOL:ON>:on>$<$<BOOL:x-NOTFOUND>:off>", want: "on"},
		{input: "$<$<AND:1,$<NOT:0>>:yes>", want: "yes"},
		{input: "$<$<OR:0,0>:no>", want: ""},
		{input: "$<$<STREQUAL:a,a>:eq>", want: "eq"},
		{input: "a$<SEMICOLON>b$<COMMA>c$<ANGLE-R>", want: "a;b,c>"},
		{input: "$<$<CONFIG:Debug>:dbg>", want: "", sensitive: true},
		{input: "$<TARGET_PROPERTY:foo,BAR>", want: "", sensitive: true},
		{input: "$<INSTALL_INTERFACE:inc>", want: "inc"},
		{input: "$<IF:1,a,b>$<IF:$<BOOL:OFF>,c,d>", want: "ad"},
		{input: "$<LOWER_CASE:INC>/$<UPPER_CASE:gen>", want: "inc/GEN"},
		{input: "$<JOIN:a;b;c,/x;>", want: "a/x;b/x;c"},
		{input: "inc/$<TARGET_NAME:core>", want: "inc/$<TARGET_NAME:core>"},
		{input: "$<NOPE:$<1:x>,y>", want: "$<NOPE:$<1:x>,y>"},
		{input: "$<NOPE:$<CONFIG>>", want: "$<NOPE:$<CONFIG>>", sensitive: true},
		{input: "include/$<foo", want: "include/$<foo"},
		{input: "a;$<1:open", want: "a;$<1:open"},
		{input: "$<IF:1,a>", wantErr: true},
	}

	for _, testCase := range testCases {
		t.Run(testCase.input, func(t *testing.T) {
			res, err := Evaluate(testCase.input, Context{})
			if testCase.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, testCase.want, res.Value)
			assert.Equal(t, testCase.sensitive, res.ContextSensitive)
		})
	}
}

func TestEvaluateBadCondition(t *testing.T) {
	_, err := Evaluate("$<NOT:maybe>", Context{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a boolean")
}

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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTargetKind(t *testing.T) {
	for _, k := range []TargetKind{Executable, StaticLibrary, SharedLibrary,
		ModuleLibrary, UnknownLibrary, InterfaceLibrary} {

		got, err := ParseTargetKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}

	got, err := ParseTargetKind("SHARED")
	require.NoError(t, err)
	assert.Equal(t, SharedLibrary, got)

	_, err = ParseTargetKind("object")
	assert.Error(t, err)

	assert.False(t, Executable.IsLibrary())
	assert.True(t, InterfaceLibrary.IsLibrary())
	assert.Equal(t, "TargetKind(42)", TargetKind(42).String())
}

func TestParseMode(t *testing.T) {
	testCases := []struct {
		in   string
		want Mode
	}{
		{"", InstallTree},
		{"install", InstallTree},
		{"Build", BuildTree},
	}
	for _, testCase := range testCases {
		got, err := ParseMode(testCase.in)
		require.NoError(t, err, testCase.in)
		assert.Equal(t, testCase.want, got, testCase.in)
	}

	_, err := ParseMode("staging")
	assert.Error(t, err)
}

func TestError(t *testing.T) {
	tgt := &fakeTarget{name: "core"}

	err := targetError(tgt, "INTERFACE_COMPILE_OPTIONS", ErrUnreachableTarget)
	assert.Equal(t, `target "core": INTERFACE_COMPILE_OPTIONS: `+ErrUnreachableTarget.Error(), err.Error())
	assert.ErrorIs(t, err, ErrUnreachableTarget)

	// An Error is not wrapped a second time.
	assert.Same(t, err, targetError(&fakeTarget{name: "other"}, "", err))

	err = targetError(tgt, "", errors.New("boom"))
	assert.Equal(t, `target "core": boom`, err.Error())

	assert.NoError(t, targetError(tgt, "", nil))
}

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

package policy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []Status{Old, Warn, New, RequiredIfUsed, RequiredAlways} {
		got, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}

	got, err := ParseStatus("new")
	require.NoError(t, err)
	assert.Equal(t, New, got)

	_, err = ParseStatus("LATER")
	assert.Error(t, err)
}

func TestIsNew(t *testing.T) {
	assert.False(t, Old.IsNew())
	assert.False(t, Warn.IsNew())
	assert.True(t, New.IsNew())
	assert.True(t, RequiredIfUsed.IsNew())
	assert.True(t, RequiredAlways.IsNew())
}

func TestTable(t *testing.T) {
	var zero Table
	assert.Equal(t, Warn, zero.Status(CMP0022))

	statuses := map[ID]Status{CMP0022: New}
	table, err := NewTable(statuses)
	require.NoError(t, err)

	statuses[CMP0022] = Old
	assert.Equal(t, New, table.Status(CMP0022), "table must not alias its input")
	assert.Equal(t, Warn, table.Status(CMP0041))
	assert.Equal(t, "CMP0022=NEW", table.String())

	_, err = NewTable(map[ID]Status{"CMP9999": New})
	assert.Error(t, err)
}

func TestWarning(t *testing.T) {
	assert.Contains(t, Warning(CMP0041), "Policy CMP0041 is not set")
}

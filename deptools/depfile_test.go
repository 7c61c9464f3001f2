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

package deptools

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/google/cmexport/pathtools"
)

func TestWriteDepFile(t *testing.T) {
	fs := pathtools.MockFs(nil)

	err := WriteDepFile(fs, "out/PkgTargets.cmake.d", "out/PkgTargets.cmake",
		[]string{"project.hcl", "my dir/extra.hcl"})
	require.NoError(t, err)

	data, err := fs.ReadFile("out/PkgTargets.cmake.d")
	require.NoError(t, err)
	assert.Equal(t, "out/PkgTargets.cmake: \\\n project.hcl \\\n my\\ dir/extra.hcl\n", string(data))
}

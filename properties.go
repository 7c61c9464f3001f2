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
	"sort"

	"github.com/google/cmexport/proptools"
)

// A PropertyMap holds the resolved properties of one target, either its
// configuration independent interface or its details for one
// configuration.
type PropertyMap map[string]string

// Set stores value under key.  Keys outside the import vocabulary are a
// programming error.
func (m PropertyMap) Set(key, value string) {
	if !proptools.IsKnown(key) {
		panic(fmt.Errorf("unknown import property %q", key))
	}
	m[key] = value
}

// Keys returns the keys of m in the order they are emitted.
func (m PropertyMap) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

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

// MissingTargets records, in order of first reference, the targets that an
// export set depends on but does not contain.  The generated script checks
// that they exist when it is loaded.
type MissingTargets struct {
	names []string
	seen  map[string]bool
}

// Add records name unless it is already recorded.  It reports whether name
// was new.
func (m *MissingTargets) Add(name string) bool {
	if m.seen[name] {
		return false
	}
	if m.seen == nil {
		m.seen = make(map[string]bool)
	}
	m.seen[name] = true
	m.names = append(m.names, name)
	return true
}

func (m *MissingTargets) Len() int {
	return len(m.names)
}

// Names returns the recorded names in order of first reference.
func (m *MissingTargets) Names() []string {
	return append([]string(nil), m.names...)
}

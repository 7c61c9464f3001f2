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

// Package policy holds the versioned behavior switches consulted while
// generating export files.  A Table is built once per generation pass and
// never modified afterwards, so it may be shared between generators running
// concurrently.
package policy

import (
	"fmt"
	"sort"
	"strings"
)

// Status selects legacy or new behavior for one policy.
type Status int

const (
	// Old keeps the legacy behavior silently.
	Old Status = iota
	// Warn keeps the legacy behavior and reports a warning.
	Warn
	// New enforces the new behavior.
	New
	// RequiredIfUsed enforces the new behavior.
	RequiredIfUsed
	// RequiredAlways enforces the new behavior.
	RequiredAlways
)

var statusNames = []string{"OLD", "WARN", "NEW", "REQUIRED_IF_USED", "REQUIRED_ALWAYS"}

func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("Status(%d)", int(s))
	}
	return statusNames[s]
}

// IsNew reports whether s enforces the new behavior.
func (s Status) IsNew() bool {
	return s != Old && s != Warn
}

// ParseStatus parses a status name, case insensitively.
func ParseStatus(s string) (Status, error) {
	for i, name := range statusNames {
		if strings.EqualFold(s, name) {
			return Status(i), nil
		}
	}
	return Old, fmt.Errorf("unknown policy status %q, want one of %s",
		s, strings.Join(statusNames, ", "))
}

// ID names a policy.
type ID string

const (
	// CMP0022 makes INTERFACE_LINK_LIBRARIES define the link interface.
	// Under the new behavior legacy LINK_INTERFACE_LIBRARIES properties may
	// only be exported when explicitly requested.
	CMP0022 ID = "CMP0022"
	// CMP0041 rejects relative paths in installed include directories.
	CMP0041 ID = "CMP0041"
	// CMP0052 rejects source and build tree paths in installed include
	// directories.
	CMP0052 ID = "CMP0052"
)

var descriptions = map[ID]string{
	CMP0022: "INTERFACE_LINK_LIBRARIES defines the link interface.",
	CMP0041: "Error on relative include with generator expression.",
	CMP0052: "Reject source and build dirs in installed INTERFACE_INCLUDE_DIRECTORIES.",
}

// Known reports whether id is a policy this package knows about.
func Known(id ID) bool {
	_, ok := descriptions[id]
	return ok
}

// Warning returns the text prefixed to diagnostics issued under Warn.
func Warning(id ID) string {
	return fmt.Sprintf("Policy %s is not set: %s  Run \"cmake --help-policy %s\" "+
		"for policy details.  Use the cmake_policy command to set the policy "+
		"and suppress this warning.", id, descriptions[id], id)
}

// Table maps policies to their status.  The zero Table reports Warn for
// every policy, matching a project that never set any.
type Table struct {
	statuses map[ID]Status
}

// NewTable returns a Table holding a copy of statuses.  Unknown policy IDs
// are rejected.
func NewTable(statuses map[ID]Status) (Table, error) {
	t := Table{statuses: make(map[ID]Status, len(statuses))}
	for id, s := range statuses {
		if !Known(id) {
			return Table{}, fmt.Errorf("unknown policy %q", id)
		}
		t.statuses[id] = s
	}
	return t, nil
}

// Status returns the status of id.
func (t Table) Status(id ID) Status {
	if s, ok := t.statuses[id]; ok {
		return s
	}
	return Warn
}

func (t Table) String() string {
	ids := make([]string, 0, len(t.statuses))
	for id := range t.statuses {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = id + "=" + t.statuses[ID(id)].String()
	}
	return strings.Join(parts, " ")
}

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

// Package deptools writes gcc-style depfiles so that a build tool can
// regenerate export files when the build description they came from
// changes.
package deptools

import (
	"fmt"
	"strings"

	"github.com/google/cmexport/pathtools"
)

var pathEscaper = strings.NewReplacer(
	`\`, `\\`,
	" ", `\ `,
	"#", `\#`,
	"$", "$$")

// Format returns the depfile contents declaring that target depends on
// deps.
func Format(target string, deps []string) []byte {
	escaped := make([]string, len(deps))
	for i, dep := range deps {
		escaped[i] = pathEscaper.Replace(dep)
	}
	return []byte(fmt.Sprintf("%s: \\\n %s\n", pathEscaper.Replace(target),
		strings.Join(escaped, " \\\n ")))
}

// WriteDepFile creates a new gcc-style depfile and populates it with content
// indicating that target depends on deps.  The file is only rewritten when
// its contents change.
func WriteDepFile(fs pathtools.FileSystem, filename, target string, deps []string) error {
	_, err := pathtools.WriteFileIfChanged(fs, filename, Format(target, deps), 0666)
	return err
}

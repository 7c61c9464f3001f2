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


// exportgen generates CMake import files for the export sets of a build
// description.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/cmexport/pathtools"
)

const (
	cmdName   = "exportgen"
	shortDesc = "Generate CMake import files from a build description."
	longDesc  = `exportgen reads a build description written in HCL or YAML and writes one
import file per export set.  Downstream projects include the import file to
recreate the exported targets as IMPORTED targets, with their usage
requirements and per-configuration artifacts.
`
)

func main() {
	cmd := newRootCmd(cmdName, shortDesc, longDesc, pathtools.OsFs)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimLeft(err.Error(), "\n"))
		os.Exit(1)
	}
}

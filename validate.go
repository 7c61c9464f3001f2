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
	"strings"

	"github.com/hashicorp/go-multierror"

	"github.com/google/cmexport/genex"
	"github.com/google/cmexport/pathtools"
	"github.com/google/cmexport/policy"
	"github.com/google/cmexport/proptools"
)

func isSubDirectory(a, b string) bool {
	return pathtools.ComparePath(a, b) || pathtools.IsSubDirectory(a, b)
}

// checkInterfaceDirs verifies that every installed include directory lies
// inside the installation.  Violations are reported according to the
// governing policy; the returned error aggregates those that are fatal.
func (p *pass) checkInterfaceDirs(t Target, value string) error {
	installDir := p.Model.InstallPrefix()
	sourceDir := p.Model.SourceDir()
	binaryDir := p.Model.BinaryDir()
	inSourceBuild := pathtools.ComparePath(sourceDir, binaryDir)

	var errs *multierror.Error
	report := func(id policy.ID, msg string) {
		switch p.Policies.Status(id) {
		case policy.Old:
		case policy.Warn:
			p.warn(t, proptools.InterfaceIncludeDirectories, policy.Warning(id)+"\n"+msg)
		default:
			errs = multierror.Append(errs, fmt.Errorf("%w: %s: %s", ErrPolicyViolation, id, msg))
		}
	}

	for _, item := range genex.Split(value) {
		if genex.Find(item) == 0 || strings.HasPrefix(item, genex.ImportPrefix) {
			continue
		}
		if !pathtools.IsFullPath(item) {
			report(policy.CMP0041, fmt.Sprintf(
				"Target %q INTERFACE_INCLUDE_DIRECTORIES property contains relative path:\n  %q",
				t.Name(), item))
			continue
		}
		if isSubDirectory(item, installDir) && isSubDirectory(installDir, binaryDir) {
			continue
		}
		if isSubDirectory(item, binaryDir) {
			report(policy.CMP0052, fmt.Sprintf(
				"Target %q INTERFACE_INCLUDE_DIRECTORIES property contains path:\n  %q\n"+
					"which is prefixed in the build directory.", t.Name(), item))
			continue
		}
		if !inSourceBuild && isSubDirectory(item, sourceDir) {
			report(policy.CMP0052, fmt.Sprintf(
				"Target %q INTERFACE_INCLUDE_DIRECTORIES property contains path:\n  %q\n"+
					"which is prefixed in the source directory.", t.Name(), item))
		}
	}
	return errs.ErrorOrNil()
}

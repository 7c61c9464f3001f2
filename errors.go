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
	"fmt"

	"github.com/google/cmexport/genex"
)

var (
	// ErrIncompleteExpression is reported, as a warning, for a construct
	// that is opened but never closed.  The construct is left as written.
	ErrIncompleteExpression = genex.ErrIncomplete

	ErrNonLiteralArgument = errors.New(
		"$<TARGET_NAME:...> requires its parameter to be a literal")
	ErrUnreachableTarget = errors.New(
		"$<TARGET_NAME:...> requires its parameter to be a reachable target")
	ErrContextSensitiveInterface = errors.New(
		"installed with INCLUDES DESTINATION set to a context sensitive path.  " +
			"Paths which depend on the configuration, policy values or the link " +
			"interface are not supported.  Consider using " +
			"target_include_directories instead")
	ErrPolicyViolation  = errors.New("policy violation")
	ErrUnlinkableTarget = errors.New(
		"exporting is not allowed since the linker language cannot be determined")
	ErrIO = errors.New("cannot write export file")
)

// An Error describes a fatal problem with one property of one target.
// Generation of the export set stops at the first Error.
type Error struct {
	Target   string // the name of the target being exported
	Property string // the property being populated, or ""
	Err      error  // the error that occurred
}

func (e *Error) Error() string {
	if e.Property == "" {
		return fmt.Sprintf("target %q: %s", e.Target, e.Err)
	}
	return fmt.Sprintf("target %q: %s: %s", e.Target, e.Property, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func targetError(t Target, property string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Target: t.Name(), Property: property, Err: err}
}

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

package genex

import (
	"errors"
	"fmt"
	"strings"
)

// Context is the evaluation context for Evaluate.
type Context struct {
	Config string
}

// Result holds the value of an evaluated expression.  ContextSensitive is
// set when the value depends on the configuration, a policy, or a target's
// link context, and would differ between consumers.
type Result struct {
	Value            string
	ContextSensitive bool
}

// Constructs whose value depends on who consumes the expression.
var contextSensitive = map[string]bool{
	"CONFIG":             true,
	"CONFIGURATION":      true,
	"TARGET_PROPERTY":    true,
	"TARGET_POLICY":      true,
	"LINK_ONLY":          true,
	"COMPILE_LANGUAGE":   true,
	"PLATFORM_ID":        true,
	"TARGET_FILE":        true,
	"TARGET_FILE_DIR":    true,
	"TARGET_FILE_NAME":   true,
	"TARGET_LINKER_FILE": true,
	"TARGET_SONAME_FILE": true,
}

type evaluator struct {
	ctx       Context
	sensitive bool
}

// Evaluate computes the value of input without a consuming target.  An
// unterminated construct is kept as written, and so is any construct whose
// value cannot be computed here; the consumer of the script evaluates those.
func Evaluate(input string, ctx Context) (Result, error) {
	frags, err := Parse(input)
	if err != nil && !errors.Is(err, ErrIncomplete) {
		return Result{}, fmt.Errorf("%q: %w", input, err)
	}
	e := &evaluator{ctx: ctx}
	v, err := e.eval(frags)
	if err != nil {
		return Result{}, err
	}
	return Result{Value: v, ContextSensitive: e.sensitive}, nil
}

func (e *evaluator) eval(f Fragments) (string, error) {
	b := &strings.Builder{}
	for _, frag := range f {
		switch fr := frag.(type) {
		case Text:
			b.WriteString(string(fr))
		case *Construct:
			v, err := e.construct(fr)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		case Fragments:
			v, err := e.eval(fr)
			if err != nil {
				return "", err
			}
			b.WriteString(v)
		}
	}
	return b.String(), nil
}

func (e *evaluator) args(c *Construct) ([]string, error) {
	out := make([]string, len(c.Args))
	for i, arg := range c.Args {
		v, err := e.eval(arg)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (e *evaluator) construct(c *Construct) (string, error) {
	if !c.Closed {
		return c.String(), nil
	}
	name, err := e.eval(c.Name)
	if err != nil {
		return "", err
	}

	switch name {
	case "0":
		return "", nil
	case "1", "INSTALL_INTERFACE":
		return e.eval(c.ContentFragments())
	case "BUILD_INTERFACE":
		return "", nil
	case "ANGLE-R":
		return ">", nil
	case "COMMA":
		return ",", nil
	case "SEMICOLON":
		return ";", nil
	}

	if contextSensitive[name] {
		e.sensitive = true
		if name == "CONFIG" || name == "CONFIGURATION" {
			if !c.HasArgs {
				return e.ctx.Config, nil
			}
			cfg, err := e.eval(c.ContentFragments())
			if err != nil {
				return "", err
			}
			return boolString(strings.EqualFold(cfg, e.ctx.Config)), nil
		}
		return "", nil
	}

	args, err := e.args(c)
	if err != nil {
		return "", err
	}

	switch name {
	case "BOOL":
		return boolString(isTrue(strings.Join(args, ","))), nil
	case "NOT":
		if len(args) != 1 {
			return "", fmt.Errorf("$<NOT> expects exactly one parameter, got %d", len(args))
		}
		v, err := parseCondition(name, args[0])
		if err != nil {
			return "", err
		}
		return boolString(!v), nil
	case "AND", "OR":
		if len(args) == 0 {
			return "", fmt.Errorf("$<%s> expects at least one parameter", name)
		}
		result := name == "AND"
		for _, arg := range args {
			v, err := parseCondition(name, arg)
			if err != nil {
				return "", err
			}
			if name == "AND" {
				result = result && v
			} else {
				result = result || v
			}
		}
		return boolString(result), nil
	case "STREQUAL":
		if len(args) != 2 {
			return "", fmt.Errorf("$<STREQUAL> expects exactly two parameters, got %d", len(args))
		}
		return boolString(args[0] == args[1]), nil
	case "IF":
		if len(args) != 3 {
			return "", fmt.Errorf("$<IF> expects exactly three parameters, got %d", len(args))
		}
		v, err := parseCondition(name, args[0])
		if err != nil {
			return "", err
		}
		if v {
			return args[1], nil
		}
		return args[2], nil
	case "LOWER_CASE":
		return strings.ToLower(strings.Join(args, ",")), nil
	case "UPPER_CASE":
		return strings.ToUpper(strings.Join(args, ",")), nil
	case "JOIN":
		if len(args) < 2 {
			return "", fmt.Errorf("$<JOIN> expects two parameters, got %d", len(args))
		}
		glue := strings.Join(args[1:], ",")
		return strings.Join(ExpandList(args[0]), glue), nil
	}

	return c.String(), nil
}

func parseCondition(name, v string) (bool, error) {
	switch v {
	case "0":
		return false, nil
	case "1":
		return true, nil
	}
	return false, fmt.Errorf("$<%s> parameter %q is not a boolean (0 or 1)", name, v)
}

func boolString(b bool) string {
	if b {
		return "1"
	}
	return "0"
}

// isTrue follows the usual constant truth rules: empty strings, "0", "OFF",
// "NO", "FALSE", "N", "IGNORE", "NOTFOUND" and anything ending in
// "-NOTFOUND" are false.
func isTrue(v string) bool {
	switch strings.ToUpper(v) {
	case "", "0", "OFF", "NO", "FALSE", "N", "IGNORE", "NOTFOUND":
		return false
	}
	return !strings.HasSuffix(strings.ToUpper(v), "-NOTFOUND")
}

// Copyright 2014 Google Inc. All rights reserved.
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
	"io"
	"strings"
	"unicode"

	"github.com/google/cmexport/genex"
)

const (
	indentWidth = 2
	lineWidth   = 80
)

var indentString = strings.Repeat(" ", indentWidth)

type scriptWriter struct {
	writer io.StringWriter

	justDidBlankLine bool // true if the last operation was a BlankLine
}

func newScriptWriter(writer io.StringWriter) *scriptWriter {
	return &scriptWriter{
		writer: writer,
	}
}

func (s *scriptWriter) Comment(comment string) error {
	s.justDidBlankLine = false

	const lineHeaderLen = len("# ")
	const maxLineLen = lineWidth - lineHeaderLen

	var lineStart, lastSplitPoint int
	for i, r := range comment {
		if unicode.IsSpace(r) {
			// We know we can safely split the line here.
			lastSplitPoint = i + 1
		}

		var line string
		var writeLine bool
		switch {
		case r == '\n':
			// Output the line without trimming the left so as to allow comments
			// to contain their own indentation.
			line = strings.TrimRightFunc(comment[lineStart:i], unicode.IsSpace)
			writeLine = true

		case (i-lineStart > maxLineLen) && (lastSplitPoint > lineStart):
			// The line has grown too long and is splittable.  Split it at the
			// last split point.
			line = strings.TrimSpace(comment[lineStart:lastSplitPoint])
			writeLine = true
		}

		if writeLine {
			line = strings.TrimSpace("# "+line) + "\n"
			_, err := s.writer.WriteString(line)
			if err != nil {
				return err
			}
			lineStart = lastSplitPoint
		}
	}

	if lineStart != len(comment) {
		line := strings.TrimSpace(comment[lineStart:])
		_, err := s.writer.WriteString("# " + line + "\n")
		if err != nil {
			return err
		}
	}

	return nil
}

// Command writes a single line command invocation.  Arguments are written
// as given; use quote for values that need it.
func (s *scriptWriter) Command(name string, args ...string) error {
	s.justDidBlankLine = false
	_, err := s.writer.WriteString(name + "(" + strings.Join(args, " ") + ")\n")
	return err
}

// SetProperty marks target with a single property.
func (s *scriptWriter) SetProperty(target, property, value string) error {
	return s.Command("set_property", "TARGET", target, "PROPERTY", property, value)
}

// SetTargetProperties writes a multi-line set_target_properties command
// with one sorted property per line.  Configuration blocks indent their
// closing parenthesis.
func (s *scriptWriter) SetTargetProperties(target string, props PropertyMap, indentClose bool) error {
	s.justDidBlankLine = false
	_, err := s.writer.WriteString("set_target_properties(" + target + " PROPERTIES\n")
	if err != nil {
		return err
	}
	for _, key := range props.Keys() {
		_, err = s.writer.WriteString(indentString + key + " " + quote(props[key]) + "\n")
		if err != nil {
			return err
		}
	}
	closing := ")\n"
	if indentClose {
		closing = indentString + closing
	}
	_, err = s.writer.WriteString(closing)
	return err
}

// Verbatim writes text, which must end in a newline, unchanged.
func (s *scriptWriter) Verbatim(text string) error {
	s.justDidBlankLine = strings.HasSuffix(text, "\n\n")
	_, err := s.writer.WriteString(text)
	return err
}

func (s *scriptWriter) BlankLine() (err error) {
	// We don't output multiple blank lines in a row.
	if !s.justDidBlankLine {
		s.justDidBlankLine = true
		_, err = s.writer.WriteString("\n")
	}
	return err
}

var quoteReplacer = strings.NewReplacer(`\`, `\\`, `"`, `\"`, `$`, `\$`)

// quote returns value as a quoted argument.  References to the import
// prefix stay live; every other variable reference is escaped.
func quote(value string) string {
	escaped := quoteReplacer.Replace(value)
	escaped = strings.ReplaceAll(escaped, `\`+genex.ImportPrefix, genex.ImportPrefix)
	return `"` + escaped + `"`
}

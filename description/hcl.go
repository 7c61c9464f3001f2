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


package description

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
)

var hclFileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "project"},
		{Type: "target", LabelNames: []string{"name"}},
		{Type: "export", LabelNames: []string{"name"}},
	},
}

// hclFile is an HCL description file whose target and export blocks have
// not been decoded yet.  They may refer to project variables, which are
// only known once every file has been parsed.
type hclFile struct {
	*file
	pending hcl.Blocks
}

func hclPos(r hcl.Range) Position {
	return Position{Filename: r.Filename, Line: r.Start.Line, Column: r.Start.Column}
}

// parseHCL parses an HCL description and decodes its project blocks.
// Project attributes are evaluated without variables.
func parseHCL(parser *hclparse.Parser, name string, src []byte) (*hclFile, error) {
	f, diags := parser.ParseHCL(src, name)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", name, diags)
	}

	content, diags := f.Body.Content(hclFileSchema)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", name, diags)
	}

	ret := &hclFile{file: &file{name: name}}
	for _, block := range content.Blocks {
		if block.Type != "project" {
			ret.pending = append(ret.pending, block)
			continue
		}
		def := &projectDef{}
		if diags := gohcl.DecodeBody(block.Body, nil, def); diags.HasErrors() {
			return nil, fmt.Errorf("failed to decode project block in %s: %w", name, diags)
		}
		ret.projects = append(ret.projects, projectDecl{def: def, pos: hclPos(block.DefRange)})
	}
	return ret, nil
}

// evalContext exposes the project directories to target and export blocks
// as project.source_dir, project.binary_dir and project.install_prefix.
func evalContext(p *projectDef) *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"project": cty.ObjectVal(map[string]cty.Value{
				"source_dir":     cty.StringVal(p.SourceDir),
				"binary_dir":     cty.StringVal(p.BinaryDir),
				"install_prefix": cty.StringVal(p.InstallPrefix),
			}),
		},
	}
}

// decode decodes the pending target and export blocks of f.
func (f *hclFile) decode(ctx *hcl.EvalContext) error {
	var diags hcl.Diagnostics
	for _, block := range f.pending {
		switch block.Type {
		case "target":
			def := &targetDef{Name: block.Labels[0]}
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, def)...)
			f.targets = append(f.targets, targetDecl{def: def, pos: hclPos(block.DefRange)})
		case "export":
			def := &exportDef{Name: block.Labels[0]}
			diags = append(diags, gohcl.DecodeBody(block.Body, ctx, def)...)
			f.exports = append(f.exports, exportDecl{def: def, pos: hclPos(block.DefRange)})
		}
	}
	f.pending = nil
	if diags.HasErrors() {
		return fmt.Errorf("failed to decode HCL file %s: %w", f.name, diags)
	}
	return nil
}

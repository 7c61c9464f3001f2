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

	"gopkg.in/yaml.v3"
)

func yamlPos(name string, n *yaml.Node) Position {
	return Position{Filename: name, Line: n.Line, Column: n.Column}
}

// parseYAML decodes a YAML description.  The document is a mapping with
// the keys project, targets and exports; the latter two hold sequences.
func parseYAML(name string, src []byte) (*file, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse YAML file %s: %w", name, err)
	}

	f := &file{name: name}
	if len(doc.Content) == 0 {
		return f, nil
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: top level of a description must be a mapping",
			yamlPos(name, root))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		key, value := root.Content[i], root.Content[i+1]
		switch key.Value {
		case "project":
			def := &projectDef{}
			if err := value.Decode(def); err != nil {
				return nil, fmt.Errorf("%s: %w", yamlPos(name, value), err)
			}
			f.projects = append(f.projects, projectDecl{def: def, pos: yamlPos(name, key)})
		case "targets":
			items, err := yamlSequence(name, value)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				def := &targetDef{}
				if err := item.Decode(def); err != nil {
					return nil, fmt.Errorf("%s: %w", yamlPos(name, item), err)
				}
				f.targets = append(f.targets, targetDecl{def: def, pos: yamlPos(name, item)})
			}
		case "exports":
			items, err := yamlSequence(name, value)
			if err != nil {
				return nil, err
			}
			for _, item := range items {
				def := &exportDef{}
				if err := item.Decode(def); err != nil {
					return nil, fmt.Errorf("%s: %w", yamlPos(name, item), err)
				}
				f.exports = append(f.exports, exportDecl{def: def, pos: yamlPos(name, item)})
			}
		default:
			return nil, fmt.Errorf("%s: unknown key %q, want project, targets or exports",
				yamlPos(name, key), key.Value)
		}
	}
	return f, nil
}

func yamlSequence(name string, n *yaml.Node) ([]*yaml.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("%s: expected a sequence", yamlPos(name, n))
	}
	return n.Content, nil
}

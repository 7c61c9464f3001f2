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


package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/google/cmexport/description"
	"github.com/google/cmexport/pathtools"
)

func newListCmd(fs pathtools.FileSystem) *cobra.Command {
	return &cobra.Command{
		Use:   "list DESCRIPTION...",
		Short: "List the export sets of a build description and their targets",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			p, err := description.Load(fs, pArgs...)
			if err != nil {
				return fmt.Errorf("failed to load build description: %w", err)
			}

			w := tabwriter.NewWriter(cc.OutOrStdout(), 0, 8, 2, ' ', 0)
			for _, set := range p.ExportSets {
				fmt.Fprintf(w, "%s\t%s\t%s\n", set.Name, set.Mode, set.Destination)
				for _, m := range set.Members {
					fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Target.Name(), m.Target.Kind(),
						set.QualifiedName(m.Target))
				}
			}
			return w.Flush()
		},
	}
}

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
	"log/slog"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/google/cmexport"
	"github.com/google/cmexport/deptools"
	"github.com/google/cmexport/description"
	"github.com/google/cmexport/pathtools"
)

const generateExample = `  # Write every export set below the current directory
  exportgen generate project.hcl

  # Write one export set into a staging directory, with a depfile
  exportgen generate project.hcl --export Pkg --output-dir stage --depfile

  # Print the import file instead of writing it
  exportgen generate project.yaml --export Pkg --stdout
`

type generateArgs struct {
	outputDir   string
	exports     []string
	depfile     bool
	stdout      bool
	jobs        int
	toolVersion string
}

func newGenerateCmd(fs pathtools.FileSystem) *cobra.Command {
	args := &generateArgs{}

	cmd := &cobra.Command{
		Use:     "generate DESCRIPTION...",
		Short:   "Generate import files for the export sets of a build description",
		Example: generateExample,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cc *cobra.Command, pArgs []string) error {
			if args.jobs < 1 {
				return fmt.Errorf("%w: --jobs must be at least 1, got %d", ErrInvalidArgument, args.jobs)
			}

			p, err := description.Load(fs, pArgs...)
			if err != nil {
				return fmt.Errorf("failed to load build description: %w", err)
			}

			sets, err := selectExportSets(p.ExportSets, args.exports)
			if err != nil {
				return err
			}

			results, genErr := generate(p, sets, args)

			var errs *multierror.Error
			errs = multierror.Append(errs, genErr)
			for i, set := range sets {
				if results[i] == nil {
					continue
				}
				if err := args.write(cc, fs, p, set, results[i]); err != nil {
					errs = multierror.Append(errs, fmt.Errorf("export %q: %w: %w", set.Name, cmexport.ErrIO, err))
				}
			}
			return errs.ErrorOrNil()
		},
	}

	cmd.Flags().StringVarP(&args.outputDir, "output-dir", "o", ".", "Directory the export file destinations are relative to")
	cmd.Flags().StringArrayVarP(&args.exports, "export", "e", nil, "Only generate the named export set (repeatable)")
	cmd.Flags().BoolVar(&args.depfile, "depfile", false, "Write a depfile next to each generated file")
	cmd.Flags().BoolVar(&args.stdout, "stdout", false, "Print the generated files instead of writing them")
	cmd.Flags().IntVarP(&args.jobs, "jobs", "j", runtime.NumCPU(), "Number of export sets to generate concurrently")
	cmd.Flags().StringVar(&args.toolVersion, "tool_version", cmexport.DefaultToolVersion, "CMake version named in the generated header")

	return cmd
}

// selectExportSets returns the sets named by names, in the order given, or
// every set if names is empty.
func selectExportSets(all cmexport.ExportSets, names []string) ([]*cmexport.ExportSet, error) {
	if len(names) == 0 {
		return all, nil
	}
	sets := make([]*cmexport.ExportSet, 0, len(names))
	for _, name := range names {
		set := all.Find(name)
		if set == nil {
			return nil, fmt.Errorf("%w: no export set named %q", ErrInvalidArgument, name)
		}
		sets = append(sets, set)
	}
	return sets, nil
}

// generate runs one generator per export set, args.jobs at a time.  The
// project is read-only from here on, so the generators share it.  A failed
// set leaves a nil result and does not stop the others.
func generate(p *description.Project, sets []*cmexport.ExportSet, args *generateArgs) ([]*cmexport.Result, error) {
	results := make([]*cmexport.Result, len(sets))

	var mu sync.Mutex
	var errs *multierror.Error

	var g errgroup.Group
	g.SetLimit(args.jobs)
	for i, set := range sets {
		i, set := i, set
		g.Go(func() error {
			gen := &cmexport.Generator{
				Model:          p,
				Policies:       p.Policies,
				MissingTargets: p.ExportSets,
				Logger:         slog.Default(),
				ToolVersion:    args.toolVersion,
			}
			res, err := gen.Generate(set)
			if err != nil {
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("export %q: %w", set.Name, err))
				mu.Unlock()
				return nil
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	return results, errs.ErrorOrNil()
}

// outputPath returns where the import file of set is written.  Absolute
// destinations are staged below the output directory.
func (a *generateArgs) outputPath(set *cmexport.ExportSet) string {
	return filepath.Join(a.outputDir, filepath.FromSlash(set.Destination))
}

func (a *generateArgs) write(cc *cobra.Command, fs pathtools.FileSystem, p *description.Project,
	set *cmexport.ExportSet, res *cmexport.Result) error {

	if a.stdout {
		_, err := cc.OutOrStdout().Write(res.Script)
		return err
	}

	path := a.outputPath(set)
	changed, err := pathtools.WriteFileIfChanged(fs, path, res.Script, 0666)
	if err != nil {
		return err
	}
	if changed {
		slog.Info("wrote import file", slog.String("export", set.Name), slog.String("path", path))
	} else {
		slog.Debug("import file up to date", slog.String("export", set.Name), slog.String("path", path))
	}

	if a.depfile {
		if err := deptools.WriteDepFile(fs, path+".d", path, p.Files); err != nil {
			return err
		}
	}
	return nil
}

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
	"errors"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/google/cmexport/logging"
	"github.com/google/cmexport/pathtools"
)

var (
	ErrLogHandlerFailed = errors.New("log handler failed")
	ErrInvalidArgument  = errors.New("invalid argument")
)

type rootArgs struct {
	logLevel  *string
	logFormat *string
}

func newRootArgs() *rootArgs {
	return &rootArgs{
		logLevel:  new(string),
		logFormat: new(string),
	}
}

func (a *rootArgs) GetLogLevel() string {
	return *a.logLevel
}

func (a *rootArgs) GetLogFormat() string {
	return *a.logFormat
}

// newRootCmd returns the root command.  Description files are read from and
// import files written to fs.
func newRootCmd(name, shortDesc, longDesc string, fs pathtools.FileSystem) *cobra.Command {
	args := newRootArgs()

	cmd := &cobra.Command{
		Use:           name,
		Short:         shortDesc,
		Long:          longDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
	}

	cmd.PersistentFlags().StringVar(args.logLevel, "log_level", "warn", "Set the log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(args.logFormat, "log_format", "text", "Set the log format (text, logfmt, json)")

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		h, err := logging.CreateHandler(
			cc.ErrOrStderr(),
			args.GetLogLevel(),
			args.GetLogFormat(),
		)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrLogHandlerFailed, err)
		}

		slog.SetDefault(slog.New(h))

		slog.Debug("ready to go")

		return nil
	}

	cmd.AddCommand(newGenerateCmd(fs))
	cmd.AddCommand(newListCmd(fs))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

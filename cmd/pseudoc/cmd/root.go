// Copyright 2020-2025 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package cmd implements the pseudoc command line.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bufbuild/pseudocompile/report"
)

// errFailed is returned by a command that ran to completion, but whose
// input did not pass analysis. The problems have already been reported, so
// it is not printed again.
var errFailed = errors.New("analysis failed")

// Execute runs the pseudoc command line with the process arguments.
func Execute() error {
	root := NewRootCommand()
	err := root.Execute()
	if err != nil && !errors.Is(err, errFailed) {
		fmt.Fprintf(root.ErrOrStderr(), "pseudoc: %v\n", err)
	}
	return err
}

// NewRootCommand returns the pseudoc command tree.
func NewRootCommand() *cobra.Command {
	var cfgFile string
	cfg := DefaultConfig()

	root := &cobra.Command{
		Use:   "pseudoc",
		Short: "Analyze pseudocode programs",
		Long: `pseudoc checks pseudocode programs for lexical, syntax and
structural errors, and can print or export their syntax trees.

Settings are read from pseudoc.toml in the working directory, if it
exists, or from the file named by --config. Flags take precedence over
the file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			loaded, err := LoadConfig(cfgFile, cmd.Flags().Changed("config"))
			if err != nil {
				return err
			}
			*cfg = *loaded
			return nil
		},
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", DefaultConfigFile, "config file")

	root.AddCommand(
		newAnalyzeCommand(cfg),
		newTokensCommand(cfg),
		newExportCommand(cfg),
		newVersionCommand(),
	)
	return root
}

// addOutputFlags registers the flags that control report rendering.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("color", false, "colorize output (default from config)")
	cmd.Flags().Bool("tree", false, "include the syntax tree in reports")
	cmd.Flags().Bool("json", false, "include the JSON form of the syntax tree in reports")
	cmd.Flags().Bool("compact", false, "print one line per error, without source excerpts")
}

// rendererFor builds a report renderer from cfg, overridden by any output
// flags set on cmd.
func rendererFor(cmd *cobra.Command, cfg *Config) report.Renderer {
	return report.Renderer{
		Colorize: boolSetting(cmd, "color", cfg.Output.Color),
		ShowTree: boolSetting(cmd, "tree", cfg.Output.Tree),
		ShowJSON: boolSetting(cmd, "json", cfg.Output.JSON),
		Compact:  boolSetting(cmd, "compact", false),
	}
}

func boolSetting(cmd *cobra.Command, name string, fromConfig bool) bool {
	flag := cmd.Flags().Lookup(name)
	if flag == nil || !flag.Changed {
		return fromConfig
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return fromConfig
	}
	return v
}

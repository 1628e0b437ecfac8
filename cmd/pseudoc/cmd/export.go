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

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/export"
)

func newExportCommand(cfg *Config) *cobra.Command {
	var (
		format  string
		outFile string
	)
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write the syntax tree of a pseudocode file",
		Long: fmt.Sprintf(`Analyzes the named file and writes its syntax tree in the
given format. If the file fails analysis, a report is printed to stderr
instead and the exit code is 1.

Formats: %v`, export.Formats),
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("format") {
				format = cfg.Output.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			results, sources, err := analyzeFiles(cmd, 1, args[0])
			if err != nil {
				return err
			}
			res := results[0]
			if !res.Success {
				r := rendererFor(cmd, cfg)
				if err := r.Render(cmd.ErrOrStderr(), res.Filename, res, sources.text(res.Filename)); err != nil {
					return err
				}
				return errFailed
			}

			if outFile == "" || outFile == "-" {
				return export.Write(cmd.OutOrStdout(), f, res.AST)
			}
			return writeFile(outFile, f, res.AST)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(export.JSON), "output format (default from config)")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "output file (default stdout)")
	cmd.Flags().Bool("color", false, "colorize the report of a failed analysis (default from config)")
	return cmd
}

func writeFile(path string, format export.Format, prog *ast.Program) (err error) {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := out.Close(); err == nil {
			err = closeErr
		}
	}()
	return export.Write(out, format, prog)
}

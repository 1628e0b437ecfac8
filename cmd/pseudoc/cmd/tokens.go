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
	"github.com/spf13/cobra"
)

func newTokensCommand(cfg *Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the tokens of a pseudocode file",
		Long: `Prints a table of the tokens in the named file, followed by the
number of tokens of each kind. If the file cannot be tokenized, the error
is reported instead and the exit code is 1.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			results, sources, err := analyzeFiles(cmd, 1, args[0])
			if err != nil {
				return err
			}
			res := results[0]
			r := rendererFor(cmd, cfg)
			if res.Tokens == nil {
				if err := r.Render(cmd.OutOrStdout(), res.Filename, res, sources.text(res.Filename)); err != nil {
					return err
				}
				return errFailed
			}
			return r.Tokens(cmd.OutOrStdout(), res.Tokens)
		},
	}
	cmd.Flags().Bool("color", false, "colorize output (default from config)")
	return cmd
}

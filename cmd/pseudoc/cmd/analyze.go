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
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"

	"github.com/bufbuild/pseudocompile"
)

func newAnalyzeCommand(cfg *Config) *cobra.Command {
	var parallelism int
	cmd := &cobra.Command{
		Use:   "analyze <file|glob>...",
		Short: "Analyze pseudocode files and report any errors",
		Long: `Analyzes each named file and prints a report for it. Arguments
containing glob metacharacters are expanded, and may use ** to match
any number of directories.

Examples:
  pseudoc analyze prog.pseudo
  pseudoc analyze --tree 'examples/**/*.pseudo'

The exit code is 1 if any file fails analysis.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("max-parallelism") {
				parallelism = cfg.Analyze.MaxParallelism
			}
			return runAnalyze(cmd, cfg, args, parallelism)
		},
	}
	cmd.Flags().IntVarP(&parallelism, "max-parallelism", "j", 0, "maximum number of files to analyze at once (default one per CPU)")
	addOutputFlags(cmd)
	return cmd
}

func runAnalyze(cmd *cobra.Command, cfg *Config, args []string, parallelism int) error {
	files, err := expandInputs(args)
	if err != nil {
		return err
	}
	results, sources, err := analyzeFiles(cmd, parallelism, files...)
	if err != nil {
		return err
	}

	r := rendererFor(cmd, cfg)
	out := cmd.OutOrStdout()
	seen := make(map[*pseudocompile.Result]bool, len(results))
	var failed int
	for _, res := range results {
		if seen[res] {
			continue
		}
		if len(seen) > 0 {
			fmt.Fprintln(out)
		}
		seen[res] = true
		if !res.Success {
			failed++
		}
		if err := r.Render(out, res.Filename, res, sources.text(res.Filename)); err != nil {
			return err
		}
	}

	if len(seen) > 1 {
		fmt.Fprintf(out, "\nanalyzed %d files, %d failed\n", len(seen), failed)
	}
	if failed > 0 {
		return errFailed
	}
	return nil
}

// expandInputs expands the glob patterns among args. Arguments without glob
// metacharacters are kept as-is, so that missing files are reported by the
// analysis.
func expandInputs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		if !strings.ContainsAny(arg, "*?[{") {
			files = append(files, arg)
			continue
		}
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("bad pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match %q", arg)
		}
		files = append(files, matches...)
	}
	return files, nil
}

// analyzeFiles analyzes files from the file system, keeping their contents
// so that reports can quote them.
func analyzeFiles(cmd *cobra.Command, parallelism int, files ...string) ([]*pseudocompile.Result, *sourceCache, error) {
	sources := &sourceCache{}
	analyzer := pseudocompile.Analyzer{
		Resolver:       &pseudocompile.SourceResolver{Accessor: sources.open},
		MaxParallelism: parallelism,
	}
	results, err := analyzer.AnalyzeFiles(cmd.Context(), files...)
	if err != nil {
		return nil, nil, err
	}
	return results, sources, nil
}

// sourceCache is an accessor for a [pseudocompile.SourceResolver] that
// remembers the contents of every file it opens.
type sourceCache struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (c *sourceCache) open(path string) (io.ReadCloser, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.files == nil {
		c.files = make(map[string][]byte)
	}
	c.files[path] = data
	return io.NopCloser(bytes.NewReader(data)), nil
}

// text returns the contents of the named file, or "" if it was not read.
func (c *sourceCache) text(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return string(c.files[path])
}

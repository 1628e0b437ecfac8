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

package pseudocompile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"runtime"
	"runtime/debug"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/bufbuild/pseudocompile/parser"
	"github.com/bufbuild/pseudocompile/reporter"
)

// Analyze tokenizes, parses and validates the given source text. It never
// panics and never returns nil; every failure is described by the result.
func Analyze(text string) *Result {
	return analyze("", []byte(text))
}

// AnalyzeSource is like [Analyze] except that the source is read from r and
// positions in the result carry the given file name. A failure to read r is
// reported as the result's only error.
func AnalyzeSource(filename string, r io.Reader) *Result {
	data, err := io.ReadAll(r)
	if err != nil {
		res := &Result{Filename: filename}
		return res.fail(readError(filename, err))
	}
	return analyze(filename, data)
}

func analyze(filename string, text []byte) (res *Result) {
	res = &Result{Filename: filename}
	defer func() {
		if p := recover(); p != nil {
			res.fail(PanicError{Value: p, Stack: string(debug.Stack())})
		}
	}()

	tokens, err := parser.Tokenize(filename, text)
	if err != nil {
		return res.fail(err)
	}
	res.Tokens = tokens

	prog, err := parser.Parse(filename, tokens)
	if err != nil {
		return res.fail(err)
	}
	res.AST = prog

	for _, verr := range parser.Validate(prog) {
		res.addError(verr)
	}
	res.Success = len(res.Errors) == 0
	return res
}

func readError(filename string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("file not found: %s", filename)
	}
	return fmt.Errorf("error reading file: %w", err)
}

// Analyzer analyzes batches of files.
type Analyzer struct {
	// Resolves file names into source. If nil, files are loaded from the file
	// system, relative to the current working directory.
	Resolver Resolver
	// The maximum number of files to analyze at once. If unspecified or set
	// to a non-positive value, then min(runtime.NumCPU(), runtime.GOMAXPROCS(-1))
	// will be used.
	MaxParallelism int
	// If set, every error that has a source position, from every file, is
	// passed to this reporter. If it returns an error, the batch is aborted
	// and AnalyzeFiles returns that error.
	Reporter reporter.Reporter
}

// AnalyzeFiles analyzes the named files, returning one result per name in
// the same order. A file that cannot be found or read gets a failed result;
// it does not cause an error. A name that appears more than once is only
// analyzed once, and its results share the same *Result.
//
// An error is returned only if ctx is cancelled or the Reporter aborts.
func (a *Analyzer) AnalyzeFiles(ctx context.Context, files ...string) ([]*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, nil
	}

	par := a.MaxParallelism
	if par <= 0 {
		par = min(runtime.GOMAXPROCS(-1), runtime.NumCPU())
	}
	resolver := a.Resolver
	if resolver == nil {
		resolver = &SourceResolver{}
	}
	var h *reporter.Handler
	if a.Reporter != nil {
		h = reporter.NewHandler(a.Reporter)
	}

	sem := semaphore.NewWeighted(int64(par))
	grp, ctx := errgroup.WithContext(ctx)
	results := make([]*Result, len(files))
	first := make(map[string]int, len(files))
	for i, file := range files {
		if _, ok := first[file]; ok {
			continue
		}
		first[file] = i
		grp.Go(func() error {
			if err := sem.Acquire(ctx, 1); err != nil {
				return err
			}
			defer sem.Release(1)

			res := analyzeFile(resolver, file)
			results[i] = res
			if h == nil {
				return nil
			}
			for _, diag := range res.Diagnostics {
				if err := h.HandleError(diag); err != nil {
					return err
				}
			}
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	for i, file := range files {
		if results[i] == nil {
			results[i] = results[first[file]]
		}
	}
	return results, nil
}

func analyzeFile(resolver Resolver, file string) *Result {
	sr, err := resolver.FindFileByPath(file)
	if err != nil {
		res := &Result{Filename: file}
		return res.fail(readError(file, err))
	}
	if sr.Source == nil {
		res := &Result{Filename: file}
		return res.fail(fmt.Errorf("error reading file: resolver returned no source for %s", file))
	}
	// don't leave the source open if it can be closed
	if c, ok := sr.Source.(io.Closer); ok {
		defer func() {
			_ = c.Close()
		}()
	}
	return AnalyzeSource(file, sr.Source)
}

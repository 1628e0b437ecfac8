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
	"errors"
	"fmt"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/reporter"
	"github.com/bufbuild/pseudocompile/token"
)

// Result is the outcome of analyzing one piece of source.
type Result struct {
	// The file name given to the analysis, if any.
	Filename string
	// True if the source parsed and the tree passed validation.
	Success bool
	// Every problem found, as human-readable messages. A lexical or syntax
	// error is the only entry; validation problems are listed in the order
	// they were found.
	Errors []string
	// The errors from Errors that carry a source position, in the same order.
	// Failures to read the source have no position and are not included.
	Diagnostics []reporter.ErrorWithPos
	// The tokens of the source. This is nil if tokenizing failed.
	Tokens []token.Token
	// The syntax tree. This is nil if tokenizing or parsing failed.
	AST *ast.Program
}

// TokenCount returns the number of tokens in the source.
func (r *Result) TokenCount() int {
	return len(r.Tokens)
}

// Projection returns the key/value form of the syntax tree, or nil if there
// is no tree.
func (r *Result) Projection() ast.Object {
	if r.AST == nil {
		return nil
	}
	return ast.Project(r.AST)
}

// Err returns nil if the analysis succeeded. Otherwise it returns an error
// that joins every problem found.
func (r *Result) Err() error {
	if r.Success {
		return nil
	}
	if len(r.Errors) == 0 {
		return errors.New("analysis failed")
	}
	errs := make([]error, len(r.Errors))
	for i, msg := range r.Errors {
		errs[i] = errors.New(msg)
	}
	return errors.Join(errs...)
}

func (r *Result) addError(err error) {
	r.Errors = append(r.Errors, err.Error())
	var ewp reporter.ErrorWithPos
	if errors.As(err, &ewp) {
		r.Diagnostics = append(r.Diagnostics, ewp)
	}
}

// fail records a fatal error, discarding any tree.
func (r *Result) fail(err error) *Result {
	r.Success = false
	r.AST = nil
	r.addError(err)
	return r
}

// PanicError is recorded in a [Result] if analysis panics. This indicates a
// bug in this module.
type PanicError struct {
	// The value that was passed to panic.
	Value any
	// The stack trace of the panicking goroutine.
	Stack string
}

func (p PanicError) Error() string {
	return fmt.Sprintf("panic during analysis: %v", p.Value)
}

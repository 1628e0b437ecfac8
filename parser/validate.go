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

package parser

import (
	"errors"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/reporter"
	"github.com/bufbuild/pseudocompile/walk"
)

// Validate checks that every node in the tree has the parts it requires
// and returns all problems found, in pre-order. A tree produced by a
// successful call to [Parse] only fails validation if it has no statements.
func Validate(prog *ast.Program) []*ValidationError {
	var errs []*ValidationError
	handler := reporter.NewHandler(reporter.NewReporter(func(err reporter.ErrorWithPos) error {
		var verr *ValidationError
		if errors.As(err, &verr) {
			errs = append(errs, verr)
		}
		return nil
	}))
	_ = ValidateWithHandler(prog, handler)
	return errs
}

// ValidateWithHandler is like [Validate] except that problems are sent to
// the given handler. Validation stops early only if the handler's reporter
// returns an error, in which case that error is returned.
func ValidateWithHandler(prog *ast.Program, handler *reporter.Handler) error {
	if prog == nil {
		return handler.HandleError(&ValidationError{underlying: ErrEmptyProgram})
	}
	return walk.Nodes(prog, func(n ast.Node) error {
		return validateNode(n, handler)
	})
}

func validateNode(n ast.Node, handler *reporter.Handler) error {
	check := func(missing bool, msg string) error {
		if !missing {
			return nil
		}
		return handler.HandleError(&ValidationError{Pos: n.Start(), Node: n, underlying: errors.New(msg)})
	}

	switch n := n.(type) {
	case *ast.Program:
		if len(n.Statements) == 0 {
			return handler.HandleError(&ValidationError{Pos: n.Start(), Node: n, underlying: ErrEmptyProgram})
		}
	case *ast.Assignment:
		if err := check(ast.IsNil(n.Variable), "assignment without variable"); err != nil {
			return err
		}
		return check(ast.IsNil(n.Value), "assignment without value")
	case *ast.Conditional:
		// an else branch is optional
		return check(ast.IsNil(n.Condition), "conditional without condition")
	case *ast.WhileLoop:
		// an empty body is valid
		return check(ast.IsNil(n.Condition), "while loop without condition")
	case *ast.ForLoop:
		if err := check(ast.IsNil(n.Variable), "for loop without variable"); err != nil {
			return err
		}
		if err := check(ast.IsNil(n.RangeStart), "for loop without start value"); err != nil {
			return err
		}
		return check(ast.IsNil(n.RangeEnd), "for loop without end value")
	case *ast.Block:
		return check(n.Statements == nil, "block without statements")
	}
	return nil
}

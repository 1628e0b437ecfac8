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
	"fmt"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/reporter"
	"github.com/bufbuild/pseudocompile/token"
)

// ErrEmptyProgram is the underlying error of the [ValidationError] reported
// for a program that contains no statements.
var ErrEmptyProgram = errors.New("program must not be empty")

// LexicalError is returned by [Tokenize] when it encounters input that does
// not start any token.
type LexicalError struct {
	Pos token.SourcePos
	// The offending character. This is utf8.RuneError when the input is not
	// valid UTF-8.
	Char rune

	underlying error
}

func newLexicalError(pos token.SourcePos, ch rune, format string, args ...any) *LexicalError {
	return &LexicalError{Pos: pos, Char: ch, underlying: fmt.Errorf(format, args...)}
}

func (e *LexicalError) Error() string {
	return withPos(e.Pos, e.underlying)
}

// GetPosition implements the [reporter.ErrorWithPos] interface.
func (e *LexicalError) GetPosition() token.SourcePos {
	return e.Pos
}

// Unwrap implements the [reporter.ErrorWithPos] interface.
func (e *LexicalError) Unwrap() error {
	return e.underlying
}

// SyntaxError is returned by [Parse] when the next token cannot continue
// the construct being parsed.
type SyntaxError struct {
	Pos token.SourcePos
	// What the parser was looking for. This is either a token kind name,
	// such as "RBRACE", or a description of a construct, such as
	// "expression".
	Expected string
	// The token that was found instead. Its kind is token.EOF if the input
	// was exhausted.
	Found token.Token
}

func (e *SyntaxError) Error() string {
	return withPos(e.Pos, e.Unwrap())
}

// GetPosition implements the [reporter.ErrorWithPos] interface.
func (e *SyntaxError) GetPosition() token.SourcePos {
	return e.Pos
}

// Unwrap implements the [reporter.ErrorWithPos] interface.
func (e *SyntaxError) Unwrap() error {
	return fmt.Errorf("syntax error: expected %s, got %v", e.Expected, e.Found)
}

// ValidationError describes a node that is missing a required part.
type ValidationError struct {
	Pos token.SourcePos
	// The incomplete node. This is nil only when the program itself is nil.
	Node ast.Node

	underlying error
}

func (e *ValidationError) Error() string {
	return withPos(e.Pos, e.underlying)
}

// GetPosition implements the [reporter.ErrorWithPos] interface.
func (e *ValidationError) GetPosition() token.SourcePos {
	return e.Pos
}

// Unwrap implements the [reporter.ErrorWithPos] interface.
func (e *ValidationError) Unwrap() error {
	return e.underlying
}

func withPos(pos token.SourcePos, err error) string {
	if p := pos.String(); p != "" {
		return fmt.Sprintf("%s: %v", p, err)
	}
	return err.Error()
}

var (
	_ reporter.ErrorWithPos = (*LexicalError)(nil)
	_ reporter.ErrorWithPos = (*SyntaxError)(nil)
	_ reporter.ErrorWithPos = (*ValidationError)(nil)
)

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

package ast

import "github.com/bufbuild/pseudocompile/token"

// Program is the root of the tree for a source file.
type Program struct {
	Pos        token.SourcePos
	Statements []Statement
}

// NewProgram creates a new *Program. A nil stmts is normalized to an empty
// slice, so a program produced this way always has a statement sequence.
func NewProgram(pos token.SourcePos, stmts []Statement) *Program {
	if stmts == nil {
		stmts = []Statement{}
	}
	return &Program{Pos: pos, Statements: stmts}
}

func (n *Program) Start() token.SourcePos { return n.Pos }
func (n *Program) Type() NodeType         { return ProgramNode }

// Assignment is a statement of the form "x = expr;".
type Assignment struct {
	Pos      token.SourcePos
	Variable *Variable
	Value    Expression
}

// NewAssignment creates a new *Assignment, positioned at the variable.
func NewAssignment(variable *Variable, value Expression) *Assignment {
	return &Assignment{Pos: variable.Pos, Variable: variable, Value: value}
}

func (n *Assignment) Start() token.SourcePos { return n.Pos }
func (n *Assignment) Type() NodeType         { return AssignmentNode }
func (*Assignment) statementNode()           {}

// Conditional is an "if" statement. Else is nil when there is no else
// branch.
type Conditional struct {
	Pos       token.SourcePos
	Condition *Condition
	Then      *Block
	Else      *Block
}

// NewConditional creates a new *Conditional. The given pos should be that
// of the "if" keyword. The else branch is optional and may be nil.
func NewConditional(pos token.SourcePos, cond *Condition, then, els *Block) *Conditional {
	return &Conditional{Pos: pos, Condition: cond, Then: then, Else: els}
}

func (n *Conditional) Start() token.SourcePos { return n.Pos }
func (n *Conditional) Type() NodeType         { return ConditionalNode }
func (*Conditional) statementNode()           {}

// WhileLoop is a "while" statement.
type WhileLoop struct {
	Pos       token.SourcePos
	Condition *Condition
	Body      *Block
}

// NewWhileLoop creates a new *WhileLoop. The given pos should be that of
// the "while" keyword.
func NewWhileLoop(pos token.SourcePos, cond *Condition, body *Block) *WhileLoop {
	return &WhileLoop{Pos: pos, Condition: cond, Body: body}
}

func (n *WhileLoop) Start() token.SourcePos { return n.Pos }
func (n *WhileLoop) Type() NodeType         { return WhileLoopNode }
func (*WhileLoop) statementNode()           {}

// ForLoop is a "for x in range(start, end)" statement.
type ForLoop struct {
	Pos        token.SourcePos
	Variable   *Variable
	RangeStart Expression
	RangeEnd   Expression
	Body       *Block
}

// NewForLoop creates a new *ForLoop. The given pos should be that of the
// "for" keyword.
func NewForLoop(pos token.SourcePos, variable *Variable, start, end Expression, body *Block) *ForLoop {
	return &ForLoop{Pos: pos, Variable: variable, RangeStart: start, RangeEnd: end, Body: body}
}

func (n *ForLoop) Start() token.SourcePos { return n.Pos }
func (n *ForLoop) Type() NodeType         { return ForLoopNode }
func (*ForLoop) statementNode()           {}

// Output is a "print(expr);" statement.
type Output struct {
	Pos        token.SourcePos
	Expression Expression
}

// NewOutput creates a new *Output. The given pos should be that of the
// "print" keyword.
func NewOutput(pos token.SourcePos, expr Expression) *Output {
	return &Output{Pos: pos, Expression: expr}
}

func (n *Output) Start() token.SourcePos { return n.Pos }
func (n *Output) Type() NodeType         { return OutputNode }
func (*Output) statementNode()           {}

// Block is a sequence of statements. Blocks are written with braces, but a
// single statement in a body position is promoted to a one-element block,
// and the ";" body of a loop is an empty block.
type Block struct {
	Pos        token.SourcePos
	Statements []Statement
}

// NewBlock creates a new *Block. A nil stmts is normalized to an empty
// slice.
func NewBlock(pos token.SourcePos, stmts []Statement) *Block {
	if stmts == nil {
		stmts = []Statement{}
	}
	return &Block{Pos: pos, Statements: stmts}
}

func (n *Block) Start() token.SourcePos { return n.Pos }
func (n *Block) Type() NodeType         { return BlockNode }
func (*Block) statementNode()           {}

var (
	_ Statement = (*Assignment)(nil)
	_ Statement = (*Conditional)(nil)
	_ Statement = (*WhileLoop)(nil)
	_ Statement = (*ForLoop)(nil)
	_ Statement = (*Output)(nil)
	_ Statement = (*Block)(nil)
	_ Node      = (*Program)(nil)
)

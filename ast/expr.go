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

// Condition is the test of an "if" or "while" statement: either a bare
// expression, or two expressions joined by a comparator. Operator is
// [token.EOF] exactly when Right is nil.
type Condition struct {
	Pos      token.SourcePos
	Left     Expression
	Operator token.Kind
	Right    Expression
}

// NewCondition creates a new *Condition, positioned at its left operand.
// For a bare expression, pass token.EOF and a nil right.
func NewCondition(left Expression, op token.Kind, right Expression) *Condition {
	return &Condition{Pos: left.Start(), Left: left, Operator: op, Right: right}
}

// HasComparison reports whether the condition compares two expressions.
func (n *Condition) HasComparison() bool {
	return !IsNil(n.Right)
}

func (n *Condition) Start() token.SourcePos { return n.Pos }
func (n *Condition) Type() NodeType         { return ConditionNode }

// Variable is a reference to a named variable.
type Variable struct {
	Pos  token.SourcePos
	Name string
}

func NewVariable(pos token.SourcePos, name string) *Variable {
	return &Variable{Pos: pos, Name: name}
}

func (n *Variable) Start() token.SourcePos { return n.Pos }
func (n *Variable) Type() NodeType         { return VariableNode }
func (*Variable) expressionNode()          {}

// Number is an integer literal.
type Number struct {
	Pos   token.SourcePos
	Value int64
}

func NewNumber(pos token.SourcePos, val int64) *Number {
	return &Number{Pos: pos, Value: val}
}

func (n *Number) Start() token.SourcePos { return n.Pos }
func (n *Number) Type() NodeType         { return NumberNode }
func (*Number) expressionNode()          {}

// String is a string literal. Value is the literal as written, including
// its double quotes.
type String struct {
	Pos   token.SourcePos
	Value string
}

func NewString(pos token.SourcePos, val string) *String {
	return &String{Pos: pos, Value: val}
}

func (n *String) Start() token.SourcePos { return n.Pos }
func (n *String) Type() NodeType         { return StringNode }
func (*String) expressionNode()          {}

// BinaryOp is an arithmetic operation. Operator is one of [token.PLUS],
// [token.MINUS], [token.MUL], [token.DIV] or [token.MOD].
type BinaryOp struct {
	Pos      token.SourcePos
	Left     Expression
	Operator token.Kind
	Right    Expression
}

// NewBinaryOp creates a new *BinaryOp, positioned at its left operand.
func NewBinaryOp(left Expression, op token.Kind, right Expression) *BinaryOp {
	return &BinaryOp{Pos: left.Start(), Left: left, Operator: op, Right: right}
}

func (n *BinaryOp) Start() token.SourcePos { return n.Pos }
func (n *BinaryOp) Type() NodeType         { return BinaryOpNode }
func (*BinaryOp) expressionNode()          {}

// Array is an array literal, such as "[1, 2, 3]".
type Array struct {
	Pos      token.SourcePos
	Elements []Expression
}

// NewArray creates a new *Array. The given pos should be that of the
// opening bracket.
func NewArray(pos token.SourcePos, elems []Expression) *Array {
	if elems == nil {
		elems = []Expression{}
	}
	return &Array{Pos: pos, Elements: elems}
}

func (n *Array) Start() token.SourcePos { return n.Pos }
func (n *Array) Type() NodeType         { return ArrayNode }
func (*Array) expressionNode()          {}

// ArrayAccess is an index expression, such as "a[i]". Chained accesses nest
// to the left: "a[i][j]" is an ArrayAccess whose Array is "a[i]".
type ArrayAccess struct {
	Pos   token.SourcePos
	Array Expression
	Index Expression
}

// NewArrayAccess creates a new *ArrayAccess. The given pos should be that
// of the identifier the access chain starts with.
func NewArrayAccess(pos token.SourcePos, array, index Expression) *ArrayAccess {
	return &ArrayAccess{Pos: pos, Array: array, Index: index}
}

func (n *ArrayAccess) Start() token.SourcePos { return n.Pos }
func (n *ArrayAccess) Type() NodeType         { return ArrayAccessNode }
func (*ArrayAccess) expressionNode()          {}

var (
	_ Expression = (*Variable)(nil)
	_ Expression = (*Number)(nil)
	_ Expression = (*String)(nil)
	_ Expression = (*BinaryOp)(nil)
	_ Expression = (*Array)(nil)
	_ Expression = (*ArrayAccess)(nil)
	_ Node       = (*Condition)(nil)
)

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

import (
	"fmt"
	"io"
	"strings"
)

// Fprint writes a human-readable rendering of the tree rooted at n to w.
//
// Each node is printed on its own line as "├─ KIND" with a short detail for
// leaves and a few statements; its children follow, labelled with their
// field names and indented below it. Fields are printed in the same order
// [Project] uses. Empty statement lists and absent children are skipped.
func Fprint(w io.Writer, n Node) error {
	p := printer{w: w}
	p.node(n, 0)
	return p.err
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *printer) node(n Node, level int) {
	indent := strings.Repeat("  ", level)
	p.printf("%s├─ %s\n", indent, describe(n))

	child := func(name string, c Node) {
		if IsNil(c) {
			return
		}
		p.printf("%s│  └─ %s:\n", indent, name)
		p.node(c, level+2)
	}
	list := func(name string, items []Node) {
		if len(items) == 0 {
			return
		}
		p.printf("%s│  └─ %s:\n", indent, name)
		for i, item := range items {
			if IsNil(item) {
				continue
			}
			p.printf("%s│     [%d]:\n", indent, i)
			p.node(item, level+3)
		}
	}

	switch n := n.(type) {
	case *Program:
		list("statements", statementNodes(n.Statements))
	case *Assignment:
		child("variable", n.Variable)
		child("value", n.Value)
	case *Conditional:
		child("condition", n.Condition)
		child("then_block", n.Then)
		child("else_block", n.Else)
	case *WhileLoop:
		child("condition", n.Condition)
		child("body", n.Body)
	case *ForLoop:
		child("variable", n.Variable)
		child("start", n.RangeStart)
		child("end", n.RangeEnd)
		child("body", n.Body)
	case *Output:
		child("expression", n.Expression)
	case *Block:
		list("statements", statementNodes(n.Statements))
	case *Condition:
		child("left", n.Left)
		child("right", n.Right)
	case *BinaryOp:
		child("left", n.Left)
		child("right", n.Right)
	case *Array:
		items := make([]Node, len(n.Elements))
		for i, e := range n.Elements {
			items[i] = e
		}
		list("elements", items)
	case *ArrayAccess:
		child("array", n.Array)
		child("index", n.Index)
	}
}

func describe(n Node) string {
	kind := string(n.Type())
	switch n := n.(type) {
	case *Variable:
		return fmt.Sprintf("%s(%s)", kind, n.Name)
	case *Number:
		return fmt.Sprintf("%s(%d)", kind, n.Value)
	case *String:
		return fmt.Sprintf("%s(%s)", kind, n.Value)
	case *Assignment:
		if n.Variable != nil {
			return fmt.Sprintf("%s(%s)", kind, n.Variable.Name)
		}
	case *BinaryOp:
		return fmt.Sprintf("%s(%v)", kind, n.Operator)
	case *Condition:
		if !IsNil(n.Right) {
			return fmt.Sprintf("%s(%v)", kind, n.Operator)
		}
	case *Array:
		return fmt.Sprintf("%s[%d elements]", kind, len(n.Elements))
	case *ArrayAccess:
		return kind + "(access)"
	}
	return kind
}

func statementNodes(stmts []Statement) []Node {
	nodes := make([]Node, len(stmts))
	for i, s := range stmts {
		nodes[i] = s
	}
	return nodes
}

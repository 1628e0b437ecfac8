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

// Package walk provides helper functions for traversing all nodes in a
// pseudocode syntax tree.
//
// Nodes are visited in pre-order: a node is visited before its children,
// and children are visited in source order. Children that are missing from
// an incomplete tree are skipped.
package walk

import (
	"github.com/bufbuild/pseudocompile/ast"
)

// Nodes walks all nodes in the tree rooted at root, calling fn for each one.
// If fn returns an error, the walk aborts and that error is returned.
func Nodes(root ast.Node, fn func(ast.Node) error) error {
	return NodesEnterAndExit(root, fn, nil)
}

// NodesEnterAndExit walks all nodes in the tree rooted at root. The enter
// function is called before a node's children are visited and exit, if
// non-nil, is called after. If either returns an error, the walk aborts
// and that error is returned.
func NodesEnterAndExit(root ast.Node, enter, exit func(ast.Node) error) error {
	if ast.IsNil(root) {
		return nil
	}
	if err := enter(root); err != nil {
		return err
	}
	for _, child := range Children(root) {
		if err := NodesEnterAndExit(child, enter, exit); err != nil {
			return err
		}
	}
	if exit != nil {
		if err := exit(root); err != nil {
			return err
		}
	}
	return nil
}

// Children returns the direct children of n in source order. Missing
// children are omitted.
func Children(n ast.Node) []ast.Node {
	var children []ast.Node
	add := func(nodes ...ast.Node) {
		for _, child := range nodes {
			if !ast.IsNil(child) {
				children = append(children, child)
			}
		}
	}
	switch n := n.(type) {
	case *ast.Program:
		for _, stmt := range n.Statements {
			add(stmt)
		}
	case *ast.Block:
		for _, stmt := range n.Statements {
			add(stmt)
		}
	case *ast.Assignment:
		add(n.Variable, n.Value)
	case *ast.Conditional:
		add(n.Condition, n.Then, n.Else)
	case *ast.WhileLoop:
		add(n.Condition, n.Body)
	case *ast.ForLoop:
		add(n.Variable, n.RangeStart, n.RangeEnd, n.Body)
	case *ast.Output:
		add(n.Expression)
	case *ast.Condition:
		add(n.Left, n.Right)
	case *ast.BinaryOp:
		add(n.Left, n.Right)
	case *ast.Array:
		for _, elem := range n.Elements {
			add(elem)
		}
	case *ast.ArrayAccess:
		add(n.Array, n.Index)
	case *ast.Variable, *ast.Number, *ast.String:
		// leaves
	}
	return children
}

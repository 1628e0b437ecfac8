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

// NodeType names the kind of a node. The values are the "node_type" strings
// used by [Project].
type NodeType string

const (
	ProgramNode     NodeType = "PROGRAM"
	AssignmentNode  NodeType = "ASSIGNMENT"
	ConditionalNode NodeType = "CONDITIONAL"
	WhileLoopNode   NodeType = "WHILE_LOOP"
	ForLoopNode     NodeType = "FOR_LOOP"
	OutputNode      NodeType = "OUTPUT"
	BlockNode       NodeType = "BLOCK"
	ConditionNode   NodeType = "CONDITION"
	VariableNode    NodeType = "VARIABLE"
	NumberNode      NodeType = "NUMBER"
	StringNode      NodeType = "STRING"
	BinaryOpNode    NodeType = "BINARY_OP"
	ArrayNode       NodeType = "ARRAY"
	ArrayAccessNode NodeType = "ARRAY_ACCESS"
)

// Node is implemented by every node of the tree.
type Node interface {
	// Start returns the position of the first token of this node.
	Start() token.SourcePos
	// Type returns the kind of this node.
	Type() NodeType
}

// Statement is a node that may appear in the statement list of a
// [Program] or a [Block].
//
// Implementations: *Assignment, *Conditional, *WhileLoop, *ForLoop,
// *Output and *Block.
type Statement interface {
	Node
	statementNode()
}

// Expression is a node that produces a value.
//
// Implementations: *Number, *String, *Variable, *ArrayAccess, *Array and
// *BinaryOp.
type Expression interface {
	Node
	expressionNode()
}

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

// Package ast defines types for modeling the AST (Abstract Syntax Tree)
// of the pseudocode teaching language.
//
// All nodes of the tree implement the [Node] interface. Statement nodes
// additionally implement [Statement] and expression nodes implement
// [Expression]; both interfaces are sealed, so the set of node kinds is
// closed and every consumer can switch over it exhaustively. The root of
// the tree for a source file is a *[Program].
//
// Every node records the position of the first token that was consumed
// while building it. Positions exist only for diagnostics: they take no
// part in the structure of the tree.
//
// Parenthesized sub-expressions are not represented: "(a + b)" produces
// the same *[BinaryOp] as "a + b" would in that position.
//
// Creation of AST nodes should prefer the factory functions in this
// package. A tree built by the parser is never mutated afterwards. A tree
// built by hand may be incomplete (for example, an [Assignment] without a
// value); such trees are what the structural validator in package parser
// exists to catch.
//
// A tree can be projected to an ordered key-value form with [Project],
// which is what serializers and exporters consume, and rendered for humans
// with [Fprint].
package ast

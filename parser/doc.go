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

// Package parser contains the front end of the pseudocode toolchain: a
// tokenizer that turns source text into [token.Token] values, a
// recursive-descent parser that builds an [ast.Program] from those tokens,
// and a structural validator that checks the resulting tree.
//
// Tokenizing and parsing fail fast: the first problem aborts the stage and
// is returned as a *[LexicalError] or *[SyntaxError]. Validation never
// aborts on its own; every problem found is reported as a
// *[ValidationError], in the order the nodes are visited.
//
// All error types implement [reporter.ErrorWithPos].
package parser

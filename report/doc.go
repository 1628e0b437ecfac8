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

// Package report renders analysis results for people.
//
// A [Renderer] turns a [pseudocompile.Result] into a report: a status line,
// the number of tokens, each error with an excerpt of the offending source
// line, and optionally the syntax tree, drawn and as JSON. It can also
// print a token table with per-kind statistics.
//
// Error messages are printed with the source line they refer to and a caret
// under the offending column, in the style of rustc:
//
//	error: syntax error: expected RBRACE, got EOF
//	 --> loop.pseudo:1:19
//	  |
//	1 | if (x > 5) { y = 1;
//	  |                    ^
package report

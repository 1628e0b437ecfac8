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

// Package pseudocompile is the entry point for analyzing pseudocode, a small
// imperative teaching language. "Analyze" in this case means tokenizing,
// parsing and structurally validating source, producing a syntax tree that
// later stages (interpreters, printers, exporters) can consume.
//
// The various sub-packages hold the individual phases and their models:
//  1. Tokenize source into tokens.
//     Also see: parser.Tokenize
//  2. Parse tokens into an AST.
//     Also see: parser.Parse
//  3. Validate the structure of the AST.
//     Also see: parser.Validate
//
// The functions in this package run all of the phases and fold any failure
// into a [Result]. Callers that only need to know whether some source is
// valid, and why not, should use [Analyze] or [AnalyzeSource] rather than
// calling the phases directly.
//
// # Resolvers
//
// A [Resolver] is how an [Analyzer] locates the source for a file name. The
// [SourceResolver] loads files from the file system, optionally searching a
// list of directories.
//
// # Analyzer
//
// An [Analyzer] analyzes a batch of files in parallel. A minimal Analyzer,
// which loads files relative to the current working directory, is simply:
//
//	analyzer := pseudocompile.Analyzer{}
//
// The Analyzer's Reporter field, if set, is given every positioned error
// found in every file, and may abort the batch by returning an error.
package pseudocompile

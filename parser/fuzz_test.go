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
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/internal/fuzztesting"
	"github.com/bufbuild/pseudocompile/walk"
)

func FuzzParse(f *testing.F) {
	seeds, err := filepath.Glob(filepath.Join("..", "testdata", "*.pseudo"))
	require.NoError(f, err)
	for _, seed := range seeds {
		data, err := os.ReadFile(seed)
		require.NoError(f, err)
		f.Add(data)
	}
	f.Add([]byte("for i in range(0, 10) { if (i % 2 == 0) print(i); else ; }"))
	f.Add([]byte("a = [1, [2, \"x\"], b[0]];"))

	f.Fuzz(func(t *testing.T, data []byte) {
		fuzztesting.RunWithFuzzerTimeout(t, func(context.Context) {
			tokens, err := Tokenize("fuzz.pseudo", data)
			if err != nil {
				var lexErr *LexicalError
				require.ErrorAs(t, err, &lexErr)
				require.Nil(t, tokens)
				return
			}
			prog, err := Parse("fuzz.pseudo", tokens)
			if err != nil {
				var syntaxErr *SyntaxError
				require.ErrorAs(t, err, &syntaxErr)
				require.Nil(t, prog)
				return
			}
			require.NotNil(t, prog)
			for _, verr := range Validate(prog) {
				require.NotNil(t, verr.Node)
			}
			// every node must be reachable and positioned within the input
			require.NoError(t, walk.Nodes(prog, func(n ast.Node) error {
				require.Positive(t, n.Start().Line)
				return nil
			}))
		})
	})
}

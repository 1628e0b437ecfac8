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

package pseudocompile

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// benchmarkSource returns a valid program with n loops.
func benchmarkSource(n int) string {
	var buf strings.Builder
	buf.WriteString("total = 0;\nitems = [1, 2, 3, \"four\"];\n")
	for i := range n {
		fmt.Fprintf(&buf, "for i%d in range(0, %d) {\n", i, i+10)
		fmt.Fprintf(&buf, "\tif (i%d %% 2 == 0) total = total + items[i%d %% 3] * 2; else { print(\"odd\"); }\n", i, i)
		fmt.Fprintf(&buf, "\twhile (total > 100) total = total - %d;\n}\n", i+1)
	}
	return buf.String()
}

func BenchmarkAnalyze(b *testing.B) {
	src := benchmarkSource(500)
	b.SetBytes(int64(len(src)))
	b.ResetTimer()
	for range b.N {
		res := Analyze(src)
		require.True(b, res.Success, "%v", res.Errors)
	}
}

func BenchmarkAnalyzeFiles(b *testing.B) {
	files := make(map[string]string, 64)
	names := make([]string, 0, 64)
	for i := range 64 {
		name := fmt.Sprintf("file%d.pseudo", i)
		files[name] = benchmarkSource(50)
		names = append(names, name)
	}
	analyzer := &Analyzer{
		Resolver: &SourceResolver{Accessor: mapAccessor(files)},
		// leave MaxParallelism unset to let it use all cores available
	}
	b.ResetTimer()
	for range b.N {
		results, err := analyzer.AnalyzeFiles(context.Background(), names...)
		require.NoError(b, err)
		require.Len(b, results, len(names))
	}
}

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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/pseudocompile/internal/corpora"
)

func TestCorpus(t *testing.T) {
	t.Parallel()
	corpus := corpora.Corpus{
		Root:      "testdata",
		Refresh:   "PSEUDOCOMPILE_REFRESH",
		Extension: "pseudo",
		Outputs: []corpora.Output{
			{Extension: "errors"},
			{Extension: "yaml", Compare: corpora.CompareYAML},
		},
		Test: func(t *testing.T, path, text string) []string {
			res := AnalyzeSource(path, strings.NewReader(text))

			var errs string
			if len(res.Errors) > 0 {
				errs = strings.Join(res.Errors, "\n") + "\n"
			}

			var projection string
			if obj := res.Projection(); obj != nil {
				data, err := yaml.Marshal(obj)
				require.NoError(t, err)
				projection = string(data)
			}
			return []string{errs, projection}
		},
	}
	corpus.Run(t)
}

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

package export_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/pseudocompile"
	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/export"
	"github.com/bufbuild/pseudocompile/token"
)

const source = `nums = [1, 2];
for i in range(0, 2) {
  if (nums[i] >= 2) print("two"); else print(nums[i]);
}
`

func analyzed(t *testing.T) *ast.Program {
	t.Helper()
	res := pseudocompile.Analyze(source)
	require.True(t, res.Success, "%v", res.Errors)
	return res.AST
}

// numbersAsFloats converts the ints of a projection map into float64, the
// only numeric type a google.protobuf.Struct can hold.
func numbersAsFloats(v any) any {
	switch v := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, e := range v {
			out[k] = numbersAsFloats(e)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, e := range v {
			out[i] = numbersAsFloats(e)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return v
	}
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	for _, name := range []string{"json", "YAML", "ProtoJSON", "proto"} {
		f, err := export.ParseFormat(name)
		require.NoError(t, err)
		assert.Equal(t, strings.ToLower(name), string(f))
	}
	_, err := export.ParseFormat("xml")
	assert.ErrorContains(t, err, `unknown export format "xml"`)

	assert.True(t, export.Proto.Binary())
	assert.False(t, export.ProtoJSON.Binary())
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()
	prog := analyzed(t)
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.JSON, prog))
	assert.True(t, strings.HasPrefix(buf.String(), "{\n  \"node_type\": \"PROGRAM\",\n  \"line\": 1,\n  \"column\": 0,\n  \"statements\": ["))
	assert.True(t, strings.HasSuffix(buf.String(), "}\n"))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, cmp.Diff(numbersAsFloats(ast.Project(prog).Map()), decoded))
}

func TestWriteYAML(t *testing.T) {
	t.Parallel()
	prog := analyzed(t)
	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.YAML, prog))
	assert.True(t, strings.HasPrefix(buf.String(), "node_type: PROGRAM\nline: 1\ncolumn: 0\nstatements:\n"))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Empty(t, cmp.Diff(numbersAsFloats(ast.Project(prog).Map()), numbersAsFloats(decoded)))
}

func TestWriteProto(t *testing.T) {
	t.Parallel()
	prog := analyzed(t)
	want := numbersAsFloats(ast.Project(prog).Map())

	var buf bytes.Buffer
	require.NoError(t, export.Write(&buf, export.Proto, prog))
	var st structpb.Struct
	require.NoError(t, proto.Unmarshal(buf.Bytes(), &st))
	assert.Empty(t, cmp.Diff(want, st.AsMap()))

	// binary output is deterministic
	var again bytes.Buffer
	require.NoError(t, export.Write(&again, export.Proto, prog))
	assert.Equal(t, buf.Bytes(), again.Bytes())

	buf.Reset()
	require.NoError(t, export.Write(&buf, export.ProtoJSON, prog))
	st.Reset()
	require.NoError(t, protojson.Unmarshal(buf.Bytes(), &st))
	assert.Empty(t, cmp.Diff(want, st.AsMap()))
}

func TestStruct(t *testing.T) {
	t.Parallel()
	st, err := export.Struct(ast.Project(ast.NewVariable(token.SourcePos{Line: 1}, "x")))
	require.NoError(t, err)
	assert.Equal(t, "VARIABLE", st.GetFields()["node_type"].GetStringValue())
	assert.Equal(t, "x", st.GetFields()["name"].GetStringValue())
	assert.InDelta(t, 1, st.GetFields()["line"].GetNumberValue(), 0)
}

func TestWriteErrors(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.ErrorContains(t, export.Write(&buf, export.JSON, nil), "no syntax tree")
	var prog *ast.Program
	assert.ErrorContains(t, export.Write(&buf, export.JSON, prog), "no syntax tree")
	assert.ErrorContains(t, export.Write(&buf, "toml", analyzed(t)), `unknown export format "toml"`)
	assert.Zero(t, buf.Len())
}

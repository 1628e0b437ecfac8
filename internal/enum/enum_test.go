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


package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckedInKindsAreCurrent(t *testing.T) {
	t.Parallel()

	yamlText, err := os.ReadFile("../../token/kind.yaml")
	require.NoError(t, err)
	want, err := os.ReadFile("../../token/kind.go")
	require.NoError(t, err)

	dir := t.TempDir()
	config := filepath.Join(dir, "kind.yaml")
	require.NoError(t, os.WriteFile(config, yamlText, 0o644))
	require.NoError(t, Main(defaultBinary, "token", config))

	got, err := os.ReadFile(filepath.Join(dir, "kind.go"))
	require.NoError(t, err)
	assert.Equal(t, string(want), string(got), "token/kind.go is stale; run go generate ./token")
}

func TestGenerateErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config string
		errMsg string
	}{
		{
			name: "from-string without name",
			config: `
- name: Color
  type: int
  methods:
  - kind: from-string
  values:
  - name: Red
`,
			errMsg: "missing name for from-string method",
		},
		{
			name: "unknown method kind",
			config: `
- name: Color
  type: int
  methods:
  - kind: bogus
  values:
  - name: Red
`,
			errMsg: `unexpected method kind "bogus"`,
		},
		{
			name: "duplicate value",
			config: `
- name: Color
  type: int
  values:
  - name: Red
  - name: Red
`,
			errMsg: "duplicate value Red",
		},
		{
			name: "no values",
			config: `
- name: Color
  type: int
`,
			errMsg: "has no values",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()
			config := filepath.Join(t.TempDir(), "color.yaml")
			require.NoError(t, os.WriteFile(config, []byte(test.config), 0o644))
			_, err := Generate(defaultBinary, "paint", config)
			require.ErrorContains(t, err, test.errMsg)
		})
	}
}

func TestGenerateRequiresYAML(t *testing.T) {
	t.Parallel()
	_, err := Generate(defaultBinary, "paint", "color.json")
	require.EqualError(t, err, "file argument must end in .yaml")
}

func TestGenerateDefaults(t *testing.T) {
	t.Parallel()

	config := filepath.Join(t.TempDir(), "color.yaml")
	require.NoError(t, os.WriteFile(config, []byte(`
- name: Color
  type: uint8
  methods:
  - kind: string
  - kind: from-string
    name: ColorByName
  values:
  - name: Red
  - name: Green
    string: green
`), 0o644))
	src, err := Generate(defaultBinary, "paint", config)
	require.NoError(t, err)

	text := string(src)
	assert.Contains(t, text, "// Code generated by "+defaultBinary+" color.yaml. DO NOT EDIT.")
	assert.Contains(t, text, "package paint")
	assert.Contains(t, text, "type Color uint8")
	assert.Contains(t, text, "Red Color = iota")
	assert.Contains(t, text, "// String implements [fmt.Stringer].\nfunc (v Color) String() string {")
	assert.Contains(t, text, "func ColorByName(s string) (Color, bool) {")
	assert.Contains(t, text, `Green: "green",`)
	assert.Contains(t, text, `"green": Green,`)
	assert.NotContains(t, text, "GoString")
}

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


// enum generates the boilerplate that goes with a Go enum, such as the token
// kinds.
//
// To generate boilerplate for a given file, use
//
//	//go:generate go run github.com/bufbuild/pseudocompile/internal/enum kind.yaml
//
// Each argument is a YAML file containing a list of [Enum]. The output is
// written next to it with a .go extension, so kind.yaml generates kind.go.
package main

import (
	_ "embed"
	"errors"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

// defaultBinary is named in generated headers when build info is missing.
const defaultBinary = "github.com/bufbuild/pseudocompile/internal/enum"

// Enum describes one generated type.
type Enum struct {
	Name    string   `yaml:"name"` // The name of the new type.
	Type    string   `yaml:"type"` // The underlying type.
	Docs    string   `yaml:"docs"`
	Methods []Method `yaml:"methods"`
	Values  []Value  `yaml:"values"`
}

// Value is one constant of an [Enum]. Values are numbered from zero in the
// order they are listed.
type Value struct {
	Name string `yaml:"name"`
	Text string `yaml:"string"` // What String returns; defaults to Name.
	Docs string `yaml:"docs"`
}

func (v Value) String() string {
	if v.Text == "" {
		return v.Name
	}
	return v.Text
}

// Method is a method or function generated for an [Enum].
type Method struct {
	Kind MethodKind `yaml:"kind"`
	Name string     `yaml:"name"` // Required for from-string.
	Docs string     `yaml:"docs"`
}

type MethodKind string

const (
	MethodString     MethodKind = "string"
	MethodGoString   MethodKind = "go-string"
	MethodFromString MethodKind = "from-string"
)

// resolve fills in default method names and docs, and rejects enums the
// template cannot render.
func (e *Enum) resolve() error {
	if e.Name == "" {
		return errors.New("enum without a name")
	}
	if len(e.Values) == 0 {
		return fmt.Errorf("enum %s has no values", e.Name)
	}
	seen := make(map[string]bool, len(e.Values))
	for _, v := range e.Values {
		if seen[v.Name] {
			return fmt.Errorf("enum %s: duplicate value %s", e.Name, v.Name)
		}
		seen[v.Name] = true
	}
	for i := range e.Methods {
		m := &e.Methods[i]
		switch m.Kind {
		case MethodString:
			if m.Name == "" {
				m.Name = "String"
			}
			if m.Docs == "" {
				m.Docs = "String implements [fmt.Stringer]."
			}
		case MethodGoString:
			if m.Name == "" {
				m.Name = "GoString"
			}
			if m.Docs == "" {
				m.Docs = "GoString implements [fmt.GoStringer]."
			}
		case MethodFromString:
			if m.Name == "" {
				return fmt.Errorf("enum %s: missing name for %s method", e.Name, m.Kind)
			}
		default:
			return fmt.Errorf("enum %s: unexpected method kind %q", e.Name, m.Kind)
		}
	}
	return nil
}

//go:embed enum.go.tmpl
var tmplText string

var tmpl = template.Must(template.New("enum.go.tmpl").Funcs(template.FuncMap{
	"makeDocs": makeDocs,
	"chomp":    chomp,
}).Parse(tmplText))

func chomp(s string) string {
	return strings.TrimSuffix(s, "\n")
}

// makeDocs converts data into doc comment lines, each prefixed with indent.
func makeDocs(data, indent string) string {
	if data == "" {
		return ""
	}

	var out strings.Builder
	for _, line := range strings.Split(strings.TrimSpace(data), "\n") {
		out.WriteString(indent)
		if line == "" {
			out.WriteString("//\n")
			continue
		}
		out.WriteString("// ")
		out.WriteString(line)
		out.WriteString("\n")
	}
	return out.String()
}

// Generate renders the enums listed in config as formatted Go source for
// package pkg. binary is named in the generated header.
func Generate(binary, pkg, config string) ([]byte, error) {
	if filepath.Ext(config) != ".yaml" {
		return nil, errors.New("file argument must end in .yaml")
	}
	text, err := os.ReadFile(config)
	if err != nil {
		return nil, err
	}

	input := struct {
		Binary, Package, Config string
		Enums                   []Enum
	}{
		Binary:  binary,
		Package: pkg,
		Config:  filepath.Base(config),
	}
	if err := yaml.Unmarshal(text, &input.Enums); err != nil {
		return nil, err
	}
	for i := range input.Enums {
		if err := input.Enums[i].resolve(); err != nil {
			return nil, err
		}
	}

	var buf strings.Builder
	if err := tmpl.Execute(&buf, input); err != nil {
		return nil, err
	}
	src, err := format.Source([]byte(buf.String()))
	if err != nil {
		return nil, fmt.Errorf("formatting generated code: %w", err)
	}
	return src, nil
}

// Main generates the Go file for config and writes it next to config.
func Main(binary, pkg, config string) error {
	src, err := Generate(binary, pkg, config)
	if err != nil {
		return err
	}
	return os.WriteFile(strings.TrimSuffix(config, ".yaml")+".go", src, 0o644)
}

func main() {
	binary := defaultBinary
	if info, ok := debug.ReadBuildInfo(); ok && info.Path != "" {
		binary = info.Path
	}

	var failed bool
	for _, config := range os.Args[1:] {
		if err := Main(binary, os.Getenv("GOPACKAGE"), config); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", config, err)
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
}

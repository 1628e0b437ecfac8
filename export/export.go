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

// Package export serializes syntax trees for consumption by other tools.
//
// Every format is a rendering of the tree's projection (see [ast.Project]).
// The text formats keep the projection's key order. The protobuf formats
// carry the projection as a google.protobuf.Struct, whose keys are unordered
// and whose numbers are doubles.
package export

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"

	"github.com/bufbuild/pseudocompile/ast"
)

// Format names an output format.
type Format string

const (
	// JSON is indented JSON, with keys in projection order.
	JSON Format = "json"
	// YAML is block-style YAML, with keys in projection order.
	YAML Format = "yaml"
	// ProtoJSON is the canonical JSON form of a google.protobuf.Struct.
	ProtoJSON Format = "protojson"
	// Proto is the binary wire form of a google.protobuf.Struct.
	Proto Format = "proto"
)

// Formats lists every supported format.
var Formats = []Format{JSON, YAML, ProtoJSON, Proto}

// ParseFormat returns the format with the given name. Names are not case
// sensitive.
func ParseFormat(name string) (Format, error) {
	f := Format(strings.ToLower(name))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown export format %q (want one of %v)", name, Formats)
}

// Binary reports whether the format produces non-text output.
func (f Format) Binary() bool {
	return f == Proto
}

// Write serializes the tree rooted at node to w.
func Write(w io.Writer, format Format, node ast.Node) error {
	if ast.IsNil(node) {
		return fmt.Errorf("export: no syntax tree to write")
	}
	obj := ast.Project(node)

	var data []byte
	var err error
	switch format {
	case JSON:
		data, err = json.MarshalIndent(obj, "", "  ")
		data = append(data, '\n')
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(obj); err != nil {
			return err
		}
		return enc.Close()
	case ProtoJSON:
		var st *structpb.Struct
		if st, err = Struct(obj); err != nil {
			return err
		}
		data, err = protojson.MarshalOptions{Indent: "  ", Multiline: true}.Marshal(st)
		data = append(data, '\n')
	case Proto:
		var st *structpb.Struct
		if st, err = Struct(obj); err != nil {
			return err
		}
		data, err = proto.MarshalOptions{Deterministic: true}.Marshal(st)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// Struct converts a projection into a google.protobuf.Struct.
func Struct(obj ast.Object) (*structpb.Struct, error) {
	st, err := structpb.NewStruct(obj.Map())
	if err != nil {
		return nil, fmt.Errorf("export: %w", err)
	}
	return st, nil
}

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

package ast

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Field is a single entry of an [Object].
type Field struct {
	Key   string
	Value any
}

// Object is an ordered key-value structure. It is the projection of a node
// produced by [Project], suitable for serialization: it marshals to JSON
// and YAML with its keys in order.
//
// Values are one of string, int, int64, Object or []Object.
type Object []Field

// Get returns the value for key, if present.
func (o Object) Get(key string) (any, bool) {
	for _, f := range o {
		if f.Key == key {
			return f.Value, true
		}
	}
	return nil, false
}

// Keys returns the keys of o, in order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, f := range o {
		keys[i] = f.Key
	}
	return keys
}

// Map converts o into nested maps and slices, dropping key order. Nested
// Objects become map[string]any and []Object becomes []any.
func (o Object) Map() map[string]any {
	m := make(map[string]any, len(o))
	for _, f := range o {
		m[f.Key] = plainValue(f.Value)
	}
	return m
}

func plainValue(v any) any {
	switch v := v.(type) {
	case Object:
		return v.Map()
	case []Object:
		s := make([]any, len(v))
		for i, e := range v {
			s[i] = e.Map()
		}
		return s
	default:
		return v
	}
}

// MarshalJSON implements [json.Marshaler].
func (o Object) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range o {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Key)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(f.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements [yaml.Marshaler].
func (o Object) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode}
	for _, f := range o {
		var key, val yaml.Node
		if err := key.Encode(f.Key); err != nil {
			return nil, err
		}
		if err := val.Encode(f.Value); err != nil {
			return nil, err
		}
		node.Content = append(node.Content, &key, &val)
	}
	return node, nil
}

// Project converts the tree rooted at n into its ordered key-value form.
//
// Every object starts with "node_type", "line" and "column", followed by the
// fields of that node kind in declaration order. Absent optional children
// (an else branch, the right side of a bare condition) are omitted, as are
// nil children of hand-built, incomplete trees. Operators are rendered as
// token kind names, such as "PLUS" or "GEQ".
func Project(n Node) Object {
	pos := n.Start()
	obj := Object{
		{Key: "node_type", Value: string(n.Type())},
		{Key: "line", Value: pos.Line},
		{Key: "column", Value: pos.Col},
	}
	add := func(key string, child Node) {
		if !IsNil(child) {
			obj = append(obj, Field{Key: key, Value: Project(child)})
		}
	}

	switch n := n.(type) {
	case *Program:
		if n.Statements != nil {
			obj = append(obj, Field{Key: "statements", Value: projectStatements(n.Statements)})
		}
	case *Assignment:
		add("variable", n.Variable)
		add("value", n.Value)
	case *Conditional:
		add("condition", n.Condition)
		add("then_block", n.Then)
		add("else_block", n.Else)
	case *WhileLoop:
		add("condition", n.Condition)
		add("body", n.Body)
	case *ForLoop:
		add("variable", n.Variable)
		add("start", n.RangeStart)
		add("end", n.RangeEnd)
		add("body", n.Body)
	case *Output:
		add("expression", n.Expression)
	case *Block:
		if n.Statements != nil {
			obj = append(obj, Field{Key: "statements", Value: projectStatements(n.Statements)})
		}
	case *Condition:
		add("left", n.Left)
		if !IsNil(n.Right) {
			obj = append(obj, Field{Key: "operator", Value: n.Operator.String()})
		}
		add("right", n.Right)
	case *Variable:
		obj = append(obj, Field{Key: "name", Value: n.Name})
	case *Number:
		obj = append(obj, Field{Key: "value", Value: n.Value})
	case *String:
		obj = append(obj, Field{Key: "value", Value: n.Value})
	case *BinaryOp:
		add("left", n.Left)
		obj = append(obj, Field{Key: "operator", Value: n.Operator.String()})
		add("right", n.Right)
	case *Array:
		elems := make([]Object, 0, len(n.Elements))
		for _, e := range n.Elements {
			if !IsNil(e) {
				elems = append(elems, Project(e))
			}
		}
		obj = append(obj, Field{Key: "elements", Value: elems})
	case *ArrayAccess:
		add("array", n.Array)
		add("index", n.Index)
	}
	return obj
}

func projectStatements(stmts []Statement) []Object {
	objs := make([]Object, 0, len(stmts))
	for _, s := range stmts {
		if !IsNil(s) {
			objs = append(objs, Project(s))
		}
	}
	return objs
}

// IsNil reports whether n is nil or a typed nil pointer, which is what an
// unset field of interface type holds after assigning a nil *T to it.
func IsNil(n Node) bool {
	if n == nil {
		return true
	}
	switch n := n.(type) {
	case *Program:
		return n == nil
	case *Assignment:
		return n == nil
	case *Conditional:
		return n == nil
	case *WhileLoop:
		return n == nil
	case *ForLoop:
		return n == nil
	case *Output:
		return n == nil
	case *Block:
		return n == nil
	case *Condition:
		return n == nil
	case *Variable:
		return n == nil
	case *Number:
		return n == nil
	case *String:
		return n == nil
	case *BinaryOp:
		return n == nil
	case *Array:
		return n == nil
	case *ArrayAccess:
		return n == nil
	default:
		return false
	}
}

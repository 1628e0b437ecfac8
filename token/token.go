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

package token

import "fmt"

// Token is a single lexical element. Tokens are produced once per analysis
// and are never mutated afterwards.
type Token struct {
	// The exact lexeme, as it appears in the source. String literals keep
	// their quotes.
	Text string
	Kind Kind
	Pos  SourcePos
}

func (t Token) String() string {
	switch t.Kind {
	case ID, NUMBER, STRING:
		return fmt.Sprintf("%v(%s)", t.Kind, t.Text)
	default:
		return t.Kind.String()
	}
}

// SourcePos identifies a location in a source file.
//
// Line is one-based. Col is the zero-based offset, in runes, from the start
// of the line.
type SourcePos struct {
	Filename string
	Line     int
	Col      int
}

func (pos SourcePos) String() string {
	if pos.Line <= 0 {
		return pos.Filename
	}
	if pos.Filename == "" {
		return fmt.Sprintf("%d:%d", pos.Line, pos.Col)
	}
	return fmt.Sprintf("%s:%d:%d", pos.Filename, pos.Line, pos.Col)
}

var keywords = map[string]Kind{
	"if":    IF,
	"else":  ELSE,
	"while": WHILE,
	"for":   FOR,
	"in":    IN,
	"range": RANGE,
	"print": PRINT,
}

// Lookup classifies an identifier lexeme, returning its keyword kind if it
// is reserved and [ID] otherwise.
func Lookup(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return ID
}

// IsKeyword reports whether the kind is one of the reserved words.
func (v Kind) IsKeyword() bool {
	return v >= IF && v <= PRINT
}

// IsComparator reports whether the kind may join the two sides of a condition.
func (v Kind) IsComparator() bool {
	switch v {
	case EQ, NEQ, LT, GT, LEQ, GEQ:
		return true
	default:
		return false
	}
}

// IsAdditive reports whether the kind is an additive operator.
func (v Kind) IsAdditive() bool {
	return v == PLUS || v == MINUS
}

// IsMultiplicative reports whether the kind is a multiplicative operator.
func (v Kind) IsMultiplicative() bool {
	return v == MUL || v == DIV || v == MOD
}

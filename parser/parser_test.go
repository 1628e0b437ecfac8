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
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/token"
	"github.com/bufbuild/pseudocompile/walk"
)

func parseForTest(t *testing.T, source string) (*ast.Program, error) {
	t.Helper()
	tokens, err := Tokenize("test.pseudo", []byte(source))
	require.NoError(t, err)
	return Parse("test.pseudo", tokens)
}

// sexpr renders a tree compactly, ignoring positions.
func sexpr(n ast.Node) string {
	if ast.IsNil(n) {
		return "<nil>"
	}
	list := func(prefix, open, closing string, nodes ...ast.Node) string {
		parts := make([]string, 0, len(nodes)+1)
		if prefix != "" {
			parts = append(parts, prefix)
		}
		for _, node := range nodes {
			parts = append(parts, sexpr(node))
		}
		return open + strings.Join(parts, " ") + closing
	}
	switch n := n.(type) {
	case *ast.Program:
		return list("program", "(", ")", stmtNodes(n.Statements)...)
	case *ast.Block:
		return list("", "{", "}", stmtNodes(n.Statements)...)
	case *ast.Assignment:
		return list("=", "(", ")", n.Variable, n.Value)
	case *ast.Conditional:
		if n.Else == nil {
			return list("if", "(", ")", n.Condition, n.Then)
		}
		return list("if", "(", ")", n.Condition, n.Then, n.Else)
	case *ast.WhileLoop:
		return list("while", "(", ")", n.Condition, n.Body)
	case *ast.ForLoop:
		return list("for", "(", ")", n.Variable, n.RangeStart, n.RangeEnd, n.Body)
	case *ast.Output:
		return list("print", "(", ")", n.Expression)
	case *ast.Condition:
		if !n.HasComparison() {
			return list("cond", "(", ")", n.Left)
		}
		return list(n.Operator.String(), "(", ")", n.Left, n.Right)
	case *ast.BinaryOp:
		return list(n.Operator.String(), "(", ")", n.Left, n.Right)
	case *ast.ArrayAccess:
		return list("index", "(", ")", n.Array, n.Index)
	case *ast.Array:
		elems := make([]ast.Node, len(n.Elements))
		for i, elem := range n.Elements {
			elems[i] = elem
		}
		return list("", "[", "]", elems...)
	case *ast.Variable:
		return n.Name
	case *ast.Number:
		return strconv.FormatInt(n.Value, 10)
	case *ast.String:
		return n.Value
	default:
		return fmt.Sprintf("?%T", n)
	}
}

func stmtNodes(stmts []ast.Statement) []ast.Node {
	nodes := make([]ast.Node, len(stmts))
	for i, stmt := range stmts {
		nodes[i] = stmt
	}
	return nodes
}

func TestParse(t *testing.T) {
	t.Parallel()
	testCases := map[string]struct {
		source string
		want   string
	}{
		"precedence": {
			source: "x = 1 + 2 * 3 - 4;",
			want:   "(program (= x (MINUS (PLUS 1 (MUL 2 3)) 4)))",
		},
		"left-associative": {
			source: "x = a - b - c; y = a / b % c;",
			want:   "(program (= x (MINUS (MINUS a b) c)) (= y (MOD (DIV a b) c)))",
		},
		"parentheses": {
			source: "x = (1 + 2) * (3);",
			want:   "(program (= x (MUL (PLUS 1 2) 3)))",
		},
		"index-chain": {
			source: "x = a[i][j + 1];",
			want:   "(program (= x (index (index a i) (PLUS j 1))))",
		},
		"array-literal": {
			source: `x = [1, "two", [3], []];`,
			want:   `(program (= x [1 "two" [3] []]))`,
		},
		"if-else": {
			source: "if (x > 5) { y = 1; } else { y = 2; }",
			want:   "(program (if (GT x 5) {(= y 1)} {(= y 2)}))",
		},
		"if-without-else": {
			source: "if (x != 0) { }",
			want:   "(program (if (NEQ x 0) {}))",
		},
		"braceless-else-if": {
			source: "if (a) print(1); else if (b == 2) print(2);",
			want:   "(program (if (cond a) {(print 1)} {(if (EQ b 2) {(print 2)})}))",
		},
		"while": {
			source: "while (i <= 10) { i = i + 1; }",
			want:   "(program (while (LEQ i 10) {(= i (PLUS i 1))}))",
		},
		"while-empty-body": {
			source: "while (x > 0);",
			want:   "(program (while (GT x 0) {}))",
		},
		"while-bare-condition": {
			source: "while (flag) { }",
			want:   "(program (while (cond flag) {}))",
		},
		"for": {
			source: "for i in range(0, n - 1) { print(arr[i]); }",
			want:   "(program (for i 0 (MINUS n 1) {(print (index arr i))}))",
		},
		"for-empty-body": {
			source: "for i in range(1, 10);",
			want:   "(program (for i 1 10 {}))",
		},
		"nested-blocks": {
			source: "{ x = 1; { } }",
			want:   "(program {(= x 1) {}})",
		},
		"print-string": {
			source: `print("Result: " + y);`,
			want:   `(program (print (PLUS "Result: " y)))`,
		},
		"comparison-of-expressions": {
			source: "if (a + 1 >= b * 2) { }",
			want:   "(program (if (GEQ (PLUS a 1) (MUL b 2)) {}))",
		},
		"empty": {
			source: "# nothing here\n",
			want:   "(program)",
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			prog, err := parseForTest(t, tc.source)
			require.NoError(t, err)
			assert.Equal(t, tc.want, sexpr(prog))
		})
	}
}

func TestParsePositions(t *testing.T) {
	t.Parallel()
	prog, err := parseForTest(t, "while (x > 0);\nif (y) z = a[1] + 2;\n{\n}\n")
	require.NoError(t, err)
	require.Len(t, prog.Statements, 3)
	assert.Equal(t, at(1, 0), prog.Start())

	loop, ok := prog.Statements[0].(*ast.WhileLoop)
	require.True(t, ok)
	assert.Equal(t, at(1, 0), loop.Start())
	assert.Equal(t, at(1, 7), loop.Condition.Start())
	// an empty body is positioned at the loop keyword
	assert.Equal(t, at(1, 0), loop.Body.Start())
	assert.NotNil(t, loop.Body.Statements)
	assert.Empty(t, loop.Body.Statements)

	cond, ok := prog.Statements[1].(*ast.Conditional)
	require.True(t, ok)
	assert.Equal(t, at(2, 0), cond.Start())
	// a braceless body is positioned at its statement
	assert.Equal(t, at(2, 7), cond.Then.Start())
	require.Len(t, cond.Then.Statements, 1)
	assign, ok := cond.Then.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	assert.Equal(t, at(2, 7), assign.Start())
	assert.Equal(t, at(2, 7), assign.Variable.Start())
	sum, ok := assign.Value.(*ast.BinaryOp)
	require.True(t, ok)
	assert.Equal(t, at(2, 11), sum.Start())
	access, ok := sum.Left.(*ast.ArrayAccess)
	require.True(t, ok)
	assert.Equal(t, at(2, 11), access.Start())
	assert.Equal(t, at(2, 13), access.Index.Start())
	assert.Equal(t, at(2, 18), sum.Right.Start())

	block, ok := prog.Statements[2].(*ast.Block)
	require.True(t, ok)
	assert.Equal(t, at(3, 0), block.Start())
}

func TestParseEmpty(t *testing.T) {
	t.Parallel()
	prog, err := Parse("empty.pseudo", nil)
	require.NoError(t, err)
	assert.NotNil(t, prog.Statements)
	assert.Empty(t, prog.Statements)
	assert.Equal(t, token.SourcePos{Filename: "empty.pseudo", Line: 1}, prog.Start())
}

func TestParseErrors(t *testing.T) {
	t.Parallel()
	testCases := []struct {
		source   string
		expected string
		found    token.Kind
		msg      string
	}{
		{
			source: "if (x > 5) { y = 1;", expected: "RBRACE", found: token.EOF,
			msg: "1:19: syntax error: expected RBRACE, got EOF",
		},
		{
			source: "x = 1", expected: "SEMI", found: token.EOF,
			msg: "1:5: syntax error: expected SEMI, got EOF",
		},
		{
			source: "x + 1;", expected: "statement", found: token.ID,
			msg: "1:0: syntax error: expected statement, got ID(x)",
		},
		{
			source: "print(x)", expected: "SEMI", found: token.EOF,
			msg: "1:8: syntax error: expected SEMI, got EOF",
		},
		{
			source: "if (a > 1 && b > 2) { }", expected: "RPAREN", found: token.AND,
			msg: "1:10: syntax error: expected RPAREN, got AND",
		},
		{
			source: "while (a || b);", expected: "RPAREN", found: token.OR,
			msg: "1:9: syntax error: expected RPAREN, got OR",
		},
		{
			source: "x = ;", expected: "expression", found: token.SEMI,
			msg: "1:4: syntax error: expected expression, got SEMI",
		},
		{
			source: "x = 99999999999999999999;", expected: "integer no larger than 9223372036854775807", found: token.NUMBER,
			msg: "1:4: syntax error: expected integer no larger than 9223372036854775807, got NUMBER(99999999999999999999)",
		},
		{
			source: "for i in (0, 3) {}", expected: "RANGE", found: token.LPAREN,
			msg: "1:9: syntax error: expected RANGE, got LPAREN",
		},
		{
			source: "if (x) ;", expected: "statement", found: token.SEMI,
			msg: "1:7: syntax error: expected statement, got SEMI",
		},
		{
			source: "}", expected: "statement", found: token.RBRACE,
			msg: "1:0: syntax error: expected statement, got RBRACE",
		},
		{
			source: "x = [1, 2;", expected: "RBRACKET", found: token.SEMI,
			msg: "1:9: syntax error: expected RBRACKET, got SEMI",
		},
		{
			source: "else { }", expected: "statement", found: token.ELSE,
			msg: "1:0: syntax error: expected statement, got ELSE",
		},
		{
			source: "x = 1;\ny = (2 + 3;", expected: "RPAREN", found: token.SEMI,
			msg: "2:10: syntax error: expected RPAREN, got SEMI",
		},
		{
			source: `print("a" "b");`, expected: "RPAREN", found: token.STRING,
			msg: `1:10: syntax error: expected RPAREN, got STRING("b")`,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.source, func(t *testing.T) {
			t.Parallel()
			tokens, err := Tokenize("", []byte(tc.source))
			require.NoError(t, err)
			prog, err := Parse("", tokens)
			assert.Nil(t, prog)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, tc.expected, syntaxErr.Expected)
			assert.Equal(t, tc.found, syntaxErr.Found.Kind)
			assert.Equal(t, syntaxErr.Found.Pos, syntaxErr.GetPosition())
			assert.EqualError(t, err, tc.msg)
		})
	}
}

func TestParseStringKeepsQuotes(t *testing.T) {
	t.Parallel()
	prog, err := parseForTest(t, `print("hi there");`)
	require.NoError(t, err)
	out, ok := prog.Statements[0].(*ast.Output)
	require.True(t, ok)
	str, ok := out.Expression.(*ast.String)
	require.True(t, ok)
	assert.Equal(t, `"hi there"`, str.Value)

	prog, err = parseForTest(t, `x = "";`)
	require.NoError(t, err)
	assign, ok := prog.Statements[0].(*ast.Assignment)
	require.True(t, ok)
	str, ok = assign.Value.(*ast.String)
	require.True(t, ok)
	assert.Equal(t, `""`, str.Value)
}

func TestParseNestingLimit(t *testing.T) {
	t.Parallel()

	balanced := func(depth int) string {
		return "x = " + strings.Repeat("(", depth) + "1" + strings.Repeat(")", depth) + ";"
	}
	t.Run("deepest allowed", func(t *testing.T) {
		t.Parallel()
		prog, err := parseForTest(t, balanced(MaxNestingDepth-2))
		require.NoError(t, err)
		require.Len(t, prog.Statements, 1)
	})
	t.Run("one too deep", func(t *testing.T) {
		t.Parallel()
		_, err := parseForTest(t, balanced(MaxNestingDepth-1))
		var syntaxErr *SyntaxError
		require.ErrorAs(t, err, &syntaxErr)
		assert.Equal(t, "nesting no deeper than 10000", syntaxErr.Expected)
		assert.Equal(t, token.NUMBER, syntaxErr.Found.Kind)
	})

	testCases := map[string]struct {
		source string
		found  token.Kind
		msg    string
	}{
		"parens": {
			source: "x = " + strings.Repeat("(", 1_000_000),
			found:  token.LPAREN,
			msg:    "1:10003: syntax error: expected nesting no deeper than 10000, got LPAREN",
		},
		"braces": {
			source: strings.Repeat("{", 20_000),
			found:  token.LBRACE,
			msg:    "1:10000: syntax error: expected nesting no deeper than 10000, got LBRACE",
		},
		"brackets": {
			source: "x = " + strings.Repeat("[", 20_000),
			found:  token.LBRACKET,
		},
		"if chain": {
			source: strings.Repeat("if (x) ", 20_000),
			found:  token.IF,
		},
	}
	for name, tc := range testCases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			prog, err := parseForTest(t, tc.source)
			assert.Nil(t, prog)
			var syntaxErr *SyntaxError
			require.ErrorAs(t, err, &syntaxErr)
			assert.Equal(t, "nesting no deeper than 10000", syntaxErr.Expected)
			assert.Equal(t, tc.found, syntaxErr.Found.Kind)
			if tc.msg != "" {
				assert.EqualError(t, err, tc.msg)
			}
		})
	}
}

// leafTexts returns the identifier and literal values of the tree's leaves,
// spelled the way they appear in source.
func leafTexts(t *testing.T, root ast.Node) []string {
	t.Helper()
	var texts []string
	err := walk.Nodes(root, func(n ast.Node) error {
		switch n := n.(type) {
		case *ast.Variable:
			texts = append(texts, n.Name)
		case *ast.Number:
			texts = append(texts, strconv.FormatInt(n.Value, 10))
		case *ast.String:
			texts = append(texts, n.Value)
		}
		return nil
	})
	require.NoError(t, err)
	return texts
}

func TestParseKeepsLeavesInOrder(t *testing.T) {
	t.Parallel()
	sources := []string{
		"x = 1 + 2 * 3;",
		`if (count >= 10) { print("big"); } else { print("small"); }`,
		"for i in range(start, end) { total = total + data[i][j]; }",
		"while (n != 0) { n = n / 2; }",
		`arr = [a, "b", [c, 4]]; print(arr[0]);`,
	}
	for _, source := range sources {
		tokens, err := Tokenize("", []byte(source))
		require.NoError(t, err)
		var want []string
		for _, tok := range tokens {
			switch tok.Kind {
			case token.ID, token.NUMBER, token.STRING:
				want = append(want, tok.Text)
			}
		}
		prog, err := Parse("", tokens)
		require.NoError(t, err, source)
		assert.Equal(t, want, leafTexts(t, prog), source)
	}
}

func TestParseIsDeterministic(t *testing.T) {
	t.Parallel()
	source := "data = [3, 1, 2];\nfor i in range(0, 3) { if (data[i] > 1) print(data[i]); }\n"
	first, err := parseForTest(t, source)
	require.NoError(t, err)
	second, err := parseForTest(t, source)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff(ast.Project(first).Map(), ast.Project(second).Map()))
}

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
	"math"
	"strconv"
	"unicode/utf8"

	"github.com/bufbuild/pseudocompile/ast"
	"github.com/bufbuild/pseudocompile/token"
)

// Parse builds the tree for the given tokens, which are typically the
// output of [Tokenize]. Every token is consumed.
//
// Parsing stops at the first token that does not fit the grammar, in which
// case Parse returns a nil program and a *[SyntaxError].
//
// An empty token slice results in a program with no statements. Such a
// program is syntactically valid but is rejected by [Validate].
func Parse(filename string, tokens []token.Token) (*ast.Program, error) {
	p := &parser{filename: filename, tokens: tokens}
	return p.parseProgram()
}

// MaxNestingDepth is the deepest that statements and expressions may nest
// in each other. Deeper input is a syntax error.
const MaxNestingDepth = 10000

type parser struct {
	filename string
	tokens   []token.Token
	pos      int
	depth    int
}

// peek returns the next token without consuming it. At the end of input
// it returns a token.EOF token positioned just after the last token.
func (p *parser) peek() token.Token {
	if p.pos < len(p.tokens) {
		return p.tokens[p.pos]
	}
	return p.eof()
}

// peekNext returns the kind of the token after the next one.
func (p *parser) peekNext() token.Kind {
	if p.pos+1 < len(p.tokens) {
		return p.tokens[p.pos+1].Kind
	}
	return token.EOF
}

func (p *parser) at(kind token.Kind) bool {
	return p.peek().Kind == kind
}

func (p *parser) eof() token.Token {
	if len(p.tokens) == 0 {
		return token.Token{Kind: token.EOF, Pos: token.SourcePos{Filename: p.filename, Line: 1}}
	}
	// tokens never span lines, so the end of input is on the line of the
	// last token
	last := p.tokens[len(p.tokens)-1]
	pos := last.Pos
	pos.Col += utf8.RuneCountInString(last.Text)
	return token.Token{Kind: token.EOF, Pos: pos}
}

func (p *parser) advance() token.Token {
	tok := p.peek()
	if p.pos < len(p.tokens) {
		p.pos++
	}
	return tok
}

// expect consumes the next token if it has the given kind.
func (p *parser) expect(kind token.Kind) (token.Token, error) {
	if !p.at(kind) {
		return token.Token{}, p.errExpected(kind.String())
	}
	return p.advance(), nil
}

// enter descends one level of nesting. Each successful call must be paired
// with a call to leave.
func (p *parser) enter() error {
	if p.depth >= MaxNestingDepth {
		return p.errExpected("nesting no deeper than " + strconv.Itoa(MaxNestingDepth))
	}
	p.depth++
	return nil
}

func (p *parser) leave() {
	p.depth--
}

func (p *parser) errExpected(what string) *SyntaxError {
	found := p.peek()
	return &SyntaxError{Pos: found.Pos, Expected: what, Found: found}
}

func (p *parser) parseProgram() (*ast.Program, error) {
	start := p.peek().Pos
	var stmts []ast.Statement
	for !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	return ast.NewProgram(start, stmts), nil
}

func (p *parser) parseStatement() (ast.Statement, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()

	switch p.peek().Kind {
	case token.IF:
		return p.parseConditional()
	case token.WHILE:
		return p.parseWhileLoop()
	case token.FOR:
		return p.parseForLoop()
	case token.PRINT:
		return p.parseOutput()
	case token.LBRACE:
		return p.parseBlock()
	case token.ID:
		if p.peekNext() == token.ASSIGN {
			return p.parseAssignment()
		}
	}
	return nil, p.errExpected("statement")
}

func (p *parser) parseAssignment() (*ast.Assignment, error) {
	name, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.ASSIGN); err != nil {
		return nil, err
	}
	value, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return ast.NewAssignment(ast.NewVariable(name.Pos, name.Text), value), nil
}

func (p *parser) parseConditional() (*ast.Conditional, error) {
	kw, err := p.expect(token.IF)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	then, err := p.parseBlock()
	if err != nil {
		return nil, err
	}
	var els *ast.Block
	if p.at(token.ELSE) {
		p.advance()
		if els, err = p.parseBlock(); err != nil {
			return nil, err
		}
	}
	return ast.NewConditional(kw.Pos, cond, then, els), nil
}

func (p *parser) parseWhileLoop() (*ast.WhileLoop, error) {
	kw, err := p.expect(token.WHILE)
	if err != nil {
		return nil, err
	}
	cond, err := p.parseParenCondition()
	if err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody(kw)
	if err != nil {
		return nil, err
	}
	return ast.NewWhileLoop(kw.Pos, cond, body), nil
}

func (p *parser) parseForLoop() (*ast.ForLoop, error) {
	kw, err := p.expect(token.FOR)
	if err != nil {
		return nil, err
	}
	name, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	for _, kind := range []token.Kind{token.IN, token.RANGE, token.LPAREN} {
		if _, err := p.expect(kind); err != nil {
			return nil, err
		}
	}
	start, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.COMMA); err != nil {
		return nil, err
	}
	end, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	body, err := p.parseLoopBody(kw)
	if err != nil {
		return nil, err
	}
	return ast.NewForLoop(kw.Pos, ast.NewVariable(name.Pos, name.Text), start, end, body), nil
}

// parseLoopBody parses the body of a while or for loop. A lone ';' is an
// empty body, positioned at the loop keyword.
func (p *parser) parseLoopBody(kw token.Token) (*ast.Block, error) {
	if p.at(token.SEMI) {
		p.advance()
		return ast.NewBlock(kw.Pos, []ast.Statement{}), nil
	}
	return p.parseBlock()
}

func (p *parser) parseOutput() (*ast.Output, error) {
	kw, err := p.expect(token.PRINT)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	expr, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	if _, err := p.expect(token.SEMI); err != nil {
		return nil, err
	}
	return ast.NewOutput(kw.Pos, expr), nil
}

// parseBlock parses a braced statement list. Anything else must be a
// single statement, which becomes the only statement of a block positioned
// where that statement starts.
func (p *parser) parseBlock() (*ast.Block, error) {
	if !p.at(token.LBRACE) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		return ast.NewBlock(stmt.Start(), []ast.Statement{stmt}), nil
	}

	lbrace := p.advance()
	stmts := []ast.Statement{}
	for !p.at(token.RBRACE) && !p.at(token.EOF) {
		stmt, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
	}
	if _, err := p.expect(token.RBRACE); err != nil {
		return nil, err
	}
	return ast.NewBlock(lbrace.Pos, stmts), nil
}

func (p *parser) parseParenCondition() (*ast.Condition, error) {
	if _, err := p.expect(token.LPAREN); err != nil {
		return nil, err
	}
	cond, err := p.parseCondition()
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(token.RPAREN); err != nil {
		return nil, err
	}
	return cond, nil
}

// parseCondition parses an expression optionally followed by a comparator
// and a second expression. The && and || operators are not part of the
// grammar of conditions.
func (p *parser) parseCondition() (*ast.Condition, error) {
	left, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	if !p.peek().Kind.IsComparator() {
		return ast.NewCondition(left, token.EOF, nil), nil
	}
	op := p.advance()
	right, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	return ast.NewCondition(left, op.Kind, right), nil
}

func (p *parser) parseExpression() (ast.Expression, error) {
	if err := p.enter(); err != nil {
		return nil, err
	}
	defer p.leave()
	return p.parseAdditive()
}

func (p *parser) parseAdditive() (ast.Expression, error) {
	expr, err := p.parseMultiplicative()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind.IsAdditive() {
		op := p.advance()
		right, err := p.parseMultiplicative()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryOp(expr, op.Kind, right)
	}
	return expr, nil
}

func (p *parser) parseMultiplicative() (ast.Expression, error) {
	expr, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}
	for p.peek().Kind.IsMultiplicative() {
		op := p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		expr = ast.NewBinaryOp(expr, op.Kind, right)
	}
	return expr, nil
}

func (p *parser) parsePrimary() (ast.Expression, error) {
	tok := p.peek()
	switch tok.Kind {
	case token.NUMBER:
		val, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			return nil, p.errExpected("integer no larger than " + strconv.FormatInt(math.MaxInt64, 10))
		}
		p.advance()
		return ast.NewNumber(tok.Pos, val), nil
	case token.STRING:
		p.advance()
		return ast.NewString(tok.Pos, tok.Text), nil
	case token.ID:
		return p.parseVariableOrIndex()
	case token.LPAREN:
		p.advance()
		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RPAREN); err != nil {
			return nil, err
		}
		return expr, nil
	case token.LBRACKET:
		return p.parseArray()
	default:
		return nil, p.errExpected("expression")
	}
}

// parseVariableOrIndex parses an identifier followed by any number of
// index suffixes. Each index wraps the expression to its left, so a[i][j]
// is the access of index j in a[i].
func (p *parser) parseVariableOrIndex() (ast.Expression, error) {
	name, err := p.expect(token.ID)
	if err != nil {
		return nil, err
	}
	var expr ast.Expression = ast.NewVariable(name.Pos, name.Text)
	for p.at(token.LBRACKET) {
		p.advance()
		index, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(token.RBRACKET); err != nil {
			return nil, err
		}
		expr = ast.NewArrayAccess(name.Pos, expr, index)
	}
	return expr, nil
}

func (p *parser) parseArray() (*ast.Array, error) {
	lbracket, err := p.expect(token.LBRACKET)
	if err != nil {
		return nil, err
	}
	elems := []ast.Expression{}
	if !p.at(token.RBRACKET) {
		for {
			elem, err := p.parseExpression()
			if err != nil {
				return nil, err
			}
			elems = append(elems, elem)
			if !p.at(token.COMMA) {
				break
			}
			p.advance()
		}
	}
	if _, err := p.expect(token.RBRACKET); err != nil {
		return nil, err
	}
	return ast.NewArray(lbracket.Pos, elems), nil
}

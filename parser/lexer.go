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
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/bufbuild/pseudocompile/token"
)

type runeReader struct {
	data []byte
	pos  int
	err  error
	mark int
}

func (rr *runeReader) readRune() (r rune, size int, err error) {
	if rr.err != nil {
		return 0, 0, rr.err
	}
	if rr.pos == len(rr.data) {
		rr.err = io.EOF
		return 0, 0, rr.err
	}
	r, sz := utf8.DecodeRune(rr.data[rr.pos:])
	if r == utf8.RuneError && sz <= 1 {
		rr.err = fmt.Errorf("invalid UTF-8 at offset %d: %x", rr.pos, rr.data[rr.pos])
		return 0, 0, rr.err
	}
	rr.pos += sz
	return r, sz, nil
}

func (rr *runeReader) unreadRune(sz int) {
	newPos := rr.pos - sz
	if newPos < rr.mark {
		panic("unread past mark")
	}
	rr.pos = newPos
}

func (rr *runeReader) setMark() {
	rr.mark = rr.pos
}

func (rr *runeReader) getMark() string {
	return string(rr.data[rr.mark:rr.pos])
}

var utf8Bom = []byte{0xEF, 0xBB, 0xBF}

// Tokenize splits text into tokens. The filename is only used to populate
// the positions of the returned tokens and errors.
//
// Whitespace and comments, which run from '#' to the end of the line, are
// discarded. The returned slice never contains a token.EOF token.
//
// If the text contains a character that does not start a token, or is not
// valid UTF-8, Tokenize returns a nil slice and a *[LexicalError].
func Tokenize(filename string, text []byte) ([]token.Token, error) {
	// if the text has a UTF-8 byte order marker preface, skip it
	text = bytes.TrimPrefix(text, utf8Bom)
	l := &lexer{
		input:    &runeReader{data: text},
		filename: filename,
		line:     1,
	}
	tokens := []token.Token{}
	for {
		tok, err := l.next()
		if err != nil {
			return nil, err
		}
		if tok.Kind == token.EOF {
			return tokens, nil
		}
		tokens = append(tokens, tok)
	}
}

type lexer struct {
	input    *runeReader
	filename string

	// position of the next rune
	line, col int

	// state needed to undo the most recent read
	prevLine, prevCol, prevSize int
}

func (l *lexer) pos() token.SourcePos {
	return token.SourcePos{Filename: l.filename, Line: l.line, Col: l.col}
}

func (l *lexer) read() (rune, error) {
	c, sz, err := l.input.readRune()
	if err != nil {
		return 0, err
	}
	l.prevLine, l.prevCol, l.prevSize = l.line, l.col, sz
	if c == '\n' {
		l.line++
		l.col = 0
	} else {
		l.col++
	}
	return c, nil
}

func (l *lexer) unread() {
	l.input.unreadRune(l.prevSize)
	l.line, l.col = l.prevLine, l.prevCol
}

// readIf consumes the next rune only if it is want.
func (l *lexer) readIf(want rune) bool {
	c, err := l.read()
	if err != nil {
		return false
	}
	if c != want {
		l.unread()
		return false
	}
	return true
}

// readWhile consumes runes for as long as accept returns true.
func (l *lexer) readWhile(accept func(rune) bool) {
	for {
		c, err := l.read()
		if err != nil {
			return
		}
		if !accept(c) {
			l.unread()
			return
		}
	}
}

var singleCharTokens = map[rune]token.Kind{
	'+': token.PLUS,
	'-': token.MINUS,
	'*': token.MUL,
	'/': token.DIV,
	'%': token.MOD,
	'(': token.LPAREN,
	')': token.RPAREN,
	'{': token.LBRACE,
	'}': token.RBRACE,
	'[': token.LBRACKET,
	']': token.RBRACKET,
	',': token.COMMA,
	';': token.SEMI,
}

// next returns the next token, or a token.EOF token at the end of input.
func (l *lexer) next() (token.Token, error) {
	for {
		l.input.setMark()
		start := l.pos()

		c, err := l.read()
		if err == io.EOF {
			return token.Token{Kind: token.EOF, Pos: start}, nil
		} else if err != nil {
			return token.Token{}, &LexicalError{Pos: start, Char: utf8.RuneError, underlying: err}
		}

		if strings.ContainsRune("\n\r\t\f\v ", c) {
			continue
		}

		tok := func(kind token.Kind) (token.Token, error) {
			return token.Token{Text: l.input.getMark(), Kind: kind, Pos: start}, nil
		}

		switch {
		case c == '#':
			l.readWhile(func(r rune) bool { return r != '\n' })
			continue
		case isIdentStart(c):
			l.readWhile(isIdentPart)
			return tok(token.Lookup(l.input.getMark()))
		case isDigit(c):
			l.readWhile(isDigit)
			return tok(token.NUMBER)
		case c == '"':
			if err := l.readString(start); err != nil {
				return token.Token{}, err
			}
			return tok(token.STRING)
		}

		// operators: the two-character forms are tried first
		switch c {
		case '>':
			if l.readIf('=') {
				return tok(token.GEQ)
			}
			return tok(token.GT)
		case '<':
			if l.readIf('=') {
				return tok(token.LEQ)
			}
			return tok(token.LT)
		case '=':
			if l.readIf('=') {
				return tok(token.EQ)
			}
			return tok(token.ASSIGN)
		case '!':
			if l.readIf('=') {
				return tok(token.NEQ)
			}
		case '&':
			if l.readIf('&') {
				return tok(token.AND)
			}
		case '|':
			if l.readIf('|') {
				return tok(token.OR)
			}
		default:
			if kind, ok := singleCharTokens[c]; ok {
				return tok(kind)
			}
		}
		return token.Token{}, newLexicalError(start, c, "unexpected character %q", c)
	}
}

// readString consumes the rest of a string literal whose opening quote has
// already been read. String literals may not span lines.
func (l *lexer) readString(start token.SourcePos) error {
	for {
		c, err := l.read()
		if err == io.EOF || (err == nil && c == '\n') {
			return newLexicalError(start, '"', "unterminated string literal")
		} else if err != nil {
			return &LexicalError{Pos: l.pos(), Char: utf8.RuneError, underlying: err}
		}
		if c == '"' {
			return nil
		}
	}
}

func isIdentStart(c rune) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isIdentPart(c rune) bool {
	return isIdentStart(c) || isDigit(c)
}

func isDigit(c rune) bool {
	return c >= '0' && c <= '9'
}

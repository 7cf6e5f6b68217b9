// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lexer implements a tokenizer
// for Newick trees
// and other small text grammars
// used in phylogenetic file formats.
//
// The scanner is a single pass
// over an immutable text
// and produces a flat sequence of tokens,
// each one carrying its position
// and its literal text.
// Scanning is error tolerant:
// an unknown character
// or an unterminated string or comment
// produces an error token
// and the scan continues after it,
// so all the lexical errors of a text
// can be collected in a single pass.
package lexer

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// Options are the options for a scan.
type Options struct {
	// If true,
	// whitespace runs are reported as tokens.
	IncludeWhitespace bool

	// If true,
	// comments are reported as tokens.
	IncludeComments bool

	// If true,
	// a sign immediately before a number
	// is part of the number token;
	// otherwise it is an operator token.
	GlueSignToNumber bool
}

type scanner struct {
	text   string
	pos    int
	line   int
	opt    Options
	tokens []Token
}

// Scan scans a text
// and returns its tokens.
//
// Errors are reported in-band
// as tokens of the ErrToken kind;
// use Errors to collect them.
func Scan(text string, opt Options) []Token {
	s := &scanner{
		text: text,
		line: 1,
		opt:  opt,
	}
	for !s.atEnd() {
		s.scanToken()
	}
	return s.tokens
}

func (s *scanner) atEnd() bool {
	return s.pos >= len(s.text)
}

func (s *scanner) scanToken() {
	c := s.text[s.pos]
	switch {
	case isWhite(c):
		s.scanWhite()
	case c == '[':
		s.scanComment()
	case isLetter(c):
		s.scanSymbol()
	case isDigit(c):
		s.scanNumber(s.pos)
	case isQuote(c):
		s.scanString()
	case isSign(c) && s.opt.GlueSignToNumber && s.pos+1 < len(s.text) && isDigit(s.text[s.pos+1]):
		s.scanNumber(s.pos)
	case isOperator(c):
		s.push(Operator, s.pos, s.pos+1, s.line)
		s.pos++
	case isBracket(c):
		s.push(Bracket, s.pos, s.pos+1, s.line)
		s.pos++
	case c >= utf8.RuneSelf:
		r, sz := utf8.DecodeRuneInString(s.text[s.pos:])
		if unicode.IsLetter(r) {
			s.scanSymbol()
			return
		}
		s.error(s.pos, s.line, fmt.Sprintf("unknown character %q", r))
		s.pos += sz
	default:
		s.error(s.pos, s.line, fmt.Sprintf("unknown character %q", c))
		s.pos++
	}
}

func (s *scanner) scanWhite() {
	start := s.pos
	line := s.line
	for !s.atEnd() && isWhite(s.text[s.pos]) {
		if s.text[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	if s.opt.IncludeWhitespace {
		s.push(White, start, s.pos, line)
	}
}

func (s *scanner) scanComment() {
	start := s.pos
	line := s.line
	s.pos++
	for !s.atEnd() && s.text[s.pos] != ']' {
		if s.text[s.pos] == '\n' {
			s.line++
		}
		s.pos++
	}
	if s.atEnd() {
		s.error(start, line, "unterminated comment")
		return
	}
	s.pos++
	if s.opt.IncludeComments {
		s.push(Comment, start, s.pos, line)
	}
}

func (s *scanner) scanSymbol() {
	start := s.pos
	for !s.atEnd() {
		c := s.text[s.pos]
		if isWhite(c) || isOperator(c) || isBracket(c) || isQuote(c) || c == '[' || c == ']' {
			break
		}
		s.pos++
	}
	s.push(Symbol, start, s.pos, s.line)
}

// scanNumber scans a number
// in the format
// [sign] digits [. digits] [e [sign] digits],
// starting at the given position
// (which may be a glued sign).
func (s *scanner) scanNumber(start int) {
	if isSign(s.text[s.pos]) {
		s.pos++
	}
	for !s.atEnd() && isDigit(s.text[s.pos]) {
		s.pos++
	}
	if !s.atEnd() && s.text[s.pos] == '.' {
		s.pos++
		for !s.atEnd() && isDigit(s.text[s.pos]) {
			s.pos++
		}
	}
	if !s.atEnd() && (s.text[s.pos] == 'e' || s.text[s.pos] == 'E') {
		p := s.pos + 1
		if p < len(s.text) && isSign(s.text[p]) {
			p++
		}
		if p < len(s.text) && isDigit(s.text[p]) {
			s.pos = p
			for !s.atEnd() && isDigit(s.text[s.pos]) {
				s.pos++
			}
		}
	}
	s.push(Number, start, s.pos, s.line)
}

func (s *scanner) scanString() {
	start := s.pos
	line := s.line
	quote := s.text[s.pos]
	s.pos++
	for !s.atEnd() {
		c := s.text[s.pos]
		if c == '\\' && s.pos+1 < len(s.text) {
			s.pos += 2
			continue
		}
		if c == '\n' {
			s.line++
		}
		s.pos++
		if c == quote {
			s.push(String, start, s.pos, line)
			return
		}
	}
	s.error(start, line, "unterminated string")
}

// push adds a token to the token list.
// The column of the token is found
// by backtracking from its start
// to the previous new line.
func (s *scanner) push(k Kind, start, end, line int) {
	s.tokens = append(s.tokens, Token{
		Kind:   k,
		Line:   line,
		Column: s.column(start),
		Text:   s.text[start:end],
	})
}

func (s *scanner) error(start, line int, msg string) {
	s.tokens = append(s.tokens, Token{
		Kind:   ErrToken,
		Line:   line,
		Column: s.column(start),
		Text:   msg,
	})
}

func (s *scanner) column(start int) int {
	col := 1
	for i := start; i > 0 && s.text[i-1] != '\n'; i-- {
		col++
	}
	return col
}

func isWhite(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\v', '\f', '\b':
		return true
	}
	return false
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isSign(c byte) bool {
	return c == '+' || c == '-'
}

func isQuote(c byte) bool {
	return c == '\'' || c == '"'
}

func isOperator(c byte) bool {
	switch c {
	case '+', '-', '*', '/', '<', '>', '?', '!', '^', '=', '%', '&', '|', ',', ':', ';':
		return true
	}
	return false
}

func isBracket(c byte) bool {
	switch c {
	case '(', ')', '{', '}':
		return true
	}
	return false
}

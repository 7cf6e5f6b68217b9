// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lexer

import (
	"fmt"
	"strings"
)

// Kind is the type of a token.
type Kind int

// Valid token kinds.
const (
	// An error found while scanning,
	// such as an unknown character
	// or an unterminated string or comment.
	ErrToken Kind = iota

	// A run of whitespace characters.
	// Only reported when the
	// IncludeWhitespace option is set.
	White

	// A bracket delimited comment.
	// Only reported when the
	// IncludeComments option is set.
	Comment

	// A named symbol,
	// starting with a letter
	// (any Unicode letter is accepted)
	// or an underscore.
	Symbol

	// A number in the format
	// [sign] digits [. digits] [e [sign] digits].
	Number

	// A literal string,
	// enclosed in single or double quotes.
	String

	// A single character operator
	// from the set + - * / < > ? ! ^ = % & | , : ;
	Operator

	// A single bracket character
	// from the set ( ) { }
	Bracket
)

// String returns a textual description
// of a token kind.
func (k Kind) String() string {
	switch k {
	case ErrToken:
		return "error"
	case White:
		return "whitespace"
	case Comment:
		return "comment"
	case Symbol:
		return "symbol"
	case Number:
		return "number"
	case String:
		return "string"
	case Operator:
		return "operator"
	case Bracket:
		return "bracket"
	}
	return "unknown"
}

// A Token is a lexical token
// found while scanning a text.
// Line and Column are 1-based
// and refer to the first character
// of the token;
// Text is the literal text of the token,
// including any quotes or delimiters.
type Token struct {
	Kind   Kind
	Line   int
	Column int
	Text   string
}

// IsOperator returns true
// if the token is the given operator.
func (tok Token) IsOperator(c byte) bool {
	return tok.Kind == Operator && tok.Text[0] == c
}

// IsBracket returns true
// if the token is the given bracket.
func (tok Token) IsBracket(c byte) bool {
	return tok.Kind == Bracket && tok.Text[0] == c
}

// Value returns the decoded value of a token.
// For a string token
// it removes the enclosing quotes
// and resolves the backslash escapes;
// for a comment token
// it removes the enclosing brackets;
// for any other token
// it is the literal text.
func (tok Token) Value() string {
	switch tok.Kind {
	case String:
		return unescape(tok.Text)
	case Comment:
		if len(tok.Text) >= 2 && tok.Text[len(tok.Text)-1] == ']' {
			return tok.Text[1 : len(tok.Text)-1]
		}
		return strings.TrimPrefix(tok.Text, "[")
	}
	return tok.Text
}

func unescape(text string) string {
	if len(text) < 2 {
		return text
	}
	quote := text[0]
	text = text[1:]
	if text[len(text)-1] == quote {
		text = text[:len(text)-1]
	}

	var b strings.Builder
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c != '\\' || i == len(text)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch text[i] {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		default:
			b.WriteByte(text[i])
		}
	}
	return b.String()
}

// An Error is a lexical error
// found while scanning a text.
type Error struct {
	Line   int
	Column int
	Text   string
}

func (e *Error) Error() string {
	return fmt.Sprintf("lexer: %d:%d: %s", e.Line, e.Column, e.Text)
}

// Errors collects all the error tokens
// of a scanned token sequence
// as error values.
func Errors(tokens []Token) []*Error {
	var errs []*Error
	for _, tok := range tokens {
		if tok.Kind != ErrToken {
			continue
		}
		errs = append(errs, &Error{
			Line:   tok.Line,
			Column: tok.Column,
			Text:   tok.Text,
		})
	}
	return errs
}

// A BracketError is an unbalanced bracket
// found while validating a token sequence.
type BracketError struct {
	Line   int
	Column int
}

func (e *BracketError) Error() string {
	return fmt.Sprintf("lexer: %d:%d: unbalanced bracket", e.Line, e.Column)
}

// ValidateBrackets checks that the brackets
// of a scanned token sequence
// are correctly nested.
// It returns an error of type *BracketError
// at the first unmatched bracket.
func ValidateBrackets(tokens []Token) error {
	var stack []Token
	for _, tok := range tokens {
		if tok.Kind != Bracket {
			continue
		}
		switch tok.Text[0] {
		case '(', '{':
			stack = append(stack, tok)
			continue
		}

		if len(stack) == 0 {
			return &BracketError{Line: tok.Line, Column: tok.Column}
		}
		open := stack[len(stack)-1]
		if closeOf(open.Text[0]) != tok.Text[0] {
			return &BracketError{Line: tok.Line, Column: tok.Column}
		}
		stack = stack[:len(stack)-1]
	}
	if len(stack) > 0 {
		open := stack[len(stack)-1]
		return &BracketError{Line: open.Line, Column: open.Column}
	}
	return nil
}

func closeOf(open byte) byte {
	switch open {
	case '(':
		return ')'
	case '{':
		return '}'
	}
	return 0
}

// Copyright © 2025 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lexer_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/js-arias/phylotree/lexer"
)

func TestScan(t *testing.T) {
	tokens := lexer.Scan("(A,B);", lexer.Options{})
	want := []lexer.Token{
		{Kind: lexer.Bracket, Line: 1, Column: 1, Text: "("},
		{Kind: lexer.Symbol, Line: 1, Column: 2, Text: "A"},
		{Kind: lexer.Operator, Line: 1, Column: 3, Text: ","},
		{Kind: lexer.Symbol, Line: 1, Column: 4, Text: "B"},
		{Kind: lexer.Bracket, Line: 1, Column: 5, Text: ")"},
		{Kind: lexer.Operator, Line: 1, Column: 6, Text: ";"},
	}
	if !reflect.DeepEqual(tokens, want) {
		t.Errorf("scan: got %v, want %v", tokens, want)
	}
}

func TestScanNumbers(t *testing.T) {
	tests := map[string]struct {
		text string
		opt  lexer.Options
		want []string
	}{
		"simple":       {text: "0.1", want: []string{"0.1"}},
		"exponent":     {text: "1.5e-10", want: []string{"1.5e-10"}},
		"glued sign":   {text: "-0.5", opt: lexer.Options{GlueSignToNumber: true}, want: []string{"-0.5"}},
		"unglued sign": {text: "-0.5", want: []string{"-", "0.5"}},
		"expression":   {text: "1+2", opt: lexer.Options{GlueSignToNumber: true}, want: []string{"1", "+2"}},
	}
	for name, test := range tests {
		tokens := lexer.Scan(test.text, test.opt)
		var got []string
		for _, tok := range tokens {
			got = append(got, tok.Text)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}
}

func TestScanLines(t *testing.T) {
	tokens := lexer.Scan("(A,\n\tB);", lexer.Options{})
	b := tokens[3]
	if b.Text != "B" {
		t.Fatalf("token: got %q, want %q", b.Text, "B")
	}
	if b.Line != 2 || b.Column != 2 {
		t.Errorf("position: got %d:%d, want %d:%d", b.Line, b.Column, 2, 2)
	}
}

func TestScanWhitespace(t *testing.T) {
	tokens := lexer.Scan("A \tB", lexer.Options{IncludeWhitespace: true})
	var kinds []lexer.Kind
	for _, tok := range tokens {
		kinds = append(kinds, tok.Kind)
	}
	want := []lexer.Kind{lexer.Symbol, lexer.White, lexer.Symbol}
	if !reflect.DeepEqual(kinds, want) {
		t.Errorf("kinds: got %v, want %v", kinds, want)
	}

	tokens = lexer.Scan("A \tB", lexer.Options{})
	if len(tokens) != 2 {
		t.Errorf("without whitespace: got %d tokens, want %d", len(tokens), 2)
	}
}

func TestScanComments(t *testing.T) {
	tokens := lexer.Scan("[a comment]A", lexer.Options{IncludeComments: true})
	if len(tokens) != 2 {
		t.Fatalf("got %d tokens, want %d", len(tokens), 2)
	}
	c := tokens[0]
	if c.Kind != lexer.Comment {
		t.Errorf("kind: got %s, want %s", c.Kind, lexer.Comment)
	}
	if c.Text != "[a comment]" {
		t.Errorf("text: got %q, want %q", c.Text, "[a comment]")
	}
	if c.Value() != "a comment" {
		t.Errorf("value: got %q, want %q", c.Value(), "a comment")
	}

	tokens = lexer.Scan("[a comment]A", lexer.Options{})
	if len(tokens) != 1 {
		t.Errorf("without comments: got %d tokens, want %d", len(tokens), 1)
	}
}

func TestScanStrings(t *testing.T) {
	tests := map[string]struct {
		text string
		want string
	}{
		"single quote": {text: "'hello world'", want: "hello world"},
		"double quote": {text: `"hello world"`, want: "hello world"},
		"escapes":      {text: `'don\'t\n'`, want: "don't\n"},
	}
	for name, test := range tests {
		tokens := lexer.Scan(test.text, lexer.Options{})
		if len(tokens) != 1 {
			t.Errorf("%s: got %d tokens, want 1", name, len(tokens))
			continue
		}
		tok := tokens[0]
		if tok.Kind != lexer.String {
			t.Errorf("%s: kind: got %s, want %s", name, tok.Kind, lexer.String)
		}
		if tok.Text != test.text {
			t.Errorf("%s: text: got %q, want %q", name, tok.Text, test.text)
		}
		if got := tok.Value(); got != test.want {
			t.Errorf("%s: value: got %q, want %q", name, got, test.want)
		}
	}
}

func TestScanSymbols(t *testing.T) {
	tests := map[string]struct {
		text string
		want []string
	}{
		"ascii":       {text: "Homo_sapiens", want: []string{"Homo_sapiens"}},
		"accented":    {text: "Ábc", want: []string{"Ábc"}},
		"mixed":       {text: "(Ábc,Bē);", want: []string{"(", "Ábc", ",", "Bē", ")", ";"}},
		"inner runes": {text: "a★b", want: []string{"a★b"}},
	}
	for name, test := range tests {
		tokens := lexer.Scan(test.text, lexer.Options{})
		var got []string
		for _, tok := range tokens {
			if tok.Kind == lexer.ErrToken {
				t.Errorf("%s: unexpected error token: %s", name, tok.Text)
			}
			got = append(got, tok.Text)
		}
		if !reflect.DeepEqual(got, test.want) {
			t.Errorf("%s: got %v, want %v", name, got, test.want)
		}
	}

	// a symbol can not start
	// with a non letter rune
	tokens := lexer.Scan("★ab", lexer.Options{})
	if errs := lexer.Errors(tokens); len(errs) != 1 {
		t.Errorf("leading rune: got %d errors, want %d", len(errs), 1)
	}
}

func TestScanErrors(t *testing.T) {
	// two unknown characters:
	// the scan does not stop at the first error
	tokens := lexer.Scan("A $ B $", lexer.Options{})
	for _, tok := range tokens {
		if tok.Text == "A" || tok.Text == "B" {
			continue
		}
		if tok.Kind != lexer.ErrToken {
			t.Errorf("token %q: got kind %s, want %s", tok.Text, tok.Kind, lexer.ErrToken)
		}
	}
	errs := lexer.Errors(tokens)
	if len(errs) != 2 {
		t.Fatalf("got %d errors, want %d", len(errs), 2)
	}
	if errs[0].Line != 1 || errs[0].Column != 3 {
		t.Errorf("first error: got %d:%d, want %d:%d", errs[0].Line, errs[0].Column, 1, 3)
	}

	tokens = lexer.Scan("'unterminated", lexer.Options{})
	errs = lexer.Errors(tokens)
	if len(errs) != 1 {
		t.Fatalf("unterminated string: got %d errors, want %d", len(errs), 1)
	}

	tokens = lexer.Scan("[unterminated", lexer.Options{})
	errs = lexer.Errors(tokens)
	if len(errs) != 1 {
		t.Fatalf("unterminated comment: got %d errors, want %d", len(errs), 1)
	}
}

func TestValidateBrackets(t *testing.T) {
	valid := []string{
		"(A,B);",
		"(A,(B,C));",
		"(A{0},B{1});",
		"",
	}
	for _, text := range valid {
		tokens := lexer.Scan(text, lexer.Options{})
		if err := lexer.ValidateBrackets(tokens); err != nil {
			t.Errorf("%q: unexpected error: %v", text, err)
		}
	}

	tests := map[string]struct {
		text      string
		line, col int
	}{
		"unclosed":   {text: "(A,B", line: 1, col: 1},
		"unopened":   {text: "A,B);", line: 1, col: 4},
		"mismatched": {text: "(A,B};", line: 1, col: 5},
	}
	for name, test := range tests {
		tokens := lexer.Scan(test.text, lexer.Options{})
		err := lexer.ValidateBrackets(tokens)
		var bErr *lexer.BracketError
		if !errors.As(err, &bErr) {
			t.Errorf("%s: got error %v, want a bracket error", name, err)
			continue
		}
		if bErr.Line != test.line || bErr.Column != test.col {
			t.Errorf("%s: got %d:%d, want %d:%d", name, bErr.Line, bErr.Column, test.line, test.col)
		}
	}
}

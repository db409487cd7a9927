package query

import (
	"testing"
)

func TestLexer_Tokens(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:  "comparison operators",
			input: "== = < > <= >=",
			expected: []Token{
				{Type: TokenEqual, Value: "=="},
				{Type: TokenEqual, Value: "="},
				{Type: TokenLess, Value: "<"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenLessEqual, Value: "<="},
				{Type: TokenGreaterEqual, Value: ">="},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "logical operators and keywords",
			input: "& | && || AND or",
			expected: []Token{
				{Type: TokenAnd, Value: "&"},
				{Type: TokenOr, Value: "|"},
				{Type: TokenAnd, Value: "&&"},
				{Type: TokenOr, Value: "||"},
				{Type: TokenAnd, Value: "AND"},
				{Type: TokenOr, Value: "or"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "arithmetic without spaces",
			input: "A-1+B%2",
			expected: []Token{
				{Type: TokenIdent, Value: "A"},
				{Type: TokenMinus, Value: "-"},
				{Type: TokenNumber, Value: "1"},
				{Type: TokenPlus, Value: "+"},
				{Type: TokenIdent, Value: "B"},
				{Type: TokenPercent, Value: "%"},
				{Type: TokenNumber, Value: "2"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "numbers",
			input: "42 3.14 .5 1e+16 2E-3",
			expected: []Token{
				{Type: TokenNumber, Value: "42"},
				{Type: TokenNumber, Value: "3.14"},
				{Type: TokenNumber, Value: ".5"},
				{Type: TokenNumber, Value: "1e+16"},
				{Type: TokenNumber, Value: "2E-3"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "strings and quoted identifiers",
			input: "'it\\'s' \"a\\tb\" `first name`",
			expected: []Token{
				{Type: TokenString, Value: "it's"},
				{Type: TokenString, Value: "a\tb"},
				{Type: TokenIdent, Value: "first name"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "parentheses and identifiers",
			input: "(col_1 < _x)",
			expected: []Token{
				{Type: TokenLeftParen, Value: "("},
				{Type: TokenIdent, Value: "col_1"},
				{Type: TokenLess, Value: "<"},
				{Type: TokenIdent, Value: "_x"},
				{Type: TokenRightParen, Value: ")"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "unicode identifier",
			input: "größe > 1",
			expected: []Token{
				{Type: TokenIdent, Value: "größe"},
				{Type: TokenGreater, Value: ">"},
				{Type: TokenNumber, Value: "1"},
				{Type: TokenEOF, Value: ""},
			},
		},
		{
			name:  "invalid character stops",
			input: "A ! B",
			expected: []Token{
				{Type: TokenIdent, Value: "A"},
				{Type: TokenError, Value: "!"},
			},
		},
		{
			name:  "unterminated string",
			input: "A == 'abc",
			expected: []Token{
				{Type: TokenIdent, Value: "A"},
				{Type: TokenEqual, Value: "=="},
				{Type: TokenError, Value: "unterminated string"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens := Tokenize(tt.input)
			if len(tokens) != len(tt.expected) {
				t.Fatalf("expected %d tokens, got %d: %v", len(tt.expected), len(tokens), tokens)
			}
			for i, tok := range tokens {
				if tok.Type != tt.expected[i].Type {
					t.Errorf("token %d: expected type %v, got %v", i, tt.expected[i].Type, tok.Type)
				}
				if tok.Value != tt.expected[i].Value {
					t.Errorf("token %d: expected value %q, got %q", i, tt.expected[i].Value, tok.Value)
				}
			}
		})
	}
}

func TestLexer_Positions(t *testing.T) {
	tokens := Tokenize("A <= 'x'")
	want := []int{0, 2, 5, 8}
	if len(tokens) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(tokens))
	}
	for i, tok := range tokens {
		if tok.Pos != want[i] {
			t.Errorf("token %d (%q): Pos = %d, want %d", i, tok.Value, tok.Pos, want[i])
		}
	}
}

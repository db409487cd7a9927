package query

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// keywords maps lower-cased keywords to their token types
var keywords = map[string]TokenType{
	"and": TokenAnd,
	"or":  TokenOr,
}

// Lexer tokenizes expression strings
type Lexer struct {
	input string
	pos   int // offset of the next rune
	start int // offset of ch
	ch    rune
}

// NewLexer creates a new lexer
func NewLexer(input string) *Lexer {
	l := &Lexer{input: input}
	l.readChar()
	return l
}

// readChar reads the next character
func (l *Lexer) readChar() {
	l.start = l.pos
	if l.pos >= len(l.input) {
		l.ch = 0
		return
	}
	r, size := utf8.DecodeRuneInString(l.input[l.pos:])
	l.ch = r
	l.pos += size
}

// peekChar looks at the next character without advancing
func (l *Lexer) peekChar() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	r, _ := utf8.DecodeRuneInString(l.input[l.pos:])
	return r
}

// skipWhitespace skips whitespace characters
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// readQuoted reads a string delimited by quote. It reports false when the
// input ends before the closing quote.
func (l *Lexer) readQuoted(quote rune) (string, bool) {
	var result strings.Builder
	l.readChar() // skip opening quote

	for l.ch != quote {
		if l.ch == 0 && l.start >= len(l.input) {
			return result.String(), false
		}
		if l.ch == '\\' {
			l.readChar()
			switch l.ch {
			case 'n':
				result.WriteRune('\n')
			case 't':
				result.WriteRune('\t')
			case '\\':
				result.WriteRune('\\')
			case quote:
				result.WriteRune(quote)
			case 0:
				return result.String(), false
			default:
				result.WriteRune(l.ch)
			}
		} else {
			result.WriteRune(l.ch)
		}
		l.readChar()
	}

	l.readChar() // skip closing quote
	return result.String(), true
}

// readNumber reads an unsigned decimal number with an optional fraction and
// exponent. Signs are separate tokens.
func (l *Lexer) readNumber() string {
	begin := l.start
	for unicode.IsDigit(l.ch) || l.ch == '.' {
		l.readChar()
	}
	if l.ch == 'e' || l.ch == 'E' {
		next := l.peekChar()
		if unicode.IsDigit(next) || next == '+' || next == '-' {
			l.readChar()
			if l.ch == '+' || l.ch == '-' {
				l.readChar()
			}
			for unicode.IsDigit(l.ch) {
				l.readChar()
			}
		}
	}
	return l.input[begin:l.start]
}

// readIdentifier reads an identifier or keyword
func (l *Lexer) readIdentifier() string {
	begin := l.start
	for unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' {
		l.readChar()
	}
	return l.input[begin:l.start]
}

// single emits a one-character token
func (l *Lexer) single(t TokenType) Token {
	tok := Token{Type: t, Value: string(l.ch), Pos: l.start}
	l.readChar()
	return tok
}

// pair emits a two-character token when the next character is second and a
// one-character token otherwise
func (l *Lexer) pair(second rune, two, one TokenType) Token {
	if l.peekChar() == second {
		pos := l.start
		value := string(l.ch) + string(second)
		l.readChar()
		l.readChar()
		return Token{Type: two, Value: value, Pos: pos}
	}
	return l.single(one)
}

// NextToken returns the next token
func (l *Lexer) NextToken() Token {
	l.skipWhitespace()

	pos := l.start
	switch l.ch {
	case 0:
		if l.start >= len(l.input) {
			return Token{Type: TokenEOF, Value: "", Pos: pos}
		}
		return l.single(TokenError)
	case '=':
		return l.pair('=', TokenEqual, TokenEqual)
	case '<':
		return l.pair('=', TokenLessEqual, TokenLess)
	case '>':
		return l.pair('=', TokenGreaterEqual, TokenGreater)
	case '&':
		return l.pair('&', TokenAnd, TokenAnd)
	case '|':
		return l.pair('|', TokenOr, TokenOr)
	case '+':
		return l.single(TokenPlus)
	case '-':
		return l.single(TokenMinus)
	case '%':
		return l.single(TokenPercent)
	case '(':
		return l.single(TokenLeftParen)
	case ')':
		return l.single(TokenRightParen)
	case '\'', '"':
		value, ok := l.readQuoted(l.ch)
		if !ok {
			return Token{Type: TokenError, Value: "unterminated string", Pos: pos}
		}
		return Token{Type: TokenString, Value: value, Pos: pos}
	case '`':
		value, ok := l.readQuoted('`')
		if !ok {
			return Token{Type: TokenError, Value: "unterminated identifier", Pos: pos}
		}
		return Token{Type: TokenIdent, Value: value, Pos: pos}
	}

	if unicode.IsDigit(l.ch) || (l.ch == '.' && unicode.IsDigit(l.peekChar())) {
		return Token{Type: TokenNumber, Value: l.readNumber(), Pos: pos}
	}
	if unicode.IsLetter(l.ch) || l.ch == '_' {
		value := l.readIdentifier()
		return Token{Type: identifierType(value), Value: value, Pos: pos}
	}
	return l.single(TokenError)
}

// identifierType determines if an identifier is a keyword
func identifierType(ident string) TokenType {
	if tokType, ok := keywords[strings.ToLower(ident)]; ok {
		return tokType
	}
	return TokenIdent
}

// Tokenize returns all tokens from the input
func Tokenize(input string) []Token {
	lexer := NewLexer(input)
	var tokens []Token

	for {
		tok := lexer.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF || tok.Type == TokenError {
			break
		}
	}

	return tokens
}

package query

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords and their symbolic forms
	TokenAnd TokenType = iota // and, &
	TokenOr                   // or, |

	// Comparison operators
	TokenEqual        // ==, =
	TokenLess         // <
	TokenGreater      // >
	TokenLessEqual    // <=
	TokenGreaterEqual // >=

	// Arithmetic operators
	TokenPlus    // +
	TokenMinus   // -
	TokenPercent // %

	// Literals
	TokenString
	TokenNumber
	TokenIdent

	// Delimiters
	TokenLeftParen  // (
	TokenRightParen // )

	// Special
	TokenEOF
	TokenError
)

func (t TokenType) String() string {
	switch t {
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenEqual:
		return "=="
	case TokenLess:
		return "<"
	case TokenGreater:
		return ">"
	case TokenLessEqual:
		return "<="
	case TokenGreaterEqual:
		return ">="
	case TokenPlus:
		return "+"
	case TokenMinus:
		return "-"
	case TokenPercent:
		return "%"
	case TokenString:
		return "string"
	case TokenNumber:
		return "number"
	case TokenIdent:
		return "identifier"
	case TokenLeftParen:
		return "("
	case TokenRightParen:
		return ")"
	case TokenEOF:
		return "end of input"
	case TokenError:
		return "invalid token"
	default:
		return fmt.Sprintf("TokenType(%d)", int(t))
	}
}

// Token represents a lexical token
type Token struct {
	Type  TokenType
	Value string
	Pos   int // byte offset in the input
}

package query

import (
	"errors"
	"fmt"
)

// Input limits applied by Parse and ParseValue
const (
	// MaxInputLength is the maximum expression length in bytes (1MB)
	MaxInputLength = 1024 * 1024

	// MaxTokens is the maximum number of tokens in an expression
	MaxTokens = 1000

	// MaxExpressionDepth is the maximum nesting depth of parentheses
	MaxExpressionDepth = 100

	// MaxColumnNameLength is the maximum length for a column name
	MaxColumnNameLength = 256
)

var (
	// ErrSyntax is returned when an expression string cannot be parsed
	ErrSyntax = errors.New("syntax error")

	// ErrInputTooLong is returned when input exceeds MaxInputLength
	ErrInputTooLong = errors.New("expression too long")

	// ErrTooManyTokens is returned when input has too many tokens
	ErrTooManyTokens = errors.New("too many tokens in expression")

	// ErrExpressionTooDeep is returned when nesting exceeds MaxExpressionDepth
	ErrExpressionTooDeep = errors.New("expression nesting too deep")

	// ErrColumnNameTooLong is returned when a column name exceeds MaxColumnNameLength
	ErrColumnNameTooLong = errors.New("column name too long")

	// ErrEmptyColumnName is returned for a zero-length column name
	ErrEmptyColumnName = errors.New("empty column name")
)

func validateInput(input string) error {
	if len(input) > MaxInputLength {
		return fmt.Errorf("%w: %d bytes (max %d)", ErrInputTooLong, len(input), MaxInputLength)
	}
	return nil
}

func validateTokens(tokens []Token) error {
	if len(tokens) > MaxTokens {
		return fmt.Errorf("%w: %d tokens (max %d)", ErrTooManyTokens, len(tokens), MaxTokens)
	}
	return nil
}

// ValidateColumnName checks that name is usable as a column label in an
// expression: non-empty and at most MaxColumnNameLength bytes.
func ValidateColumnName(name string) error {
	if name == "" {
		return ErrEmptyColumnName
	}
	if len(name) > MaxColumnNameLength {
		return fmt.Errorf("%w: %d chars (max %d)", ErrColumnNameTooLong, len(name), MaxColumnNameLength)
	}
	return nil
}

// depthGuard tracks nesting depth while parsing
type depthGuard struct {
	depth int
}

func (g *depthGuard) enter() error {
	g.depth++
	if g.depth > MaxExpressionDepth {
		return fmt.Errorf("%w: %d (max %d)", ErrExpressionTooDeep, g.depth, MaxExpressionDepth)
	}
	return nil
}

func (g *depthGuard) exit() {
	g.depth--
}

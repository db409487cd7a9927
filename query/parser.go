package query

import (
	"fmt"
	"strconv"

	"github.com/vegasq/fakeframe/column"
)

// Parser parses expression strings into expression trees.
//
// Precedence from loosest to tightest: |, &, comparisons, + and -, %.
// Parentheses group either predicates or values.
type Parser struct {
	tokens []Token
	pos    int
	depth  depthGuard
}

// NewParser creates a new parser
func NewParser(tokens []Token) *Parser {
	return &Parser{tokens: tokens}
}

// Parse parses a predicate such as "A + B < 10 & C >= 3".
func Parse(input string) (BoolExpr, error) {
	expr, err := parseInput(input)
	if err != nil {
		return nil, err
	}
	pred, ok := expr.(BoolExpr)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a value, not a predicate", ErrSyntax, expr)
	}
	return pred, nil
}

// ParseValue parses a value expression such as "A + B % 2".
func ParseValue(input string) (ValueExpr, error) {
	expr, err := parseInput(input)
	if err != nil {
		return nil, err
	}
	value, ok := expr.(ValueExpr)
	if !ok {
		return nil, fmt.Errorf("%w: %s is a predicate, not a value", ErrSyntax, expr)
	}
	return value, nil
}

func parseInput(input string) (Expr, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	tokens := Tokenize(input)
	if err := validateTokens(tokens); err != nil {
		return nil, err
	}

	p := NewParser(tokens)
	expr, err := p.parseOr()
	if err != nil {
		return nil, err
	}
	if tok := p.current(); tok.Type != TokenEOF {
		return nil, p.unexpected("end of input")
	}
	return expr, nil
}

// current returns the current token
func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF, Value: ""}
	}
	return p.tokens[p.pos]
}

// advance moves to the next token
func (p *Parser) advance() {
	p.pos++
}

// unexpected builds a syntax error for the current token
func (p *Parser) unexpected(want string) error {
	tok := p.current()
	switch tok.Type {
	case TokenEOF:
		return fmt.Errorf("%w: expected %s, got end of input", ErrSyntax, want)
	case TokenError:
		return fmt.Errorf("%w: invalid input %q at offset %d", ErrSyntax, tok.Value, tok.Pos)
	default:
		return fmt.Errorf("%w: expected %s, got %q at offset %d", ErrSyntax, want, tok.Value, tok.Pos)
	}
}

// parseOr parses OR expressions (lowest precedence)
func (p *Parser) parseOr() (Expr, error) {
	if err := p.depth.enter(); err != nil {
		return nil, err
	}
	defer p.depth.exit()

	left, err := p.parseAnd()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenOr {
		p.advance()
		right, err := p.parseAnd()
		if err != nil {
			return nil, err
		}
		left, err = logical(left, OpOr, right)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

// parseAnd parses AND expressions (higher precedence than OR)
func (p *Parser) parseAnd() (Expr, error) {
	left, err := p.parseComparison()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenAnd {
		p.advance()
		right, err := p.parseComparison()
		if err != nil {
			return nil, err
		}
		left, err = logical(left, OpAnd, right)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func logical(left Expr, op LogicOp, right Expr) (Expr, error) {
	l, lok := left.(BoolExpr)
	r, rok := right.(BoolExpr)
	if !lok || !rok {
		return nil, fmt.Errorf("%w: %s needs predicates on both sides of %s %s", ErrSyntax, op, left, right)
	}
	return &Conjunction{Left: l, Op: op, Right: r}, nil
}

var comparisonOps = map[TokenType]column.CompareOp{
	TokenLess:         column.OpLt,
	TokenGreater:      column.OpGt,
	TokenLessEqual:    column.OpLe,
	TokenGreaterEqual: column.OpGe,
	TokenEqual:        column.OpEq,
}

// parseComparison parses an optional comparison between two sums
func (p *Parser) parseComparison() (Expr, error) {
	left, err := p.parseSum()
	if err != nil {
		return nil, err
	}

	op, ok := comparisonOps[p.current().Type]
	if !ok {
		return left, nil
	}
	p.advance()

	right, err := p.parseSum()
	if err != nil {
		return nil, err
	}
	if _, chained := comparisonOps[p.current().Type]; chained {
		return nil, fmt.Errorf("%w: comparisons cannot be chained at offset %d", ErrSyntax, p.current().Pos)
	}

	l, lok := left.(ValueExpr)
	r, rok := right.(ValueExpr)
	if !lok || !rok {
		return nil, fmt.Errorf("%w: %s needs values on both sides of %s %s", ErrSyntax, op, left, right)
	}
	return &Compare{Left: l, Op: op, Right: r}, nil
}

// parseSum parses + and - chains
func (p *Parser) parseSum() (Expr, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for {
		var op column.ArithOp
		switch p.current().Type {
		case TokenPlus:
			op = column.OpAdd
		case TokenMinus:
			op = column.OpSub
		default:
			return left, nil
		}
		p.advance()

		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}
		left, err = arithmetic(left, op, right)
		if err != nil {
			return nil, err
		}
	}
}

// parseTerm parses % chains (highest binary precedence)
func (p *Parser) parseTerm() (Expr, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return nil, err
	}

	for p.current().Type == TokenPercent {
		p.advance()
		right, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}
		left, err = arithmetic(left, column.OpMod, right)
		if err != nil {
			return nil, err
		}
	}

	return left, nil
}

func arithmetic(left Expr, op column.ArithOp, right Expr) (Expr, error) {
	l, lok := left.(ValueExpr)
	r, rok := right.(ValueExpr)
	if !lok || !rok {
		return nil, fmt.Errorf("%w: %s needs values on both sides of %s %s", ErrSyntax, op, left, right)
	}
	return &Arithmetic{Left: l, Op: op, Right: r}, nil
}

// parsePrimary parses literals, column names and parenthesized expressions
func (p *Parser) parsePrimary() (Expr, error) {
	tok := p.current()
	switch tok.Type {
	case TokenIdent:
		if err := ValidateColumnName(tok.Value); err != nil {
			return nil, err
		}
		p.advance()
		return ColumnRef{Label: tok.Value}, nil

	case TokenString:
		p.advance()
		return Constant{Value: column.Str(tok.Value)}, nil

	case TokenNumber:
		p.advance()
		return parseNumber(tok.Value)

	case TokenMinus:
		// only literals take a sign
		p.advance()
		num := p.current()
		if num.Type != TokenNumber {
			return nil, p.unexpected("number after unary minus")
		}
		p.advance()
		return parseNumber("-" + num.Value)

	case TokenLeftParen:
		p.advance()
		expr, err := p.parseOr()
		if err != nil {
			return nil, err
		}
		if p.current().Type != TokenRightParen {
			return nil, p.unexpected(")")
		}
		p.advance()
		return expr, nil

	default:
		return nil, p.unexpected("column, number, string or (")
	}
}

// parseNumber parses as int first, then float
func parseNumber(s string) (Expr, error) {
	if intVal, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Constant{Value: column.Int(intVal)}, nil
	}
	if floatVal, err := strconv.ParseFloat(s, 64); err == nil {
		return Constant{Value: column.Float(floatVal)}, nil
	}
	return nil, fmt.Errorf("%w: invalid number: %s", ErrSyntax, s)
}

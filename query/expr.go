package query

import (
	"strings"
	"unicode"

	"github.com/vegasq/fakeframe/column"
)

// Expr is any node of an expression tree.
type Expr interface {
	String() string
	isExpr()
}

// ValueExpr evaluates to a column.Value for each row: ColumnRef, Constant or
// *Arithmetic.
type ValueExpr interface {
	Expr
	isValueExpr()
}

// BoolExpr evaluates to a boolean for each row: *Compare or *Conjunction.
type BoolExpr interface {
	Expr
	isBoolExpr()
}

// LogicOp combines two predicates
type LogicOp uint8

const (
	OpAnd LogicOp = iota // &
	OpOr                 // |
)

func (op LogicOp) String() string {
	if op == OpOr {
		return "|"
	}
	return "&"
}

// ColumnRef names a column. It evaluates to the column's value in the
// current row.
type ColumnRef struct {
	Label string
}

// Constant is a literal operand, the same value for every row.
type Constant struct {
	Value column.Value
}

// Arithmetic combines two value expressions with +, - or %.
type Arithmetic struct {
	Left  ValueExpr
	Op    column.ArithOp
	Right ValueExpr
}

// Compare compares two value expressions.
type Compare struct {
	Left  ValueExpr
	Op    column.CompareOp
	Right ValueExpr
}

// Conjunction combines two predicates with AND or OR. Both sides are always
// evaluated.
type Conjunction struct {
	Left  BoolExpr
	Op    LogicOp
	Right BoolExpr
}

func (ColumnRef) isExpr()    {}
func (Constant) isExpr()     {}
func (*Arithmetic) isExpr()  {}
func (*Compare) isExpr()     {}
func (*Conjunction) isExpr() {}

func (ColumnRef) isValueExpr()   {}
func (Constant) isValueExpr()    {}
func (*Arithmetic) isValueExpr() {}

func (*Compare) isBoolExpr()     {}
func (*Conjunction) isBoolExpr() {}

// Col returns a reference to the column named label. The label is checked
// when the expression is used against a table.
func Col(label string) ColumnRef { return ColumnRef{Label: label} }

// Lit wraps a Go scalar or column.Value as a Constant. It panics if v has no
// column.Value kind, like any other misuse of a literal in Go source.
func Lit(v any) Constant { return Constant{Value: column.MustValueOf(v)} }

// operand returns v itself when it is already a value expression and wraps
// it as a Constant otherwise.
func operand(v any) ValueExpr {
	if e, ok := v.(ValueExpr); ok {
		return e
	}
	return Lit(v)
}

// Lt builds left < right. Operands are value expressions or literals.
func Lt(left, right any) *Compare { return compare(left, column.OpLt, right) }

// Gt builds left > right.
func Gt(left, right any) *Compare { return compare(left, column.OpGt, right) }

// Le builds left <= right.
func Le(left, right any) *Compare { return compare(left, column.OpLe, right) }

// Ge builds left >= right.
func Ge(left, right any) *Compare { return compare(left, column.OpGe, right) }

// Eq builds left == right.
func Eq(left, right any) *Compare { return compare(left, column.OpEq, right) }

func compare(left any, op column.CompareOp, right any) *Compare {
	return &Compare{Left: operand(left), Op: op, Right: operand(right)}
}

// Add builds left + right.
func Add(left, right any) *Arithmetic { return arith(left, column.OpAdd, right) }

// Sub builds left - right.
func Sub(left, right any) *Arithmetic { return arith(left, column.OpSub, right) }

// Mod builds left % right.
func Mod(left, right any) *Arithmetic { return arith(left, column.OpMod, right) }

func arith(left any, op column.ArithOp, right any) *Arithmetic {
	return &Arithmetic{Left: operand(left), Op: op, Right: operand(right)}
}

// And builds left & right.
func And(left, right BoolExpr) *Conjunction {
	return &Conjunction{Left: left, Op: OpAnd, Right: right}
}

// Or builds left | right.
func Or(left, right BoolExpr) *Conjunction {
	return &Conjunction{Left: left, Op: OpOr, Right: right}
}

func (c ColumnRef) Lt(rhs any) *Compare { return Lt(c, rhs) }
func (c ColumnRef) Gt(rhs any) *Compare { return Gt(c, rhs) }
func (c ColumnRef) Le(rhs any) *Compare { return Le(c, rhs) }
func (c ColumnRef) Ge(rhs any) *Compare { return Ge(c, rhs) }
func (c ColumnRef) Eq(rhs any) *Compare { return Eq(c, rhs) }
func (c ColumnRef) Add(rhs any) *Arithmetic { return Add(c, rhs) }
func (c ColumnRef) Sub(rhs any) *Arithmetic { return Sub(c, rhs) }
func (c ColumnRef) Mod(rhs any) *Arithmetic { return Mod(c, rhs) }

func (c Constant) Lt(rhs any) *Compare { return Lt(c, rhs) }
func (c Constant) Gt(rhs any) *Compare { return Gt(c, rhs) }
func (c Constant) Le(rhs any) *Compare { return Le(c, rhs) }
func (c Constant) Ge(rhs any) *Compare { return Ge(c, rhs) }
func (c Constant) Eq(rhs any) *Compare { return Eq(c, rhs) }
func (c Constant) Add(rhs any) *Arithmetic { return Add(c, rhs) }
func (c Constant) Sub(rhs any) *Arithmetic { return Sub(c, rhs) }
func (c Constant) Mod(rhs any) *Arithmetic { return Mod(c, rhs) }

func (a *Arithmetic) Lt(rhs any) *Compare { return Lt(a, rhs) }
func (a *Arithmetic) Gt(rhs any) *Compare { return Gt(a, rhs) }
func (a *Arithmetic) Le(rhs any) *Compare { return Le(a, rhs) }
func (a *Arithmetic) Ge(rhs any) *Compare { return Ge(a, rhs) }
func (a *Arithmetic) Eq(rhs any) *Compare { return Eq(a, rhs) }
func (a *Arithmetic) Add(rhs any) *Arithmetic { return Add(a, rhs) }
func (a *Arithmetic) Sub(rhs any) *Arithmetic { return Sub(a, rhs) }
func (a *Arithmetic) Mod(rhs any) *Arithmetic { return Mod(a, rhs) }

func (c *Compare) And(other BoolExpr) *Conjunction { return And(c, other) }
func (c *Compare) Or(other BoolExpr) *Conjunction { return Or(c, other) }

func (c *Conjunction) And(other BoolExpr) *Conjunction { return And(c, other) }
func (c *Conjunction) Or(other BoolExpr) *Conjunction { return Or(c, other) }

// String returns the label, backquoted unless it is a plain identifier.
func (c ColumnRef) String() string {
	if isPlainIdent(c.Label) {
		return c.Label
	}
	r := strings.NewReplacer(`\`, `\\`, "`", "\\`")
	return "`" + r.Replace(c.Label) + "`"
}

// String returns the literal in a form Parse accepts back. Non-finite
// floats have no literal syntax: they print as inf, -inf or nan, which
// Parse reads as column references.
func (c Constant) String() string {
	if s, ok := c.Value.AsString(); ok {
		r := strings.NewReplacer(`\`, `\\`, `'`, `\'`, "\n", `\n`, "\t", `\t`)
		return "'" + r.Replace(s) + "'"
	}
	return c.Value.String()
}

func (a *Arithmetic) String() string {
	return "(" + a.Left.String() + " " + a.Op.String() + " " + a.Right.String() + ")"
}

func (c *Compare) String() string {
	return "(" + c.Left.String() + " " + c.Op.String() + " " + c.Right.String() + ")"
}

func (c *Conjunction) String() string {
	return "(" + c.Left.String() + " " + c.Op.String() + " " + c.Right.String() + ")"
}

func isPlainIdent(s string) bool {
	if s == "" || isKeyword(s) {
		return false
	}
	for i, r := range s {
		if r == '_' || unicode.IsLetter(r) {
			continue
		}
		if i > 0 && unicode.IsDigit(r) {
			continue
		}
		return false
	}
	return true
}

func isKeyword(s string) bool {
	_, ok := keywords[strings.ToLower(s)]
	return ok
}

// Package query builds and evaluates row expressions over columnar data.
//
// An expression tree is made of five node types:
//   - ColumnRef: the value of a named column in the current row
//   - Constant: a literal int, float or string
//   - Arithmetic: +, - or % over two value expressions
//   - Compare: <, >, <=, >= or == over two value expressions
//   - Conjunction: AND (&) or OR (|) over two predicates
//
// ColumnRef, Constant and *Arithmetic are ValueExprs; *Compare and
// *Conjunction are BoolExprs. The set is closed: the marker methods are
// unexported, so evaluation can switch over every case.
//
// # Building Expressions
//
// Builders accept either another value expression or a Go literal on the
// right-hand side:
//
//	a, b := query.Col("A"), query.Col("B")
//
//	pred := a.Gt(0).And(b.Ge(12))       // (A > 0) & (B >= 12)
//	sum := a.Add(b).Lt(10)              // (A + B) < 10
//	cols := query.Col("C").Add(2).Lt(b) // (C + 2) < B
//
// Trees hold no reference to any data. The same tree can be evaluated against
// any Source whose labels cover its column references.
//
// # Parsing Expressions
//
// The same trees can be written as text:
//
//	pred, err := query.Parse("A + B < 10 | C % 2 == 0 and name == 'bob'")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Supported syntax:
//   - Comparison: <, >, <=, >=, == (= is accepted for ==)
//   - Logical: &, |, and, or (&& and || also accepted)
//   - Arithmetic: +, -, %
//   - Literals: 42, -7, 3.5, 1e-3, 'text', "text"
//   - Column names: bare identifiers or `back quoted`
//
// # Evaluation
//
// EvalBool and EvalValue walk the tree once per call. Nothing is cached
// between rows. Conjunctions never short-circuit: both sides run for every
// row and the left error is reported first.
//
// # Type System
//
// Values are compared and combined with column.Compare and column.Apply:
//   - ints and floats compare numerically with each other
//   - strings compare byte-wise and never order against numbers
//   - % is defined for ints only and takes the divisor's sign
//
// # Error Handling
//
// The package returns descriptive errors for:
//   - Syntax errors during parsing (ErrSyntax)
//   - Oversized input (ErrInputTooLong, ErrTooManyTokens, ErrExpressionTooDeep)
//   - Operands that cannot be ordered (column.ErrNoncomparable)
//   - Operands an operator does not apply to (column.ErrUnsupportedOperand)
package query

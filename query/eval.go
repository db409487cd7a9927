package query

import (
	"errors"
	"fmt"
	"sort"

	"github.com/vegasq/fakeframe/column"
)

// ErrInvalidExpr is returned when an expression tree contains a nil node
var ErrInvalidExpr = errors.New("invalid expression")

// Source supplies cell values by label and row. *column.Store implements it.
type Source interface {
	Get(label string, row int) column.Value
}

// EvalValue evaluates expr against one row of src.
//
// Every label referenced by expr must exist in src and row must be within
// bounds; Source implementations may panic otherwise.
func EvalValue(expr ValueExpr, src Source, row int) (column.Value, error) {
	switch e := expr.(type) {
	case ColumnRef:
		return src.Get(e.Label, row), nil
	case Constant:
		return e.Value, nil
	case *Arithmetic:
		if e == nil {
			break
		}
		left, err := EvalValue(e.Left, src, row)
		if err != nil {
			return column.Value{}, err
		}
		right, err := EvalValue(e.Right, src, row)
		if err != nil {
			return column.Value{}, err
		}
		return column.Apply(e.Op, left, right)
	}
	return column.Value{}, fmt.Errorf("%w: %T", ErrInvalidExpr, expr)
}

// EvalBool evaluates a predicate against one row of src.
//
// Both operands of a Conjunction are evaluated for every row, even when the
// left one already decides the result. If both fail, the left error wins.
func EvalBool(expr BoolExpr, src Source, row int) (bool, error) {
	switch e := expr.(type) {
	case *Compare:
		if e == nil {
			break
		}
		left, err := EvalValue(e.Left, src, row)
		if err != nil {
			return false, err
		}
		right, err := EvalValue(e.Right, src, row)
		if err != nil {
			return false, err
		}
		return column.Compare(e.Op, left, right)
	case *Conjunction:
		if e == nil {
			break
		}
		left, leftErr := EvalBool(e.Left, src, row)
		right, rightErr := EvalBool(e.Right, src, row)
		if leftErr != nil {
			return false, leftErr
		}
		if rightErr != nil {
			return false, rightErr
		}
		if e.Op == OpOr {
			return left || right, nil
		}
		return left && right, nil
	}
	return false, fmt.Errorf("%w: %T", ErrInvalidExpr, expr)
}

// Columns returns the labels referenced by expr, sorted and without
// duplicates. It fails with ErrInvalidExpr on nil nodes.
func Columns(expr Expr) ([]string, error) {
	seen := make(map[string]bool)
	if err := collect(expr, seen); err != nil {
		return nil, err
	}

	labels := make([]string, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels, nil
}

func collect(expr Expr, seen map[string]bool) error {
	switch e := expr.(type) {
	case ColumnRef:
		seen[e.Label] = true
		return nil
	case Constant:
		return nil
	case *Arithmetic:
		if e != nil {
			return collectPair(e.Left, e.Right, seen)
		}
	case *Compare:
		if e != nil {
			return collectPair(e.Left, e.Right, seen)
		}
	case *Conjunction:
		if e != nil {
			return collectPair(e.Left, e.Right, seen)
		}
	}
	return fmt.Errorf("%w: %T", ErrInvalidExpr, expr)
}

func collectPair(left, right Expr, seen map[string]bool) error {
	if err := collect(left, seen); err != nil {
		return err
	}
	return collect(right, seen)
}

package column

import (
	"errors"
	"fmt"
)

var (
	// ErrShapeMismatch is returned when column lengths disagree at construction
	ErrShapeMismatch = errors.New("column length mismatch")

	// ErrNoSuchColumn is returned when a label is not present in a store
	ErrNoSuchColumn = errors.New("no such column")

	// ErrDuplicateColumn is returned when a label is supplied twice
	ErrDuplicateColumn = errors.New("duplicate column")

	// ErrNoncomparable is returned when two values cannot be compared with an operator
	ErrNoncomparable = errors.New("values are not comparable")

	// ErrUnsupportedOperand is returned when an arithmetic operator does not apply to a value kind
	ErrUnsupportedOperand = errors.New("unsupported operand")

	// ErrUnsupportedType is returned when a Go value has no Value kind
	ErrUnsupportedType = errors.New("unsupported value type")
)

// ShapeMismatchError reports the first column whose length differs from the
// first column. Index is 1-based and counts columns after the first one.
type ShapeMismatchError struct {
	Index int
	Label string
	Want  int
	Got   int
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%v: column %d (%q) has %d values, want %d", ErrShapeMismatch, e.Index, e.Label, e.Got, e.Want)
}

func (e *ShapeMismatchError) Unwrap() error { return ErrShapeMismatch }

// NoSuchColumnError names the missing label.
type NoSuchColumnError struct {
	Label string
}

func (e *NoSuchColumnError) Error() string {
	return fmt.Sprintf("%v: %q", ErrNoSuchColumn, e.Label)
}

func (e *NoSuchColumnError) Unwrap() error { return ErrNoSuchColumn }

// NoncomparableError is returned by Compare for kind pairs without an ordering.
type NoncomparableError struct {
	Op    CompareOp
	Left  Kind
	Right Kind
}

func (e *NoncomparableError) Error() string {
	return fmt.Sprintf("%v: %s %s %s", ErrNoncomparable, e.Left, e.Op, e.Right)
}

func (e *NoncomparableError) Unwrap() error { return ErrNoncomparable }

// UnsupportedOperandError is returned by Apply when an operator cannot be
// applied to the runtime kinds of its operands.
type UnsupportedOperandError struct {
	Op     ArithOp
	Left   Kind
	Right  Kind
	Reason string
}

func (e *UnsupportedOperandError) Error() string {
	msg := fmt.Sprintf("%v: %s %s %s", ErrUnsupportedOperand, e.Left, e.Op, e.Right)
	if e.Reason != "" {
		msg += " (" + e.Reason + ")"
	}
	return msg
}

func (e *UnsupportedOperandError) Unwrap() error { return ErrUnsupportedOperand }

// IndexOutOfRangeError is the panic value raised when a store is read outside
// its bounds. It signals a programming error and is never returned.
type IndexOutOfRangeError struct {
	Label string
	Row   int
	Rows  int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("column: index out of range: %q row %d (rows %d)", e.Label, e.Row, e.Rows)
}

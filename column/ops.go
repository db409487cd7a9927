package column

import (
	"math"

	"golang.org/x/exp/constraints"
)

// CompareOp is a comparison operator
type CompareOp uint8

const (
	OpLt CompareOp = iota // <
	OpGt                  // >
	OpLe                  // <=
	OpGe                  // >=
	OpEq                  // ==
)

func (op CompareOp) String() string {
	switch op {
	case OpLt:
		return "<"
	case OpGt:
		return ">"
	case OpLe:
		return "<="
	case OpGe:
		return ">="
	case OpEq:
		return "=="
	default:
		return "?"
	}
}

// ArithOp is an arithmetic operator
type ArithOp uint8

const (
	OpAdd ArithOp = iota // +
	OpSub                // -
	OpMod                // %
)

func (op ArithOp) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMod:
		return "%"
	default:
		return "?"
	}
}

// Compare applies op to left and right.
//
// Numbers compare exactly across int and float, strings compare
// byte-wise. Equality between a string and a number is false; ordering
// between them fails with a NoncomparableError.
func Compare(op CompareOp, left, right Value) (bool, error) {
	if !left.IsValid() || !right.IsValid() {
		return false, &NoncomparableError{Op: op, Left: left.kind, Right: right.kind}
	}

	switch {
	case left.kind == KindInt && right.kind == KindInt:
		return ordered(op, left.i, right.i), nil
	case left.kind == KindInt && right.kind == KindFloat:
		c, ok := compareIntFloat(left.i, right.f)
		return ok && ordered(op, c, 0), nil
	case left.kind == KindFloat && right.kind == KindInt:
		c, ok := compareIntFloat(right.i, left.f)
		return ok && ordered(op, -c, 0), nil
	case left.kind == KindFloat && right.kind == KindFloat:
		return ordered(op, left.f, right.f), nil
	case left.kind == KindString && right.kind == KindString:
		return ordered(op, left.s, right.s), nil
	}

	// string against number
	if op == OpEq {
		return false, nil
	}
	return false, &NoncomparableError{Op: op, Left: left.kind, Right: right.kind}
}

// compareIntFloat returns -1, 0 or 1 as i is less than, equal to or
// greater than f, without rounding i to a float64. ok is false for NaN.
func compareIntFloat(i int64, f float64) (c int, ok bool) {
	switch {
	case math.IsNaN(f):
		return 0, false
	case f >= 0x1p63:
		return -1, true
	case f < -0x1p63:
		return 1, true
	}

	whole := math.Trunc(f)
	if n := int64(whole); i != n {
		if i < n {
			return -1, true
		}
		return 1, true
	}
	switch frac := f - whole; {
	case frac > 0:
		return -1, true
	case frac < 0:
		return 1, true
	}
	return 0, true
}

func ordered[T constraints.Ordered](op CompareOp, left, right T) bool {
	switch op {
	case OpLt:
		return left < right
	case OpGt:
		return left > right
	case OpLe:
		return left <= right
	case OpGe:
		return left >= right
	case OpEq:
		return left == right
	default:
		return false
	}
}

// Apply computes left op right.
//
// Int with Int stays Int and wraps on overflow; any float operand promotes
// the result to Float. Strings support + only, as concatenation. Modulo is
// floored (the result has the sign of the divisor) and defined for Int only.
func Apply(op ArithOp, left, right Value) (Value, error) {
	unsupported := func(reason string) (Value, error) {
		return Value{}, &UnsupportedOperandError{Op: op, Left: left.kind, Right: right.kind, Reason: reason}
	}

	if !left.IsValid() || !right.IsValid() {
		return unsupported("")
	}

	if left.kind == KindString || right.kind == KindString {
		if op == OpAdd && left.kind == KindString && right.kind == KindString {
			return Str(left.s + right.s), nil
		}
		return unsupported("")
	}

	if left.kind == KindInt && right.kind == KindInt {
		switch op {
		case OpAdd:
			return Int(left.i + right.i), nil
		case OpSub:
			return Int(left.i - right.i), nil
		case OpMod:
			if right.i == 0 {
				return unsupported("modulo by zero")
			}
			return Int(floorMod(left.i, right.i)), nil
		}
		return unsupported("")
	}

	l, _ := left.number()
	r, _ := right.number()
	switch op {
	case OpAdd:
		return Float(l + r), nil
	case OpSub:
		return Float(l - r), nil
	case OpMod:
		return unsupported("modulo requires integers")
	}
	return unsupported("")
}

func floorMod[T constraints.Signed](a, b T) T {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}

package column

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind is the runtime kind of a Value
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInt
	KindFloat
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "invalid"
	}
}

// Value is a scalar cell. The zero Value is invalid.
//
// Values are comparable with == for structural equality; use Compare with
// OpEq for the numeric-aware predicate.
type Value struct {
	kind Kind
	i    int64
	f    float64
	s    string
}

// Int returns an integer value
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float returns a floating point value
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// Str returns a string value
func Str(v string) Value { return Value{kind: KindString, s: v} }

// Kind returns the kind of v
func (v Value) Kind() Kind { return v.kind }

// IsValid reports whether v holds one of the supported kinds
func (v Value) IsValid() bool { return v.kind != KindInvalid }

// AsInt returns the integer held by v
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// AsFloat returns the float held by v. Integers are not converted.
func (v Value) AsFloat() (float64, bool) { return v.f, v.kind == KindFloat }

// AsString returns the string held by v
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// Interface returns v as an int64, float64 or string
func (v Value) Interface() any {
	switch v.kind {
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	default:
		return nil
	}
}

// number returns the numeric value of v as float64
func (v Value) number() (float64, bool) {
	switch v.kind {
	case KindInt:
		return float64(v.i), true
	case KindFloat:
		return v.f, true
	default:
		return 0, false
	}
}

// String formats v for display. Floats always carry a fraction or exponent
// so that 2.0 and 2 render differently.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return formatFloat(v.f)
	case KindString:
		return v.s
	default:
		return "<invalid>"
	}
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	// shortest digits; the exponent decides between plain and scientific form
	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp := 0
	if i := strings.LastIndexByte(sci, 'e'); i >= 0 {
		exp, _ = strconv.Atoi(sci[i+1:])
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// ValueOf converts a Go scalar to a Value.
//
// Signed and unsigned integers become KindInt, float32 and float64 become
// KindFloat and strings become KindString. A Value is returned unchanged.
// Everything else, nil and bool included, fails with ErrUnsupportedType.
func ValueOf(v any) (Value, error) {
	switch val := v.(type) {
	case Value:
		if !val.IsValid() {
			return Value{}, fmt.Errorf("%w: invalid Value", ErrUnsupportedType)
		}
		return val, nil
	case int:
		return Int(int64(val)), nil
	case int8:
		return Int(int64(val)), nil
	case int16:
		return Int(int64(val)), nil
	case int32:
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case uint:
		return fromUint(uint64(val))
	case uint8:
		return Int(int64(val)), nil
	case uint16:
		return Int(int64(val)), nil
	case uint32:
		return Int(int64(val)), nil
	case uint64:
		return fromUint(val)
	case float32:
		return Float(float64(val)), nil
	case float64:
		return Float(val), nil
	case string:
		return Str(val), nil
	default:
		return Value{}, fmt.Errorf("%w: %T", ErrUnsupportedType, v)
	}
}

func fromUint(u uint64) (Value, error) {
	if u > math.MaxInt64 {
		return Value{}, fmt.Errorf("%w: %d overflows int64", ErrUnsupportedType, u)
	}
	return Int(int64(u)), nil
}

// MustValueOf is like ValueOf but panics on unsupported types.
func MustValueOf(v any) Value {
	val, err := ValueOf(v)
	if err != nil {
		panic(err)
	}
	return val
}

// Values converts a slice of Go scalars with ValueOf.
func Values(vs ...any) ([]Value, error) {
	out := make([]Value, len(vs))
	for i, v := range vs {
		val, err := ValueOf(v)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = val
	}
	return out, nil
}

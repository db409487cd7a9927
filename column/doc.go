// Package column provides the scalar Value type and the immutable columnar
// Store that tables are built on.
//
// A Value is one of three kinds: int (int64), float (float64) or string.
// Compare and Apply define comparison and arithmetic for every pair of kinds
// and report NoncomparableError or UnsupportedOperandError where a pair has no
// meaning.
//
// A Store maps labels to equal-length columns:
//
//	s, err := column.NewStore(
//	    column.Column{Label: "A", Values: []column.Value{column.Int(-1), column.Int(2)}},
//	    column.Column{Label: "B", Values: []column.Value{column.Int(10), column.Int(11)}},
//	)
//
// Labels are always reported in sorted order, which is the canonical column
// order for rows and rendering.
package column

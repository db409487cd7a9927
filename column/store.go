package column

import (
	"fmt"
	"sort"
)

// Column is a labelled sequence of values used to build a Store.
type Column struct {
	Label  string
	Values []Value
}

// Store holds equal-length columns keyed by label. A Store is immutable
// once built; derived stores share no mutable state with their source.
type Store struct {
	data   map[string][]Value
	labels []string
	rows   int
}

// NewStore validates cols and builds a Store.
//
// The row count is taken from the first column. The first later column with
// a different length fails with a ShapeMismatchError whose Index counts from
// 1 for the second column. No columns yields an empty store with zero rows.
func NewStore(cols ...Column) (*Store, error) {
	s := &Store{
		data:   make(map[string][]Value, len(cols)),
		labels: make([]string, 0, len(cols)),
	}
	if len(cols) == 0 {
		return s, nil
	}

	s.rows = len(cols[0].Values)
	for i, col := range cols {
		if i > 0 && len(col.Values) != s.rows {
			return nil, &ShapeMismatchError{Index: i, Label: col.Label, Want: s.rows, Got: len(col.Values)}
		}
	}

	for _, col := range cols {
		if _, exists := s.data[col.Label]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Label)
		}
		if err := checkValid(col); err != nil {
			return nil, err
		}
		values := make([]Value, len(col.Values))
		copy(values, col.Values)
		s.data[col.Label] = values
		s.labels = append(s.labels, col.Label)
	}
	sort.Strings(s.labels)

	return s, nil
}

// RowCount returns the number of rows
func (s *Store) RowCount() int { return s.rows }

// Width returns the number of columns
func (s *Store) Width() int { return len(s.labels) }

// Labels returns the column labels in canonical (sorted) order.
func (s *Store) Labels() []string {
	out := make([]string, len(s.labels))
	copy(out, s.labels)
	return out
}

// Has reports whether label names a column
func (s *Store) Has(label string) bool {
	_, ok := s.data[label]
	return ok
}

// Get returns the value of label at row. Reading an unknown label or a row
// outside [0, RowCount) panics with an IndexOutOfRangeError.
func (s *Store) Get(label string, row int) Value {
	values, ok := s.data[label]
	if !ok || row < 0 || row >= s.rows {
		panic(&IndexOutOfRangeError{Label: label, Row: row, Rows: s.rows})
	}
	return values[row]
}

// Values returns a copy of the column named label
func (s *Store) Values(label string) ([]Value, error) {
	values, ok := s.data[label]
	if !ok {
		return nil, &NoSuchColumnError{Label: label}
	}
	out := make([]Value, len(values))
	copy(out, values)
	return out, nil
}

// Row returns the values of one row in canonical column order.
func (s *Store) Row(row int) []Value {
	out := make([]Value, len(s.labels))
	for i, label := range s.labels {
		out[i] = s.Get(label, row)
	}
	return out
}

// Take builds a new store holding the given rows, in the order given.
// Every index must be within bounds.
func (s *Store) Take(rows []int) *Store {
	out := &Store{
		data:   make(map[string][]Value, len(s.labels)),
		labels: s.Labels(),
		rows:   len(rows),
	}
	for _, label := range s.labels {
		src := s.data[label]
		values := make([]Value, len(rows))
		for i, row := range rows {
			if row < 0 || row >= s.rows {
				panic(&IndexOutOfRangeError{Label: label, Row: row, Rows: s.rows})
			}
			values[i] = src[row]
		}
		out.data[label] = values
	}
	return out
}

// With returns a new store extended by col. The existing columns are shared,
// which is safe because stores never change after construction.
func (s *Store) With(col Column) (*Store, error) {
	if s.Has(col.Label) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateColumn, col.Label)
	}
	if len(s.labels) > 0 && len(col.Values) != s.rows {
		return nil, &ShapeMismatchError{Index: len(s.labels), Label: col.Label, Want: s.rows, Got: len(col.Values)}
	}
	if err := checkValid(col); err != nil {
		return nil, err
	}

	out := &Store{
		data:   make(map[string][]Value, len(s.labels)+1),
		labels: append(s.Labels(), col.Label),
		rows:   len(col.Values),
	}
	for label, values := range s.data {
		out.data[label] = values
	}
	values := make([]Value, len(col.Values))
	copy(values, col.Values)
	out.data[col.Label] = values
	sort.Strings(out.labels)

	return out, nil
}

func checkValid(col Column) error {
	for row, v := range col.Values {
		if !v.IsValid() {
			return fmt.Errorf("column %q row %d: %w: invalid Value", col.Label, row, ErrUnsupportedType)
		}
	}
	return nil
}

package table

import (
	"fmt"
	"io"
	"os"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/vegasq/fakeframe/column"
	"github.com/vegasq/fakeframe/output"
	"github.com/vegasq/fakeframe/query"
)

// Table is an immutable columnar table. Every operation that changes the
// shape of the data returns a new Table.
type Table struct {
	store *column.Store
}

var _ output.Grid = (*Table)(nil)

// New wraps an existing store
func New(store *column.Store) *Table {
	return &Table{store: store}
}

// FromColumns builds a table from labelled columns. Shape mismatches are
// reported against the argument order.
func FromColumns(cols ...column.Column) (*Table, error) {
	store, err := column.NewStore(cols...)
	if err != nil {
		return nil, err
	}
	return &Table{store: store}, nil
}

// FromMap builds a table from Go slices keyed by label. Values are
// converted with column.ValueOf. Labels are visited in sorted order, which
// is also the order a ShapeMismatchError index counts in.
func FromMap(data map[string][]any) (*Table, error) {
	labels := make([]string, 0, len(data))
	for label := range data {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	cols := make([]column.Column, len(labels))
	for i, label := range labels {
		values, err := column.Values(data[label]...)
		if err != nil {
			return nil, fmt.Errorf("column %q: %w", label, err)
		}
		cols[i] = column.Column{Label: label, Values: values}
	}
	return FromColumns(cols...)
}

// Store returns the underlying column store
func (t *Table) Store() *column.Store { return t.store }

// RowCount returns the number of rows
func (t *Table) RowCount() int { return t.store.RowCount() }

// Labels returns the column labels in canonical order
func (t *Table) Labels() []string { return t.store.Labels() }

// Get returns one cell. It panics on an unknown label or row.
func (t *Table) Get(label string, row int) column.Value { return t.store.Get(label, row) }

// Row returns one row in canonical column order
func (t *Table) Row(row int) []column.Value { return t.store.Row(row) }

// Values returns a copy of one column
func (t *Table) Values(label string) ([]column.Value, error) { return t.store.Values(label) }

// Column returns a reference to the column named label for building
// expressions. Unknown labels fail with a NoSuchColumnError.
func (t *Table) Column(label string) (query.ColumnRef, error) {
	if !t.store.Has(label) {
		return query.ColumnRef{}, &column.NoSuchColumnError{Label: label}
	}
	return query.Col(label), nil
}

// Filter returns a new table holding the rows for which pred is true, in
// their original order. pred is evaluated exactly once per row. The first
// evaluation error aborts the filter and is returned wrapped with its row.
func (t *Table) Filter(pred query.BoolExpr) (*Table, error) {
	if err := t.checkRefs(pred); err != nil {
		return nil, err
	}

	var rows []int
	for row := 0; row < t.store.RowCount(); row++ {
		ok, err := query.EvalBool(pred, t.store, row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if ok {
			rows = append(rows, row)
		}
	}
	return &Table{store: t.store.Take(rows)}, nil
}

// FilterConcurrent is Filter with rows split into contiguous chunks that
// are evaluated by up to workers goroutines. The result is the same as
// Filter; on failure the error of the lowest failing row is returned.
func (t *Table) FilterConcurrent(pred query.BoolExpr, workers int) (*Table, error) {
	if err := t.checkRefs(pred); err != nil {
		return nil, err
	}

	n := t.store.RowCount()
	if n == 0 {
		return &Table{store: t.store.Take(nil)}, nil
	}
	if workers < 1 {
		workers = 1
	}
	size := (n + workers - 1) / workers
	chunks := (n + size - 1) / size

	keep := make([]bool, n)
	errs := make([]error, chunks)

	var g errgroup.Group
	g.SetLimit(workers)
	for c := 0; c < chunks; c++ {
		c := c // per-iteration copy; go directive predates Go 1.22 loopvar semantics
		start, end := c*size, min((c+1)*size, n)
		g.Go(func() error {
			for row := start; row < end; row++ {
				ok, err := query.EvalBool(pred, t.store, row)
				if err != nil {
					errs[c] = fmt.Errorf("row %d: %w", row, err)
					return errs[c]
				}
				keep[row] = ok
			}
			return nil
		})
	}

	// chunks are in row order, so the first recorded error is the lowest row
	if err := g.Wait(); err != nil {
		for _, chunkErr := range errs {
			if chunkErr != nil {
				return nil, chunkErr
			}
		}
	}

	var rows []int
	for row, ok := range keep {
		if ok {
			rows = append(rows, row)
		}
	}
	return &Table{store: t.store.Take(rows)}, nil
}

// Derive returns a new table with an extra column named label holding expr
// evaluated on every row. The receiver is left unchanged.
func (t *Table) Derive(label string, expr query.ValueExpr) (*Table, error) {
	if t.store.Has(label) {
		return nil, fmt.Errorf("%w: %q", column.ErrDuplicateColumn, label)
	}
	if err := t.checkRefs(expr); err != nil {
		return nil, err
	}

	values := make([]column.Value, t.store.RowCount())
	for row := range values {
		v, err := query.EvalValue(expr, t.store, row)
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", label, row, err)
		}
		values[row] = v
	}

	store, err := t.store.With(column.Column{Label: label, Values: values})
	if err != nil {
		return nil, err
	}
	return &Table{store: store}, nil
}

// Head returns a table with at most the first n rows
func (t *Table) Head(n int) *Table {
	n = max(0, min(n, t.store.RowCount()))
	rows := make([]int, n)
	for i := range rows {
		rows[i] = i
	}
	return &Table{store: t.store.Take(rows)}
}

// String renders the table as tab-delimited text
func (t *Table) String() string {
	return output.Delimited(t.store)
}

// PrettyString renders the table as a boxed grid
func (t *Table) PrettyString() string {
	return output.Boxed(t.store)
}

// PrettyPrint writes the boxed grid to standard output
func (t *Table) PrettyPrint() {
	_ = t.WritePretty(os.Stdout)
}

// WritePretty writes the boxed grid and a trailing newline to w
func (t *Table) WritePretty(w io.Writer) error {
	_, err := io.WriteString(w, t.PrettyString()+"\n")
	return err
}

// checkRefs fails with a NoSuchColumnError for the first label expr
// references that the table does not have.
func (t *Table) checkRefs(expr query.Expr) error {
	labels, err := query.Columns(expr)
	if err != nil {
		return err
	}
	for _, label := range labels {
		if !t.store.Has(label) {
			return &column.NoSuchColumnError{Label: label}
		}
	}
	return nil
}

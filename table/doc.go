// Package table is the user-facing columnar table.
//
// A Table wraps an immutable column.Store. Column references obtained from
// the table are combined with the query builders into predicates, and
// Filter applies a predicate to produce a new Table:
//
//	t, err := table.FromMap(map[string][]any{
//	    "A": {-1, 2, -3, 4, 5},
//	    "B": {10, 11, 12, 13, 14},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	a, _ := t.Column("A")
//	b, _ := t.Column("B")
//	positive, err := t.Filter(a.Gt(0).And(b.Ge(12)))
//
//	fmt.Println(positive)  // tab-delimited
//	positive.PrettyPrint() // boxed grid
//
// Columns are always kept in sorted label order. Filtering keeps the
// original row order and never modifies the source table.
package table

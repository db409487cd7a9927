// Package output renders columnar data as text.
//
// Every formatter consumes a Grid: labels in display order, a row count and
// a cell accessor. *column.Store and *table.Table both satisfy it.
//
// # Supported Formats
//
//   - tsv: header and rows joined by tabs (see Delimited)
//   - boxed: fixed-width grid with dashed rules (see Boxed)
//   - csv: comma-separated values with header row
//   - json, jsonl: JSON Lines, one object per row
//   - grid: bordered table drawn by tablewriter
//
// # Basic Usage
//
// The two text forms are plain functions:
//
//	fmt.Println(output.Delimited(store))
//	fmt.Println(output.Boxed(store))
//
// Formatters write to an io.Writer:
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(store); err != nil {
//	    log.Fatal(err)
//	}
//
// Pick one by name, as the command line does:
//
//	formatter, err := output.New("jsonl", os.Stdout)
//
// # Boxed Layout
//
// Column width is the larger of the label width and the widest stringified
// value, measured in terminal cells. The rule is as long as the sum of the
// widths plus 3 per inner separator plus 4 for the outer edges.
//
// # Type Handling
//
// Cells are stringified with column.Value.String: ints in decimal, floats in
// shortest form with a trailing ".0" when integral, strings verbatim. The CSV
// formatter guards string cells against formula injection. The JSON
// formatter keeps numbers numeric.
package output

// Package reader loads Apache Parquet files into columns.
//
// Files are read completely into memory. Every top-level field becomes one
// column, and every cell is converted to a column.Value:
//
//   - INT32, INT64: int
//   - FLOAT, DOUBLE: float
//   - BYTE_ARRAY: string
//
// Other physical types, nested or repeated fields and null cells fail with
// column.ErrUnsupportedType. Pass column names to load a subset and skip
// fields that would not convert.
//
// # Basic Usage
//
// Reading a single parquet file into a table:
//
//	t, err := reader.LoadTable("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(t)
//
// Reading only some columns:
//
//	cols, err := reader.Load("data.parquet", "id", "score")
//
// # Multi-file Operations
//
// Reading multiple files using glob patterns:
//
//	t, err := reader.LoadGlob("data/*.parquet")
//
// All files must have the same columns. Rows are appended in file name
// order and tagged with a "_file" column naming their source. A pattern
// without wildcards reads one file and adds no "_file" column.
//
// # Schema Inspection
//
// Describe lists every leaf column with its parquet types and whether it
// can be loaded:
//
//	fields, err := reader.Describe("data.parquet")
//	for _, f := range fields {
//	    fmt.Printf("%s %s %s\n", f.Name, f.PhysicalType, f.Kind)
//	}
package reader

// Package reader loads Apache Parquet files into columns.
//
// It uses the segmentio/parquet-go library to read flat parquet files and
// converts every cell into a column.Value.
package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/segmentio/parquet-go"

	"github.com/vegasq/fakeframe/column"
	"github.com/vegasq/fakeframe/table"
)

// FileColumn is the label of the column LoadGlob adds to record where
// each row came from.
const FileColumn = "_file"

// maxFiles limits how many files a single glob may load
const maxFiles = 1000

// Reader reads parquet files column by column.
//
// It maintains both an OS file handle and a parquet file handle to enable
// proper resource cleanup.
type Reader struct {
	file   *os.File
	pqFile *parquet.File
}

// NewReader creates a new parquet reader for the specified file path.
//
// The file is opened and validated as a parquet file. Returns an error if
// the file doesn't exist or is not a valid parquet file.
//
// Example:
//
//	reader, err := NewReader("data.parquet")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
func NewReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	stat, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	pqFile, err := parquet.OpenFile(file, stat.Size())
	if err != nil {
		_ = file.Close()
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	return &Reader{
		file:   file,
		pqFile: pqFile,
	}, nil
}

// Schema returns the parquet file schema
func (r *Reader) Schema() *parquet.Schema {
	return r.pqFile.Schema()
}

// NumRows returns the number of rows recorded in the file metadata
func (r *Reader) NumRows() int64 {
	return r.pqFile.NumRows()
}

// Close closes the parquet reader and releases associated resources.
// It is safe to call Close multiple times.
func (r *Reader) Close() error {
	if r.file == nil {
		return nil
	}
	err := r.file.Close()
	r.file = nil
	return err
}

// Columns reads the whole file into memory, one column per top-level
// field in schema order. When labels is non-empty only those columns are
// read, in the order given, and an unknown label fails with a
// NoSuchColumnError.
//
// Only flat schemas are supported. Nested or repeated fields, null cells
// and physical types outside int32, int64, float, double and byte array
// fail with column.ErrUnsupportedType.
func (r *Reader) Columns(labels ...string) ([]column.Column, error) {
	fields := r.Schema().Fields()

	// field name -> position, and field position -> first leaf column
	index := make(map[string]int, len(fields))
	leaves := make([]int, len(fields))
	leaf := 0
	for i, field := range fields {
		index[field.Name()] = i
		leaves[i] = leaf
		leaf += leafCount(field)
	}
	if len(labels) == 0 {
		for _, field := range fields {
			labels = append(labels, field.Name())
		}
	}

	// leaf column index -> position in the result
	wanted := make(map[int]int, len(labels))
	cols := make([]column.Column, len(labels))
	for i, label := range labels {
		pos, ok := index[label]
		if !ok {
			return nil, &column.NoSuchColumnError{Label: label}
		}
		if err := checkField(fields[pos]); err != nil {
			return nil, err
		}
		wanted[leaves[pos]] = i
		cols[i] = column.Column{Label: label, Values: make([]column.Value, 0, r.NumRows())}
	}

	rows := parquet.NewReader(r.pqFile)
	defer func() { _ = rows.Close() }()

	buf := make([]parquet.Row, 128)
	for rowIndex := 0; ; {
		n, err := rows.ReadRows(buf)
		for _, row := range buf[:n] {
			for _, v := range row {
				pos, ok := wanted[v.Column()]
				if !ok {
					continue
				}
				val, convErr := convert(v)
				if convErr != nil {
					return nil, fmt.Errorf("column %q row %d: %w", cols[pos].Label, rowIndex, convErr)
				}
				cols[pos].Values = append(cols[pos].Values, val)
			}
			rowIndex++
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read rows: %w", err)
		}
	}

	return cols, nil
}

func leafCount(field parquet.Field) int {
	if field.Leaf() {
		return 1
	}
	n := 0
	for _, child := range field.Fields() {
		n += leafCount(child)
	}
	return n
}

func checkField(field parquet.Field) error {
	switch {
	case !field.Leaf():
		return fmt.Errorf("field %q: %w: nested group", field.Name(), column.ErrUnsupportedType)
	case field.Repeated():
		return fmt.Errorf("field %q: %w: repeated field", field.Name(), column.ErrUnsupportedType)
	}
	if _, ok := valueKind(field.Type().Kind()); !ok {
		return fmt.Errorf("field %q: %w: %s", field.Name(), column.ErrUnsupportedType, physicalType(field))
	}
	return nil
}

// valueKind maps a parquet physical type to the Value kind it loads as
func valueKind(kind parquet.Kind) (column.Kind, bool) {
	switch kind {
	case parquet.Int32, parquet.Int64:
		return column.KindInt, true
	case parquet.Float, parquet.Double:
		return column.KindFloat, true
	case parquet.ByteArray:
		return column.KindString, true
	default:
		return column.KindInvalid, false
	}
}

func convert(v parquet.Value) (column.Value, error) {
	if v.IsNull() {
		return column.Value{}, fmt.Errorf("%w: null", column.ErrUnsupportedType)
	}
	switch v.Kind() {
	case parquet.Int32:
		return column.Int(int64(v.Int32())), nil
	case parquet.Int64:
		return column.Int(v.Int64()), nil
	case parquet.Float:
		return column.Float(float64(v.Float())), nil
	case parquet.Double:
		return column.Float(v.Double()), nil
	case parquet.ByteArray:
		return column.Str(string(v.ByteArray())), nil
	default:
		return column.Value{}, fmt.Errorf("%w: parquet %s", column.ErrUnsupportedType, v.Kind())
	}
}

// Load reads every column of the parquet file at path
func Load(path string, labels ...string) ([]column.Column, error) {
	r, err := NewReader(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = r.Close() }()

	return r.Columns(labels...)
}

// LoadTable reads the parquet file at path into a Table
func LoadTable(path string, labels ...string) (*table.Table, error) {
	cols, err := Load(path, labels...)
	if err != nil {
		return nil, err
	}
	return table.FromColumns(cols...)
}

// LoadGlob reads every parquet file matching pattern into one Table.
//
// The pattern can include wildcards:
//   - * matches any sequence of non-separator characters
//   - ? matches any single non-separator character
//   - [range] matches any character in range
//
// A pattern without wildcards behaves like LoadTable. Otherwise all matching
// files must share the same columns; rows are appended in file name order
// and tagged with a FileColumn column holding the source path.
func LoadGlob(pattern string, labels ...string) (*table.Table, error) {
	if !strings.ContainsAny(pattern, "*?[") {
		return LoadTable(pattern, labels...)
	}

	matches, err := filepath.Glob(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid glob pattern: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no files match pattern: %s", pattern)
	}
	// Limit number of files to prevent resource exhaustion
	if len(matches) > maxFiles {
		return nil, fmt.Errorf("glob pattern matched too many files (%d), maximum is %d", len(matches), maxFiles)
	}

	var merged []column.Column
	source := column.Column{Label: FileColumn}
	for _, path := range matches {
		cols, err := Load(path, labels...)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", path, err)
		}
		if merged == nil {
			merged = cols
		} else if err := appendColumns(merged, cols); err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}

		rows := 0
		if len(cols) > 0 {
			rows = len(cols[0].Values)
		}
		for i := 0; i < rows; i++ {
			source.Values = append(source.Values, column.Str(path))
		}
	}

	return table.FromColumns(append(merged, source)...)
}

// appendColumns appends src onto dst column by column. Both must list the
// same labels in the same order.
func appendColumns(dst, src []column.Column) error {
	if len(dst) != len(src) {
		return fmt.Errorf("schema mismatch: %d columns, want %d", len(src), len(dst))
	}
	for i := range dst {
		if dst[i].Label != src[i].Label {
			return fmt.Errorf("schema mismatch: column %d is %q, want %q", i, src[i].Label, dst[i].Label)
		}
		dst[i].Values = append(dst[i].Values, src[i].Values...)
	}
	return nil
}

// Package output renders columnar data as text.
//
// Currently supported formats:
//   - tsv: tab-delimited header and rows
//   - boxed: fixed-width grid with right-justified cells
//   - csv: comma-separated values with header row
//   - json / jsonl: one JSON object per row
//   - grid: bordered table drawn by tablewriter
//
// Example usage:
//
//	formatter, err := output.New("boxed", os.Stdout)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := formatter.Format(store); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/fakeframe/column"
)

// ErrUnknownFormat is returned by New for an unrecognised format name
var ErrUnknownFormat = errors.New("unknown output format")

// Grid is the read-only view every formatter renders. Labels must be in
// the order columns should appear. *column.Store implements it.
type Grid interface {
	Labels() []string
	RowCount() int
	Get(label string, row int) column.Value
}

var _ Grid = (*column.Store)(nil)

// Formatter defines the interface for output formatters.
//
// Implementers must provide Format to render a grid in the target format
// and SetOutput to change the output destination.
type Formatter interface {
	// Format writes g in the formatter's specific format
	Format(g Grid) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// Formats lists the names accepted by New
var Formats = []string{"tsv", "boxed", "csv", "json", "jsonl", "grid"}

// New returns the formatter registered under name, writing to w.
func New(name string, w io.Writer) (Formatter, error) {
	switch strings.ToLower(name) {
	case "tsv", "":
		return NewDelimitedFormatter(w), nil
	case "boxed":
		return NewBoxedFormatter(w), nil
	case "csv":
		return NewCSVFormatter(w), nil
	case "json", "jsonl":
		return NewJSONFormatter(w), nil
	case "grid":
		return NewGridFormatter(w), nil
	}
	return nil, fmt.Errorf("%w: %q (want one of %s)", ErrUnknownFormat, name, strings.Join(Formats, ", "))
}

// cells stringifies one row in label order
func cells(g Grid, labels []string, row int) []string {
	out := make([]string, len(labels))
	for i, label := range labels {
		out[i] = g.Get(label, row).String()
	}
	return out
}

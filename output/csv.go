package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/vegasq/fakeframe/column"
)

// CSVFormatter outputs rows as CSV format
type CSVFormatter struct {
	writer io.Writer
}

// NewCSVFormatter creates a new CSV formatter
func NewCSVFormatter(w io.Writer) *CSVFormatter {
	return &CSVFormatter{writer: w}
}

// SetOutput sets the output writer
func (c *CSVFormatter) SetOutput(w io.Writer) {
	c.writer = w
}

// Format writes a header row of labels followed by one record per row.
// A grid without columns writes nothing.
func (c *CSVFormatter) Format(g Grid) error {
	csvWriter := csv.NewWriter(c.writer)

	labels := g.Labels()
	if len(labels) > 0 {
		if err := csvWriter.Write(labels); err != nil {
			return err
		}
		for row := 0; row < g.RowCount(); row++ {
			record := make([]string, len(labels))
			for i, label := range labels {
				record[i] = formatValue(g.Get(label, row))
			}
			if err := csvWriter.Write(record); err != nil {
				return err
			}
		}
	}

	csvWriter.Flush()
	if err := csvWriter.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV writer: %w", err)
	}
	return nil
}

// formatValue converts a value to its CSV cell
func formatValue(v column.Value) string {
	s, ok := v.AsString()
	if !ok {
		return v.String()
	}

	// Sanitize against CSV injection by prefixing characters that could
	// trigger formula execution in spreadsheet applications
	if len(s) > 0 {
		switch s[0] {
		case '=', '+', '-', '@', '\t', '\r', '\n', '|':
			return "'" + strings.ReplaceAll(s, "'", "''")
		}
	}
	return s
}

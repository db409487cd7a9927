package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// GridFormatter draws a bordered table with tablewriter
type GridFormatter struct {
	writer io.Writer
}

// NewGridFormatter creates a new grid formatter
func NewGridFormatter(w io.Writer) *GridFormatter {
	return &GridFormatter{writer: w}
}

// SetOutput sets the output writer
func (f *GridFormatter) SetOutput(w io.Writer) {
	f.writer = w
}

// Format renders g with labels kept verbatim and cells right-aligned
func (f *GridFormatter) Format(g Grid) error {
	labels := g.Labels()

	tw := tablewriter.NewWriter(f.writer)
	tw.SetHeader(labels)
	tw.SetAutoFormatHeaders(false)
	tw.SetAutoWrapText(false)
	tw.SetAlignment(tablewriter.ALIGN_RIGHT)
	for row := 0; row < g.RowCount(); row++ {
		tw.Append(cells(g, labels, row))
	}
	tw.Render()
	return nil
}

package output

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Delimited renders g as a tab-separated header line followed by one line
// per row. Lines are joined by newlines with no trailing newline, so a grid
// without rows renders as its header alone.
func Delimited(g Grid) string {
	labels := g.Labels()
	lines := make([]string, 0, g.RowCount()+1)
	lines = append(lines, strings.Join(labels, "\t"))
	for row := 0; row < g.RowCount(); row++ {
		lines = append(lines, strings.Join(cells(g, labels, row), "\t"))
	}
	return strings.Join(lines, "\n")
}

// Boxed renders g as a fixed-width grid:
//
//	----------------
//	|  A |  B |  C |
//	----------------
//	| -1 | 10 |  3 |
//	----------------
//
// Each column is as wide as its widest cell or label, measured in display
// cells, and every cell is right-justified to that width.
func Boxed(g Grid) string {
	labels := g.Labels()
	rows := make([][]string, g.RowCount())
	for row := range rows {
		rows[row] = cells(g, labels, row)
	}

	widths := make([]int, len(labels))
	for i, label := range labels {
		widths[i] = runewidth.StringWidth(label)
		for _, r := range rows {
			if w := runewidth.StringWidth(r[i]); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := 3*(len(labels)-1) + 4
	for _, w := range widths {
		border += w
	}
	rule := strings.Repeat("-", border)

	line := func(values []string) string {
		padded := make([]string, len(values))
		for i, v := range values {
			padded[i] = runewidth.FillLeft(v, widths[i])
		}
		return "| " + strings.Join(padded, " | ") + " |"
	}

	lines := make([]string, 0, len(rows)+4)
	lines = append(lines, rule, line(labels), rule)
	for _, r := range rows {
		lines = append(lines, line(r))
	}
	lines = append(lines, rule)
	return strings.Join(lines, "\n")
}

// DelimitedFormatter writes the Delimited form followed by a newline
type DelimitedFormatter struct {
	writer io.Writer
}

// NewDelimitedFormatter creates a new tab-delimited formatter
func NewDelimitedFormatter(w io.Writer) *DelimitedFormatter {
	return &DelimitedFormatter{writer: w}
}

// SetOutput sets the output writer
func (d *DelimitedFormatter) SetOutput(w io.Writer) {
	d.writer = w
}

// Format writes g as tab-delimited text
func (d *DelimitedFormatter) Format(g Grid) error {
	_, err := io.WriteString(d.writer, Delimited(g)+"\n")
	return err
}

// BoxedFormatter writes the Boxed form followed by a newline
type BoxedFormatter struct {
	writer io.Writer
}

// NewBoxedFormatter creates a new boxed grid formatter
func NewBoxedFormatter(w io.Writer) *BoxedFormatter {
	return &BoxedFormatter{writer: w}
}

// SetOutput sets the output writer
func (b *BoxedFormatter) SetOutput(w io.Writer) {
	b.writer = w
}

// Format writes g as a boxed grid
func (b *BoxedFormatter) Format(g Grid) error {
	_, err := io.WriteString(b.writer, Boxed(g)+"\n")
	return err
}

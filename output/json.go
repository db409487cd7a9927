package output

import (
	"io"

	"github.com/segmentio/encoding/json"
)

// JSONFormatter outputs rows as JSON Lines format
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON Lines formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes one JSON object per row, keyed by label. Ints stay ints and
// floats stay floats; non-finite floats cannot be encoded and fail.
func (j *JSONFormatter) Format(g Grid) error {
	encoder := json.NewEncoder(j.writer)
	labels := g.Labels()
	for row := 0; row < g.RowCount(); row++ {
		obj := make(map[string]interface{}, len(labels))
		for _, label := range labels {
			obj[label] = g.Get(label, row).Interface()
		}
		if err := encoder.Encode(obj); err != nil {
			return err
		}
	}
	return nil
}

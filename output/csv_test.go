package output

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/vegasq/fakeframe/column"
)

func TestCSVFormatter_Format(t *testing.T) {
	tests := []struct {
		name      string
		store     *column.Store
		wantLines int
	}{
		{
			name:      "no columns",
			store:     newStore(t),
			wantLines: 0,
		},
		{
			name:      "header only",
			store:     newStore(t, col(t, "id"), col(t, "name")),
			wantLines: 1,
		},
		{
			name:      "sample",
			store:     dataset1(t),
			wantLines: 6, // header + 5 data rows
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			formatter := NewCSVFormatter(&buf)

			if err := formatter.Format(tt.store); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			output := buf.String()
			if tt.wantLines == 0 {
				if output != "" {
					t.Errorf("Format() output should be empty, got %q", output)
				}
				return
			}

			// Parse CSV to verify format
			records, err := csv.NewReader(strings.NewReader(output)).ReadAll()
			if err != nil {
				t.Fatalf("Format() produced invalid CSV: %v", err)
			}
			if len(records) != tt.wantLines {
				t.Errorf("Format() produced %d lines, want %d", len(records), tt.wantLines)
			}
		})
	}
}

func TestCSVFormatter_Values(t *testing.T) {
	store := newStore(t,
		col(t, "n", -1, 42),
		col(t, "f", 3.14, 2.0),
		col(t, "s", "alice", "Alice, Bob"),
	)

	var buf bytes.Buffer
	if err := NewCSVFormatter(&buf).Format(store); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("Failed to parse CSV: %v", err)
	}

	want := [][]string{
		{"f", "n", "s"},
		{"3.14", "-1", "alice"},
		{"2.0", "42", "Alice, Bob"},
	}
	if len(records) != len(want) {
		t.Fatalf("got %d records, want %d", len(records), len(want))
	}
	for i := range want {
		if strings.Join(records[i], "|") != strings.Join(want[i], "|") {
			t.Errorf("record %d = %q, want %q", i, records[i], want[i])
		}
	}
}

func TestCSVFormatter_InjectionGuard(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"-cmd", "'-cmd"},
		{"@x", "'@x"},
		{"|pipe", "'|pipe"},
		{"=it's", "'=it''s"},
		{"safe", "safe"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatValue(column.Str(tt.input)); got != tt.want {
				t.Errorf("formatValue(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}

	// negative numbers are not strings and stay untouched
	if got := formatValue(column.Int(-5)); got != "-5" {
		t.Errorf("formatValue(-5) = %q, want -5", got)
	}
}

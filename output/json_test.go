package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/segmentio/encoding/json"
)

func TestJSONFormatter_Format(t *testing.T) {
	store := newStore(t,
		col(t, "id", 1, 2),
		col(t, "name", "alice", "bob"),
		col(t, "score", 95.5, -1.25),
	)

	var buf bytes.Buffer
	if err := NewJSONFormatter(&buf).Format(store); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != store.RowCount() {
		t.Fatalf("Format() produced %d lines, want %d", len(lines), store.RowCount())
	}

	want := []struct {
		id    float64
		name  string
		score float64
	}{
		{1, "alice", 95.5},
		{2, "bob", -1.25},
	}
	for i, line := range lines {
		var obj map[string]interface{}
		if err := json.Unmarshal([]byte(line), &obj); err != nil {
			t.Fatalf("line %d is not valid JSON: %v", i, err)
		}
		if len(obj) != 3 {
			t.Errorf("line %d has %d keys, want 3", i, len(obj))
		}
		if obj["id"] != want[i].id || obj["name"] != want[i].name || obj["score"] != want[i].score {
			t.Errorf("line %d = %v, want %+v", i, obj, want[i])
		}
	}
}

func TestJSONFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewJSONFormatter(nil)
	formatter.SetOutput(&buf)

	if err := formatter.Format(newStore(t, col(t, "id"))); err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("Format() output should be empty for zero rows, got %q", buf.String())
	}
}

func TestGridFormatter_Format(t *testing.T) {
	store := dataset2(t)

	var buf bytes.Buffer
	if err := NewGridFormatter(&buf).Format(store); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	output := buf.String()
	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	// border, header, separator, rows, border
	if len(lines) != store.RowCount()+4 {
		t.Errorf("Format() produced %d lines, want %d:\n%s", len(lines), store.RowCount()+4, output)
	}
	if !strings.HasPrefix(output, "+") {
		t.Errorf("Format() should start with a border, got:\n%s", output)
	}
	for _, cell := range []string{"-137", "121", "91"} {
		if !strings.Contains(output, cell) {
			t.Errorf("Format() output missing %q:\n%s", cell, output)
		}
	}
}

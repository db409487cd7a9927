package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/segmentio/parquet-go"
)

// TestRow defines a simple test data structure
type TestRow struct {
	ID     int64   `parquet:"id"`
	Name   string  `parquet:"name"`
	Age    int64   `parquet:"age"`
	Salary float64 `parquet:"salary"`
}

var testRows = []TestRow{
	{ID: 1, Name: "Alice", Age: 30, Salary: 50000.0},
	{ID: 2, Name: "Bob", Age: 25, Salary: 45000.0},
	{ID: 3, Name: "Charlie", Age: 35, Salary: 60000.0},
}

// createTestParquetFile creates a temporary parquet file with test data
func createTestParquetFile(t *testing.T, dir, filename string, rows []TestRow) string {
	t.Helper()
	testFile := filepath.Join(dir, filename)

	f, err := os.Create(testFile)
	if err != nil {
		t.Fatalf("failed to create test file: %v", err)
	}

	writer := parquet.NewGenericWriter[TestRow](f)
	if _, err := writer.Write(rows); err != nil {
		t.Fatalf("failed to write test data: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("failed to close writer: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("failed to close file: %v", err)
	}

	return testFile
}

func runCLI(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Output(t *testing.T) {
	testFile := createTestParquetFile(t, t.TempDir(), "test.parquet", testRows)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "whole file",
			args: []string{testFile},
			want: "age\tid\tname\tsalary\n" +
				"30\t1\tAlice\t50000.0\n" +
				"25\t2\tBob\t45000.0\n" +
				"35\t3\tCharlie\t60000.0\n",
		},
		{
			name: "filter",
			args: []string{"-q", "age > 28", testFile},
			want: "age\tid\tname\tsalary\n" +
				"30\t1\tAlice\t50000.0\n" +
				"35\t3\tCharlie\t60000.0\n",
		},
		{
			name: "concurrent filter",
			args: []string{"-q", "age > 28", "-workers", "4", testFile},
			want: "age\tid\tname\tsalary\n" +
				"30\t1\tAlice\t50000.0\n" +
				"35\t3\tCharlie\t60000.0\n",
		},
		{
			name: "columns and limit",
			args: []string{"-c", "name, id", "-limit", "2", testFile},
			want: "id\tname\n1\tAlice\n2\tBob\n",
		},
		{
			name: "derived column in filter",
			args: []string{"-c", "id,age", "-d", "next=age + 1", "-q", "next % 2 == 0", testFile},
			want: "age\tid\tnext\n25\t2\t26\n35\t3\t36\n",
		},
		{
			name: "boxed",
			args: []string{"-f", "boxed", "-c", "id,age", "-q", "id == 2 | age == 35", testFile},
			want: "" +
				"------------\n" +
				"| age | id |\n" +
				"------------\n" +
				"|  25 |  2 |\n" +
				"|  35 |  3 |\n" +
				"------------\n",
		},
		{
			name: "csv",
			args: []string{"-f", "csv", "-c", "name", "-q", "name < 'B'", testFile},
			want: "name\nAlice\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runCLI(t, tt.args...)
			if code != 0 {
				t.Fatalf("run() = %d, stderr: %s", code, stderr)
			}
			if stdout != tt.want {
				t.Errorf("run() output =\n%q\nwant\n%q", stdout, tt.want)
			}
		})
	}
}

func TestRun_Errors(t *testing.T) {
	testFile := createTestParquetFile(t, t.TempDir(), "test.parquet", testRows)

	tests := []struct {
		name     string
		args     []string
		wantCode int
		wantErr  string
	}{
		{"missing file argument", []string{}, 1, "missing parquet file argument"},
		{"file not found", []string{"/nonexistent/file.parquet"}, 1, "not found"},
		{"bad filter", []string{"-q", "age >", testFile}, 1, "parsing filter"},
		{"unknown column", []string{"-q", "height > 1", testFile}, 1, "no such column"},
		{"noncomparable", []string{"-q", "name > 1", testFile}, 1, "row 0"},
		{"bad format", []string{"-f", "xml", testFile}, 1, "unknown output format"},
		{"negative limit", []string{"-limit", "-1", testFile}, 1, "-limit must be non-negative"},
		{"duplicate derived column", []string{"-d", "age=id", testFile}, 1, "duplicate"},
		{"bad derived expression", []string{"-d", "x=age <", testFile}, 2, "invalid value"},
		{"schema with filter", []string{"-schema", "-q", "age > 1", testFile}, 1, "cannot be combined"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runCLI(t, tt.args...)
			if code != tt.wantCode {
				t.Errorf("run() = %d, want %d", code, tt.wantCode)
			}
			if !strings.Contains(strings.ToLower(stderr), strings.ToLower(tt.wantErr)) {
				t.Errorf("stderr = %q, want it to contain %q", stderr, tt.wantErr)
			}
		})
	}
}

func TestRun_Schema(t *testing.T) {
	tmpDir := t.TempDir()
	testFile := createTestParquetFile(t, tmpDir, "test.parquet", testRows)

	code, stdout, stderr := runCLI(t, "-schema", "-f", "csv", testFile)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr)
	}

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	if len(lines) != 5 {
		t.Fatalf("schema output has %d lines, want 5:\n%s", len(lines), stdout)
	}
	if lines[0] != "kind,loadable,logical_type,name,optional,physical_type" {
		t.Errorf("header = %q", lines[0])
	}
	for _, want := range []string{"int,true,", ",id,false,INT64", ",salary,false,DOUBLE", "string,true,"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("schema output missing %q:\n%s", want, stdout)
		}
	}

	// glob patterns describe the first match
	createTestParquetFile(t, tmpDir, "test2.parquet", testRows)
	code, _, stderr = runCLI(t, "-schema", filepath.Join(tmpDir, "test*.parquet"))
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr)
	}
	if !strings.Contains(stderr, "showing schema from first match") {
		t.Errorf("stderr = %q, want a first-match notice", stderr)
	}
}

func TestRun_Glob(t *testing.T) {
	tmpDir := t.TempDir()
	createTestParquetFile(t, tmpDir, "a.parquet", testRows[:1])
	createTestParquetFile(t, tmpDir, "b.parquet", testRows[1:])

	code, stdout, stderr := runCLI(t, "-c", "id", "-q", "id > 1", filepath.Join(tmpDir, "*.parquet"))
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr)
	}
	want := "_file\tid\n" +
		filepath.Join(tmpDir, "b.parquet") + "\t2\n" +
		filepath.Join(tmpDir, "b.parquet") + "\t3\n"
	if stdout != want {
		t.Errorf("run() output =\n%q\nwant\n%q", stdout, want)
	}
}

func TestRun_Verbose(t *testing.T) {
	testFile := createTestParquetFile(t, t.TempDir(), "test.parquet", testRows)

	code, _, stderr := runCLI(t, "-v", "-q", "age > 28", testFile)
	if code != 0 {
		t.Fatalf("run() = %d, stderr: %s", code, stderr)
	}
	for _, msg := range []string{"parsed filter", "loaded table", "filtered table", "rendering"} {
		if !strings.Contains(stderr, msg) {
			t.Errorf("verbose log missing %q:\n%s", msg, stderr)
		}
	}

	_, _, stderr = runCLI(t, "-q", "age > 28", testFile)
	if stderr != "" {
		t.Errorf("quiet run wrote to stderr: %q", stderr)
	}
}

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"github.com/vegasq/fakeframe/output"
	"github.com/vegasq/fakeframe/query"
	"github.com/vegasq/fakeframe/reader"
	"github.com/vegasq/fakeframe/table"
)

// errMissingFile is followed by the usage text
var errMissingFile = errors.New("missing parquet file argument")

// derivations collects repeated -d name=expr flags in order
type derivations []derivation

type derivation struct {
	label string
	expr  query.ValueExpr
}

func (d *derivations) String() string {
	parts := make([]string, len(*d))
	for i, dv := range *d {
		parts[i] = dv.label + "=" + dv.expr.String()
	}
	return strings.Join(parts, ",")
}

func (d *derivations) Set(s string) error {
	label, src, ok := strings.Cut(s, "=")
	label = strings.TrimSpace(label)
	if !ok || label == "" {
		return fmt.Errorf("want name=expression, got %q", s)
	}
	if err := query.ValidateColumnName(label); err != nil {
		return err
	}
	expr, err := query.ParseValue(src)
	if err != nil {
		return err
	}
	*d = append(*d, derivation{label: label, expr: expr})
	return nil
}

type options struct {
	filter  string
	derive  derivations
	columns string
	format  string
	limit   int
	workers int
	schema  bool
	verbose bool
	path    string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fakeframe", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var opts options
	fs.StringVar(&opts.filter, "q", "", "Filter expression (e.g., \"age > 30 & name == 'bob'\")")
	fs.Var(&opts.derive, "d", "Derived column as name=expression (repeatable)")
	fs.StringVar(&opts.columns, "c", "", "Comma-separated columns to load (default: all)")
	fs.StringVar(&opts.format, "f", "tsv", "Output format: "+strings.Join(output.Formats, ", "))
	fs.IntVar(&opts.limit, "limit", 0, "Limit number of rows (0 = unlimited)")
	fs.IntVar(&opts.workers, "workers", 0, "Filter with this many goroutines (0 = sequential)")
	fs.BoolVar(&opts.schema, "schema", false, "Show schema information instead of data")
	fs.BoolVar(&opts.verbose, "v", false, "Log progress to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fakeframe [options] <file.parquet>\n\n")
		fmt.Fprintf(stderr, "Load a parquet file as a table, filter it and print it.\n\n")
		fmt.Fprintf(stderr, "IMPORTANT: All flags must come BEFORE file arguments.\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fakeframe data.parquet\n")
		fmt.Fprintf(stderr, "  fakeframe -f boxed -q \"A + B < 10\" data.parquet\n")
		fmt.Fprintf(stderr, "  fakeframe -d \"total=price + tax\" -q \"total > 100\" data.parquet\n")
		fmt.Fprintf(stderr, "  fakeframe -schema \"data/*.parquet\"\n")
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if fs.NArg() >= 1 {
		opts.path = fs.Arg(0)
	}

	logger := newLogger(stderr, opts.verbose)
	if err := execute(opts, stdout, logger); err != nil {
		printError(stderr, err)
		if errors.Is(err, errMissingFile) {
			fmt.Fprintln(stderr)
			fs.Usage()
		}
		return 1
	}
	return 0
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func printError(w io.Writer, err error) {
	_, _ = color.New(color.FgRed, color.Bold).Fprint(w, "Error: ")
	fmt.Fprintln(w, err)
}

func execute(opts options, stdout io.Writer, logger *slog.Logger) error {
	// Validate flag values
	if opts.limit < 0 {
		return fmt.Errorf("-limit must be non-negative, got %d", opts.limit)
	}
	if opts.workers < 0 {
		return fmt.Errorf("-workers must be non-negative, got %d", opts.workers)
	}
	if opts.path == "" {
		return errMissingFile
	}
	if opts.schema && (opts.filter != "" || len(opts.derive) > 0) {
		return fmt.Errorf("-schema cannot be combined with -q or -d")
	}

	formatter, err := output.New(opts.format, stdout)
	if err != nil {
		return err
	}

	if opts.schema {
		t, err := schemaTable(opts.path, logger)
		if err != nil {
			return err
		}
		return formatter.Format(t)
	}

	// Parse before loading so syntax errors fail fast
	var pred query.BoolExpr
	if opts.filter != "" {
		pred, err = query.Parse(opts.filter)
		if err != nil {
			return fmt.Errorf("parsing filter: %w", err)
		}
		logger.Debug("parsed filter", "expr", pred.String())
	}

	t, err := reader.LoadGlob(opts.path, splitColumns(opts.columns)...)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("file '%s' not found", opts.path)
		}
		return err
	}
	logger.Debug("loaded table", "path", opts.path, "rows", t.RowCount(), "columns", len(t.Labels()))

	for _, d := range opts.derive {
		if t, err = t.Derive(d.label, d.expr); err != nil {
			return fmt.Errorf("deriving %s: %w", d.label, err)
		}
		logger.Debug("derived column", "label", d.label, "expr", d.expr.String())
	}

	if pred != nil {
		before := t.RowCount()
		if opts.workers > 0 {
			t, err = t.FilterConcurrent(pred, opts.workers)
		} else {
			t, err = t.Filter(pred)
		}
		if err != nil {
			return fmt.Errorf("filtering: %w", err)
		}
		logger.Debug("filtered table", "before", before, "after", t.RowCount(), "workers", opts.workers)
	}

	if opts.limit > 0 {
		t = t.Head(opts.limit)
	}

	logger.Debug("rendering", "format", opts.format, "rows", t.RowCount())
	return formatter.Format(t)
}

func splitColumns(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var cols []string
	for _, c := range strings.Split(s, ",") {
		if c = strings.TrimSpace(c); c != "" {
			cols = append(cols, c)
		}
	}
	return cols
}

// schemaTable describes the file at path as a table with one row per
// leaf column. For glob patterns the first match is described.
func schemaTable(path string, logger *slog.Logger) (*table.Table, error) {
	if strings.ContainsAny(path, "*?[") {
		matches, err := filepath.Glob(path)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern: %w", err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("no files match pattern: %s", path)
		}
		if len(matches) > 1 {
			logger.Warn("showing schema from first match", "file", matches[0], "matched", len(matches))
		}
		path = matches[0]
	}

	fields, err := reader.Describe(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("file '%s' not found", path)
		}
		return nil, err
	}

	cols := map[string][]any{
		"name":          {},
		"physical_type": {},
		"logical_type":  {},
		"kind":          {},
		"optional":      {},
		"loadable":      {},
	}
	for _, f := range fields {
		cols["name"] = append(cols["name"], f.Name)
		cols["physical_type"] = append(cols["physical_type"], f.PhysicalType)
		cols["logical_type"] = append(cols["logical_type"], f.LogicalType)
		cols["kind"] = append(cols["kind"], f.Kind)
		cols["optional"] = append(cols["optional"], strconv.FormatBool(f.Optional))
		cols["loadable"] = append(cols["loadable"], strconv.FormatBool(f.Loadable))
	}
	return table.FromMap(cols)
}

// Package dataset loads the rows shown in the table from CSV files or
// SQLite queries.
package dataset

import (
	"context"
	"database/sql"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/tablewizard/internal/db"
	"github.com/llehouerou/tablewizard/internal/ui/render"
)

// Source kinds.
const (
	KindCSV    = "csv"
	KindSQLite = "sqlite"
)

var (
	ErrNoHeader    = errors.New("no header row")
	ErrUnknownKind = errors.New("unknown source kind")
	ErrQuery       = errors.New("query failed")
)

// Source says where to load a table from.
type Source struct {
	Kind     string
	Path     string
	Query    string // sqlite only
	Humanize bool   // format numeric columns with digit grouping
}

// Table is a header row plus data rows. Rows may be ragged.
type Table struct {
	Headers []string
	Rows    [][]string
	Numeric []bool // per column: every non-empty cell is a number
}

// ColumnCount returns the widest row, header included. Short rows are
// padded with empty cells when read through Cell.
func (t *Table) ColumnCount() int {
	n := len(t.Headers)
	for _, r := range t.Rows {
		n = max(n, len(r))
	}
	return n
}

// Cell returns the cell at row, col or "" when the row is short.
func (t *Table) Cell(row, col int) string {
	if row < 0 || row >= len(t.Rows) || col < 0 || col >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][col]
}

// Header returns the header of col or "" past the header row.
func (t *Table) Header(col int) string {
	if col < 0 || col >= len(t.Headers) {
		return ""
	}
	return t.Headers[col]
}

// HeadersFrom returns the header cells of columns [from, to).
func (t *Table) HeadersFrom(from, to int) []string {
	out := make([]string, 0, max(to-from, 0))
	for c := from; c < to; c++ {
		out = append(out, t.Header(c))
	}
	return out
}

// IsNumeric reports whether col holds only numbers.
func (t *Table) IsNumeric(col int) bool {
	return col >= 0 && col < len(t.Numeric) && t.Numeric[col]
}

// Load reads the table described by src.
func Load(ctx context.Context, src Source) (*Table, error) {
	var (
		t   *Table
		err error
	)
	switch src.Kind {
	case KindCSV:
		t, err = LoadCSV(src.Path)
	case KindSQLite:
		t, err = LoadSQLite(ctx, src.Path, src.Query)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, src.Kind)
	}
	if err != nil {
		return nil, err
	}
	t.classify()
	if src.Humanize {
		t.humanize()
	}
	return t, nil
}

// LoadCSV reads a comma separated file, or tab separated when the file
// ends in .tsv. The first record is the header row.
func LoadCSV(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	comma := ','
	if strings.EqualFold(filepath.Ext(path), ".tsv") {
		comma = '\t'
	}
	return ReadCSV(f, comma)
}

// ReadCSV reads delimited records from r. Records may have different
// lengths.
func ReadCSV(r io.Reader, comma rune) (*Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, err
	}

	t := &Table{Headers: sanitize(header)}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, sanitize(rec))
	}
	return t, nil
}

// LoadSQLite runs query against the database at path, read-only. Column
// names become the header row. Errors raised by the query itself wrap
// ErrQuery.
func LoadSQLite(ctx context.Context, path, query string) (*Table, error) {
	conn, err := db.Open(path, true)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	var t *Table
	err = db.WithTx(ctx, conn, nil, func(tx *sql.Tx) error {
		var qerr error
		if t, qerr = queryTable(ctx, tx, query); qerr != nil {
			return fmt.Errorf("%w: %w", ErrQuery, qerr)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

func queryTable(ctx context.Context, tx *sql.Tx, query string) (*Table, error) {
	rows, err := tx.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		return nil, ErrNoHeader
	}

	t := &Table{Headers: sanitize(cols)}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		row := make([]string, len(cols))
		for i, v := range values {
			row[i] = render.Sanitize(db.ValueString(v))
		}
		t.Rows = append(t.Rows, row)
	}
	return t, rows.Err()
}

func sanitize(rec []string) []string {
	for i, s := range rec {
		rec[i] = render.Sanitize(strings.TrimSpace(s))
	}
	return rec
}

// classify marks the columns whose non-empty cells all parse as numbers.
// A column with no values is not numeric.
func (t *Table) classify() {
	n := t.ColumnCount()
	t.Numeric = make([]bool, n)
	for c := range n {
		seen := false
		numeric := true
		for r := range t.Rows {
			cell := t.Cell(r, c)
			if cell == "" {
				continue
			}
			seen = true
			if _, ok := parseNumber(cell); !ok {
				numeric = false
				break
			}
		}
		t.Numeric[c] = seen && numeric
	}
}

// humanize rewrites numeric columns with digit grouping.
func (t *Table) humanize() {
	for c, numeric := range t.Numeric {
		if !numeric {
			continue
		}
		for r := range t.Rows {
			if c < len(t.Rows[r]) && t.Rows[r][c] != "" {
				t.Rows[r][c] = FormatNumber(t.Rows[r][c])
			}
		}
	}
}

func parseNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// FormatNumber groups the digits of a numeric cell. Non-numeric input is
// returned unchanged.
func FormatNumber(s string) string {
	f, ok := parseNumber(s)
	if !ok {
		return s
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 && !strings.ContainsAny(s, ".eE") {
		return humanize.Comma(int64(f))
	}
	return humanize.Commaf(f)
}

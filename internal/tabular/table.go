// Package tabular reads CSV files into ordered columns and rows and
// normalizes their column names into safe identifiers.
package tabular

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

var (
	ErrMissingHeader   = errors.New("missing header row")
	ErrInvalidEncoding = errors.New("invalid UTF-8")
	ErrColumnCollision = errors.New("column name collision")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Table is one CSV file held in memory. Every row has len(Columns) cells.
type Table struct {
	Source  string
	Columns []string
	Rows    [][]string
}

// ParseError reports a CSV file that could not be turned into a Table.
type ParseError struct {
	Path string
	Line int // 0 when the error is not tied to a line
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s (line %d): %v", e.Path, e.Line, e.Err)
	}
	return fmt.Sprintf("parse error in %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads the CSV file at path.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	defer f.Close()

	return Read(f, path)
}

// Read parses comma-delimited, header-first CSV from r. source names the
// input in errors.
func Read(r io.Reader, source string) (*Table, error) {
	br := bufio.NewReader(r)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		br.Discard(len(utf8BOM)) //nolint:errcheck
	}
	reader := csv.NewReader(br)

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &ParseError{Path: source, Err: ErrMissingHeader}
		}
		return nil, wrapCSVError(err, source)
	}
	if err := checkEncoding(header, source, 1); err != nil {
		return nil, err
	}

	t := &Table{Source: source, Columns: header}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, wrapCSVError(err, source)
		}
		line, _ := reader.FieldPos(0)
		if err := checkEncoding(record, source, line); err != nil {
			return nil, err
		}
		t.Rows = append(t.Rows, record)
	}
	return t, nil
}

func (t *Table) NumRows() int    { return len(t.Rows) }
func (t *Table) NumColumns() int { return len(t.Columns) }

// Record returns row i keyed by column name. Later columns win when names
// repeat; Normalize rejects such tables.
func (t *Table) Record(i int) map[string]string {
	rec := make(map[string]string, len(t.Columns))
	for j, col := range t.Columns {
		rec[col] = t.Rows[i][j]
	}
	return rec
}

// Head returns at most n leading rows.
func (t *Table) Head(n int) [][]string {
	if n > len(t.Rows) {
		n = len(t.Rows)
	}
	return t.Rows[:n]
}

func checkEncoding(fields []string, source string, line int) error {
	for _, f := range fields {
		if !utf8.ValidString(f) {
			return &ParseError{Path: source, Line: line, Err: ErrInvalidEncoding}
		}
	}
	return nil
}

// wrapCSVError lifts the line number out of csv.ParseError.
func wrapCSVError(err error, source string) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &ParseError{Path: source, Line: pe.Line, Err: pe.Err}
	}
	return &ParseError{Path: source, Err: err}
}

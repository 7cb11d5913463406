package engine

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"csv-pump/internal/dialect"
	"csv-pump/internal/schema"
	"csv-pump/internal/tabular"
)

const DefaultBatchSize = 1000

// Execer is the part of *sql.DB the writer needs.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// WriteError reports a failed drop, create or insert. A failure after the
// drop leaves the table missing, empty or partially filled.
type WriteError struct {
	Table string
	Stage string // "drop", "create" or "insert"
	Err   error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write error on table %s (%s): %v", e.Table, e.Stage, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

// Writer replaces a destination table with the contents of a tabular.Table.
type Writer struct {
	DB        Execer
	Dialect   dialect.Dialect
	BatchSize int // rows per INSERT; capped by dialect limits
}

// Replace drops table, recreates it from cols and inserts every row of data
// with multi-row INSERTs. The steps are not wrapped in a transaction.
// onProgress, when set, receives the number of rows written by each batch.
func (w *Writer) Replace(ctx context.Context, table string, data *tabular.Table, cols []*schema.Column, onProgress func(n int)) (int, error) {
	if strings.TrimSpace(table) == "" {
		return 0, &WriteError{Table: table, Stage: "drop", Err: errors.New("destination table name is empty")}
	}
	if len(cols) != data.NumColumns() {
		return 0, &WriteError{Table: table, Stage: "create",
			Err: fmt.Errorf("have %d column definitions for %d columns", len(cols), data.NumColumns())}
	}

	if _, err := w.DB.ExecContext(ctx, w.Dialect.DropTableQuery(table)); err != nil {
		return 0, &WriteError{Table: table, Stage: "drop", Err: err}
	}
	if _, err := w.DB.ExecContext(ctx, w.Dialect.CreateTableQuery(table, cols)); err != nil {
		return 0, &WriteError{Table: table, Stage: "create", Err: err}
	}

	names := schema.Names(cols)
	batch := dialect.BatchRows(w.Dialect, len(cols), w.batchSize())

	inserted := 0
	for start := 0; start < data.NumRows(); start += batch {
		end := min(start+batch, data.NumRows())
		rows := data.Rows[start:end]

		args := make([]any, 0, len(rows)*len(cols))
		for _, row := range rows {
			for i, cell := range row {
				args = append(args, w.Dialect.Bind(schema.Convert(cell, cols[i].Type)))
			}
		}

		query := w.Dialect.InsertQuery(table, names, len(rows))
		if _, err := w.DB.ExecContext(ctx, query, args...); err != nil {
			return inserted, &WriteError{Table: table, Stage: "insert",
				Err: fmt.Errorf("rows %d-%d: %w", start+1, end, err)}
		}

		inserted += len(rows)
		if onProgress != nil {
			onProgress(len(rows))
		}
	}
	return inserted, nil
}

func (w *Writer) batchSize() int {
	if w.BatchSize > 0 {
		return w.BatchSize
	}
	return DefaultBatchSize
}

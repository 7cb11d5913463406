package engine

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"csv-pump/internal/dialect"
)

// Describe returns the column names of table in ordinal order, read from the
// server's catalog.
func Describe(ctx context.Context, db *sql.DB, d dialect.Dialect, table string) ([]string, error) {
	rows, err := db.QueryContext(ctx, d.ColumnsQuery(), table)
	if err != nil {
		return nil, fmt.Errorf("failed to query columns: %w", err)
	}
	defer rows.Close()

	var cols []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan column (table: %s): %w", table, err)
		}
		cols = append(cols, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating columns: %w", err)
	}
	return cols, nil
}

// Verify re-reads the destination table after an upload and compares its row
// count and columns with res.
func Verify(ctx context.Context, db *sql.DB, d dialect.Dialect, res Result) Result {
	out := res

	var count int
	if err := db.QueryRowContext(ctx, d.CountQuery(res.Table)).Scan(&count); err != nil {
		out.Status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		return out
	}
	out.Actual = count

	cols, err := Describe(ctx, db, d, res.Table)
	if err != nil {
		out.Status = fmt.Sprintf("VERIFY_FAIL: %v", err)
		return out
	}

	out.Status = compareUpload(res, count, cols)
	return out
}

func compareUpload(res Result, count int, cols []string) string {
	if count != res.Rows {
		return fmt.Sprintf("ROW MISMATCH: %d/%d", count, res.Rows)
	}
	if len(cols) != len(res.Columns) {
		return fmt.Sprintf("SCHEMA MISMATCH: %d/%d columns", len(cols), len(res.Columns))
	}
	for i := range cols {
		if !strings.EqualFold(cols[i], res.Columns[i]) {
			return fmt.Sprintf("SCHEMA MISMATCH: column %d is %s, expected %s", i+1, cols[i], res.Columns[i])
		}
	}
	return "VERIFIED_OK"
}

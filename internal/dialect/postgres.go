package dialect

import (
	"fmt"
	"net/url"

	"csv-pump/internal/schema"
)

type PostgresDialect struct{}

func (d *PostgresDialect) DriverName() string { return "postgres" }

func (d *PostgresDialect) Scheme() string { return "postgres" }

// DSN returns the URL itself; lib/pq parses postgres:// URLs directly.
// Options such as sslmode travel in the query string.
func (d *PostgresDialect) DSN(u *url.URL) (string, error) {
	return u.String(), nil
}

func (d *PostgresDialect) CurrentDatabaseQuery() string {
	return "SELECT current_database()"
}

func (d *PostgresDialect) ColumnsQuery() string {
	// use $1 placeholder
	return `SELECT column_name FROM information_schema.columns WHERE table_schema = current_schema() AND table_name = $1 ORDER BY ordinal_position`
}

func (d *PostgresDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *PostgresDialect) ColumnType(t schema.ScalarType) string {
	switch t {
	case schema.TypeBoolean:
		return "BOOLEAN"
	case schema.TypeInteger:
		return "BIGINT"
	case schema.TypeFloat:
		return "DOUBLE PRECISION"
	default:
		return "TEXT"
	}
}

func (d *PostgresDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *PostgresDialect) CreateTableQuery(table string, cols []*schema.Column) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *PostgresDialect) InsertQuery(table string, cols []string, rows int) string {
	return valuesInsert(d, table, cols, rows)
}

func (d *PostgresDialect) Placeholder(index int) string {
	return fmt.Sprintf("$%d", index+1)
}

func (d *PostgresDialect) MaxParams() int { return 65535 }

func (d *PostgresDialect) MaxRows() int { return 65535 }

func (d *PostgresDialect) Bind(v any) any { return v }

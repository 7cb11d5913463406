package dialect

import (
	"net/url"

	"csv-pump/internal/schema"
)

// Dialect abstracts database-specific operations.
type Dialect interface {
	// Connection
	DriverName() string // name registered with database/sql
	Scheme() string     // URL scheme used in connection descriptors
	DSN(u *url.URL) (string, error)
	CurrentDatabaseQuery() string

	// Metadata Queries (Schema Introspection)
	ColumnsQuery() string // one bind parameter: table name
	CountQuery(table string) string

	// Query Generation
	QuoteIdent(name string) string
	ColumnType(t schema.ScalarType) string
	DropTableQuery(table string) string
	CreateTableQuery(table string, cols []*schema.Column) string
	InsertQuery(table string, cols []string, rows int) string
	Placeholder(index int) string // Returns ?, $1, @p1, etc.

	// Limits for one multi-row INSERT
	MaxParams() int
	MaxRows() int

	// Bind converts a value produced by schema.Convert for the driver.
	Bind(v any) any
}

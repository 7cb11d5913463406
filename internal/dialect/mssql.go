package dialect

import (
	"fmt"
	"net/url"
	"strings"

	"csv-pump/internal/schema"

	_ "github.com/denisenkom/go-mssqldb" // SQL Server Driver
)

type MSSQLDialect struct{}

func (d *MSSQLDialect) DriverName() string { return "sqlserver" }

func (d *MSSQLDialect) Scheme() string { return "sqlserver" }

// DSN moves the database from the URL path into the "database" query
// parameter, which is where go-mssqldb expects it.
func (d *MSSQLDialect) DSN(u *url.URL) (string, error) {
	out := *u
	q := out.Query()
	if db := strings.TrimPrefix(out.Path, "/"); db != "" {
		q.Set("database", db)
	}
	out.Path = ""
	out.RawPath = ""
	out.RawQuery = q.Encode()
	return out.String(), nil
}

func (d *MSSQLDialect) CurrentDatabaseQuery() string {
	return "SELECT DB_NAME()"
}

func (d *MSSQLDialect) ColumnsQuery() string {
	// Use @p1 for table binding
	return `SELECT COLUMN_NAME FROM INFORMATION_SCHEMA.COLUMNS WHERE TABLE_SCHEMA = SCHEMA_NAME() AND TABLE_NAME = @p1 ORDER BY ORDINAL_POSITION`
}

func (d *MSSQLDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *MSSQLDialect) QuoteIdent(name string) string {
	return quoteWith(name, "[", "]")
}

func (d *MSSQLDialect) ColumnType(t schema.ScalarType) string {
	switch t {
	case schema.TypeBoolean:
		return "BIT"
	case schema.TypeInteger:
		return "BIGINT"
	case schema.TypeFloat:
		return "FLOAT"
	default:
		return "NVARCHAR(MAX)"
	}
}

// DropTableQuery avoids DROP TABLE IF EXISTS, which needs SQL Server 2016.
func (d *MSSQLDialect) DropTableQuery(table string) string {
	quoted := d.QuoteIdent(table)
	return fmt.Sprintf("IF OBJECT_ID(N'%s', N'U') IS NOT NULL DROP TABLE %s",
		strings.ReplaceAll(quoted, "'", "''"), quoted)
}

func (d *MSSQLDialect) CreateTableQuery(table string, cols []*schema.Column) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *MSSQLDialect) InsertQuery(table string, cols []string, rows int) string {
	return valuesInsert(d, table, cols, rows)
}

func (d *MSSQLDialect) Placeholder(index int) string {
	return fmt.Sprintf("@p%d", index+1)
}

// SQL Server caps an RPC at 2100 parameters and a VALUES list at 1000 rows.
func (d *MSSQLDialect) MaxParams() int { return 2000 }

func (d *MSSQLDialect) MaxRows() int { return 1000 }

func (d *MSSQLDialect) Bind(v any) any { return v }

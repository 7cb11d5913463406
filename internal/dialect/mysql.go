package dialect

import (
	"fmt"
	"net/url"
	"strings"

	"csv-pump/internal/schema"

	"github.com/go-sql-driver/mysql"
)

type MysqlDialect struct{}

func (d *MysqlDialect) DriverName() string { return "mysql" }

func (d *MysqlDialect) Scheme() string { return "mysql" }

// DSN converts the connection URL into go-sql-driver's
// user:pass@tcp(host:port)/db form. URL query values become DSN params.
func (d *MysqlDialect) DSN(u *url.URL) (string, error) {
	cfg := mysql.NewConfig()
	if u.User != nil {
		cfg.User = u.User.Username()
		cfg.Passwd, _ = u.User.Password()
	}
	cfg.Net = "tcp"
	cfg.Addr = u.Host
	cfg.DBName = strings.TrimPrefix(u.Path, "/")

	dsn := cfg.FormatDSN()
	if u.RawQuery != "" {
		sep := "?"
		if strings.Contains(dsn[strings.LastIndex(dsn, "/"):], "?") {
			sep = "&"
		}
		dsn += sep + u.RawQuery
	}

	if _, err := mysql.ParseDSN(dsn); err != nil {
		return "", fmt.Errorf("invalid mysql options: %w", err)
	}
	return dsn, nil
}

func (d *MysqlDialect) CurrentDatabaseQuery() string {
	return "SELECT DATABASE()"
}

func (d *MysqlDialect) ColumnsQuery() string {
	return `SELECT COLUMN_NAME FROM information_schema.COLUMNS WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ? ORDER BY ORDINAL_POSITION`
}

func (d *MysqlDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) QuoteIdent(name string) string {
	return quoteWith(name, "`", "`")
}

func (d *MysqlDialect) ColumnType(t schema.ScalarType) string {
	switch t {
	case schema.TypeBoolean:
		return "BOOLEAN"
	case schema.TypeInteger:
		return "BIGINT"
	case schema.TypeFloat:
		return "DOUBLE"
	default:
		return "TEXT"
	}
}

func (d *MysqlDialect) DropTableQuery(table string) string {
	return fmt.Sprintf("DROP TABLE IF EXISTS %s", d.QuoteIdent(table))
}

func (d *MysqlDialect) CreateTableQuery(table string, cols []*schema.Column) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

func (d *MysqlDialect) InsertQuery(table string, cols []string, rows int) string {
	return valuesInsert(d, table, cols, rows)
}

func (d *MysqlDialect) Placeholder(index int) string {
	return "?"
}

func (d *MysqlDialect) MaxParams() int { return 65535 }

func (d *MysqlDialect) MaxRows() int { return 65535 }

func (d *MysqlDialect) Bind(v any) any { return v }

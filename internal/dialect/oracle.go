package dialect

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"csv-pump/internal/schema"

	go_ora "github.com/sijms/go-ora/v2"
)

type OracleDialect struct{}

func (d *OracleDialect) DriverName() string { return "oracle" }

func (d *OracleDialect) Scheme() string { return "oracle" }

// DSN rebuilds the URL with go-ora's helper; the database name is used as
// the service name.
func (d *OracleDialect) DSN(u *url.URL) (string, error) {
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		return "", fmt.Errorf("invalid oracle port %q: %w", u.Port(), err)
	}

	var user, password string
	if u.User != nil {
		user = u.User.Username()
		password, _ = u.User.Password()
	}

	var options map[string]string
	if q := u.Query(); len(q) > 0 {
		options = make(map[string]string, len(q))
		for k := range q {
			options[k] = q.Get(k)
		}
	}

	return go_ora.BuildUrl(u.Hostname(), port, strings.TrimPrefix(u.Path, "/"), user, password, options), nil
}

func (d *OracleDialect) CurrentDatabaseQuery() string {
	return "SELECT SYS_CONTEXT('USERENV', 'DB_NAME') FROM DUAL"
}

func (d *OracleDialect) ColumnsQuery() string {
	// Oracle uses :1 for binding; USER_TAB_COLUMNS is scoped to the current user.
	return `SELECT COLUMN_NAME FROM USER_TAB_COLUMNS WHERE TABLE_NAME = :1 ORDER BY COLUMN_ID`
}

func (d *OracleDialect) CountQuery(table string) string {
	return fmt.Sprintf("SELECT COUNT(*) FROM %s", d.QuoteIdent(table))
}

func (d *OracleDialect) QuoteIdent(name string) string {
	return quoteWith(name, `"`, `"`)
}

func (d *OracleDialect) ColumnType(t schema.ScalarType) string {
	switch t {
	case schema.TypeBoolean:
		return "NUMBER(1)"
	case schema.TypeInteger:
		return "NUMBER(19)"
	case schema.TypeFloat:
		return "BINARY_DOUBLE"
	case schema.TypeNull:
		return "VARCHAR2(4000)"
	default:
		return "CLOB"
	}
}

// DropTableQuery swallows ORA-00942 (table or view does not exist).
func (d *OracleDialect) DropTableQuery(table string) string {
	stmt := strings.ReplaceAll("DROP TABLE "+d.QuoteIdent(table), "'", "''")
	return fmt.Sprintf(`BEGIN
  EXECUTE IMMEDIATE '%s';
EXCEPTION
  WHEN OTHERS THEN
    IF SQLCODE != -942 THEN
      RAISE;
    END IF;
END;`, stmt)
}

func (d *OracleDialect) CreateTableQuery(table string, cols []*schema.Column) string {
	return fmt.Sprintf("CREATE TABLE %s (%s)", d.QuoteIdent(table), columnDefs(d, cols))
}

// InsertQuery uses INSERT ALL since Oracle has no multi-row VALUES list.
func (d *OracleDialect) InsertQuery(table string, cols []string, rows int) string {
	into := fmt.Sprintf(" INTO %s (%s) VALUES ", d.QuoteIdent(table), quoteAll(cols, d.QuoteIdent))

	var b strings.Builder
	b.WriteString("INSERT ALL")
	for r := 0; r < rows; r++ {
		b.WriteString(into)
		b.WriteString("(")
		b.WriteString(GeneratePlaceholders(r*len(cols), len(cols), d.Placeholder))
		b.WriteString(")")
	}
	b.WriteString(" SELECT 1 FROM DUAL")
	return b.String()
}

func (d *OracleDialect) Placeholder(index int) string {
	// Oracle uses :1, :2, etc. (1-based index)
	return fmt.Sprintf(":%d", index+1)
}

func (d *OracleDialect) MaxParams() int { return 65535 }

func (d *OracleDialect) MaxRows() int { return 1000 }

// Bind stores booleans as 1/0 in NUMBER(1) columns.
func (d *OracleDialect) Bind(v any) any {
	if b, ok := v.(bool); ok {
		if b {
			return int64(1)
		}
		return int64(0)
	}
	return v
}

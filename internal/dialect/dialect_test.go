package dialect_test

import (
	"net/url"
	"strings"
	"testing"

	"csv-pump/internal/dialect"
	"csv-pump/internal/schema"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestGetDialect(t *testing.T) {
	for name, want := range map[string]dialect.Dialect{
		"mysql":     &dialect.MysqlDialect{},
		"postgres":  &dialect.PostgresDialect{},
		"sqlserver": &dialect.MSSQLDialect{},
		"oracle":    &dialect.OracleDialect{},
	} {
		d, err := dialect.GetDialect(name)
		require.NoError(t, err, name)
		assert.IsType(t, want, d)
	}
	assert.Equal(t, []string{"mysql", "postgres", "sqlserver", "oracle"}, dialect.Names())
}

func TestGetDialect_UnknownDriver(t *testing.T) {
	for _, name := range []string{"", "mssql", "sqlite"} {
		d, err := dialect.GetDialect(name)
		assert.Nil(t, d)
		assert.ErrorIs(t, err, dialect.ErrUnknownDriver, name)
	}
}

func TestMysqlDSN_RoundTrip(t *testing.T) {
	d := &dialect.MysqlDialect{}
	u := &url.URL{
		Scheme:   "mysql",
		User:     url.UserPassword("loader", "p@ss:w/rd?#%"),
		Host:     "db.internal:3307",
		Path:     "/warehouse",
		RawQuery: "charset=utf8mb4",
	}

	dsn, err := d.DSN(u)
	require.NoError(t, err)

	cfg, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "loader", cfg.User)
	assert.Equal(t, "p@ss:w/rd?#%", cfg.Passwd)
	assert.Equal(t, "tcp", cfg.Net)
	assert.Equal(t, "db.internal:3307", cfg.Addr)
	assert.Equal(t, "warehouse", cfg.DBName)
}

func TestMysqlDSN_RejectsBadOption(t *testing.T) {
	d := &dialect.MysqlDialect{}
	_, err := d.DSN(mustURL(t, "mysql://u:p@h:3306/db?parseTime=maybe"))
	assert.Error(t, err)
}

func TestMSSQLDSN_MovesDatabaseToQuery(t *testing.T) {
	d := &dialect.MSSQLDialect{}
	dsn, err := d.DSN(mustURL(t, "sqlserver://sa:secret@h:1433/sales?encrypt=disable"))
	require.NoError(t, err)

	u := mustURL(t, dsn)
	assert.Equal(t, "", u.Path)
	assert.Equal(t, "sales", u.Query().Get("database"))
	assert.Equal(t, "disable", u.Query().Get("encrypt"))
}

func TestOracleDSN(t *testing.T) {
	d := &dialect.OracleDialect{}
	dsn, err := d.DSN(mustURL(t, "oracle://scott:tiger@h:1521/XEPDB1"))
	require.NoError(t, err)

	u := mustURL(t, dsn)
	assert.Equal(t, "oracle", u.Scheme)
	assert.Equal(t, "h:1521", u.Host)
	assert.Equal(t, "scott", u.User.Username())
	assert.Contains(t, u.Path, "XEPDB1")
}

func TestQuoteIdent_EscapesDelimiters(t *testing.T) {
	assert.Equal(t, "`a``b`", (&dialect.MysqlDialect{}).QuoteIdent("a`b"))
	assert.Equal(t, `"a""b"`, (&dialect.PostgresDialect{}).QuoteIdent(`a"b`))
	assert.Equal(t, "[a]]b]", (&dialect.MSSQLDialect{}).QuoteIdent("a]b"))
}

func TestCreateTableQuery_Mysql(t *testing.T) {
	d := &dialect.MysqlDialect{}
	q := d.CreateTableQuery("people", []*schema.Column{
		{Name: "id", Type: schema.TypeInteger},
		{Name: "score", Type: schema.TypeFloat, Nullable: true},
		{Name: "active", Type: schema.TypeBoolean},
		{Name: "first_name", Type: schema.TypeString, Nullable: true},
		{Name: "blank", Type: schema.TypeNull, Nullable: true},
	})
	assert.Equal(t,
		"CREATE TABLE `people` (`id` BIGINT NOT NULL, `score` DOUBLE, `active` BOOLEAN NOT NULL, `first_name` TEXT, `blank` TEXT)",
		q)
}

func TestInsertQuery_PlaceholdersNumberAcrossRows(t *testing.T) {
	cols := []string{"a", "b"}

	assert.Equal(t,
		"INSERT INTO `t` (`a`, `b`) VALUES (?, ?), (?, ?)",
		(&dialect.MysqlDialect{}).InsertQuery("t", cols, 2))
	assert.Equal(t,
		`INSERT INTO "t" ("a", "b") VALUES ($1, $2), ($3, $4)`,
		(&dialect.PostgresDialect{}).InsertQuery("t", cols, 2))
	assert.Equal(t,
		"INSERT INTO [t] ([a], [b]) VALUES (@p1, @p2), (@p3, @p4)",
		(&dialect.MSSQLDialect{}).InsertQuery("t", cols, 2))
	assert.Equal(t,
		`INSERT ALL INTO "t" ("a", "b") VALUES (:1, :2) INTO "t" ("a", "b") VALUES (:3, :4) SELECT 1 FROM DUAL`,
		(&dialect.OracleDialect{}).InsertQuery("t", cols, 2))
}

func TestDropTableQuery(t *testing.T) {
	assert.Equal(t, "DROP TABLE IF EXISTS `t`", (&dialect.MysqlDialect{}).DropTableQuery("t"))
	assert.Equal(t, "IF OBJECT_ID(N'[o''t]', N'U') IS NOT NULL DROP TABLE [o't]", (&dialect.MSSQLDialect{}).DropTableQuery("o't"))
	assert.True(t, strings.Contains((&dialect.OracleDialect{}).DropTableQuery("t"), `EXECUTE IMMEDIATE 'DROP TABLE "t"'`))
}

func TestBatchRows(t *testing.T) {
	assert.Equal(t, 1000, dialect.BatchRows(&dialect.MysqlDialect{}, 10, 1000))
	assert.Equal(t, 200, dialect.BatchRows(&dialect.MSSQLDialect{}, 10, 5000))
	assert.Equal(t, 1000, dialect.BatchRows(&dialect.MSSQLDialect{}, 1, 0))
	assert.Equal(t, 1, dialect.BatchRows(&dialect.MSSQLDialect{}, 3000, 0))
}

func TestOracleBind(t *testing.T) {
	d := &dialect.OracleDialect{}
	assert.Equal(t, int64(1), d.Bind(true))
	assert.Equal(t, int64(0), d.Bind(false))
	assert.Equal(t, "x", d.Bind("x"))
	assert.Nil(t, d.Bind(nil))
}

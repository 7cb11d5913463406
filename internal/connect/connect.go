// Package connect turns a connection descriptor into an open database handle.
package connect

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"net"
	"net/url"
	"strconv"

	"csv-pump/internal/config"
	"csv-pump/internal/dialect"
)

// ConnectionError reports a server that could not be reached or used.
// URL is always redacted.
type ConnectionError struct {
	URL string
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection error (%s): %v", e.URL, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// Conn is the single handle shared by every upload in a run.
type Conn struct {
	DB       *sql.DB
	Dialect  dialect.Dialect
	Database string
	url      *url.URL
}

// BuildURL assembles <scheme>://<user>:<secret>@<host>:<port>/<database>.
// The secret is percent-encoded by url.UserPassword; Options become the query.
func BuildURL(c *config.Connection) (*url.URL, error) {
	d, err := dialect.GetDialect(c.Driver)
	if err != nil {
		return nil, err
	}
	return &url.URL{
		Scheme:   d.Scheme(),
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.Database,
		RawQuery: c.Params().Encode(),
	}, nil
}

// Redact renders u with the secret masked. It is the only form of the URL
// that may be logged.
func Redact(u *url.URL) string {
	return u.Redacted()
}

// Open connects to the server described by c and checks that the target
// database is selected. The caller owns the returned Conn and must Close it.
func Open(ctx context.Context, c *config.Connection) (*Conn, error) {
	d, err := dialect.GetDialect(c.Driver)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	u, err := BuildURL(c)
	if err != nil {
		return nil, &ConnectionError{Err: err}
	}
	redacted := Redact(u)

	log.Printf("Engine URL: %s", redacted)

	dsn, err := d.DSN(u)
	if err != nil {
		return nil, &ConnectionError{URL: redacted, Err: err}
	}

	db, err := sql.Open(d.DriverName(), dsn)
	if err != nil {
		return nil, &ConnectionError{URL: redacted, Err: fmt.Errorf("failed to open db: %w", err)}
	}
	// one file at a time, one statement at a time
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, &ConnectionError{URL: redacted, Err: fmt.Errorf("failed to connect to db: %w", err)}
	}

	var current sql.NullString
	if err := db.QueryRowContext(ctx, d.CurrentDatabaseQuery()).Scan(&current); err != nil {
		db.Close()
		return nil, &ConnectionError{URL: redacted, Err: fmt.Errorf("failed to get database name: %w", err)}
	}
	if !current.Valid || current.String == "" {
		db.Close()
		return nil, &ConnectionError{URL: redacted, Err: fmt.Errorf("no database selected")}
	}

	return &Conn{DB: db, Dialect: d, Database: current.String, url: u}, nil
}

// String returns the redacted connection URL.
func (c *Conn) String() string {
	return Redact(c.url)
}

func (c *Conn) Close() error {
	return c.DB.Close()
}

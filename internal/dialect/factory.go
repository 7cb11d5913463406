package dialect

import (
	"errors"
	"fmt"
)

// ErrUnknownDriver is returned by GetDialect for a name outside Names().
var ErrUnknownDriver = errors.New("unknown driver")

// registry is ordered; the first entry is the default server.
var registry = []struct {
	name string
	new  func() Dialect
}{
	{"mysql", func() Dialect { return &MysqlDialect{} }},
	{"postgres", func() Dialect { return &PostgresDialect{} }},
	{"sqlserver", func() Dialect { return &MSSQLDialect{} }},
	{"oracle", func() Dialect { return &OracleDialect{} }},
}

// Names lists the driver names a connection file may request.
func Names() []string {
	out := make([]string, len(registry))
	for i, r := range registry {
		out[i] = r.name
	}
	return out
}

// GetDialect returns the Dialect for a connection's driver name.
func GetDialect(driver string) (Dialect, error) {
	for _, r := range registry {
		if r.name == driver {
			return r.new(), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, driver)
}

var _ Dialect = (*MysqlDialect)(nil)
var _ Dialect = (*PostgresDialect)(nil)
var _ Dialect = (*MSSQLDialect)(nil)
var _ Dialect = (*OracleDialect)(nil)

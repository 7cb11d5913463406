// Package config loads the connection descriptor used to reach the
// destination database.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"path/filepath"
	"strings"

	"csv-pump/internal/dialect"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every connection key when it is looked up in the
// environment, e.g. CSVPUMP_PASSWORD.
const EnvPrefix = "CSVPUMP"

const DefaultDriver = "mysql"

// Drivers lists the driver names a connection file may request.
var Drivers = dialect.Names()

var requiredKeys = []string{"host", "port", "username", "password", "database"}

// ErrMissingField is wrapped by ConfigError when a required key is absent.
var ErrMissingField = errors.New("missing required field")

type Connection struct {
	Driver   string `mapstructure:"driver"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	// Options holds extra driver parameters in query-string form,
	// e.g. "charset=utf8mb4&parseTime=true".
	Options string `mapstructure:"options"`
}

// ConfigError reports a connection file that could not be used.
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error in %s: %v", e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Load reads the connection descriptor at path. The format follows the file
// extension; files without one are read as JSON. Values found in the
// environment under EnvPrefix override the file.
func Load(path string) (*Connection, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if filepath.Ext(path) == "" {
		v.SetConfigType("json")
	}

	v.SetEnvPrefix(EnvPrefix)
	for _, key := range append([]string{"driver", "options"}, requiredKeys...) {
		if err := v.BindEnv(key); err != nil {
			return nil, &ConfigError{Path: path, Err: err}
		}
	}
	v.SetDefault("driver", DefaultDriver)

	if err := v.ReadInConfig(); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to read config: %w", err)}
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, &ConfigError{Path: path, Err: fmt.Errorf("%w: %s", ErrMissingField, key)}
		}
	}

	var c Connection
	if err := v.Unmarshal(&c); err != nil {
		return nil, &ConfigError{Path: path, Err: fmt.Errorf("failed to parse config: %w", err)}
	}

	if err := c.Validate(); err != nil {
		return nil, &ConfigError{Path: path, Err: err}
	}
	return &c, nil
}

// Validate checks field values that the file format cannot express.
func (c *Connection) Validate() error {
	c.Driver = strings.ToLower(strings.TrimSpace(c.Driver))
	if c.Driver == "" {
		c.Driver = DefaultDriver
	}
	known := false
	for _, d := range Drivers {
		if d == c.Driver {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("unsupported driver %q (expected one of %s)", c.Driver, strings.Join(Drivers, ", "))
	}

	if strings.TrimSpace(c.Host) == "" {
		return fmt.Errorf("%w: host is empty", ErrMissingField)
	}
	if strings.TrimSpace(c.Username) == "" {
		return fmt.Errorf("%w: username is empty", ErrMissingField)
	}
	if strings.TrimSpace(c.Database) == "" {
		return fmt.Errorf("%w: database is empty", ErrMissingField)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	if _, err := url.ParseQuery(c.Options); err != nil {
		return fmt.Errorf("invalid options %q: %w", c.Options, err)
	}
	return nil
}

// Params returns Options parsed as query values.
func (c *Connection) Params() url.Values {
	q, _ := url.ParseQuery(c.Options)
	return q
}

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, "mysql.json", `{
  "host": "db.internal",
  "port": 3307,
  "username": "loader",
  "password": "p@ss:w/rd",
  "database": "warehouse",
  "options": "charset=utf8mb4"
}`)

	c, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "mysql", c.Driver)
	assert.Equal(t, "db.internal", c.Host)
	assert.Equal(t, 3307, c.Port)
	assert.Equal(t, "loader", c.Username)
	assert.Equal(t, "p@ss:w/rd", c.Password)
	assert.Equal(t, "warehouse", c.Database)
	assert.Equal(t, "utf8mb4", c.Params().Get("charset"))
}

func TestLoad_NoExtensionIsJSON(t *testing.T) {
	path := writeConfig(t, "details", `{"host":"h","port":"3306","username":"u","password":"","database":"d"}`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3306, c.Port)
	assert.Equal(t, "", c.Password)
}

func TestLoad_YAML(t *testing.T) {
	path := writeConfig(t, "details.yaml", "driver: postgres\nhost: h\nport: 5432\nusername: u\npassword: secret\ndatabase: d\n")

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres", c.Driver)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Path, "absent.json")
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := writeConfig(t, "broken.json", `{"host": "h",`)

	_, err := Load(path)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
}

func TestLoad_MissingRequiredField(t *testing.T) {
	tests := []struct {
		name    string
		content string
		field   string
	}{
		{"host", `{"port":3306,"username":"u","password":"p","database":"d"}`, "host"},
		{"port", `{"host":"h","username":"u","password":"p","database":"d"}`, "port"},
		{"password", `{"host":"h","port":3306,"username":"u","database":"d"}`, "password"},
		{"database", `{"host":"h","port":3306,"username":"u","password":"p"}`, "database"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, "c.json", tt.content)
			_, err := Load(path)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrMissingField))
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestLoad_EnvOverridesPassword(t *testing.T) {
	t.Setenv("CSVPUMP_PASSWORD", "from-env")
	path := writeConfig(t, "c.json", `{"host":"h","port":3306,"username":"u","database":"d"}`)

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", c.Password)
}

func TestLoad_RejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"port range", `{"host":"h","port":70000,"username":"u","password":"p","database":"d"}`},
		{"driver alias", `{"driver":"mssql","host":"h","port":1,"username":"u","password":"p","database":"d"}`},
		{"driver", `{"driver":"sqlite","host":"h","port":1,"username":"u","password":"p","database":"d"}`},
		{"empty host", `{"host":" ","port":1,"username":"u","password":"p","database":"d"}`},
		{"options", `{"host":"h","port":1,"username":"u","password":"p","database":"d","options":"a=%zz"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, "c.json", tt.content))
			var cfgErr *ConfigError
			require.ErrorAs(t, err, &cfgErr)
		})
	}
}

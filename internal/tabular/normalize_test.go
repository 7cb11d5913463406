package tabular_test

import (
	"errors"
	"strings"
	"testing"

	"csv-pump/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeName(t *testing.T) {
	tests := map[string]string{
		"  First Name ": "First_Name",
		"order id":      "order_id",
		"a  b":          "a__b",
		"already_snake": "already_snake",
		"\tTabbed\t":    "Tabbed",
		"inner\ttab":    "inner\ttab",
		"   ":           "",
	}
	for in, want := range tests {
		assert.Equal(t, want, tabular.NormalizeName(in), "input %q", in)
	}
}

func TestNormalize_EmptyHeaderGetsPlaceholder(t *testing.T) {
	table, err := tabular.Read(strings.NewReader("id,,  ,name\n1,x,y,z\n"), "blank.csv")
	require.NoError(t, err)

	require.NoError(t, tabular.Normalize(table))
	assert.Equal(t, []string{"id", "column_2", "column_3", "name"}, table.Columns)
	assert.Equal(t, "x", table.Record(0)["column_2"])
}

func TestNormalize_CollisionIsRejected(t *testing.T) {
	table, err := tabular.Read(strings.NewReader("A B,A_B\n1,2\n"), "clash.csv")
	require.NoError(t, err)

	err = tabular.Normalize(table)

	var pe *tabular.ParseError
	require.ErrorAs(t, err, &pe)
	assert.True(t, errors.Is(err, tabular.ErrColumnCollision))
	assert.Contains(t, err.Error(), `"A_B"`)
	assert.Equal(t, []string{"A B", "A_B"}, table.Columns, "columns must be untouched on failure")
}

func TestNormalizeColumns_CollisionIgnoresCase(t *testing.T) {
	_, err := tabular.NormalizeColumns([]string{"Total", "total "})
	assert.True(t, errors.Is(err, tabular.ErrColumnCollision))
}

func TestNormalizeColumns_PlaceholderCanCollide(t *testing.T) {
	_, err := tabular.NormalizeColumns([]string{"column_2", ""})
	assert.True(t, errors.Is(err, tabular.ErrColumnCollision))
}

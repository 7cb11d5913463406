package engine

import (
	"bytes"
	"strconv"
	"testing"

	"csv-pump/internal/schema"
	"csv-pump/internal/tabular"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCSV_ShapeAndTypes(t *testing.T) {
	columns := []string{"user id", "email addr", "order amt", "is_active", "reg dt", "remarks"}

	var buf bytes.Buffer
	require.NoError(t, GenerateCSV(&buf, columns, 25, 42))

	table, err := tabular.Read(&buf, "sample.csv")
	require.NoError(t, err)
	assert.Equal(t, 25, table.NumRows())
	assert.Equal(t, columns, table.Columns)

	for i, row := range table.Rows {
		assert.Equal(t, strconv.Itoa(i+1), row[0])
	}

	require.NoError(t, tabular.Normalize(table))
	cols := schema.Infer(table.Columns, table.Rows)
	assert.Equal(t, schema.TypeInteger, cols[0].Type)
	assert.Equal(t, schema.TypeFloat, cols[2].Type)
	assert.Equal(t, schema.TypeBoolean, cols[3].Type)
	assert.Equal(t, schema.TypeString, cols[4].Type)
}

func TestGenerateCSV_SameSeedSameOutput(t *testing.T) {
	columns := []string{"name", "city", "price"}

	var a, b bytes.Buffer
	require.NoError(t, GenerateCSV(&a, columns, 10, 7))
	require.NoError(t, GenerateCSV(&b, columns, 10, 7))
	assert.Equal(t, a.String(), b.String())
}

func TestGenerateCSV_NoColumns(t *testing.T) {
	assert.Error(t, GenerateCSV(&bytes.Buffer{}, nil, 1, 1))
}

package tabular

import (
	"fmt"
	"strings"
)

// NormalizeName trims surrounding whitespace and turns inner spaces into
// underscores. An empty result is returned as is.
func NormalizeName(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// PlaceholderName names a column whose header is blank. position is 1-based.
func PlaceholderName(position int) string {
	return fmt.Sprintf("column_%d", position)
}

// NormalizeColumns applies NormalizeName to every header entry, names blank
// headers with PlaceholderName, and rejects names that collide. Names are
// compared case-insensitively since MySQL column names are.
func NormalizeColumns(columns []string) ([]string, error) {
	out := make([]string, len(columns))
	seen := make(map[string]int, len(columns))

	for i, col := range columns {
		name := NormalizeName(col)
		if name == "" {
			name = PlaceholderName(i + 1)
		}

		key := strings.ToLower(name)
		if prev, ok := seen[key]; ok {
			return nil, fmt.Errorf("%w: %q (column %d) and %q (column %d) both normalize to %q",
				ErrColumnCollision, columns[prev], prev+1, col, i+1, name)
		}
		seen[key] = i
		out[i] = name
	}
	return out, nil
}

// Normalize rewrites t.Columns in place. On collision t is left untouched and
// a ParseError is returned.
func Normalize(t *Table) error {
	cols, err := NormalizeColumns(t.Columns)
	if err != nil {
		return &ParseError{Path: t.Source, Line: 1, Err: err}
	}
	t.Columns = cols
	return nil
}

package dialect

import (
	"strings"

	"csv-pump/internal/schema"
)

// GeneratePlaceholders is a helper function to create a slice of placeholder strings.
// It takes the first index, the number of placeholders needed and a function that returns
// the placeholder for a given index. It returns a comma-separated string.
func GeneratePlaceholders(start, count int, placeholderFunc func(int) string) string {
	placeholders := make([]string, count)
	for i := 0; i < count; i++ {
		placeholders[i] = placeholderFunc(start + i)
	}
	return strings.Join(placeholders, ", ")
}

// quoteWith wraps name in open/close and doubles any embedded close character.
func quoteWith(name, open, close string) string {
	return open + strings.ReplaceAll(name, close, close+close) + close
}

func quoteAll(cols []string, quote func(string) string) string {
	quoted := make([]string, len(cols))
	for i, c := range cols {
		quoted[i] = quote(c)
	}
	return strings.Join(quoted, ", ")
}

// columnDefs renders "name TYPE [NOT NULL]" pairs for CREATE TABLE.
func columnDefs(d Dialect, cols []*schema.Column) string {
	defs := make([]string, len(cols))
	for i, c := range cols {
		def := d.QuoteIdent(c.Name) + " " + d.ColumnType(c.Type)
		if !c.Nullable {
			def += " NOT NULL"
		}
		defs[i] = def
	}
	return strings.Join(defs, ", ")
}

// valuesInsert builds INSERT INTO t (cols) VALUES (...), (...) with
// placeholders numbered across all rows.
func valuesInsert(d Dialect, table string, cols []string, rows int) string {
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(d.QuoteIdent(table))
	b.WriteString(" (")
	b.WriteString(quoteAll(cols, d.QuoteIdent))
	b.WriteString(") VALUES ")
	for r := 0; r < rows; r++ {
		if r > 0 {
			b.WriteString(", ")
		}
		b.WriteString("(")
		b.WriteString(GeneratePlaceholders(r*len(cols), len(cols), d.Placeholder))
		b.WriteString(")")
	}
	return b.String()
}

// BatchRows returns how many rows of width cols fit in one INSERT, capped by
// limit when limit > 0.
func BatchRows(d Dialect, cols, limit int) int {
	n := d.MaxRows()
	if cols > 0 && d.MaxParams()/cols < n {
		n = d.MaxParams() / cols
	}
	if limit > 0 && limit < n {
		n = limit
	}
	if n < 1 {
		n = 1
	}
	return n
}

package schema

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// nullTokens are read as missing values regardless of the column type.
var nullTokens = map[string]bool{
	"": true, "#N/A": true, "#N/A N/A": true, "#NA": true,
	"-1.#IND": true, "-1.#QNAN": true, "-NaN": true, "-nan": true,
	"1.#IND": true, "1.#QNAN": true, "<NA>": true, "N/A": true,
	"NA": true, "NULL": true, "NaN": true, "None": true,
	"n/a": true, "nan": true, "null": true,
}

// IsNull reports whether a raw cell represents a missing value.
func IsNull(cell string) bool {
	return nullTokens[cell]
}

// Classify returns the narrowest type that can hold a single cell.
func Classify(cell string) ScalarType {
	if IsNull(cell) {
		return TypeNull
	}
	if _, ok := parseBool(cell); ok {
		return TypeBoolean
	}
	if _, err := strconv.ParseInt(cell, 10, 64); err == nil {
		return TypeInteger
	} else if errors.Is(err, strconv.ErrRange) {
		// wider than int64; a float would round it
		return TypeString
	}
	if _, ok := parseFloat(cell); ok {
		return TypeFloat
	}
	return TypeString
}

// Join widens a and b to a type that holds values of both.
func Join(a, b ScalarType) ScalarType {
	switch {
	case a == b:
		return a
	case a == TypeNull:
		return b
	case b == TypeNull:
		return a
	case (a == TypeInteger && b == TypeFloat) || (a == TypeFloat && b == TypeInteger):
		return TypeFloat
	default:
		return TypeString
	}
}

// InferType folds Classify over a column's cells. The second result is true
// when at least one cell was null.
func InferType(values []string) (ScalarType, bool) {
	t := TypeNull
	nullable := false
	for _, v := range values {
		c := Classify(v)
		if c == TypeNull {
			nullable = true
			continue
		}
		t = Join(t, c)
		if t == TypeString && nullable {
			break
		}
	}
	if t == TypeNull {
		nullable = true
	}
	return t, nullable
}

// Infer builds one Column per header entry from the row-major cells.
func Infer(columns []string, rows [][]string) []*Column {
	out := make([]*Column, len(columns))
	sample := make([]string, len(rows))
	for i, name := range columns {
		for r, row := range rows {
			sample[r] = row[i]
		}
		typ, nullable := InferType(sample)
		out[i] = &Column{
			Name:     name,
			Type:     typ,
			Nullable: nullable,
			Meaning:  AnalyzeMeaning(name, ""),
		}
	}
	return out
}

// Convert maps a raw cell to the Go value bound for a column of type t.
// Null tokens become nil.
func Convert(cell string, t ScalarType) any {
	if IsNull(cell) {
		return nil
	}
	switch t {
	case TypeBoolean:
		if b, ok := parseBool(cell); ok {
			return b
		}
	case TypeInteger:
		if n, err := strconv.ParseInt(cell, 10, 64); err == nil {
			return n
		}
	case TypeFloat:
		if f, ok := parseFloat(cell); ok {
			return f
		}
	}
	return cell
}

func parseBool(s string) (bool, bool) {
	switch strings.ToLower(s) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// parseFloat accepts finite decimal values only; the destination servers
// cannot store NaN or infinities. Digit separators and hex floats are text.
func parseFloat(s string) (float64, bool) {
	if strings.Contains(s, "_") || isHex(s) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

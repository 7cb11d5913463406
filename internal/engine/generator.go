package engine

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"csv-pump/internal/schema"

	"github.com/brianvoe/gofakeit/v6"
)

// 고정 범위 (같은 seed → 같은 파일)
var (
	dateFrom = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	dateTo   = time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)
)

// GenerateValue returns a fake cell for a column whose meaning was guessed by
// schema.AnalyzeMeaning. index is the 0-based row number.
func GenerateValue(f *gofakeit.Faker, meaning string, index int) string {
	switch meaning {
	case "id":
		return strconv.Itoa(index + 1)
	case "email":
		return f.Email()
	case "phone":
		return f.Phone()
	case "zipcode":
		return f.Zip()
	case "address":
		return f.Street() + ", " + f.City()
	case "password":
		return f.Password(true, true, true, false, false, 12)
	case "date":
		return f.DateRange(dateFrom, dateTo).Format("2006-01-02")
	case "yesno":
		return strconv.FormatBool(f.Bool())
	case "price":
		return fmt.Sprintf("%.2f", f.Price(0.99, 999.99))
	case "count":
		return strconv.Itoa(f.Number(0, 500))
	case "latitude":
		return fmt.Sprintf("%.6f", f.Latitude())
	case "longitude":
		return fmt.Sprintf("%.6f", f.Longitude())
	case "country":
		return f.Country()
	case "city":
		return f.City()
	case "company":
		return f.Company()
	case "ip":
		return f.IPv4Address()
	case "url":
		return f.URL()
	case "title":
		return f.Sentence(3)
	case "description":
		return f.Sentence(10)
	case "name":
		return f.Name()
	default:
		return f.Word()
	}
}

// GenerateCSV writes a header of columns followed by rows of fake values.
// The same seed always produces the same file.
func GenerateCSV(w io.Writer, columns []string, rows int, seed int64) error {
	if len(columns) == 0 {
		return fmt.Errorf("no columns to generate")
	}

	f := gofakeit.New(seed)
	meanings := make([]string, len(columns))
	for i, c := range columns {
		meanings[i] = schema.AnalyzeMeaning(c, "")
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(columns); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	record := make([]string, len(columns))
	for r := 0; r < rows; r++ {
		for i, m := range meanings {
			record[i] = GenerateValue(f, m, r)
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write row %d: %w", r+1, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

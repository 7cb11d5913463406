package engine

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"csv-pump/internal/schema"
	"csv-pump/internal/tabular"
)

// ListCSV returns the files directly under dir whose names end in ".csv"
// (case-sensitive), in os.ReadDir order. Subdirectories are not entered.
func ListCSV(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list source directory: %w", err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	return files, nil
}

// Pipeline runs Load -> Normalize -> Infer -> Replace for each file, sharing
// one Writer (and so one connection) across files.
type Pipeline struct {
	Writer *Writer
	// Preview is the number of leading rows logged before each write.
	Preview int
	// NewProgress, when set, is called before each write with the file's row
	// count and returns the per-batch progress callback.
	NewProgress func(file string, total int) func(n int)
}

// Prepare loads one CSV file, normalizes its header and infers column types.
func (p *Pipeline) Prepare(path string) (*tabular.Table, []*schema.Column, error) {
	t, err := tabular.Load(path)
	if err != nil {
		return nil, nil, err
	}
	log.Printf("Loaded CSV with %d rows and %d columns.", t.NumRows(), t.NumColumns())
	log.Printf("Columns: %v", t.Columns)

	if err := tabular.Normalize(t); err != nil {
		return nil, nil, err
	}
	log.Printf("Cleaned Columns: %v", t.Columns)

	return t, schema.Infer(t.Columns, t.Rows), nil
}

// UploadFile replaces table with the contents of the CSV file at path.
func (p *Pipeline) UploadFile(ctx context.Context, path, table string) (Result, error) {
	fmt.Printf("📤 Uploading %s to table '%s'...\n", path, table)
	res := Result{File: path, Table: table}

	t, cols, err := p.Prepare(path)
	if err != nil {
		res.Status = "PARSE_FAIL"
		res.ErrorMsg = err.Error()
		return res, err
	}
	res.Columns = t.Columns
	res.Rows = t.NumRows()

	if p.Preview > 0 && t.NumRows() > 0 {
		log.Println("Preview of data being uploaded:")
		for _, row := range t.Head(p.Preview) {
			log.Printf("  %v", row)
		}
	}

	var onProgress func(int)
	if p.NewProgress != nil && t.NumRows() > 0 {
		onProgress = p.NewProgress(filepath.Base(path), t.NumRows())
	}

	n, err := p.Writer.Replace(ctx, table, t, cols, onProgress)
	res.Actual = n
	if err != nil {
		res.Status = "WRITE_FAIL"
		res.ErrorMsg = err.Error()
		return res, err
	}

	res.Status = "OK"
	fmt.Println("✅ Data uploaded successfully!")
	return res, nil
}

// UploadDir uploads every CSV file in dir into table. Each file replaces the
// previous one, so only the last file's rows remain. The first failure stops
// the run; the results gathered so far are returned with it.
func (p *Pipeline) UploadDir(ctx context.Context, dir, table string) ([]Result, error) {
	files, err := ListCSV(dir)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		log.Printf("No CSV files found in %s", dir)
		return nil, nil
	}
	if len(files) > 1 {
		log.Printf("Warning: %d CSV files target table '%s'; each upload replaces the previous one.", len(files), table)
	}

	var results []Result
	for _, f := range files {
		res, err := p.UploadFile(ctx, f, table)
		results = append(results, res)
		if err != nil {
			return results, err
		}
	}
	return results, nil
}

package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"csv-pump/internal/engine"

	"github.com/spf13/cobra"
)

var (
	sampleOut     string
	sampleRows    int
	sampleColumns []string
	sampleSeed    int64
)

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write a CSV file filled with fake data",
	Long: `Write a CSV file filled with fake data. Values follow the meaning guessed
from each column name, e.g. "email addr" gets e-mail addresses and "reg_dt" dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if sampleRows < 0 {
			return fmt.Errorf("--rows must not be negative")
		}

		var columns []string
		for _, c := range sampleColumns {
			if c = strings.TrimSpace(c); c != "" {
				columns = append(columns, c)
			}
		}

		if dir := filepath.Dir(sampleOut); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		f, err := os.Create(sampleOut)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", sampleOut, err)
		}

		if err := engine.GenerateCSV(f, columns, sampleRows, sampleSeed); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return fmt.Errorf("failed to close %s: %w", sampleOut, err)
		}

		fmt.Printf("📝 Wrote %d rows x %d columns to %s\n", sampleRows, len(columns), sampleOut)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(sampleCmd)

	sampleCmd.Flags().StringVar(&sampleOut, "out", "sample.csv", "Output CSV path")
	sampleCmd.Flags().IntVar(&sampleRows, "rows", 100, "Number of data rows")
	sampleCmd.Flags().StringSliceVarP(&sampleColumns, "columns", "c", []string{"id", "name", "email", "reg dt", "amt", "is_active"}, "Column names (comma-separated)")
	sampleCmd.Flags().Int64Var(&sampleSeed, "seed", 1, "Random seed")
}

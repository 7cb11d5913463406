package cmd

import (
	"fmt"
	"log"
	"time"

	"csv-pump/internal/config"
	"csv-pump/internal/connect"
	"csv-pump/internal/engine"

	"github.com/gosuri/uiprogress"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func runUpload(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	pipeline := &engine.Pipeline{Preview: viper.GetInt("settings.preview_rows")}

	// Dry Run
	if dryRun {
		log.Println("[SIMULATION] Dry-Run Mode Active: No data will be written.")
		return inspectDir(pipeline, sourceDir, destTable)
	}

	fmt.Println("📄 Loading connection config from", detailsPath)
	cfg, err := config.Load(detailsPath)
	if err != nil {
		return err
	}

	fmt.Printf("🔌 Connecting to %s using %s...\n", cfg.Database, cfg.Driver)
	conn, err := connect.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer conn.Close()
	fmt.Printf("🦅 Connected to %s (%s)\n", conn.Database, cfg.Driver)

	pipeline.Writer = &engine.Writer{
		DB:        conn.DB,
		Dialect:   conn.Dialect,
		BatchSize: settingBatchSize(),
	}
	log.Printf("Starting upload with batch size %d...", pipeline.Writer.BatchSize)
	start := time.Now()

	// Setup Progress Bar
	uiprogress.Start()
	pipeline.NewProgress = func(file string, total int) func(int) {
		bar := uiprogress.AddBar(total).AppendCompleted().PrependElapsed()
		bar.PrependFunc(func(b *uiprogress.Bar) string {
			return fmt.Sprintf("%-20s", file)
		})
		return func(n int) {
			bar.Set(bar.Current() + n) //nolint:errcheck
		}
	}

	results, err := pipeline.UploadDir(ctx, sourceDir, destTable)
	uiprogress.Stop()

	// Verification Step (replace semantics: only the last file survives)
	if err == nil && len(results) > 0 {
		last := len(results) - 1
		results[last] = engine.Verify(ctx, conn.DB, conn.Dialect, results[last])
	}

	printReport(results)
	if err != nil {
		return err
	}
	log.Printf("Upload Done! Time Elapsed: %s", time.Since(start))
	return nil
}

// inspectDir prints the normalized columns and inferred types of every CSV
// file without touching the database.
func inspectDir(pipeline *engine.Pipeline, dir, table string) error {
	files, err := engine.ListCSV(dir)
	if err != nil {
		return err
	}

	fmt.Printf("🔍 Analysis Results (target table: %s):\n", table)
	for i, f := range files {
		t, cols, err := pipeline.Prepare(f)
		if err != nil {
			return err
		}
		fmt.Printf("[%02d] %s (%d rows)\n", i+1, f, t.NumRows())
		for _, c := range cols {
			null := ""
			if c.Nullable {
				null = ", nullable"
			}
			fmt.Printf("     %-24s %s%s (%s)\n", c.Name, c.Type, null, c.Meaning)
		}
	}
	return nil
}

func printReport(results []engine.Result) {
	if len(results) == 0 {
		return
	}

	fmt.Println("\n📊 Summary Report (Upload Order):")
	for i, r := range results {
		icon := "✓"
		if r.Status != "OK" && r.Status != "VERIFIED_OK" {
			icon = "!"
		}
		statusDisplay := r.Status
		if statusDisplay == "VERIFIED_OK" {
			statusDisplay = "OK (Verified)"
		}

		fmt.Printf("[%s] [%02d/%02d] %-30s -> %s : %d rows (Read: %d) - %s\n",
			icon, i+1, len(results), r.File, r.Table, r.Actual, r.Rows, statusDisplay)
		if r.ErrorMsg != "" {
			fmt.Printf("    └ Error: %s\n", r.ErrorMsg)
		}
	}
	fmt.Println("--------------------------------------------------")
	if last := results[len(results)-1]; last.Status == "VERIFIED_OK" {
		fmt.Printf("Table '%s' now holds the %d rows of %s\n", last.Table, last.Actual, last.File)
	}
}

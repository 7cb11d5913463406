package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"csv-pump/internal/engine"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	sourceDir   string
	detailsPath string
	destTable   string
	cfgFile     string
	batchSize   int
	dryRun      bool
)

var RootCmd = &cobra.Command{
	Use:   "csv-pump",
	Short: "Load a directory of CSV files into a database table",
	Long: `
   ____ ______     __  ____  _   _ __  __ ____
  / ___/ ___\ \   / / |  _ \| | | |  \/  |  _ \
 | |   \___ \\ \ / /  | |_) | | | | |\/| | |_) |
 | |___ ___) |\ V /   |  __/| |_| | |  | |  __/
  \____|____/  \_/    |_|    \___/|_|  |_|_|

CSV PUMP 🦅 - replaces a table with the contents of each CSV file in a directory
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runUpload,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	RootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "settings file (default is ./csv-pump.yaml)")

	RootCmd.Flags().StringVar(&sourceDir, "source_dir", "", "Directory containing CSV files")
	RootCmd.Flags().StringVar(&detailsPath, "mysql_details", "", "Path to the connection config file (JSON)")
	RootCmd.Flags().StringVar(&destTable, "destination_table", "", "Table name to write into")
	RootCmd.Flags().IntVar(&batchSize, "batch-size", 0, "Rows per multi-row INSERT (overrides config)")
	RootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Parse and infer schemas without connecting to the database")

	RootCmd.MarkFlagRequired("source_dir")
	RootCmd.MarkFlagRequired("mysql_details")
	RootCmd.MarkFlagRequired("destination_table")

	viper.BindPFlag("settings.batch_size", RootCmd.Flags().Lookup("batch-size"))
	viper.SetDefault("settings.batch_size", engine.DefaultBatchSize)
	viper.SetDefault("settings.preview_rows", 3)
}

// initConfig reads in the settings file, .env and ENV variables if set.
func initConfig() {
	// .env is optional; CSVPUMP_* values in it feed config.Load
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Println("Warning: failed to load .env:", err)
	}

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// 1. Executable Directory (Priority 1)
		ex, err := os.Executable()
		if err == nil {
			viper.AddConfigPath(filepath.Dir(ex))
		}

		// 2. Current Directory (Priority 2)
		viper.AddConfigPath(".")

		viper.SetConfigName("csv-pump")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("CSVPUMP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Println("Using config file:", viper.ConfigFileUsed())
	}
}

// settingBatchSize resolves the batch size: Flag > Config > Default.
func settingBatchSize() int {
	if batchSize > 0 {
		return batchSize
	}
	return viper.GetInt("settings.batch_size")
}

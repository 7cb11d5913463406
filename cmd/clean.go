package cmd

import (
	"fmt"
	"log"

	"csv-pump/internal/config"
	"csv-pump/internal/connect"
	"csv-pump/internal/engine"

	"github.com/spf13/cobra"
)

var (
	cleanDetailsPath string
	cleanTable       string
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Drop the destination table",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cleanDetailsPath)
		if err != nil {
			return err
		}

		conn, err := connect.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer conn.Close()

		fmt.Printf("🦅 Connected to %s (%s)\n", conn.Database, cfg.Driver)

		return dropTable(cmd, conn, cleanTable)
	},
}

func init() {
	RootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringVar(&cleanDetailsPath, "mysql_details", "", "Path to the connection config file (JSON)")
	cleanCmd.Flags().StringVar(&cleanTable, "destination_table", "", "Table to drop")
	cleanCmd.MarkFlagRequired("mysql_details")
	cleanCmd.MarkFlagRequired("destination_table")
}

// dropTable removes table if it exists.
func dropTable(cmd *cobra.Command, conn *connect.Conn, table string) error {
	log.Printf("Dropping table %s...", table)

	if _, err := conn.DB.ExecContext(cmd.Context(), conn.Dialect.DropTableQuery(table)); err != nil {
		return &engine.WriteError{Table: table, Stage: "drop", Err: err}
	}

	log.Println("Table Dropped Successfully!")
	return nil
}

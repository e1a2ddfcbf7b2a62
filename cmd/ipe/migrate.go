package main

import (
	"github.com/spf13/cobra"

	"ipe/config"
	"ipe/internal/repository/postgres"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or upgrade the database schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		logger := config.NewLogger(cfg.Environment)

		db, err := postgres.Open(cmd.Context(), cfg.DBUrl, postgres.DefaultPoolConfig(), logger)
		if err != nil {
			return err
		}
		defer db.Close()

		if err := postgres.MigrateUp(cmd.Context(), db); err != nil {
			return err
		}
		logger.Info("schema up to date")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

package main

import (
	"github.com/spf13/cobra"
)

// rootCmd serves the API when run without a subcommand.
var rootCmd = &cobra.Command{
	Use:   "ipe",
	Short: "Ipê research-summary API",
	Long: `ipe runs the Ipê HTTP API. Researchers register, then publish short
summaries of their work using the shared invite code.

Configuration comes from the environment (and a .env file outside production).`,
	SilenceUsage: true,
	RunE:         runServe,
}

func init() {
	rootCmd.PersistentFlags().Bool("migrate", true, "apply the database schema before serving")
}

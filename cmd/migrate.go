package cmd

import (
	"agrodirect/config"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create and seed the postgres catalog tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.RunMigrations(cfg.DatabaseURL, logger)
	},
}

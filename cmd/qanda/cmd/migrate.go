package cmd

import (
	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/config"
	"github.com/emilythestrangee/qanda/backend/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or verify the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := database.NewDatabase(config.Load())
		if err != nil {
			return err
		}
		defer db.Close()
		return db.Initialize()
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}

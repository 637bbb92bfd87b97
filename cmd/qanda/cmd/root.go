package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/config"
	"github.com/emilythestrangee/qanda/backend/internal/database"
	"github.com/emilythestrangee/qanda/backend/internal/store"
)

var (
	userID int

	dbService database.Service
	qaStore   *store.Store
)

var rootCmd = &cobra.Command{
	Use:   "qanda",
	Short: "CLI for the Q&A knowledge base",
	Long: `qanda is a command-line consumer of the question/answer store.

It provides commands to ask questions, post answers, cast votes, and run
faceted searches. The acting user is supplied with --user; in a full
deployment that id comes from the identity provider.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "migrate" {
			return nil
		}
		svc, err := database.New(config.Load())
		if err != nil {
			return err
		}
		dbService = svc
		qaStore = store.NewStore(svc.GetDB())
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbService != nil {
			return dbService.Close()
		}
		return nil
	},
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().IntVarP(&userID, "user", "u", 0, "acting user id")
}

// getStore returns the initialized store
func getStore() *store.Store {
	return qaStore
}

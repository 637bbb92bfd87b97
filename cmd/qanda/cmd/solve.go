package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var unsolve bool

var solveCmd = &cobra.Command{
	Use:   "solve <question-id>",
	Short: "Mark a question solved (or not)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid question id %q", args[0])
		}
		if err := getStore().MarkSolved(id, !unsolve); err != nil {
			return err
		}
		if unsolve {
			fmt.Printf("Question #%d marked unsolved\n", id)
		} else {
			fmt.Printf("Question #%d marked solved\n", id)
		}
		return nil
	},
}

func init() {
	solveCmd.Flags().BoolVar(&unsolve, "unsolve", false, "clear the solved flag instead")
	rootCmd.AddCommand(solveCmd)
}

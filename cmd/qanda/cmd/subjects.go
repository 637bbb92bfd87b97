package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var subjectDescription string

var subjectsCmd = &cobra.Command{
	Use:   "subjects",
	Short: "List subjects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		subjects, err := getStore().ListSubjects()
		if err != nil {
			return err
		}
		if len(subjects) == 0 {
			fmt.Println("No subjects yet")
			return nil
		}
		for _, subject := range subjects {
			fmt.Printf("#%-4d %-20s %s\n", subject.ID, subject.Name, subject.Description)
		}
		return nil
	},
}

var subjectsAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Create a subject if it does not exist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, err := getStore().EnsureSubject(args[0], subjectDescription)
		if err != nil {
			return err
		}
		fmt.Printf("Subject #%d %s\n", subject.ID, subject.Name)
		return nil
	},
}

func init() {
	subjectsAddCmd.Flags().StringVarP(&subjectDescription, "description", "d", "", "subject description")
	subjectsCmd.AddCommand(subjectsAddCmd)
	rootCmd.AddCommand(subjectsCmd)
}

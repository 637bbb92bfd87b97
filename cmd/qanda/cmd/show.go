package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show <question-id>",
	Short: "Show a question and its answers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid question id %q", args[0])
		}

		question, err := getStore().FindQuestionByID(id)
		if err != nil {
			return err
		}
		getStore().IncrementViewCount(id)

		fmt.Printf("#%d %s\n", question.ID, question.Title)
		if question.Subject != nil {
			fmt.Printf("subject: %s\n", question.Subject.Name)
		}
		if len(question.Tags) > 0 {
			fmt.Printf("tags: %s\n", strings.Join(question.Tags, ", "))
		}
		fmt.Printf("+%d/-%d, %d views, solved=%v\n\n", question.Upvotes, question.Downvotes,
			question.ViewCount, question.IsSolved)
		fmt.Println(question.Content)

		answers, err := getStore().AnswersForQuestion(id)
		if err != nil {
			return err
		}
		for _, a := range answers {
			accepted := ""
			if a.IsAccepted {
				accepted = " [accepted]"
			}
			fmt.Printf("\n--- answer #%d (+%d/-%d)%s\n%s\n", a.ID, a.Upvotes, a.Downvotes, accepted, a.Content)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}

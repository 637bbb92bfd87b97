package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

var answerContent string

var answerCmd = &cobra.Command{
	Use:   "answer <question-id>",
	Short: "Post an answer to a question",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		questionID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid question id %q", args[0])
		}

		answer := models.Answer{
			QuestionID: questionID,
			UserID:     userID,
			Content:    answerContent,
		}
		if err := getStore().SaveAnswer(&answer); err != nil {
			return err
		}

		fmt.Printf("Answer #%d posted on question #%d\n", answer.ID, questionID)
		return nil
	},
}

func init() {
	answerCmd.Flags().StringVarP(&answerContent, "content", "c", "", "answer body")
	rootCmd.AddCommand(answerCmd)
}

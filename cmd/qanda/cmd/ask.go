package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/models"
)

var (
	askContent   string
	askSubjectID int
	askTags      []string
)

var askCmd = &cobra.Command{
	Use:   "ask <title>",
	Short: "Ask a new question",
	Long: `Ask a new question with a title, content, optional subject and tags.

Examples:
  qanda ask "How do I join three tables?" --user 7 --content "..." --tags sql --tags joins`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		question := models.Question{
			UserID:  userID,
			Title:   args[0],
			Content: askContent,
		}
		if askSubjectID > 0 {
			question.SubjectID = &askSubjectID
		}

		if err := getStore().SaveQuestion(&question, askTags); err != nil {
			return err
		}

		fmt.Printf("Question #%d created with %d tag(s)\n", question.ID, len(question.Tags))
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askContent, "content", "c", "", "question body")
	askCmd.Flags().IntVarP(&askSubjectID, "subject", "s", 0, "subject id")
	askCmd.Flags().StringArrayVarP(&askTags, "tags", "t", nil, "tag names (repeatable)")
	rootCmd.AddCommand(askCmd)
}

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/models"
	"github.com/emilythestrangee/qanda/backend/internal/store"
)

var voteCmd = &cobra.Command{
	Use:   "vote <question|answer> <id> <up|down>",
	Short: "Cast, flip or toggle off a vote",
	Long: `Cast a vote on a question or an answer.

Voting the same way twice removes the vote; voting the other way flips it.

Examples:
  qanda vote question 12 up --user 7
  qanda vote answer 3 down --user 7`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid id %q", args[1])
		}

		var value models.VoteValue
		switch args[2] {
		case "up":
			value = models.VoteUp
		case "down":
			value = models.VoteDown
		default:
			return fmt.Errorf("vote direction must be up or down, got %q", args[2])
		}

		var result store.VoteResult
		switch args[0] {
		case "question":
			result, err = getStore().CastQuestionVote(id, userID, value)
		case "answer":
			result, err = getStore().CastAnswerVote(id, userID, value)
		default:
			return fmt.Errorf("vote target must be question or answer, got %q", args[0])
		}
		if err != nil {
			return err
		}

		fmt.Printf("Vote %s: %d up / %d down\n", result.Outcome, result.Upvotes, result.Downvotes)
		if args[0] == "answer" && result.Accepted {
			fmt.Println("Answer is now accepted")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(voteCmd)
}

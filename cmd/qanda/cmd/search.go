package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/emilythestrangee/qanda/backend/internal/query"
)

var (
	searchTags       []string
	searchSubjectID  int
	searchUnanswered bool
	searchSolved     bool
	searchSort       string
	searchPage       int
	searchPageSize   int
)

var searchCmd = &cobra.Command{
	Use:   "search [text]",
	Short: "Search questions by facets",
	Long: `Search questions by any combination of free text, subject, tags,
and status filters. Tag filters intersect: a question must carry every
listed tag.

Examples:
  qanda search "null pointer" --tags java
  qanda search --tags sql --tags joins --solved --sort top`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		criteria := query.Criteria{
			Tags:           searchTags,
			OnlyUnanswered: searchUnanswered,
			OnlySolved:     searchSolved,
			Page:           searchPage,
			PageSize:       searchPageSize,
		}
		if len(args) == 1 {
			criteria.SearchText = args[0]
		}
		if searchSubjectID > 0 {
			criteria.SubjectID = &searchSubjectID
		}
		if searchSort == "top" {
			criteria.Sort = query.SortMostUpvoted
		}

		page, err := getStore().Search(criteria)
		if err != nil {
			return err
		}

		if len(page.Items) == 0 {
			fmt.Println("No results found")
			return nil
		}

		for _, q := range page.Items {
			status := " "
			if q.IsSolved {
				status = "✓"
			}
			fmt.Printf("[%s] #%-4d %s (+%d/-%d, %d answers) [%s]\n",
				status, q.ID, q.Title, q.Upvotes, q.Downvotes, q.AnswerCount,
				strings.Join(q.Tags, ", "))
		}
		fmt.Printf("page %d of %d (%d total)\n", page.CurrentPage+1, page.TotalPages, page.TotalCount)
		return nil
	},
}

func init() {
	searchCmd.Flags().StringArrayVarP(&searchTags, "tags", "t", nil, "required tags (repeatable, intersected)")
	searchCmd.Flags().IntVarP(&searchSubjectID, "subject", "s", 0, "subject id")
	searchCmd.Flags().BoolVar(&searchUnanswered, "unanswered", false, "only unanswered questions")
	searchCmd.Flags().BoolVar(&searchSolved, "solved", false, "only solved questions")
	searchCmd.Flags().StringVar(&searchSort, "sort", "new", "sort order: new or top")
	searchCmd.Flags().IntVar(&searchPage, "page", 0, "zero-based page number")
	searchCmd.Flags().IntVar(&searchPageSize, "page-size", query.DefaultPageSize, "results per page")
	rootCmd.AddCommand(searchCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagsLimit int

var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List the most used tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := getStore().PopularTags(tagsLimit)
		if err != nil {
			return err
		}
		if len(tags) == 0 {
			fmt.Println("No tags yet")
			return nil
		}
		for _, tag := range tags {
			fmt.Printf("%-20s %d\n", tag.Name, tag.UsageCount)
		}
		return nil
	},
}

func init() {
	tagsCmd.Flags().IntVarP(&tagsLimit, "limit", "n", 10, "number of tags to show")
	rootCmd.AddCommand(tagsCmd)
}

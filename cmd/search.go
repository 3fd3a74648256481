package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// searchCmd represents the search command
var searchCmd = &cobra.Command{
	Use:     "search <keyword>",
	Aliases: []string{"find"},
	Short:   "Search tasks by title or description",
	Long:    `Search tasks whose title or description contains the keyword, ignoring case.`,
	Example: `  todolist search milk
  todolist search "pay rent"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	keyword := strings.TrimSpace(strings.Join(args, " "))
	if keyword == "" {
		return store.ErrEmptyKeyword
	}

	taskStore, _, err := GetStore()
	if err != nil {
		return err
	}
	matches := taskStore.Search(keyword)

	if isJSON() {
		if matches == nil {
			return printJSON(cmd.OutOrStdout(), []any{})
		}
		return printJSON(cmd.OutOrStdout(), matches)
	}
	ui.RenderTaskList(cmd.OutOrStdout(), fmt.Sprintf("SEARCH RESULTS FOR '%s'", keyword), matches, taskStore.Now())
	return nil
}

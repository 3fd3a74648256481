package cmd

import (
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List tasks",
	Long:    `List tasks in the order they were added, optionally filtered by status.`,
	Example: `  todolist list
  todolist list --status pending
  todolist list --table`,
	Args: cobra.NoArgs,
	RunE: runList,
}

var (
	listStatus string
	listTable  bool
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVarP(&listStatus, "status", "s", "all", "Filter by status: pending, completed or all")
	listCmd.Flags().BoolVarP(&listTable, "table", "t", false, "Show one line per task")
}

func runList(cmd *cobra.Command, args []string) error {
	keep, err := parseStatus(listStatus)
	if err != nil {
		return err
	}

	taskStore, _, err := GetStore()
	if err != nil {
		return err
	}
	tasks := filterTasks(taskStore.Tasks(), keep)

	if isJSON() {
		if tasks == nil {
			return printJSON(cmd.OutOrStdout(), []any{})
		}
		return printJSON(cmd.OutOrStdout(), tasks)
	}
	if listTable {
		ui.RenderTaskTable(cmd.OutOrStdout(), tasks, taskStore.Now())
		return nil
	}
	ui.RenderTaskList(cmd.OutOrStdout(), "ALL TASKS", tasks, taskStore.Now())
	return nil
}

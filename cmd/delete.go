package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/spf13/cobra"
)

// deleteCmd represents the delete command
var deleteCmd = &cobra.Command{
	Use:     "delete [task_id]",
	Aliases: []string{"rm", "remove"},
	Short:   "Delete a task",
	Long: `Delete a task and renumber the remaining tasks from 1.
Asks for confirmation unless --yes is given.`,
	Example: `  todolist delete 3
  todolist delete 3 --yes`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDelete,
}

var deleteYes bool

func init() {
	rootCmd.AddCommand(deleteCmd)

	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip confirmation")
}

func runDelete(cmd *cobra.Command, args []string) error {
	taskStore, err := getWritableStore()
	if err != nil {
		return err
	}

	if len(args) == 0 && taskStore.Len() == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleError.Render("No tasks available to delete!"))
		return nil
	}
	id, err := resolveTaskID(args, "Select task to delete", taskStore.Tasks())
	if err != nil {
		return err
	}
	task, err := taskStore.Get(id)
	if err != nil {
		return err
	}

	if !deleteYes && !confirmOrAbort(cmd, fmt.Sprintf("Are you sure you want to delete '%s'? (y/n): ", task.Title)) {
		return nil
	}

	removed, err := taskStore.Delete(id)
	if err != nil {
		return err
	}
	if err := taskStore.Persist(); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), removed)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(fmt.Sprintf("Task '%s' deleted successfully!", removed.Title)))
	return nil
}

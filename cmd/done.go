package cmd

import (
	"errors"
	"fmt"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// doneCmd represents the done command
var doneCmd = &cobra.Command{
	Use:     "done [task_id]",
	Aliases: []string{"complete", "d"},
	Short:   "Mark a task as completed",
	Long:    `Mark a task as completed. If task_id is provided, it marks that task directly. Otherwise, it presents an interactive list of pending tasks to choose from.`,
	Example: `  # Interactive mode
  todolist done

  # Complete specific task
  todolist done 2`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDone,
}

func init() {
	rootCmd.AddCommand(doneCmd)
}

func runDone(cmd *cobra.Command, args []string) error {
	taskStore, err := getWritableStore()
	if err != nil {
		return err
	}

	pending := taskStore.Pending()
	if len(args) == 0 && len(pending) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleWarning.Render("No pending tasks to complete!"))
		return nil
	}
	id, err := resolveTaskID(args, "Select task to mark as complete", pending)
	if err != nil {
		return err
	}

	task, err := taskStore.Complete(id)
	if errors.Is(err, store.ErrAlreadyCompleted) {
		if isJSON() {
			return printJSON(cmd.OutOrStdout(), task)
		}
		fmt.Fprintln(cmd.OutOrStdout(), ui.StyleWarning.Render(fmt.Sprintf("Task #%d is already completed!", id)))
		return nil
	}
	if err != nil {
		return err
	}
	if err := taskStore.Persist(); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), task)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(fmt.Sprintf("Task '%s' marked as complete!", task.Title)))
	return nil
}

package cmd

import (
	"fmt"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/cobra"
)

// updateCmd represents the update command
var updateCmd = &cobra.Command{
	Use:     "update [task_id]",
	Aliases: []string{"edit", "u"},
	Short:   "Update a task",
	Long: `Update the title, description, due date or priority of a task.
Only the fields given as flags change. An invalid due date or priority is
reported and left unchanged while the other fields still apply.`,
	Example: `  todolist update 2 --title "Pay rent and bills"
  todolist update 1 --due 05-11-2026 --priority low`,
	Args: cobra.MaximumNArgs(1),
	RunE: runUpdate,
}

var (
	updateTitle       string
	updateDescription string
	updateDue         string
	updatePriority    string
)

func init() {
	rootCmd.AddCommand(updateCmd)

	updateCmd.Flags().StringVar(&updateTitle, "title", "", "New title")
	updateCmd.Flags().StringVarP(&updateDescription, "description", "d", "", "New description")
	updateCmd.Flags().StringVar(&updateDue, "due", "", "New due date (DD-MM-YYYY)")
	updateCmd.Flags().StringVarP(&updatePriority, "priority", "p", "", "New priority: 1/high, 2/medium, 3/low")
}

func runUpdate(cmd *cobra.Command, args []string) error {
	patch := store.Patch{
		Title:        updateTitle,
		Description:  updateDescription,
		DueDate:      updateDue,
		PriorityCode: updatePriority,
	}
	if patch == (store.Patch{}) {
		return errNothingToUpdate
	}
	// Names are mapped to codes; anything unrecognised reaches the store
	// unchanged so it is reported as an invalid priority.
	if code, err := parsePriority(updatePriority); err == nil && code != "" {
		patch.PriorityCode = code
	}

	taskStore, err := getWritableStore()
	if err != nil {
		return err
	}
	id, err := resolveTaskID(args, "Select task to update", taskStore.Tasks())
	if err != nil {
		return err
	}

	res, err := taskStore.Update(id, patch)
	if err != nil {
		return err
	}
	if err := taskStore.Persist(); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), res)
	}
	errOut := cmd.ErrOrStderr()
	if res.InvalidDueDate {
		fmt.Fprintln(errOut, ui.StyleWarning.Render("Invalid date format! Due date not updated."))
	}
	if res.InvalidPriority {
		fmt.Fprintln(errOut, ui.StyleWarning.Render("Invalid priority! Priority not updated."))
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(fmt.Sprintf("Task #%d updated successfully!", id)))
	return nil
}

/*
Copyright © 2025 Joseph Goksu josephgoksu@gmail.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
)

// addCmd represents the add command
var addCmd = &cobra.Command{
	Use:     "add <title>",
	Aliases: []string{"new", "a"},
	Short:   "Add a new task",
	Long: `Add a new pending task to the end of the list and save the file.

The due date uses the DD-MM-YYYY format; an invalid date is dropped with a
warning. Priority accepts 1 (High), 2 (Medium), 3 (Low) or the priority name.`,
	Example: `  todolist add "Buy milk"
  todolist add "Pay rent" --due 01-11-2026 --priority high
  todolist add "Call mum" -d "Sunday afternoon" -p 3`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAdd,
}

var (
	addDescription string
	addDue         string
	addPriority    string
)

func init() {
	rootCmd.AddCommand(addCmd)

	addCmd.Flags().StringVarP(&addDescription, "description", "d", "", "Task description")
	addCmd.Flags().StringVar(&addDue, "due", "", "Due date (DD-MM-YYYY)")
	addCmd.Flags().StringVarP(&addPriority, "priority", "p", "", "Priority: 1/high, 2/medium (default), 3/low")
}

func runAdd(cmd *cobra.Command, args []string) error {
	title := strings.TrimSpace(strings.Join(args, " "))

	code, err := parsePriority(addPriority)
	if err != nil {
		return err
	}

	taskStore, err := getWritableStore()
	if err != nil {
		return err
	}

	if strings.TrimSpace(addDue) != "" {
		if _, perr := models.ParseDate(addDue); perr != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), ui.StyleWarning.Render("Invalid date format! Task will be saved without a due date."))
		}
	}

	task, err := taskStore.Create(title, addDescription, addDue, code)
	if err != nil {
		return err
	}
	if err := taskStore.Persist(); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(cmd.OutOrStdout(), task)
	}
	fmt.Fprintln(cmd.OutOrStdout(), ui.StyleSuccess.Render(
		fmt.Sprintf("Task '%s' added successfully! (ID: %d)", task.Title, task.ID)))
	return nil
}

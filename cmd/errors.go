package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
	"github.com/spf13/viper"
)

var (
	// errIDRequired is returned when a command needs a task id and cannot prompt for one.
	errIDRequired = errors.New("a task ID is required when not running in a terminal")
	// errInvalidID is returned for ids that are not integers.
	errInvalidID = errors.New("please enter a valid task ID")
	// errNothingToUpdate is returned when update is called without any field.
	errNothingToUpdate = errors.New("nothing to update")
	// errUnreadableData is returned when a saving command finds a damaged task file.
	errUnreadableData = errors.New("task file could not be read")
)

// HandleFatalError handles unrecoverable errors that should terminate the application.
func HandleFatalError(userMsg string, technicalErr error) {
	PrintError(userMsg, technicalErr)
	os.Exit(1)
}

// PrintError prints an error message without exiting, allowing for recovery.
func PrintError(userMsg string, technicalErr error) {
	if viper.GetBool("verbose") && technicalErr != nil {
		// In verbose mode, print the detailed, underlying technical error.
		fmt.Fprintf(os.Stderr, "Error: %v\n", technicalErr)
	} else {
		fmt.Fprintln(os.Stderr, ui.StyleError.Render(userMsg))
	}
}

// userMessage maps known errors to the messages shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "Task not found! Run 'todolist list' to see task IDs."
	case errors.Is(err, store.ErrEmptyTitle):
		return "Task title cannot be empty!"
	case errors.Is(err, store.ErrEmptyKeyword):
		return "Search keyword cannot be empty!"
	case errors.Is(err, errInvalidID):
		return "Please enter a valid Task ID!"
	case errors.Is(err, errIDRequired):
		return "Please provide a Task ID."
	case errors.Is(err, errNothingToUpdate):
		return "Nothing to update. Use --title, --description, --due or --priority."
	case errors.Is(err, errUnreadableData):
		return "The task file could not be read. Fix or move it, then try again."
	case errors.Is(err, ui.ErrNoTasks):
		return "No tasks found!"
	case errors.Is(err, ui.ErrPickCancelled):
		return "Operation cancelled."
	default:
		return "Error: " + err.Error()
	}
}

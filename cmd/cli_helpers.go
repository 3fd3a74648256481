package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/internal/utils"
	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func isJSON() bool {
	return viper.GetBool("json")
}

func printJSON(w io.Writer, v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(output))
	return err
}

// confirmOrAbort asks a y/n question on the command's input.
func confirmOrAbort(cmd *cobra.Command, prompt string) bool {
	if isJSON() {
		return true
	}
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	if response != "y" && response != "yes" {
		fmt.Fprintln(cmd.OutOrStdout(), "Deletion cancelled.")
		return false
	}
	return true
}

func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil || id < 1 {
		return 0, fmt.Errorf("%w: %q", errInvalidID, arg)
	}
	return id, nil
}

// resolveTaskID returns the id given as the first argument, or lets the user
// pick one of candidates when attached to a terminal.
func resolveTaskID(args []string, label string, candidates []models.Task) (int, error) {
	if len(args) > 0 {
		return parseTaskID(args[0])
	}
	if !ui.IsInteractive() || isJSON() {
		return 0, errIDRequired
	}
	task, err := ui.PickTask(label, candidates)
	if err != nil {
		return 0, err
	}
	return task.ID, nil
}

// parsePriority accepts a menu code (1-3) or a priority name in any case.
// An empty value yields the default code.
func parsePriority(value string) (string, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", nil
	}
	if p, ok := models.LookupPriorityCode(value); ok {
		return p.Code(), nil
	}
	name := models.TaskPriority(utils.ToTitle(value))
	for _, p := range models.Priorities {
		if p == name {
			return p.Code(), nil
		}
	}
	return "", fmt.Errorf("invalid priority %q: use 1-3 or high, medium, low", value)
}

// parseStatus accepts a status name in any case; "all" and "" match everything.
func parseStatus(value string) (func(models.Task) bool, error) {
	switch name := utils.ToTitle(strings.TrimSpace(value)); name {
	case "", "All":
		return func(models.Task) bool { return true }, nil
	case string(models.StatusPending), string(models.StatusCompleted):
		status := models.TaskStatus(name)
		return func(t models.Task) bool { return t.Status == status }, nil
	default:
		return nil, fmt.Errorf("invalid status %q: use pending, completed or all", value)
	}
}

func filterTasks(tasks []models.Task, keep func(models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

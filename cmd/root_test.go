package cmd

import (
	"encoding/json"
	"errors"
	"os"
	"testing"

	"github.com/josephgoksu/todolist/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Help(t *testing.T) {
	out, _, err := executeCommand(t, "", "--help")
	require.NoError(t, err)

	assert.Contains(t, out, "To-Do List Manager keeps")
	assert.Contains(t, out, "Usage:")
	assert.Contains(t, out, "Available Commands:")
	for _, name := range []string{"add", "list", "update", "done", "delete", "search", "stats", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", GetVersion())

	out, _, err := executeCommand(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "todolist version 1.0.0")
}

func TestRootCmd_InteractiveSession(t *testing.T) {
	path := tempDataFile(t, "todo_list.json")

	out, _, err := executeCommand(t, "2\nBuy milk\nsemi-skimmed\n\n1\n8\n", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, out, "MAIN MENU:")
	assert.Contains(t, out, "Task 'Buy milk' added successfully! (ID: 1)")
	assert.Contains(t, out, "Tasks saved successfully!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var tasks []models.Task
	require.NoError(t, json.Unmarshal(data, &tasks))
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy milk", tasks[0].Title)
	assert.Equal(t, models.PriorityHigh, tasks[0].Priority)
}

func TestRootCmd_InteractiveCorruptFileStartsEmpty(t *testing.T) {
	path := tempDataFile(t, "todo_list.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	out, errOut, err := executeCommand(t, "1\n9\ny\n", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, errOut, "Starting with an empty list.")
	assert.Contains(t, out, "No tasks found!")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{not json", string(data), "exit without saving keeps the file")
}

func TestRootCmd_InvalidFormatFlag(t *testing.T) {
	path := tempDataFile(t, "todo_list.json")
	_, _, err := executeCommand(t, "", "--file", path, "--format", "xml", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "oneof")
}

func TestUserMessage(t *testing.T) {
	_, err := parseTaskID("abc")
	assert.Equal(t, "Please enter a valid Task ID!", userMessage(err))
	assert.Equal(t, "Please provide a Task ID.", userMessage(errIDRequired))
	assert.Equal(t, "Error: boom", userMessage(errors.New("boom")))
}

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	yaml "gopkg.in/yaml.v3"
)

func TestTask_ValidateStruct(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 30, 0, 0, time.Local)
	tests := []struct {
		name    string
		task    Task
		wantErr bool
	}{
		{
			name:    "valid task",
			task:    NewTask(1, "Buy milk", "", nil, PriorityHigh, created),
			wantErr: false,
		},
		{
			name:    "empty title",
			task:    NewTask(1, "", "", nil, PriorityHigh, created),
			wantErr: true,
		},
		{
			name:    "zero id",
			task:    NewTask(0, "Buy milk", "", nil, PriorityHigh, created),
			wantErr: true,
		},
		{
			name: "invalid priority",
			task: func() Task {
				task := NewTask(1, "Buy milk", "", nil, PriorityHigh, created)
				task.Priority = "Urgent"
				return task
			}(),
			wantErr: true,
		},
		{
			name: "invalid status",
			task: func() Task {
				task := NewTask(1, "Buy milk", "", nil, PriorityHigh, created)
				task.Status = "doing"
				return task
			}(),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.task)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPriorityFromCode(t *testing.T) {
	tests := []struct {
		code string
		want TaskPriority
	}{
		{"1", PriorityHigh},
		{"2", PriorityMedium},
		{"3", PriorityLow},
		{" 1 ", PriorityHigh},
		{"", PriorityMedium},
		{"4", PriorityMedium},
		{"high", PriorityMedium},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PriorityFromCode(tt.code), "code %q", tt.code)
	}

	_, ok := LookupPriorityCode("7")
	assert.False(t, ok)
	assert.Equal(t, "3", PriorityLow.Code())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("25-12-2026")
	require.NoError(t, err)
	assert.Equal(t, "25-12-2026", d.String())

	d, err = ParseDate("5-1-2027")
	require.NoError(t, err)
	assert.Equal(t, "05-01-2027", d.String())

	for _, bad := range []string{"", "  ", "2026-12-25", "31-02-2026", "32-01-2026", "tomorrow"} {
		_, err := ParseDate(bad)
		assert.Error(t, err, "input %q", bad)
	}
	assert.Nil(t, ParseOptionalDate("not a date"))
	assert.NotNil(t, ParseOptionalDate("01-01-2030"))
}

func TestIsOverdue(t *testing.T) {
	now := time.Date(2026, 10, 19, 15, 0, 0, 0, time.Local)

	assert.True(t, IsOverdue("18-10-2026", now))
	assert.False(t, IsOverdue("19-10-2026", now), "today is not overdue")
	assert.False(t, IsOverdue("20-10-2026", now))
	assert.False(t, IsOverdue("garbage", now), "parse failure is not overdue")
	assert.False(t, IsOverdue("", now))
}

func TestTask_IsOverdue(t *testing.T) {
	now := time.Date(2026, 10, 19, 8, 0, 0, 0, time.Local)
	past := ParseOptionalDate("01-10-2026")

	task := NewTask(1, "Pay rent", "", past, PriorityLow, now)
	assert.True(t, task.IsOverdue(now))

	task.Status = StatusCompleted
	assert.False(t, task.IsOverdue(now), "completed tasks are never overdue")

	noDue := NewTask(2, "Buy milk", "", nil, PriorityHigh, now)
	assert.False(t, noDue.IsOverdue(now))
}

func TestTask_Matches(t *testing.T) {
	task := Task{Title: "Buy Milk", Description: "from the Corner shop"}
	assert.True(t, task.Matches("milk"))
	assert.True(t, task.Matches("CORNER"))
	assert.False(t, task.Matches("bread"))
}

func TestTask_JSONFormat(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 5, 7, 0, time.Local)
	task := NewTask(1, "Pay rent", "flat 4", ParseOptionalDate("01-11-2026"), PriorityLow, created)

	data, err := json.Marshal(task)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"title": "Pay rent",
		"description": "flat 4",
		"due_date": "01-11-2026",
		"priority": "Low",
		"status": "Pending",
		"created_at": "19-10-2026 09:05:07",
		"completed_at": null
	}`, string(data))

	var decoded Task
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, task, decoded)
}

func TestTask_JSONNullDueDate(t *testing.T) {
	raw := `{"id": 2, "title": "Buy milk", "description": "", "due_date": null,
		"priority": "High", "status": "Completed",
		"created_at": "01-10-2026 10:00:00", "completed_at": "02-10-2026 11:30:00"}`

	var task Task
	require.NoError(t, json.Unmarshal([]byte(raw), &task))
	assert.Nil(t, task.DueDate)
	require.NotNil(t, task.CompletedAt)
	assert.Equal(t, "02-10-2026", task.CompletedAt.Date().String())
}

func TestTask_YAMLFormat(t *testing.T) {
	created := time.Date(2026, 10, 19, 9, 5, 7, 0, time.Local)
	task := NewTask(3, "Water plants", "", nil, PriorityMedium, created)

	data, err := yaml.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(data), "19-10-2026 09:05:07")
	assert.Contains(t, string(data), "due_date: null")

	var decoded Task
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, task, decoded)
}

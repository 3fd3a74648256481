package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// TaskStatus represents the possible statuses of a task.
type TaskStatus string

const (
	StatusPending   TaskStatus = "Pending"
	StatusCompleted TaskStatus = "Completed"
)

// TaskPriority represents the priority levels of a task.
type TaskPriority string

const (
	PriorityHigh   TaskPriority = "High"
	PriorityMedium TaskPriority = "Medium"
	PriorityLow    TaskPriority = "Low"
)

// Priorities lists the priority tiers from highest to lowest.
var Priorities = []TaskPriority{PriorityHigh, PriorityMedium, PriorityLow}

var priorityCodes = map[string]TaskPriority{
	"1": PriorityHigh,
	"2": PriorityMedium,
	"3": PriorityLow,
}

// LookupPriorityCode maps an input code ("1", "2" or "3") to its priority.
// The second return value is false for any other code.
func LookupPriorityCode(code string) (TaskPriority, bool) {
	p, ok := priorityCodes[strings.TrimSpace(code)]
	return p, ok
}

// PriorityFromCode maps an input code to its priority, defaulting to Medium.
func PriorityFromCode(code string) TaskPriority {
	if p, ok := LookupPriorityCode(code); ok {
		return p
	}
	return PriorityMedium
}

// Code returns the input code for the priority ("1", "2" or "3").
func (p TaskPriority) Code() string {
	for code, prio := range priorityCodes {
		if prio == p {
			return code
		}
	}
	return ""
}

// Task represents a single to-do record.
// Field order matches the persisted key order.
type Task struct {
	ID          int          `json:"id" yaml:"id" validate:"required,min=1"`
	Title       string       `json:"title" yaml:"title" validate:"required"`
	Description string       `json:"description" yaml:"description"`
	DueDate     *Date        `json:"due_date" yaml:"due_date"`
	Priority    TaskPriority `json:"priority" yaml:"priority" validate:"required,oneof=High Medium Low"`
	Status      TaskStatus   `json:"status" yaml:"status" validate:"required,oneof=Pending Completed"`
	CreatedAt   Timestamp    `json:"created_at" yaml:"created_at"`
	CompletedAt *Timestamp   `json:"completed_at" yaml:"completed_at"`
}

// IsCompleted reports whether the task has been marked complete.
func (t Task) IsCompleted() bool {
	return t.Status == StatusCompleted
}

// IsOverdue reports whether the task is pending with a due date strictly
// before the day of now.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status != StatusPending || t.DueDate == nil {
		return false
	}
	return t.DueDate.Before(now)
}

// Matches reports whether keyword occurs in the title or description,
// ignoring case.
func (t Task) Matches(keyword string) bool {
	k := strings.ToLower(keyword)
	return strings.Contains(strings.ToLower(t.Title), k) ||
		strings.Contains(strings.ToLower(t.Description), k)
}

// NewTask builds a pending task stamped with the given creation time.
func NewTask(id int, title, description string, due *Date, priority TaskPriority, createdAt time.Time) Task {
	return Task{
		ID:          id,
		Title:       title,
		Description: description,
		DueDate:     due,
		Priority:    priority,
		Status:      StatusPending,
		CreatedAt:   NewTimestamp(createdAt),
	}
}

// global validator instance
var validate = validator.New()

// ValidateStruct performs validation on any struct that has validation tags.
func ValidateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	var errorMessages []string
	for _, e := range validationErrors {
		errorMessages = append(errorMessages, fmt.Sprintf("Validation failed on field '%s': rule '%s' (value: '%v')", e.StructNamespace(), e.Tag(), e.Value()))
	}
	return fmt.Errorf("%s", strings.Join(errorMessages, "; "))
}

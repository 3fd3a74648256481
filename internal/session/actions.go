package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

func (s *Session) viewTasks() {
	ui.RenderTaskList(s.out, "ALL TASKS", s.store.Tasks(), s.store.Now())
}

func (s *Session) addTask() error {
	fmt.Fprintln(s.out)
	ui.RenderHeading(s.out, "ADD NEW TASK")

	title, err := s.prompt("\nEnter task title: ")
	if err != nil {
		return err
	}
	if title == "" {
		s.fail("Task title cannot be empty!")
		return nil
	}
	description, err := s.prompt("Enter task description (optional): ")
	if err != nil {
		return err
	}
	dueText, err := s.prompt("Enter due date (DD-MM-YYYY) or press Enter to skip: ")
	if err != nil {
		return err
	}
	if dueText != "" {
		if _, perr := models.ParseDate(dueText); perr != nil {
			s.warn("Invalid date format! Task will be saved without a due date.")
		}
	}
	code, err := s.prompt(priorityPrompt("Select priority (1-3) [default: 2]: "))
	if err != nil {
		return err
	}

	task, cerr := s.store.Create(title, description, dueText, code)
	if cerr != nil {
		if errors.Is(cerr, store.ErrEmptyTitle) {
			s.fail("Task title cannot be empty!")
		} else {
			s.fail(cerr.Error())
		}
		return nil
	}
	s.log.Debug("task added", "id", task.ID)
	s.ok(fmt.Sprintf("Task '%s' added successfully! (ID: %d)", task.Title, task.ID))
	return nil
}

func (s *Session) updateTask() error {
	if s.store.Len() == 0 {
		s.fail("No tasks available to update!")
		return nil
	}
	s.viewTasks()

	id, ok, err := s.promptID("\nEnter Task ID to update: ")
	if err != nil || !ok {
		return err
	}
	current, gerr := s.store.Get(id)
	if gerr != nil {
		s.fail(fmt.Sprintf("Task with ID %d not found!", id))
		return nil
	}

	fmt.Fprintf(s.out, "\nUpdating Task #%d: %s\n", current.ID, current.Title)
	fmt.Fprintln(s.out, "(Press Enter to keep current value)")

	var patch store.Patch
	if patch.Title, err = s.prompt(fmt.Sprintf("\nNew title [%s]: ", current.Title)); err != nil {
		return err
	}
	if patch.Description, err = s.prompt(fmt.Sprintf("New description [%s]: ", current.Description)); err != nil {
		return err
	}
	due := "None"
	if current.DueDate != nil {
		due = current.DueDate.String()
	}
	if patch.DueDate, err = s.prompt(fmt.Sprintf("New due date (DD-MM-YYYY) [%s]: ", due)); err != nil {
		return err
	}
	label := fmt.Sprintf("Select new priority (1-3) [current: %s]: ", current.Priority)
	if patch.PriorityCode, err = s.prompt(priorityPrompt(label)); err != nil {
		return err
	}

	res, uerr := s.store.Update(id, patch)
	if uerr != nil {
		s.fail(fmt.Sprintf("Task with ID %d not found!", id))
		return nil
	}
	if res.Partial() {
		s.log.Debug("update rejected fields", "id", id, "dueDate", res.InvalidDueDate, "priority", res.InvalidPriority)
	}
	if res.InvalidDueDate {
		s.warn("Invalid date format! Due date not updated.")
	}
	if res.InvalidPriority {
		s.warn("Invalid priority! Priority not updated.")
	}
	s.ok(fmt.Sprintf("Task #%d updated successfully!", id))
	return nil
}

func (s *Session) completeTask() error {
	ui.RenderTaskList(s.out, "PENDING TASKS", s.store.Pending(), s.store.Now())

	id, ok, err := s.promptID("\nEnter Task ID to mark as complete: ")
	if err != nil || !ok {
		return err
	}

	task, cerr := s.store.Complete(id)
	switch {
	case errors.Is(cerr, store.ErrNotFound):
		s.fail(fmt.Sprintf("Task with ID %d not found!", id))
	case errors.Is(cerr, store.ErrAlreadyCompleted):
		s.warn(fmt.Sprintf("Task #%d is already completed!", id))
	case cerr != nil:
		s.fail(cerr.Error())
	default:
		s.ok(fmt.Sprintf("Task '%s' marked as complete!", task.Title))
	}
	return nil
}

func (s *Session) deleteTask() error {
	if s.store.Len() == 0 {
		s.fail("No tasks available to delete!")
		return nil
	}
	s.viewTasks()

	id, ok, err := s.promptID("\nEnter Task ID to delete: ")
	if err != nil || !ok {
		return err
	}
	task, gerr := s.store.Get(id)
	if gerr != nil {
		s.fail(fmt.Sprintf("Task with ID %d not found!", id))
		return nil
	}

	answer, err := s.prompt(fmt.Sprintf("\nAre you sure you want to delete '%s'? (y/n): ", task.Title))
	if err != nil {
		return err
	}
	if !isYes(answer) {
		fmt.Fprintln(s.out, "\nDeletion cancelled.")
		return nil
	}
	if _, derr := s.store.Delete(id); derr != nil {
		s.fail(fmt.Sprintf("Task with ID %d not found!", id))
		return nil
	}
	s.ok(fmt.Sprintf("Task '%s' deleted successfully!", task.Title))
	return nil
}

func (s *Session) searchTasks() error {
	keyword, err := s.prompt("\nEnter search keyword: ")
	if err != nil {
		return err
	}
	if keyword == "" {
		s.fail("Search keyword cannot be empty!")
		return nil
	}
	ui.RenderTaskList(s.out, fmt.Sprintf("SEARCH RESULTS FOR '%s'", keyword), s.store.Search(keyword), s.store.Now())
	return nil
}

func (s *Session) viewStatistics() {
	ui.RenderStatistics(s.out, s.store.Statistics())
}

func priorityPrompt(label string) string {
	var sb strings.Builder
	sb.WriteString("\nPriority levels:\n")
	for _, p := range models.Priorities {
		fmt.Fprintf(&sb, "%s. %s\n", p.Code(), p)
	}
	sb.WriteString(label)
	return sb.String()
}

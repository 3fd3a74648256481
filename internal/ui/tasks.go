package ui

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/models"
	"github.com/josephgoksu/todolist/store"
)

const ruleWidth = 60

func rule() string {
	return StyleSubtle.Render(strings.Repeat("-", ruleWidth))
}

// RenderHeading writes a centered section heading padded with dashes.
func RenderHeading(w io.Writer, title string) {
	title = " " + strings.TrimSpace(title) + " "
	pad := ruleWidth - len([]rune(title))
	if pad < 0 {
		pad = 0
	}
	left := pad / 2
	line := strings.Repeat("-", left) + title + strings.Repeat("-", pad-left)
	fmt.Fprintln(w, StyleHeader.Render(line))
}

// RenderTaskList writes a summary line followed by a detail block per task.
func RenderTaskList(w io.Writer, heading string, tasks []models.Task, now time.Time) {
	fmt.Fprintln(w)
	RenderHeading(w, heading)

	if len(tasks) == 0 {
		fmt.Fprintln(w, "\nNo tasks found!")
		return
	}

	pending, completed := 0, 0
	for _, t := range tasks {
		if t.IsCompleted() {
			completed++
		} else {
			pending++
		}
	}
	fmt.Fprintf(w, "\nSummary: %d Pending | %d Completed\n", pending, completed)
	fmt.Fprintln(w, rule())

	for _, t := range tasks {
		RenderTask(w, t, now)
		fmt.Fprintln(w, rule())
	}
}

// RenderTask writes the detail block for one task.
func RenderTask(w io.Writer, t models.Task, now time.Time) {
	mark := "[ ]"
	if t.IsCompleted() {
		mark = "[x]"
	}
	fmt.Fprintf(w, "\n%s Task #%d: %s\n", StatusStyle(t.Status).Render(mark), t.ID, StyleTitle.Render(t.Title))
	fmt.Fprintf(w, "   Priority: %s\n", PriorityStyle(t.Priority).Render(string(t.Priority)))
	fmt.Fprintf(w, "   Status: %s\n", StatusStyle(t.Status).Render(string(t.Status)))

	if t.Description != "" {
		fmt.Fprintf(w, "   Description: %s\n", t.Description)
	}
	if t.DueDate != nil {
		overdue := ""
		if t.IsOverdue(now) {
			overdue = StyleError.Render(" (Overdue)")
		}
		fmt.Fprintf(w, "   Due Date: %s%s\n", t.DueDate, overdue)
	}
	if t.IsCompleted() && t.CompletedAt != nil {
		fmt.Fprintf(w, "   Completed: %s\n", t.CompletedAt)
	}
	fmt.Fprintf(w, "   Created: %s\n", t.CreatedAt)
}

// RenderTaskTable writes tasks as a compact one-line-per-task table.
func RenderTaskTable(w io.Writer, tasks []models.Task, now time.Time) {
	if len(tasks) == 0 {
		fmt.Fprintln(w, "No tasks found!")
		return
	}

	table := &Table{
		Headers:  []string{"ID", "Title", "Priority", "Status", "Due"},
		MaxWidth: 40,
	}
	for _, t := range tasks {
		due := "-"
		if t.DueDate != nil {
			due = t.DueDate.String()
			if t.IsOverdue(now) {
				due += " !"
			}
		}
		table.Rows = append(table.Rows, []string{
			strconv.Itoa(t.ID),
			t.Title,
			string(t.Priority),
			string(t.Status),
			due,
		})
	}
	fmt.Fprint(w, table.Render())
}

// RenderStatistics writes the aggregate statistics block.
func RenderStatistics(w io.Writer, st store.Statistics) {
	fmt.Fprintln(w)
	RenderHeading(w, "TASK STATISTICS")

	if st.Total == 0 {
		fmt.Fprintln(w, "\nNo tasks available!")
		return
	}

	fmt.Fprintln(w, "\n"+StyleSectionTitle.Render("Overall Statistics:"))
	fmt.Fprintf(w, "   Total Tasks: %d\n", st.Total)
	fmt.Fprintf(w, "   Pending: %d\n", st.Pending)
	fmt.Fprintf(w, "   Completed: %d\n", st.Completed)
	fmt.Fprintf(w, "   Completion Rate: %.1f%%\n", st.CompletionRate)

	fmt.Fprintln(w, "\n"+StyleSectionTitle.Render("Priority Distribution:"))
	for _, p := range models.Priorities {
		fmt.Fprintf(w, "   %s: %d\n", PriorityStyle(p).Render(string(p)), st.ByPriority[p])
	}

	overdue := fmt.Sprintf("Overdue Tasks: %d", st.Overdue)
	if st.Overdue > 0 {
		overdue = StyleWarning.Render(overdue)
	}
	fmt.Fprintf(w, "\n%s\n", overdue)

	if st.Completed > 0 && st.LatestCompletion != nil {
		fmt.Fprintf(w, "\nLatest Completion: %s\n", st.LatestCompletion)
	}
}

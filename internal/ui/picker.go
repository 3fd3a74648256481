package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/josephgoksu/todolist/models"
)

var (
	// ErrNoTasks is returned when there is nothing to pick from.
	ErrNoTasks = errors.New("no tasks found matching your criteria")
	// ErrPickCancelled is returned when the user quits the picker.
	ErrPickCancelled = errors.New("selection cancelled")
)

type pickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Quit   key.Binding
}

var pickerKeys = pickerKeyMap{
	Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
	Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
	Select: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
	Quit:   key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("esc", "cancel")),
}

// PickTask presents tasks in a navigable list and returns the chosen one.
func PickTask(label string, tasks []models.Task) (models.Task, error) {
	if len(tasks) == 0 {
		return models.Task{}, ErrNoTasks
	}

	p := tea.NewProgram(newPickerModel(label, tasks))
	finalModel, err := p.Run()
	if err != nil {
		return models.Task{}, fmt.Errorf("error running task selection: %w", err)
	}
	return finalModel.(pickerModel).result()
}

type pickerModel struct {
	label  string
	tasks  []models.Task
	cursor int
	chosen bool
	quit   bool
}

func newPickerModel(label string, tasks []models.Task) pickerModel {
	return pickerModel{label: label, tasks: tasks}
}

func (m pickerModel) result() (models.Task, error) {
	if m.quit || !m.chosen {
		return models.Task{}, ErrPickCancelled
	}
	return m.tasks[m.cursor], nil
}

func (m pickerModel) Init() tea.Cmd {
	return nil
}

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(keyMsg, pickerKeys.Quit):
		m.quit = true
		return m, tea.Quit
	case key.Matches(keyMsg, pickerKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, pickerKeys.Down):
		if m.cursor < len(m.tasks)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, pickerKeys.Select):
		m.chosen = true
		return m, tea.Quit
	}
	return m, nil
}

func (m pickerModel) View() string {
	var sb strings.Builder
	sb.WriteString("\n" + StyleHeader.Render(m.label) + "\n\n")

	for i, t := range m.tasks {
		cursor := "  "
		style := StyleSelectNormal
		if m.cursor == i {
			cursor = "> "
			style = StyleSelectActive
		}
		line := fmt.Sprintf("%s%s", cursor, style.Render(fmt.Sprintf("#%-3d %s", t.ID, t.Title)))
		line += StyleSelectDim.Render(fmt.Sprintf("  %s, %s", t.Priority, t.Status))
		sb.WriteString(line + "\n")
	}

	help := []string{}
	for _, b := range []key.Binding{pickerKeys.Up, pickerKeys.Down, pickerKeys.Select, pickerKeys.Quit} {
		h := b.Help()
		help = append(help, h.Key+" "+h.Desc)
	}
	sb.WriteString("\n" + StyleSelectDim.Render(strings.Join(help, " • ")) + "\n")
	return sb.String()
}

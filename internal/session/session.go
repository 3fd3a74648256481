// Package session runs the interactive, numbered-menu to-do session over a
// line-oriented reader and writer.
package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/josephgoksu/todolist/internal/logger"
	"github.com/josephgoksu/todolist/internal/ui"
	"github.com/josephgoksu/todolist/store"
)

var (
	errInterrupted = errors.New("interrupted")
	errInputClosed = errors.New("input closed")
)

// ExitReason tells how a session ended.
type ExitReason int

const (
	// ExitSaved follows "Save & Exit".
	ExitSaved ExitReason = iota
	// ExitDiscarded follows a confirmed "Exit Without Saving".
	ExitDiscarded
	// ExitInterrupted follows an interrupt signal while waiting for input.
	ExitInterrupted
	// ExitInputClosed follows the end of input.
	ExitInputClosed
)

func (r ExitReason) String() string {
	switch r {
	case ExitSaved:
		return "saved"
	case ExitDiscarded:
		return "discarded"
	case ExitInterrupted:
		return "interrupted"
	case ExitInputClosed:
		return "input-closed"
	default:
		return fmt.Sprintf("ExitReason(%d)", int(r))
	}
}

// Outcome summarizes a finished session.
type Outcome struct {
	Reason ExitReason
	// Saved reports whether the store was persisted on the way out.
	Saved bool
}

// Config holds the session's I/O wiring.
type Config struct {
	In  io.Reader
	Out io.Writer
	// Interrupts delivers interrupt signals; nil disables interrupt handling.
	Interrupts <-chan os.Signal
	// Pause waits for Enter after each action, as on a terminal.
	Pause  bool
	Logger *slog.Logger
}

// Session drives one store through the interactive menu.
type Session struct {
	store      *store.Store
	out        io.Writer
	lines      <-chan string
	interrupts <-chan os.Signal
	pause      bool
	log        *slog.Logger
}

// New creates a session for st. Reading from cfg.In starts immediately in a
// background goroutine that feeds the session line by line.
func New(st *store.Store, cfg Config) *Session {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	out := cfg.Out
	if out == nil {
		out = io.Discard
	}
	return &Session{
		store:      st,
		out:        out,
		lines:      readLines(cfg.In, log),
		interrupts: cfg.Interrupts,
		pause:      cfg.Pause,
		log:        log,
	}
}

// readLines feeds lines from r without a length limit, so a pasted
// description of any size is still one answer. The channel closes on EOF or
// on the first read error.
func readLines(r io.Reader, log *slog.Logger) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		if r == nil {
			return
		}
		br := bufio.NewReader(r)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				lines <- strings.TrimRight(line, "\r\n")
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					log.Warn("read input failed", "error", err)
				}
				return
			}
		}
	}()
	return lines
}

// Run shows the menu until the user exits, input ends, or an interrupt arrives.
func (s *Session) Run() Outcome {
	for {
		s.printMenu()
		choice, err := s.prompt("\nEnter your choice (1-9): ")
		if err == nil {
			var done bool
			var outcome Outcome
			done, outcome, err = s.dispatch(choice)
			if err == nil && done {
				return outcome
			}
		}
		switch {
		case errors.Is(err, errInterrupted):
			return s.onInterrupt()
		case errors.Is(err, errInputClosed):
			s.log.Warn("input closed, exiting without saving", "tasks", s.store.Len())
			fmt.Fprintln(s.out, "\nInput closed. Exiting without saving.")
			return Outcome{Reason: ExitInputClosed}
		}
	}
}

func (s *Session) dispatch(choice string) (bool, Outcome, error) {
	var err error
	switch strings.TrimSpace(choice) {
	case "1":
		s.viewTasks()
	case "2":
		err = s.addTask()
	case "3":
		err = s.updateTask()
	case "4":
		err = s.completeTask()
	case "5":
		err = s.deleteTask()
	case "6":
		err = s.searchTasks()
	case "7":
		s.viewStatistics()
	case "8":
		if s.save() {
			fmt.Fprintln(s.out, "Thank you for using To-Do List Manager!")
			return true, Outcome{Reason: ExitSaved, Saved: true}, nil
		}
	case "9":
		answer, err := s.prompt("\nExit without saving? All changes will be lost! (y/n): ")
		if err != nil {
			return false, Outcome{}, err
		}
		if isYes(answer) {
			fmt.Fprintln(s.out, "\nThank you for using To-Do List Manager!")
			return true, Outcome{Reason: ExitDiscarded}, nil
		}
		return false, Outcome{}, nil
	default:
		s.fail("Invalid choice! Please enter 1-9")
	}
	if err != nil {
		return false, Outcome{}, err
	}
	return false, Outcome{}, s.waitForEnter()
}

func (s *Session) onInterrupt() Outcome {
	fmt.Fprintln(s.out, "\n\n"+ui.StyleWarning.Render("Interrupted by user!"))
	outcome := Outcome{Reason: ExitInterrupted}

	answer, err := s.prompt("Save changes before exiting? (y/n): ")
	if err == nil && isYes(answer) {
		outcome.Saved = s.save()
	}
	fmt.Fprintln(s.out, "Goodbye!")
	return outcome
}

func (s *Session) save() bool {
	if err := s.store.Persist(); err != nil {
		s.log.Error("save failed", "location", s.store.Location(), "error", err)
		s.fail(fmt.Sprintf("Failed to save tasks: %v", err))
		return false
	}
	fmt.Fprintln(s.out, "\n"+ui.StyleSuccess.Render("Tasks saved successfully!"))
	return true
}

func (s *Session) printMenu() {
	fmt.Fprintln(s.out)
	ui.RenderHeading(s.out, "TO-DO LIST MANAGER")
	fmt.Fprintln(s.out, "\nMAIN MENU:")
	for i, item := range menuItems {
		fmt.Fprintf(s.out, "%d. %s\n", i+1, item)
	}
}

var menuItems = []string{
	"View All Tasks",
	"Add New Task",
	"Update Task",
	"Mark Task as Complete",
	"Delete Task",
	"Search Tasks",
	"View Statistics",
	"Save & Exit",
	"Exit Without Saving",
}

// prompt writes label and waits for the next input line.
func (s *Session) prompt(label string) (string, error) {
	fmt.Fprint(s.out, label)
	select {
	case line, ok := <-s.lines:
		if !ok {
			return "", errInputClosed
		}
		logger.SetLastInput(line)
		return strings.TrimSpace(line), nil
	case <-s.interrupts:
		return "", errInterrupted
	}
}

func (s *Session) promptID(label string) (int, bool, error) {
	text, err := s.prompt(label)
	if err != nil {
		return 0, false, err
	}
	id, convErr := strconv.Atoi(text)
	if convErr != nil {
		s.fail("Please enter a valid Task ID!")
		return 0, false, nil
	}
	return id, true, nil
}

func (s *Session) waitForEnter() error {
	if !s.pause {
		return nil
	}
	_, err := s.prompt("\nPress Enter to continue...")
	return err
}

func (s *Session) fail(msg string) {
	fmt.Fprintln(s.out, ui.StyleError.Render(msg))
}

func (s *Session) warn(msg string) {
	fmt.Fprintln(s.out, ui.StyleWarning.Render(msg))
}

func (s *Session) ok(msg string) {
	fmt.Fprintln(s.out, "\n"+ui.StyleSuccess.Render(msg))
}

func isYes(answer string) bool {
	return strings.EqualFold(strings.TrimSpace(answer), "y")
}

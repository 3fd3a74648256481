// Package store holds the ordered in-memory task collection and mirrors it
// to a Backend on demand.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/josephgoksu/todolist/models"
)

// Errors returned by Store operations. ErrAlreadyCompleted is informational.
var (
	ErrNotFound         = errors.New("task not found")
	ErrAlreadyCompleted = errors.New("task already completed")
	ErrEmptyTitle       = errors.New("task title cannot be empty")
	ErrEmptyKeyword     = errors.New("search keyword cannot be empty")
)

// LoadStatus describes the outcome of Store.Load.
type LoadStatus int

const (
	LoadOK LoadStatus = iota
	LoadMissing
	LoadUnreadable
	LoadCorrupt
)

func (s LoadStatus) String() string {
	switch s {
	case LoadOK:
		return "ok"
	case LoadMissing:
		return "missing"
	case LoadUnreadable:
		return "unreadable"
	case LoadCorrupt:
		return "corrupt"
	default:
		return fmt.Sprintf("LoadStatus(%d)", int(s))
	}
}

// LoadResult reports how the store was populated. Err holds the underlying
// cause for any status other than LoadOK and is meant for logging only.
type LoadResult struct {
	Status LoadStatus
	Count  int
	Err    error
}

// Damaged reports whether data exists in the backend but could not be used.
// Saving over a damaged backend loses that data.
func (r LoadResult) Damaged() bool {
	return r.Status == LoadCorrupt || r.Status == LoadUnreadable
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for timestamps and overdue checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger used to report storage degradation.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) { s.log = l }
}

// Store is an ordered sequence of tasks. Iteration order is insertion order;
// ids are positional and are re-sequenced to 1..N after every delete.
type Store struct {
	tasks   []models.Task
	backend Backend
	now     func() time.Time
	log     *slog.Logger
}

// New creates an empty store persisted through backend.
func New(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		now:     time.Now,
		log:     slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and loads it from backend.
func Open(backend Backend, opts ...Option) (*Store, LoadResult) {
	s := New(backend, opts...)
	return s, s.Load()
}

// Location returns where the store is persisted.
func (s *Store) Location() string {
	return s.backend.Location()
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	return s.now()
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Tasks returns a copy of all tasks in order.
func (s *Store) Tasks() []models.Task {
	out := make([]models.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Pending returns the pending tasks in order.
func (s *Store) Pending() []models.Task {
	return s.filter(func(t models.Task) bool { return !t.IsCompleted() })
}

// Get returns the task with the given id.
func (s *Store) Get(id int) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	return s.tasks[i], nil
}

// Create appends a new pending task. The due date is dropped silently when
// dueDateText is not a valid DD-MM-YYYY date, and priorityCode falls back to
// Medium when it is not one of "1", "2" or "3".
func (s *Store) Create(title, description, dueDateText, priorityCode string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, ErrEmptyTitle
	}

	task := models.NewTask(
		len(s.tasks)+1,
		title,
		strings.TrimSpace(description),
		models.ParseOptionalDate(dueDateText),
		models.PriorityFromCode(priorityCode),
		s.now(),
	)
	if err := models.ValidateStruct(task); err != nil {
		return models.Task{}, fmt.Errorf("validation failed for new task: %w", err)
	}

	s.tasks = append(s.tasks, task)
	return task, nil
}

// Patch holds the optional fields of an update. Empty fields are left unchanged.
type Patch struct {
	Title        string
	Description  string
	DueDate      string
	PriorityCode string
}

// UpdateResult reports the updated task and any field that was rejected.
// Rejected fields leave the stored value unchanged; the rest still apply.
type UpdateResult struct {
	Task            models.Task `json:"task"`
	InvalidDueDate  bool        `json:"invalidDueDate"`
	InvalidPriority bool        `json:"invalidPriority"`
}

// Partial reports whether at least one supplied field was rejected.
func (r UpdateResult) Partial() bool {
	return r.InvalidDueDate || r.InvalidPriority
}

// Update applies patch to the task with the given id.
func (s *Store) Update(id int, patch Patch) (UpdateResult, error) {
	i := s.indexOf(id)
	if i < 0 {
		return UpdateResult{}, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}

	var res UpdateResult
	task := s.tasks[i]

	if title := strings.TrimSpace(patch.Title); title != "" {
		task.Title = title
	}
	if desc := strings.TrimSpace(patch.Description); desc != "" {
		task.Description = desc
	}
	if strings.TrimSpace(patch.DueDate) != "" {
		if d, err := models.ParseDate(patch.DueDate); err == nil {
			task.DueDate = &d
		} else {
			res.InvalidDueDate = true
		}
	}
	if strings.TrimSpace(patch.PriorityCode) != "" {
		if p, ok := models.LookupPriorityCode(patch.PriorityCode); ok {
			task.Priority = p
		} else {
			res.InvalidPriority = true
		}
	}

	s.tasks[i] = task
	res.Task = task
	return res, nil
}

// Complete marks the task as completed and stamps its completion time.
// Completing an already completed task returns it unchanged together with
// ErrAlreadyCompleted.
func (s *Store) Complete(id int) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	task := s.tasks[i]
	if task.IsCompleted() {
		return task, ErrAlreadyCompleted
	}

	stamp := models.NewTimestamp(s.now())
	task.Status = models.StatusCompleted
	task.CompletedAt = &stamp
	s.tasks[i] = task
	return task, nil
}

// Delete removes the task with the given id and renumbers the remaining
// tasks 1..N in their current order. It returns the removed task.
func (s *Store) Delete(id int) (models.Task, error) {
	i := s.indexOf(id)
	if i < 0 {
		return models.Task{}, fmt.Errorf("task #%d: %w", id, ErrNotFound)
	}
	removed := s.tasks[i]
	s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
	s.resequence()
	return removed, nil
}

// Search returns the tasks whose title or description contains keyword,
// ignoring case, in store order.
func (s *Store) Search(keyword string) []models.Task {
	return s.filter(func(t models.Task) bool { return t.Matches(keyword) })
}

// Persist writes the full sequence to the backend, replacing prior content.
func (s *Store) Persist() error {
	if err := s.backend.Save(s.tasks); err != nil {
		return fmt.Errorf("save tasks to %s: %w", s.backend.Location(), err)
	}
	s.log.Debug("tasks saved", "location", s.backend.Location(), "count", len(s.tasks))
	return nil
}

// Load replaces the in-memory sequence with the backend's content.
// Any storage problem leaves the store empty; the cause is returned in the
// result and logged, never propagated.
func (s *Store) Load() LoadResult {
	tasks, err := s.backend.Load()
	if err != nil {
		s.tasks = nil
		res := LoadResult{Status: classifyLoadError(err), Err: err}
		if res.Status == LoadMissing {
			s.log.Info("no task file found, starting fresh", "location", s.backend.Location())
		} else {
			s.log.Warn("could not load tasks, starting fresh",
				"location", s.backend.Location(), "status", res.Status.String(), "error", err)
		}
		return res
	}

	for _, t := range tasks {
		if verr := models.ValidateStruct(t); verr != nil {
			s.tasks = nil
			s.log.Warn("task file holds an invalid record, starting fresh",
				"location", s.backend.Location(), "error", verr)
			return LoadResult{Status: LoadCorrupt, Err: verr}
		}
	}

	s.tasks = tasks
	s.log.Debug("tasks loaded", "location", s.backend.Location(), "count", len(tasks))
	return LoadResult{Status: LoadOK, Count: len(tasks)}
}

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) resequence() {
	for i := range s.tasks {
		s.tasks[i].ID = i + 1
	}
}

func (s *Store) filter(keep func(models.Task) bool) []models.Task {
	var out []models.Task
	for _, t := range s.tasks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return out
}

// ErrCorrupt marks backend content that exists but cannot be decoded.
var ErrCorrupt = errors.New("corrupt task data")

func classifyLoadError(err error) LoadStatus {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return LoadMissing
	case errors.Is(err, ErrCorrupt):
		return LoadCorrupt
	default:
		return LoadUnreadable
	}
}

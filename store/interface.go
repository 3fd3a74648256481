package store

import "github.com/josephgoksu/todolist/models"

// Backend defines the contract for task persistence.
// A backend always reads and writes the full ordered sequence of tasks;
// it holds no state between calls and keeps no file or connection open.
type Backend interface {
	// Load reads the persisted sequence of tasks.
	// A missing backing file is reported with an error wrapping fs.ErrNotExist.
	Load() ([]models.Task, error)

	// Save overwrites the persisted sequence with tasks, preserving order.
	Save(tasks []models.Task) error

	// Location describes where the tasks are persisted, for messages and logs.
	Location() string
}

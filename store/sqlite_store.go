package store

import (
	"database/sql"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/josephgoksu/todolist/models"
	_ "modernc.org/sqlite" // SQLite driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS tasks (
	position INTEGER PRIMARY KEY,
	id INTEGER NOT NULL,
	title TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	due_date TEXT,
	priority TEXT NOT NULL,
	status TEXT NOT NULL,
	created_at TEXT NOT NULL,
	completed_at TEXT
);`

// SQLiteBackend persists tasks in a SQLite database file. Row order is kept
// in the position column. The database is opened for each Load or Save and
// closed again before returning.
type SQLiteBackend struct {
	dbPath string
}

// NewSQLiteBackend creates a backend for the database at dbPath.
func NewSQLiteBackend(dbPath string) *SQLiteBackend {
	return &SQLiteBackend{dbPath: dbPath}
}

// Location returns the database file path.
func (b *SQLiteBackend) Location() string {
	return b.dbPath
}

func (b *SQLiteBackend) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", b.dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	return db, nil
}

// Load reads all rows ordered by position.
func (b *SQLiteBackend) Load() ([]models.Task, error) {
	// Opening a missing file would create an empty database.
	if _, err := os.Stat(b.dbPath); err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("database %s: %w", b.dbPath, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("stat database %s: %w", b.dbPath, err)
	}

	db, err := b.open()
	if err != nil {
		return nil, err
	}
	defer func() { _ = db.Close() }()

	rows, err := db.Query(`SELECT id, title, description, due_date, priority, status, created_at, completed_at
		FROM tasks ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %v: %w", err, ErrCorrupt)
	}
	defer func() { _ = rows.Close() }()

	var tasks []models.Task
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("scan task: %v: %w", err, ErrCorrupt)
		}
		tasks = append(tasks, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %v: %w", err, ErrCorrupt)
	}
	return tasks, nil
}

func scanTask(rows *sql.Rows) (models.Task, error) {
	var (
		task                 models.Task
		priority, status     string
		createdAt            string
		dueDate, completedAt sql.NullString
	)
	if err := rows.Scan(&task.ID, &task.Title, &task.Description, &dueDate, &priority, &status, &createdAt, &completedAt); err != nil {
		return models.Task{}, err
	}
	task.Priority = models.TaskPriority(priority)
	task.Status = models.TaskStatus(status)

	if dueDate.Valid && dueDate.String != "" {
		d, err := models.ParseDate(dueDate.String)
		if err != nil {
			return models.Task{}, err
		}
		task.DueDate = &d
	}
	if createdAt != "" {
		ts, err := models.ParseTimestamp(createdAt)
		if err != nil {
			return models.Task{}, err
		}
		task.CreatedAt = ts
	}
	if completedAt.Valid && completedAt.String != "" {
		ts, err := models.ParseTimestamp(completedAt.String)
		if err != nil {
			return models.Task{}, err
		}
		task.CompletedAt = &ts
	}
	return task, nil
}

// Save replaces every row inside a single transaction.
func (b *SQLiteBackend) Save(tasks []models.Task) error {
	if dir := filepath.Dir(b.dbPath); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := b.open()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if _, err := db.Exec(sqliteSchema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`INSERT INTO tasks
		(position, id, title, description, due_date, priority, status, created_at, completed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, t := range tasks {
		var dueDate, completedAt sql.NullString
		if t.DueDate != nil {
			dueDate = sql.NullString{String: t.DueDate.String(), Valid: true}
		}
		if t.CompletedAt != nil {
			completedAt = sql.NullString{String: t.CompletedAt.String(), Valid: true}
		}
		if _, err := stmt.Exec(i, t.ID, t.Title, t.Description, dueDate,
			string(t.Priority), string(t.Status), t.CreatedAt.String(), completedAt); err != nil {
			return fmt.Errorf("insert task #%d: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tasks: %w", err)
	}
	return nil
}

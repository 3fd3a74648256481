package store

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/josephgoksu/todolist/models"
	"github.com/spf13/afero"
	yaml "gopkg.in/yaml.v3"
)

const (
	// DefaultDataFile is the task file used when none is configured.
	DefaultDataFile = "todo_list.json"

	FormatJSON   = "json"
	FormatYAML   = "yaml"
	FormatSQLite = "sqlite"

	tempSuffix = ".tmp"
)

// FileBackend persists tasks as a single JSON or YAML document holding an
// array of task records.
type FileBackend struct {
	fs       afero.Fs
	filePath string
	format   string
}

// NewFileBackend creates a file backend on fs. An empty format defaults to
// JSON; an empty path defaults to DefaultDataFile.
func NewFileBackend(fs afero.Fs, filePath, format string) (*FileBackend, error) {
	if filePath == "" {
		filePath = DefaultDataFile
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatJSON
	}
	switch format {
	case FormatJSON, FormatYAML:
	default:
		return nil, fmt.Errorf("unsupported file format: %s. Supported formats are json, yaml", format)
	}
	return &FileBackend{fs: fs, filePath: filePath, format: format}, nil
}

// NewBackend picks the backend for format: sqlite opens a database file,
// anything else a JSON or YAML document on the OS filesystem.
func NewBackend(filePath, format string) (Backend, error) {
	if strings.EqualFold(strings.TrimSpace(format), FormatSQLite) {
		return NewSQLiteBackend(filePath), nil
	}
	return NewFileBackend(afero.NewOsFs(), filePath, format)
}

// Location returns the data file path.
func (b *FileBackend) Location() string {
	return b.filePath
}

// Format returns the serialization format.
func (b *FileBackend) Format() string {
	return b.format
}

// Load reads and decodes the data file.
func (b *FileBackend) Load() ([]models.Task, error) {
	data, err := afero.ReadFile(b.fs, b.filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read data file %s: %w", b.filePath, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("data file %s is empty: %w", b.filePath, ErrCorrupt)
	}

	var tasks []models.Task
	switch b.format {
	case FormatJSON:
		err = json.Unmarshal(data, &tasks)
	case FormatYAML:
		err = yaml.Unmarshal(data, &tasks)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s from %s: %v: %w", b.format, b.filePath, err, ErrCorrupt)
	}
	return tasks, nil
}

// Save encodes tasks and replaces the data file. The new content is written
// to a temporary file first and renamed over the old one.
func (b *FileBackend) Save(tasks []models.Task) error {
	if tasks == nil {
		tasks = []models.Task{}
	}

	var data []byte
	var err error
	switch b.format {
	case FormatJSON:
		data, err = json.MarshalIndent(tasks, "", "    ")
		data = append(data, '\n')
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(tasks); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	}
	if err != nil {
		return fmt.Errorf("failed to marshal tasks to %s: %w", b.format, err)
	}

	if dir := filepath.Dir(b.filePath); dir != "." && dir != "" {
		if err := b.fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	tempFilePath := b.filePath + tempSuffix
	defer func() { _ = b.fs.Remove(tempFilePath) }()

	if err := afero.WriteFile(b.fs, tempFilePath, data, 0o644); err != nil {
		return fmt.Errorf("failed to write to temporary data file %s: %w", tempFilePath, err)
	}
	if err := b.fs.Rename(tempFilePath, b.filePath); err != nil {
		return fmt.Errorf("failed to rename temporary data file %s to %s: %w", tempFilePath, b.filePath, err)
	}
	return nil
}

package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock() Option {
	return WithClock(func() time.Time { return testNow })
}

func seedStore(t *testing.T, s *Store) {
	t.Helper()
	_, err := s.Create("Buy milk", "", "", "1")
	require.NoError(t, err)
	_, err = s.Create("Pay rent", "flat 4", "01-10-2026", "3")
	require.NoError(t, err)
	_, err = s.Create("Call mum", "sunday", "25-12-2026", "2")
	require.NoError(t, err)
	_, err = s.Complete(3)
	require.NoError(t, err)
}

func TestFileBackend_RoundTrip(t *testing.T) {
	for _, format := range []string{FormatJSON, FormatYAML} {
		t.Run(format, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			backend, err := NewFileBackend(fs, "todo_list."+format, format)
			require.NoError(t, err)

			s := New(backend, fixedClock())
			seedStore(t, s)
			require.NoError(t, s.Persist())

			reloaded, res := Open(backend, fixedClock())
			assert.Equal(t, LoadOK, res.Status)
			assert.Equal(t, 3, res.Count)
			assert.Equal(t, s.Tasks(), reloaded.Tasks())

			exists, err := afero.Exists(fs, "todo_list."+format+tempSuffix)
			require.NoError(t, err)
			assert.False(t, exists, "temporary file is cleaned up")
		})
	}
}

func TestFileBackend_RoundTripEmpty(t *testing.T) {
	fs := afero.NewMemMapFs()
	backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
	require.NoError(t, err)

	require.NoError(t, New(backend).Persist())

	data, err := afero.ReadFile(fs, "todo_list.json")
	require.NoError(t, err)
	assert.Equal(t, "[]", strings.TrimSpace(string(data)))

	reloaded, res := Open(backend)
	assert.Equal(t, LoadOK, res.Status)
	assert.Equal(t, 0, reloaded.Len())
}

func TestFileBackend_JSONLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	backend, err := NewFileBackend(fs, "todo_list.json", "")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, backend.Format())

	s := New(backend, fixedClock())
	_, err = s.Create("Buy milk", "", "", "1")
	require.NoError(t, err)
	require.NoError(t, s.Persist())

	data, err := afero.ReadFile(fs, "todo_list.json")
	require.NoError(t, err)
	want := `[
    {
        "id": 1,
        "title": "Buy milk",
        "description": "",
        "due_date": null,
        "priority": "High",
        "status": "Pending",
        "created_at": "19-10-2026 09:30:00",
        "completed_at": null
    }
]
`
	assert.Equal(t, want, string(data))
}

func TestFileBackend_PersistOverwrites(t *testing.T) {
	fs := afero.NewMemMapFs()
	backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
	require.NoError(t, err)

	s := New(backend, fixedClock())
	seedStore(t, s)
	require.NoError(t, s.Persist())

	_, err = s.Delete(1)
	require.NoError(t, err)
	require.NoError(t, s.Persist())

	reloaded, res := Open(backend)
	assert.Equal(t, LoadOK, res.Status)
	assert.Equal(t, []int{1, 2}, ids(reloaded.Tasks()))
	assert.Equal(t, []string{"Pay rent", "Call mum"}, titles(reloaded.Tasks()))
}

func TestFileBackend_CreatesDirectory(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("nested", "dir", "todo_list.json")
	backend, err := NewFileBackend(fs, path, FormatJSON)
	require.NoError(t, err)

	require.NoError(t, New(backend).Persist())
	exists, err := afero.Exists(fs, path)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestLoad_MissingFile(t *testing.T) {
	backend, err := NewFileBackend(afero.NewMemMapFs(), "absent.json", FormatJSON)
	require.NoError(t, err)

	s, res := Open(backend)
	assert.Equal(t, LoadMissing, res.Status)
	assert.False(t, res.Damaged())
	assert.Error(t, res.Err)
	assert.Equal(t, 0, s.Len())
}

func TestLoad_CorruptFile(t *testing.T) {
	cases := map[string]string{
		"not json":       "{this is not json",
		"empty":          "",
		"wrong shape":    `{"tasks": []}`,
		"bad date":       `[{"id": 1, "title": "x", "description": "", "due_date": "2026/01/01", "priority": "High", "status": "Pending", "created_at": "01-01-2026 10:00:00", "completed_at": null}]`,
		"invalid record": `[{"id": 1, "title": "", "description": "", "due_date": null, "priority": "High", "status": "Pending", "created_at": "01-01-2026 10:00:00", "completed_at": null}]`,
		"unknown status": `[{"id": 1, "title": "x", "description": "", "due_date": null, "priority": "High", "status": "Doing", "created_at": "01-01-2026 10:00:00", "completed_at": null}]`,
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			require.NoError(t, afero.WriteFile(fs, "todo_list.json", []byte(content), 0o644))
			backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
			require.NoError(t, err)

			s, res := Open(backend)
			assert.Equal(t, LoadCorrupt, res.Status)
			assert.Equal(t, 0, s.Len())
		})
	}
}

func TestLoad_ReplacesExistingTasks(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "todo_list.json", []byte("garbage"), 0o644))
	backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
	require.NoError(t, err)

	s := New(backend)
	_, err = s.Create("in memory", "", "", "")
	require.NoError(t, err)

	res := s.Load()
	assert.Equal(t, LoadCorrupt, res.Status)
	assert.True(t, res.Damaged())
	assert.Equal(t, 0, s.Len())
}

func TestPersist_ReadOnlyFilesystem(t *testing.T) {
	fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
	backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
	require.NoError(t, err)

	err = New(backend).Persist()
	assert.Error(t, err, "read-only filesystem rejects saves")
}

func TestClassifyLoadError(t *testing.T) {
	assert.Equal(t, LoadMissing, classifyLoadError(fmt.Errorf("read: %w", os.ErrNotExist)))
	assert.Equal(t, LoadCorrupt, classifyLoadError(fmt.Errorf("decode: %w", ErrCorrupt)))
	assert.Equal(t, LoadUnreadable, classifyLoadError(os.ErrPermission))
	assert.Equal(t, "unreadable", LoadUnreadable.String())
}

func TestNewFileBackend_UnsupportedFormat(t *testing.T) {
	_, err := NewFileBackend(afero.NewMemMapFs(), "tasks.toml", "toml")
	assert.Error(t, err)
}

func TestLoad_OriginalFileFormat(t *testing.T) {
	content := `[
    {
        "id": 1,
        "title": "Finish report",
        "description": "Q3 numbers",
        "due_date": "5-9-2026",
        "priority": "Medium",
        "status": "Completed",
        "created_at": "01-09-2026 08:15:00",
        "completed_at": "04-09-2026 17:45:12"
    }
]`
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "todo_list.json", []byte(content), 0o644))
	backend, err := NewFileBackend(fs, "todo_list.json", FormatJSON)
	require.NoError(t, err)

	s, res := Open(backend)
	require.Equal(t, LoadOK, res.Status)
	task, err := s.Get(1)
	require.NoError(t, err)
	assert.Equal(t, "05-09-2026", task.DueDate.String())
	assert.Equal(t, "04-09-2026", task.CompletedAt.Date().String())
}

package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQLiteBackend_RoundTrip(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	backend := NewSQLiteBackend(dbPath)

	s := New(backend, fixedClock())
	seedStore(t, s)
	require.NoError(t, s.Persist())

	reloaded, res := Open(backend, fixedClock())
	require.Equal(t, LoadOK, res.Status, "load error: %v", res.Err)
	assert.Equal(t, s.Tasks(), reloaded.Tasks())

	// Saving again replaces all rows.
	_, err := reloaded.Delete(2)
	require.NoError(t, err)
	require.NoError(t, reloaded.Persist())

	again, res := Open(backend)
	require.Equal(t, LoadOK, res.Status)
	assert.Equal(t, []string{"Buy milk", "Call mum"}, titles(again.Tasks()))
	assert.Equal(t, []int{1, 2}, ids(again.Tasks()))
}

func TestSQLiteBackend_Missing(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "absent.db")

	s, res := Open(NewSQLiteBackend(dbPath))
	assert.Equal(t, LoadMissing, res.Status)
	assert.Equal(t, 0, s.Len())

	_, err := os.Stat(dbPath)
	assert.True(t, os.IsNotExist(err), "load must not create the database")
}

func TestSQLiteBackend_Corrupt(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("definitely not sqlite"), 0o644))

	s, res := Open(NewSQLiteBackend(dbPath))
	assert.Equal(t, LoadCorrupt, res.Status)
	assert.Equal(t, 0, s.Len())
}

func TestNewBackend(t *testing.T) {
	b, err := NewBackend("tasks.db", "SQLite")
	require.NoError(t, err)
	assert.IsType(t, &SQLiteBackend{}, b)

	b, err = NewBackend("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultDataFile, b.Location())

	_, err = NewBackend("tasks.xml", "xml")
	assert.Error(t, err)
}

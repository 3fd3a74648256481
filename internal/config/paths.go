package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// AppDirName is the per-user and per-project configuration directory.
	AppDirName = ".todolist"
	// DefaultDataFile is used when no data file is configured.
	DefaultDataFile = "todo_list.json"
)

// GetGlobalConfigDir returns the path to the global configuration directory (~/.todolist).
// It's a variable to allow overriding in tests.
var GetGlobalConfigDir = func() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, AppDirName), nil
}

// DataFilePath returns the task file to load and save.
// Resolution order (first match wins):
// 1. Explicit config via "data.file" (Viper/env/flag)
// 2. DefaultDataFile in the working directory
//
// A leading "~/" is expanded to the user's home directory.
func DataFilePath() string {
	path := strings.TrimSpace(viper.GetString("data.file"))
	if path == "" {
		return DefaultDataFile
	}
	return expandHome(path)
}

// CrashDir returns the directory crash logs are written to.
// Resolution order (first match wins):
// 1. Explicit config via "log.crashDir"
// 2. XDG_STATE_HOME/todolist/crashes (if XDG_STATE_HOME is set)
// 3. Global fallback: ~/.todolist/crashes
//
// An empty result disables crash logs.
func CrashDir() string {
	if dir := strings.TrimSpace(viper.GetString("log.crashDir")); dir != "" {
		return expandHome(dir)
	}

	if xdgState := os.Getenv("XDG_STATE_HOME"); xdgState != "" {
		return filepath.Join(xdgState, "todolist", "crashes")
	}

	dir, err := GetGlobalConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "crashes")
}

func expandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

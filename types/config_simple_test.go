package types

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestAppConfig_Structure(t *testing.T) {
	config := AppConfig{
		Data: DataConfig{
			File:   "todo_list.json",
			Format: "json",
		},
		Log: LogConfig{
			Level:    "warn",
			CrashDir: "/tmp/todolist/crashes",
		},
	}

	if config.Data.File != "todo_list.json" {
		t.Errorf("Data.File mismatch: got %q, want %q", config.Data.File, "todo_list.json")
	}
	if config.Log.Level != "warn" {
		t.Errorf("Log.Level mismatch: got %q, want %q", config.Log.Level, "warn")
	}
}

func TestAppConfig_Validation(t *testing.T) {
	validate := validator.New()

	tests := []struct {
		name    string
		config  AppConfig
		wantErr bool
	}{
		{
			name:   "json defaults",
			config: AppConfig{Data: DataConfig{File: "todo_list.json", Format: "json"}},
		},
		{
			name:   "sqlite with level",
			config: AppConfig{Data: DataConfig{File: "todo.db", Format: "sqlite"}, Log: LogConfig{Level: "debug"}},
		},
		{
			name:    "unknown format",
			config:  AppConfig{Data: DataConfig{File: "todo.xml", Format: "xml"}},
			wantErr: true,
		},
		{
			name:    "missing file",
			config:  AppConfig{Data: DataConfig{Format: "yaml"}},
			wantErr: true,
		},
		{
			name:    "unknown level",
			config:  AppConfig{Data: DataConfig{File: "todo_list.json", Format: "json"}, Log: LogConfig{Level: "trace"}},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(tt.config)
			if (err != nil) != tt.wantErr {
				t.Errorf("validate.Struct() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromMissingFile(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom missing file: %v", err)
	}
	if cfg != Default() {
		t.Errorf("got %+v, want defaults", cfg)
	}
}

func TestLoadFromValid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `trash_dir = "/var/tmp/sweep-trash"
graph_limit = 12
theme = "dracula"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if cfg.TrashDir != "/var/tmp/sweep-trash" {
		t.Errorf("TrashDir = %q", cfg.TrashDir)
	}
	if cfg.GraphLimit != 12 {
		t.Errorf("GraphLimit = %d", cfg.GraphLimit)
	}
	if cfg.Theme != "dracula" {
		t.Errorf("Theme = %q", cfg.Theme)
	}
}

func TestLoadFromExpandsTilde(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`trash_dir = "~/trash"`+"\n"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom: %v", err)
	}

	if strings.HasPrefix(cfg.TrashDir, "~") {
		t.Errorf("TrashDir not expanded: %q", cfg.TrashDir)
	}
	if !strings.HasSuffix(cfg.TrashDir, string(os.PathSeparator)+"trash") {
		t.Errorf("TrashDir = %q, want .../trash", cfg.TrashDir)
	}
}

func TestLoadFromErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"invalid toml", "trash_dir = [broken\n"},
		{"relative trash_dir", `trash_dir = "./trash"` + "\n"},
		{"zero graph_limit", "graph_limit = 0\n"},
		{"negative graph_limit", "graph_limit = -3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			if _, err := LoadFrom(path); err == nil {
				t.Error("LoadFrom succeeded, want error")
			}
		})
	}
}

func TestValidatePath(t *testing.T) {
	tests := []struct {
		path    string
		wantErr bool
	}{
		{"", false},
		{"~/trash", false},
		{"/abs/path", false},
		{"relative", true},
		{"./dot", true},
		{"..", true},
	}

	for _, tt := range tests {
		err := ValidatePath(tt.path, "trash_dir")
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}

func TestDefaultFileContentParses(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(DefaultFileContent), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("default config content does not parse: %v", err)
	}
	if cfg.GraphLimit != DefaultGraphLimit {
		t.Errorf("GraphLimit = %d, want %d", cfg.GraphLimit, DefaultGraphLimit)
	}
}

package editor

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/amterp/colorbox/internal/model"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name   string
		config *model.Config
		env    string
		want   string
	}{
		{"config wins", &model.Config{Editor: "nano"}, "emacs", "nano"},
		{"env", &model.Config{}, "emacs", "emacs"},
		{"nil config", nil, "emacs", "emacs"},
		{"default", nil, "", "vim"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("EDITOR", tt.env)
			if got := NewEditor(tt.config).Resolve(); got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestEdit_ReturnsEditedContent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("uses a shell script as the editor")
	}

	script := filepath.Join(t.TempDir(), "fake-editor.sh")
	if err := os.WriteFile(script, []byte("#!/bin/sh\necho 'colors_per_row = 3' > \"$1\"\n"), 0755); err != nil {
		t.Fatal(err)
	}

	got, err := NewEditor(&model.Config{Editor: script}).Edit("colors_per_row = 6\n", ".toml")
	if err != nil {
		t.Fatalf("Edit failed: %v", err)
	}
	if got != "colors_per_row = 3\n" {
		t.Errorf("Edit() = %q", got)
	}
}

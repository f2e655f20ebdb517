package editor

import (
	"os"
	"os/exec"
	"strings"

	"github.com/amterp/colorbox/internal/model"
)

// Editor handles editor resolution and invocation.
type Editor struct {
	config *model.Config
}

// NewEditor creates a new Editor.
func NewEditor(config *model.Config) *Editor {
	return &Editor{config: config}
}

// Resolve returns the editor command to use.
// Order: config > $EDITOR > vim
func (e *Editor) Resolve() string {
	// 1. Config
	if e.config != nil && e.config.Editor != "" {
		return e.config.Editor
	}

	// 2. Environment variable
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}

	// 3. Default
	return "vim"
}

// Edit opens the editor with the given content and returns the edited content.
// The temp file gets ext as its extension so editors pick the right syntax.
func (e *Editor) Edit(content, ext string) (string, error) {
	// Create temp file
	tmpFile, err := os.CreateTemp("", "colorbox-edit-*"+ext)
	if err != nil {
		return "", err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	// Write content
	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", err
	}
	tmpFile.Close()

	// Open editor; the command may carry arguments, e.g. "code --wait"
	parts := strings.Fields(e.Resolve())
	cmd := exec.Command(parts[0], append(parts[1:], tmpPath)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	// Read back content
	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", err
	}

	return string(edited), nil
}

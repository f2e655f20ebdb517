package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/amterp/colorbox/internal/model"
)

// SampleDocument is a small article using a few text and background colors.
// Red text appears three times, blue twice; one span has a yellow background.
const SampleDocument = `<!DOCTYPE html>
<html>
<head><title>Sample</title></head>
<body>
<div id="intro" style="background-color: #fafafa">
<p id="p1">Colors <span id="s1" style="color: #ff0000">red</span> and <span id="s2" style="color: blue">blue</span>.</p>
<p id="p2"><font color="#f00">legacy red</font> and <span id="s3" style="color: rgb(255, 0, 0)">rgb red</span>.</p>
</div>
<p id="p3"><span id="s4" style="color: #00f; background: yellow">highlighted</span> plain text</p>
</body>
</html>
`

// TestConfig returns a config with sensible test defaults: the default palette,
// three colors per row and two history rows.
func TestConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.ColorsPerRow = 3
	rows := 2
	cfg.HistoryRowLimit = &rows
	return cfg
}

// TempDocument writes content to a temporary HTML file and returns its path.
func TempDocument(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "document.html")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write document: %v", err)
	}
	return path
}

// TempColorboxDir creates a temporary project with an empty .colorbox directory.
func TempColorboxDir(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, ".colorbox"), 0755); err != nil {
		t.Fatalf("failed to create .colorbox dir: %v", err)
	}
	return dir
}

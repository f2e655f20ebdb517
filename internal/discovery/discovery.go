package discovery

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amterp/colorbox/internal/config"
)

// Result contains the discovered project root.
type Result struct {
	ProjectRoot string // Absolute path to the directory holding .colorbox/
	ConfigPath  string // Absolute path to the project config file
}

// DiscoverProject finds the project root by walking up from cwd.
// Returns nil if no project is found.
func DiscoverProject() (*Result, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	return DiscoverProjectFrom(cwd)
}

// DiscoverProjectFrom finds the project root starting from a given directory.
// The first ancestor (startDir included) containing .colorbox/config.toml wins.
func DiscoverProjectFrom(startDir string) (*Result, error) {
	absStart, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	dir := absStart
	for {
		paths := config.NewPaths(dir)
		if info, err := os.Stat(paths.ProjectConfigPath()); err == nil && !info.IsDir() {
			return &Result{
				ProjectRoot: dir,
				ConfigPath:  paths.ProjectConfigPath(),
			}, nil
		}

		// Move up to parent
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root, no project found
			return nil, nil
		}
		dir = parent
	}
}

package config

import (
	"os"
	"path/filepath"
)

const (
	DefaultColorboxDir = ".colorbox"
	ConfigFileName     = "config.toml"
	GlobalConfigDir    = ".config/colorbox"
)

// Paths provides path resolution for colorbox files in a project.
type Paths struct {
	projectRoot string
}

// NewPaths creates a new Paths resolver for the given project.
func NewPaths(projectRoot string) *Paths {
	return &Paths{projectRoot: projectRoot}
}

// ProjectRoot returns the directory containing .colorbox/.
func (p *Paths) ProjectRoot() string {
	return p.projectRoot
}

// ColorboxRoot returns the .colorbox directory.
func (p *Paths) ColorboxRoot() string {
	return filepath.Join(p.projectRoot, DefaultColorboxDir)
}

// ProjectConfigPath returns the path to the project config file.
func (p *Paths) ProjectConfigPath() string {
	return filepath.Join(p.ColorboxRoot(), ConfigFileName)
}

// GlobalConfigPath returns the path to the global config file.
func GlobalConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir, ConfigFileName)
}

// GlobalConfigDirPath returns the directory for global config.
func GlobalConfigDirPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, GlobalConfigDir)
}

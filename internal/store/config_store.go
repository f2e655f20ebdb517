package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/amterp/colorbox/internal/config"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/version"
)

// FileConfigStore implements ConfigStore using a TOML file.
type FileConfigStore struct {
	path     string
	fileType string
}

// NewProjectConfigStore creates a store for .colorbox/config.toml in a project.
func NewProjectConfigStore(paths *config.Paths) *FileConfigStore {
	return &FileConfigStore{path: paths.ProjectConfigPath(), fileType: "project config"}
}

// NewGlobalConfigStore creates a store for ~/.config/colorbox/config.toml.
func NewGlobalConfigStore() *FileConfigStore {
	return &FileConfigStore{path: config.GlobalConfigPath(), fileType: "global config"}
}

// NewFileConfigStore creates a store for an arbitrary config file.
func NewFileConfigStore(path string) *FileConfigStore {
	return &FileConfigStore{path: path, fileType: "config"}
}

// Path returns the file the store reads and writes.
func (s *FileConfigStore) Path() string {
	return s.path
}

// Load reads the config from disk.
// Returns an empty config if the file doesn't exist.
func (s *FileConfigStore) Load() (*model.Config, error) {
	if s.path == "" {
		return &model.Config{}, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &model.Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", s.fileType, err)
	}

	return s.decode(data)
}

func (s *FileConfigStore) decode(data []byte) (*model.Config, error) {
	var cfg model.Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", s.fileType, err)
	}

	// Strict version validation (only if file exists)
	if cfg.ColorboxSchema == "" {
		return nil, version.MissingConfigSchema(s.fileType, s.path)
	}
	if cfg.ColorboxSchema != version.CurrentConfigSchema() {
		return nil, version.InvalidConfigSchema(s.fileType, s.path, cfg.ColorboxSchema)
	}

	return &cfg, nil
}

// SaveRaw validates hand-edited TOML and writes it unchanged, keeping comments and layout.
func (s *FileConfigStore) SaveRaw(data []byte) error {
	cfg, err := s.decode(data)
	if err != nil {
		return err
	}
	layered := model.DefaultConfig()
	layered.Overlay(cfg)
	if err := layered.Validate(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return os.WriteFile(s.path, data, 0644)
}

// Render encodes a config as TOML, stamped with the current schema.
func Render(cfg *model.Config) (string, error) {
	out := *cfg
	out.ColorboxSchema = version.CurrentConfigSchema()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(&out); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Save writes the config to disk, creating its directory if needed.
func (s *FileConfigStore) Save(cfg *model.Config) error {
	// Stamp current schema version
	cfg.ColorboxSchema = version.CurrentConfigSchema()

	if s.path == "" {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", s.fileType, err)
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(cfg)
}

// Exists returns true if the config file exists.
func (s *FileConfigStore) Exists() bool {
	if s.path == "" {
		return false
	}
	_, err := os.Stat(s.path)
	return err == nil
}

// LoadEffective layers the defaults, then each store in order, and validates the result.
// Nil stores are skipped.
func LoadEffective(stores ...ConfigStore) (*model.Config, error) {
	cfg := model.DefaultConfig()
	for _, s := range stores {
		if s == nil {
			continue
		}
		layer, err := s.Load()
		if err != nil {
			return nil, err
		}
		cfg.Overlay(layer)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

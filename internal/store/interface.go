package store

import "github.com/amterp/colorbox/internal/model"

// ConfigStore handles config file persistence.
type ConfigStore interface {
	Load() (*model.Config, error)
	Save(config *model.Config) error
	Exists() bool
	Path() string
}

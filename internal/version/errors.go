package version

import (
	"fmt"
)

// SchemaVersionError indicates a schema version problem during file read/write.
type SchemaVersionError struct {
	FileType    string // "project config", "global config"
	FilePath    string // Path to the problematic file
	Found       string // What was found (e.g., "missing", "config/2")
	Expected    string // What was expected (e.g., "config/1")
	MinRequired string // Minimum colorbox version required (if upgrade needed)
}

func (e *SchemaVersionError) Error() string {
	if e.MinRequired != "" {
		return fmt.Sprintf(
			"%s schema version %s requires colorbox >= %s (file: %s, found: %s, supports up to: %s)",
			e.FileType, e.Found, e.MinRequired, e.FilePath, e.Found, e.Expected,
		)
	}
	if e.Found == "missing" {
		return fmt.Sprintf(
			"%s has no schema version (file: %s). Add colorbox_schema = %q or rerun 'colorbox init'.",
			e.FileType, e.FilePath, e.Expected,
		)
	}
	return fmt.Sprintf(
		"%s has invalid schema version: found %s, expected %s (file: %s)",
		e.FileType, e.Found, e.Expected, e.FilePath,
	)
}

// MissingConfigSchema creates an error for a config file missing colorbox_schema.
func MissingConfigSchema(fileType, path string) error {
	return &SchemaVersionError{
		FileType: fileType,
		FilePath: path,
		Found:    "missing",
		Expected: CurrentConfigSchema(),
	}
}

// InvalidConfigSchema creates an error for a config with an unsupported schema.
func InvalidConfigSchema(fileType, path, found string) error {
	e := &SchemaVersionError{
		FileType: fileType,
		FilePath: path,
		Found:    found,
		Expected: CurrentConfigSchema(),
	}
	// Check if it's a future version
	if v, err := ParseConfigVersion(found); err == nil && v > CurrentConfigVersion {
		if minVersion, ok := MinColorboxVersion[found]; ok {
			e.MinRequired = minVersion
		} else {
			e.MinRequired = "a newer version"
		}
	}
	return e
}

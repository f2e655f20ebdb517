package service

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/document"
	"github.com/amterp/colorbox/internal/model"
)

// LoadDocument reads and parses an HTML document, applying the content
// transformations cfg enables.
func LoadDocument(path string, cfg *model.Config) (*document.Document, error) {
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &cberr.NotFoundError{Resource: "document", ID: path}
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	return document.Parse(bytes.NewReader(data), document.Options{
		NormalizeBackground: cfg.BackgroundNormalized(),
	})
}

// SaveDocument renders doc to path via a temp file and rename, so readers
// never see a partially written document.
func SaveDocument(path string, doc *document.Document) error {
	var buf bytes.Buffer
	if err := doc.Render(&buf); err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".colorbox-*.html")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

package api

import (
	"fmt"
	"log/slog"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/document"
	"github.com/amterp/colorbox/internal/id"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/prompt"
	"github.com/amterp/colorbox/internal/service"
)

// Session bundles the document being edited and its two color panels.
// The Handler holds one of these and swaps it out when the document is reloaded.
type Session struct {
	ID       string
	DocPath  string
	Config   *model.Config
	Document *document.Document

	panels     map[model.StyleType]*service.PanelService
	subscriber service.PanelSubscriber
	logger     *slog.Logger
}

// BuildSession loads the document at docPath and creates fresh panels for it.
// Panel history changes are reported to subscriber, which may be nil.
//
// This is a pure construction function: nothing is written to disk.
func BuildSession(docPath string, cfg *model.Config, subscriber service.PanelSubscriber, logger *slog.Logger) (*Session, error) {
	if docPath == "" {
		return nil, fmt.Errorf("document path is required")
	}
	if cfg == nil {
		cfg = model.DefaultConfig()
	}

	doc, err := service.LoadDocument(docPath, cfg)
	if err != nil {
		return nil, err
	}

	s := &Session{
		ID:         id.NewSession(),
		DocPath:    docPath,
		Config:     cfg,
		Document:   doc,
		panels:     make(map[model.StyleType]*service.PanelService),
		subscriber: subscriber,
		logger:     logger,
	}
	for _, t := range model.StyleTypes() {
		if _, err := s.ResetPanel(t); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// Panel returns the panel for a button type.
func (s *Session) Panel(t model.StyleType) (*service.PanelService, error) {
	p, ok := s.panels[t]
	if !ok {
		return nil, cberr.PanelNotFound(string(t))
	}
	return p, nil
}

// ResetPanel replaces a panel with a freshly initialized one.
// Its history is seeded again from the document on the next Open.
func (s *Session) ResetPanel(t model.StyleType) (*service.PanelService, error) {
	// The server has no terminal, so the "more colors" dialog is a plain pick.
	p, err := service.NewPanelService(s.Config, t, s.Document, &prompt.NoopPrompter{}, s.logger)
	if err != nil {
		return nil, err
	}
	if s.subscriber != nil {
		p.Subscribe(s.subscriber)
	}
	s.panels[t] = p
	return p, nil
}

// Save writes the document back to its file.
func (s *Session) Save() error {
	return service.SaveDocument(s.DocPath, s.Document)
}

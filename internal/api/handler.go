package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"

	cberr "github.com/amterp/colorbox/internal/errors"
	"github.com/amterp/colorbox/internal/id"
	"github.com/amterp/colorbox/internal/logging"
	"github.com/amterp/colorbox/internal/model"
	"github.com/amterp/colorbox/internal/service"
)

// PanelResponse is a panel snapshot tagged with the session that produced it.
type PanelResponse struct {
	SessionID string `json:"session_id"`
	service.PanelView
}

// SessionResponse describes the active session.
type SessionResponse struct {
	ID        string   `json:"id"`
	Document  string   `json:"document"`
	ReadOnly  bool     `json:"read_only"`
	Persist   bool     `json:"persist"`
	Selection []string `json:"selection"`
}

// PickRequest picks a color; an empty color picks the automatic color.
// A non-empty SessionID must name the active session, so a client that
// missed a reload does not pick against the new document blindly.
type PickRequest struct {
	Color     string `json:"color"`
	SessionID string `json:"session_id,omitempty"`
}

// SelectionRequest replaces the selection with the elements carrying these ids.
type SelectionRequest struct {
	IDs []string `json:"ids"`
}

// UpdateSessionRequest changes session settings. Nil fields are left alone.
type UpdateSessionRequest struct {
	ReadOnly *bool `json:"read_only"`
}

// Handler contains all HTTP handlers for the API.
//
// Single document, single session: all connected clients share one Session.
// Requests are serialized by mu because the panels and the document are not
// safe for concurrent use. Reload swaps in a new Session.
type Handler struct {
	docPath    string
	cfg        *model.Config
	logger     *slog.Logger
	baseLogger *slog.Logger // handed to sessions

	mu      sync.Mutex
	current *Session
	persist bool

	listenersMu sync.RWMutex
	listeners   []service.PanelSubscriber
}

// NewHandler loads the document and builds the first session.
func NewHandler(docPath string, cfg *model.Config, logger *slog.Logger) (*Handler, error) {
	h := &Handler{
		docPath:    docPath,
		cfg:        cfg,
		logger:     logging.For(logger, "api"),
		baseLogger: logger,
	}
	session, err := BuildSession(docPath, cfg, h, logger)
	if err != nil {
		return nil, err
	}
	h.current = session
	return h, nil
}

// SetPersist controls whether picks are written back to the document file.
func (h *Handler) SetPersist(persist bool) {
	h.mu.Lock()
	h.persist = persist
	h.mu.Unlock()
}

// AddListener registers a subscriber for history changes across session reloads.
func (h *Handler) AddListener(l service.PanelSubscriber) {
	h.listenersMu.Lock()
	h.listeners = append(h.listeners, l)
	h.listenersMu.Unlock()
}

// OnHistoryChange implements service.PanelSubscriber by fanning out to listeners.
func (h *Handler) OnHistoryChange(change service.HistoryChange) {
	h.listenersMu.RLock()
	listeners := make([]service.PanelSubscriber, len(h.listeners))
	copy(listeners, h.listeners)
	h.listenersMu.RUnlock()

	for _, l := range listeners {
		l.OnHistoryChange(change)
	}
}

// OnDocumentChange implements DocumentWatcherSubscriber.
func (h *Handler) OnDocumentChange(change DocumentChange) {
	if change.Type == DocumentDeleted {
		h.logger.Warn("document removed, keeping last loaded version", "path", change.Path)
		return
	}
	if _, err := h.Reload(); err != nil {
		h.logger.Error("failed to reload document", "path", change.Path, "error", err)
	}
}

// Reload re-reads the document and rebuilds the session.
// Returns false when the file still matches the loaded document, which is
// what happens after the server saves it.
func (h *Handler) Reload() (bool, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	data, err := os.ReadFile(h.docPath)
	if err != nil {
		return false, err
	}
	if bytes.Equal(data, []byte(h.current.Document.String())) {
		return false, nil
	}

	session, err := BuildSession(h.docPath, h.cfg, h, h.baseLogger)
	if err != nil {
		return false, err
	}
	session.Document.SetReadOnly(h.current.Document.ReadOnly())
	h.current = session
	h.logger.Info("document reloaded", "path", h.docPath, "session", session.ID)

	for _, t := range model.StyleTypes() {
		h.OnHistoryChange(service.HistoryChange{Type: service.ChangeReset, StyleType: t})
	}
	return true, nil
}

// SessionID returns the active session's id.
func (h *Handler) SessionID() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.current.ID
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Session routes
	mux.HandleFunc("GET /api/v1/session", h.GetSession)
	mux.HandleFunc("PATCH /api/v1/session", h.UpdateSession)

	// Panel routes
	mux.HandleFunc("GET /api/v1/panels/{type}", h.GetPanel)
	mux.HandleFunc("POST /api/v1/panels/{type}/pick", h.PickColor)
	mux.HandleFunc("POST /api/v1/panels/{type}/reset", h.ResetPanel)

	// Document routes
	mux.HandleFunc("GET /api/v1/document", h.GetDocument)
	mux.HandleFunc("PUT /api/v1/selection", h.SetSelection)

	mux.HandleFunc("GET /api/v1/swatches/{code}", h.GetSwatch)
	mux.HandleFunc("GET /{$}", h.GetDocument)
}

// --- Session Handlers ---

// GetSession returns the active session.
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	JSON(w, http.StatusOK, h.sessionResponse())
}

// UpdateSession changes session settings.
func (h *Handler) UpdateSession(w http.ResponseWriter, r *http.Request) {
	var req UpdateSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if req.ReadOnly != nil {
		h.current.Document.SetReadOnly(*req.ReadOnly)
	}
	JSON(w, http.StatusOK, h.sessionResponse())
}

func (h *Handler) sessionResponse() SessionResponse {
	selection := []string{}
	for _, e := range h.current.Document.Selection() {
		selection = append(selection, e.ID())
	}
	return SessionResponse{
		ID:        h.current.ID,
		Document:  h.current.DocPath,
		ReadOnly:  h.current.Document.ReadOnly(),
		Persist:   h.persist,
		Selection: selection,
	}
}

// --- Panel Handlers ---

// panel resolves the {type} path value to a panel of the current session.
// Must be called with mu held.
func (h *Handler) panel(r *http.Request) (*service.PanelService, error) {
	raw := r.PathValue("type")
	t, err := model.ParseStyleType(raw)
	if err != nil {
		return nil, cberr.PanelNotFound(raw)
	}
	return h.current.Panel(t)
}

// checkSession validates a client-supplied session id. Empty is accepted.
// Must be called with mu held.
func (h *Handler) checkSession(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if !id.IsSession(sessionID) {
		return cberr.InvalidField("session id", fmt.Sprintf("%q is not a session id", sessionID))
	}
	if sessionID != h.current.ID {
		return &cberr.StaleSessionError{ID: sessionID, Current: h.current.ID}
	}
	return nil
}

func (h *Handler) panelResponse(view service.PanelView) PanelResponse {
	return PanelResponse{SessionID: h.current.ID, PanelView: view}
}

// GetPanel opens a panel and returns its contents.
func (h *Handler) GetPanel(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	p, err := h.panel(r)
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.panelResponse(p.Open()))
}

// PickColor applies a color to the selection.
func (h *Handler) PickColor(w http.ResponseWriter, r *http.Request) {
	var req PickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.checkSession(req.SessionID); err != nil {
		Error(w, err)
		return
	}
	p, err := h.panel(r)
	if err != nil {
		Error(w, err)
		return
	}

	if req.Color == "" {
		err = p.PickAutomatic()
	} else {
		_, err = p.Pick(req.Color)
	}
	if err != nil {
		Error(w, err)
		return
	}

	if h.persist && !h.current.Document.ReadOnly() {
		if err := h.current.Save(); err != nil {
			Error(w, err)
			return
		}
	}

	JSON(w, http.StatusOK, h.panelResponse(p.View()))
}

// ResetPanel rebuilds a panel, reseeding its history from the document.
func (h *Handler) ResetPanel(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	raw := r.PathValue("type")
	t, err := model.ParseStyleType(raw)
	if err != nil {
		Error(w, cberr.PanelNotFound(raw))
		return
	}

	p, err := h.current.ResetPanel(t)
	if err != nil {
		Error(w, err)
		return
	}
	view := p.Open()
	h.OnHistoryChange(service.HistoryChange{Type: service.ChangeReset, StyleType: t})

	JSON(w, http.StatusOK, h.panelResponse(view))
}

// --- Document Handlers ---

// GetDocument returns the current document as HTML.
func (h *Handler) GetDocument(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	defer h.mu.Unlock()

	var buf bytes.Buffer
	if err := h.current.Document.Render(&buf); err != nil {
		Error(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// SetSelection replaces the selection.
func (h *Handler) SetSelection(w http.ResponseWriter, r *http.Request) {
	var req SelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "Invalid JSON")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if err := h.current.Document.Select(req.IDs...); err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, h.sessionResponse())
}

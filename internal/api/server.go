package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/amterp/colorbox/internal/logging"
)

// Server wraps the HTTP server for the web frontend.
type Server struct {
	httpServer *http.Server
	watcher    *DocumentWatcher
	wsHub      *WebSocketHub
	logger     *slog.Logger
}

// NewServer creates a new server for the handler's document.
// If the document cannot be watched, external edits are not picked up
// but the server still runs.
func NewServer(handler *Handler, port int, docPath string, logger *slog.Logger) *Server {
	logger = logging.For(logger, "server")

	mux := http.NewServeMux()
	handler.RegisterRoutes(mux)

	wsHub := NewWebSocketHub(logger)
	mux.HandleFunc("GET /api/v1/ws", wsHub.ServeWS)
	handler.AddListener(wsHub)

	watcher, err := NewDocumentWatcher(docPath, logger)
	if err != nil {
		logger.Warn("failed to create document watcher", "error", err)
		watcher = nil
	} else {
		// Reload first so clients re-fetch panels from the new session
		watcher.Subscribe(handler)
		watcher.Subscribe(wsHub)
	}

	wrapped := Logging(logger)(Cors(mux))

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", port),
			Handler:      wrapped,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
		},
		watcher: watcher,
		wsHub:   wsHub,
		logger:  logger,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if s.watcher != nil {
		if err := s.watcher.Start(); err != nil {
			s.logger.Warn("failed to start document watcher", "error", err)
		}
	}

	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.watcher != nil {
		s.watcher.Stop()
	}

	return s.httpServer.Shutdown(ctx)
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

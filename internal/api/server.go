// Package api implements the strata HTTP API.
//
// The API exposes the layout engine as a service:
//
//   - POST /v1/layout: accepts a JSON graph, returns the computed layout
//   - GET /healthz: liveness probe
//
// Requests are tagged with a UUID request id (echoed in X-Request-Id)
// and logged with method, path, status, and duration. Layout results are
// cached through the shared layout.Runner, so repeated requests for the
// same graph are served from cache.
package api

import (
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/strata/pkg/layout"
)

// Server wires the layout runner into an HTTP handler.
type Server struct {
	runner *layout.Runner
	logger *log.Logger
}

// NewServer creates a server backed by the given runner.
// If logger is nil, log.Default() is used.
func NewServer(runner *layout.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{runner: runner, logger: logger}
}

// Router builds the HTTP routing table.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)

	r.Get("/healthz", s.handleHealth)
	r.Post("/v1/layout", s.handleLayout)

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

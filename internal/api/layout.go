package api

import (
	"encoding/json"
	"net/http"

	"github.com/matzehuels/strata/pkg/errors"
	"github.com/matzehuels/strata/pkg/graphio"
)

// layoutResponse is the body returned by POST /v1/layout.
type layoutResponse struct {
	Layout    graphio.Layout `json:"layout"`
	GraphHash string         `json:"graph_hash"`
	CacheHit  bool           `json:"cache_hit"`
}

// errorResponse is the body returned for failed requests.
type errorResponse struct {
	Error errorBody `json:"error"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// handleLayout decodes a graph from the request body, computes (or
// fetches from cache) its layout, and returns the coordinates.
func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	g, err := graphio.ReadJSON(r.Body)
	if err != nil {
		writeError(w, err)
		return
	}

	result, err := s.runner.Layout(r.Context(), g)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, layoutResponse{
		Layout:    result.Layout,
		GraphHash: result.GraphHash,
		CacheHit:  result.CacheHit,
	})
}

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := errors.GetCode(err)
	switch code {
	case errors.ErrCodeInvalidInput, errors.ErrCodeInvalidGraph, errors.ErrCodeInvalidConfig,
		errors.ErrCodeInvalidFormat, errors.ErrCodeInvalidRanker, errors.ErrCodeInvalidAlign:
		status = http.StatusBadRequest
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		status = http.StatusNotFound
	}
	if code == "" {
		code = errors.ErrCodeInternal
	}

	writeJSON(w, status, errorResponse{
		Error: errorBody{
			Code:    string(code),
			Message: errors.UserMessage(err),
		},
	})
}

package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/strata/pkg/layout"
)

func testServer(t *testing.T) http.Handler {
	t.Helper()
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewServer(layout.NewRunner(nil, nil, logger), logger).Router()
}

func TestHealthz(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("response should carry a request id")
	}
}

func TestLayoutEndpoint(t *testing.T) {
	srv := testServer(t)

	body := `{
	  "nodes": [
	    {"id": "a", "width": 50, "height": 30},
	    {"id": "b", "width": 50, "height": 30}
	  ],
	  "edges": [{"from": "a", "to": "b"}]
	}`

	req := httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader(body))
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp layoutResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Layout.Nodes) != 2 {
		t.Fatalf("layout has %d nodes, want 2", len(resp.Layout.Nodes))
	}
	if resp.GraphHash == "" {
		t.Error("response should carry a graph hash")
	}
	// a on rank 0, b on rank 1, same column
	if resp.Layout.Nodes[0].X != resp.Layout.Nodes[1].X {
		t.Errorf("chain should align: %v vs %v", resp.Layout.Nodes[0].X, resp.Layout.Nodes[1].X)
	}
	if resp.Layout.Nodes[0].Y >= resp.Layout.Nodes[1].Y {
		t.Errorf("ranks should stack downward: %v vs %v", resp.Layout.Nodes[0].Y, resp.Layout.Nodes[1].Y)
	}
}

func TestLayoutEndpointRejectsBadGraph(t *testing.T) {
	srv := testServer(t)

	tests := []struct {
		name string
		body string
		code string
	}{
		{
			name: "malformed json",
			body: `{"nodes": [`,
			code: "INVALID_FORMAT",
		},
		{
			name: "unknown edge endpoint",
			body: `{"nodes": [{"id": "a"}], "edges": [{"from": "a", "to": "ghost"}]}`,
			code: "INVALID_GRAPH",
		},
		{
			name: "bad ranker",
			body: `{"config": {"ranker": "bogus"}, "nodes": [], "edges": []}`,
			code: "INVALID_RANKER",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/v1/layout", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", rec.Code)
			}
			var resp errorResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
				t.Fatalf("decode response: %v", err)
			}
			if resp.Error.Code != tt.code {
				t.Errorf("error code = %q, want %q", resp.Error.Code, tt.code)
			}
		})
	}
}

func TestRequestIDPassthrough(t *testing.T) {
	srv := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-Id", "client-supplied")
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Request-Id"); got != "client-supplied" {
		t.Errorf("request id = %q, want client-supplied", got)
	}
}

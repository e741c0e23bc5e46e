package server

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

// TestAPIKeyAuth verifies the header check: missing key is 401, wrong key is
// 403, and the right key passes through.
func TestAPIKeyAuth(t *testing.T) {
	tests := []struct {
		name       string
		key        string
		wantStatus int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "not-it", http.StatusForbidden},
		{"correct key", "secret", http.StatusOK},
	}
	handler := APIKeyAuth("secret")(okHandler())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/workouts", nil)
			if tt.key != "" {
				req.Header.Set("X-API-Key", tt.key)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

// TestAuthOnlyOnMutations verifies that reads skip the API key check while
// mutations require it.
func TestAuthOnlyOnMutations(t *testing.T) {
	srv := newTestServer(t, "secret")

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/state", nil)
	if rec.Code != http.StatusOK {
		t.Errorf("unauthenticated read status = %d, want 200", rec.Code)
	}

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/schedule/monday/slots", map[string]string{"workoutId": "alpha-strength"})
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated mutation status = %d, want 401", rec.Code)
	}
}

// TestCORS verifies the permissive headers and the OPTIONS short-circuit.
func TestCORS(t *testing.T) {
	handler := CORS(okHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/state", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Allow-Origin = %q, want *", got)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("GET through CORS status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Headers"); got == "" {
		t.Error("Allow-Headers not set on normal request")
	}
}

// TestRequestLogging verifies the middleware passes requests through and
// captures the downstream status code.
func TestRequestLogging(t *testing.T) {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := RequestLogging(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/state", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusTeapot {
		t.Errorf("status = %d, want downstream 418", rec.Code)
	}
}

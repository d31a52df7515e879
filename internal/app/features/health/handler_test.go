package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AS-Danish/secure-future-hero/internal/app/features/health"
	"github.com/AS-Danish/secure-future-hero/internal/testutil"
	"go.uber.org/zap"
)

func serve(t *testing.T, h *health.Handler) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.Serve(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	out := map[string]any{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestServe_BackendConnected(t *testing.T) {
	b := testutil.NewBackend(t)
	h := health.NewHandler(testutil.NewClient(t, b), zap.NewNop())

	rec := serve(t, h)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}
	body := decode(t, rec)
	if body["status"] != "ok" || body["backend"] != "connected" {
		t.Errorf("body = %v", body)
	}
}

func TestServe_BackendDown(t *testing.T) {
	b := testutil.NewBackend(t)
	h := health.NewHandler(testutil.NewClient(t, b), zap.NewNop())
	b.Close()

	rec := serve(t, h)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
	body := decode(t, rec)
	if body["status"] != "error" || body["backend"] != "disconnected" {
		t.Errorf("body = %v", body)
	}
	if body["message"] != "Content API unavailable" {
		t.Errorf("message = %v", body["message"])
	}
}

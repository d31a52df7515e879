// internal/testutil/http.go
package testutil

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// WithChiURLParam adds a chi URL parameter to the request context.
// Use this in handler tests that need to access chi.URLParam values.
func WithChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

// TestContext returns a context with a generous deadline for test calls.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}

// NewClient builds an api.Client pointed at the fake backend.
func NewClient(t *testing.T, b *Backend) *api.Client {
	t.Helper()
	c, err := api.NewClient(b.URL(), 5*time.Second, zap.NewNop())
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

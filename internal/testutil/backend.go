// internal/testutil/backend.go
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
)

// Backend is an in-memory fake of the institute's REST backend, good enough
// for exercising the resource clients and handlers: conventional CRUD routes
// under /api/{resource}, an upload endpoint, and optional response
// envelopes.
type Backend struct {
	t  *testing.T
	mu sync.Mutex

	srv    *httptest.Server
	nextID int

	// Envelope wraps every response in {"data": ...} when true; bare
	// payloads otherwise. Tests flip this to cover both wire forms.
	Envelope bool

	collections map[string][]map[string]any // keyed by resource segment, e.g. "blogs"
	stubs       map[string]stubResponse     // keyed by "METHOD /path"

	// Requests records "METHOD /path" for every call, in order.
	Requests []string
}

type stubResponse struct {
	status int
	body   string
}

// NewBackend starts a fake backend and registers cleanup with t.
func NewBackend(t *testing.T) *Backend {
	t.Helper()
	b := &Backend{
		t:           t,
		nextID:      1,
		collections: make(map[string][]map[string]any),
		stubs:       make(map[string]stubResponse),
	}
	b.srv = httptest.NewServer(http.HandlerFunc(b.serve))
	t.Cleanup(b.srv.Close)
	return b
}

// URL returns the backend base URL.
func (b *Backend) URL() string { return b.srv.URL }

// Close shuts the server down early (cleanup normally handles this).
func (b *Backend) Close() { b.srv.Close() }

// Seed inserts records into a collection, assigning ids to records that
// lack one.
func (b *Backend) Seed(resource string, records ...map[string]any) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, rec := range records {
		if _, ok := rec["id"]; !ok {
			rec["id"] = fmt.Sprintf("%d", b.nextID)
			b.nextID++
		}
		b.collections[resource] = append(b.collections[resource], rec)
	}
}

// Records returns a copy of a collection's current records.
func (b *Backend) Records(resource string) []map[string]any {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]any, len(b.collections[resource]))
	copy(out, b.collections[resource])
	return out
}

// Stub forces a fixed response for one method+path, taking precedence over
// the CRUD routes. Used to simulate backend validation failures.
func (b *Backend) Stub(method, path string, status int, body string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.stubs[method+" "+path] = stubResponse{status: status, body: body}
}

// RequestCount returns how many calls matched the "METHOD /path" key.
func (b *Backend) RequestCount(method, path string) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	n := 0
	for _, r := range b.Requests {
		if r == method+" "+path {
			n++
		}
	}
	return n
}

func (b *Backend) serve(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.Requests = append(b.Requests, r.Method+" "+r.URL.Path)
	stub, stubbed := b.stubs[r.Method+" "+r.URL.Path]
	b.mu.Unlock()

	if stubbed {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(stub.status)
		fmt.Fprint(w, stub.body)
		return
	}

	if r.URL.Path == "/api/upload" && r.Method == http.MethodPost {
		b.serveUpload(w, r)
		return
	}
	if r.URL.Path == "/api/health" {
		b.writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
		return
	}

	rest := strings.TrimPrefix(r.URL.Path, "/api/")
	if rest == r.URL.Path {
		http.NotFound(w, r)
		return
	}
	resource, id, _ := strings.Cut(rest, "/")

	switch {
	case id == "" && r.Method == http.MethodGet:
		b.serveList(w, resource)
	case id == "" && r.Method == http.MethodPost:
		b.serveCreate(w, r, resource)
	case id != "" && r.Method == http.MethodGet:
		b.serveGet(w, resource, id)
	case id != "" && r.Method == http.MethodPut:
		b.serveUpdate(w, r, resource, id)
	case id != "" && r.Method == http.MethodDelete:
		b.serveDelete(w, resource, id)
	default:
		http.NotFound(w, r)
	}
}

func (b *Backend) serveList(w http.ResponseWriter, resource string) {
	b.mu.Lock()
	recs, ok := b.collections[resource]
	b.mu.Unlock()
	if !ok {
		b.writeError(w, http.StatusNotFound, "Not found", nil)
		return
	}
	if recs == nil {
		recs = []map[string]any{}
	}
	b.writeJSON(w, http.StatusOK, recs)
}

func (b *Backend) serveGet(w http.ResponseWriter, resource, id string) {
	b.mu.Lock()
	rec := b.find(resource, id)
	b.mu.Unlock()
	if rec == nil {
		b.writeError(w, http.StatusNotFound, "Not found", nil)
		return
	}
	b.writeJSON(w, http.StatusOK, rec)
}

func (b *Backend) serveCreate(w http.ResponseWriter, r *http.Request, resource string) {
	rec := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		b.writeError(w, http.StatusBadRequest, "Invalid JSON", nil)
		return
	}
	b.mu.Lock()
	rec["id"] = fmt.Sprintf("%d", b.nextID)
	b.nextID++
	b.collections[resource] = append(b.collections[resource], rec)
	b.mu.Unlock()
	b.writeJSON(w, http.StatusCreated, rec)
}

func (b *Backend) serveUpdate(w http.ResponseWriter, r *http.Request, resource, id string) {
	in := map[string]any{}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		b.writeError(w, http.StatusBadRequest, "Invalid JSON", nil)
		return
	}
	b.mu.Lock()
	var updated map[string]any
	for i, rec := range b.collections[resource] {
		if fmt.Sprint(rec["id"]) == id {
			in["id"] = rec["id"]
			b.collections[resource][i] = in
			updated = in
			break
		}
	}
	b.mu.Unlock()
	if updated == nil {
		b.writeError(w, http.StatusNotFound, "Not found", nil)
		return
	}
	b.writeJSON(w, http.StatusOK, updated)
}

func (b *Backend) serveDelete(w http.ResponseWriter, resource, id string) {
	b.mu.Lock()
	found := false
	recs := b.collections[resource]
	for i, rec := range recs {
		if fmt.Sprint(rec["id"]) == id {
			b.collections[resource] = append(recs[:i:i], recs[i+1:]...)
			found = true
			break
		}
	}
	b.mu.Unlock()
	if !found {
		b.writeError(w, http.StatusNotFound, "Not found", nil)
		return
	}
	b.writeJSON(w, http.StatusOK, map[string]any{"deleted": true})
}

func (b *Backend) serveUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		b.writeError(w, http.StatusBadRequest, "Invalid upload", nil)
		return
	}
	_, hdr, err := r.FormFile("file")
	if err != nil {
		b.writeError(w, http.StatusBadRequest, "Missing file", nil)
		return
	}
	// Relative on purpose: callers must resolve against the base URL.
	b.writeJSON(w, http.StatusOK, map[string]any{"url": "/uploads/" + hdr.Filename})
}

// find must be called with mu held.
func (b *Backend) find(resource, id string) map[string]any {
	for _, rec := range b.collections[resource] {
		if fmt.Sprint(rec["id"]) == id {
			return rec
		}
	}
	return nil
}

func (b *Backend) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if b.Envelope {
		payload = map[string]any{"data": payload}
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		b.t.Errorf("encode response: %v", err)
	}
}

// WriteValidationError emits the backend's validation failure shape.
func (b *Backend) writeError(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	body := map[string]any{"message": message}
	if fields != nil {
		body["errors"] = fields
	}
	json.NewEncoder(w).Encode(body)
}

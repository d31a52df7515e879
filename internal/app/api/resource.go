// internal/app/api/resource.go
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

// Resource is the typed CRUD client for one content type.
//
// T is the domain shape returned by reads, I the outbound create/update
// payload (with blank optional fields omitted so backend defaulting
// applies). The same mapping is used for list and get-by-id responses, so
// both arrive at an identical domain shape.
type Resource[T, I any] struct {
	client *Client
	path   string // e.g. "/api/blogs"
	label  string // e.g. "Blog"
}

// NewResource binds a Resource client to a shared transport.
func NewResource[T, I any](c *Client, path, label string) *Resource[T, I] {
	return &Resource[T, I]{client: c, path: path, label: label}
}

// Label returns the human-readable entity name ("Blog", "Workshop").
func (r *Resource[T, I]) Label() string { return r.label }

// ResolveURL resolves a possibly-relative URL against the backend base,
// the same way the upload endpoint's responses are resolved.
func (r *Resource[T, I]) ResolveURL(s string) string { return r.client.ResolveURL(s) }

// List fetches the full collection. Enveloped and bare arrays are both
// accepted; a non-array payload normalizes to an empty collection rather
// than failing the caller.
func (r *Resource[T, I]) List(ctx context.Context) ([]T, error) {
	var raw json.RawMessage
	if err := r.client.do(ctx, http.MethodGet, r.path, nil, &raw); err != nil {
		return nil, err
	}
	payload := bytes.TrimSpace(raw)
	if len(payload) == 0 || payload[0] != '[' {
		return []T{}, nil
	}
	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		return []T{}, nil
	}
	return items, nil
}

// Get fetches one record by id. Edit forms use this to seed from
// authoritative data, since list payloads may omit large fields.
func (r *Resource[T, I]) Get(ctx context.Context, id models.ID) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodGet, r.itemPath(id), nil, &out)
	return out, err
}

// Create submits a new record and returns the backend's domain-shaped
// result (id assigned by the backend).
func (r *Resource[T, I]) Create(ctx context.Context, in I) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPost, r.path, in, &out)
	return out, err
}

// Update replaces the full record. There is no field-level patch.
func (r *Resource[T, I]) Update(ctx context.Context, id models.ID, in I) (T, error) {
	var out T
	err := r.client.do(ctx, http.MethodPut, r.itemPath(id), in, &out)
	return out, err
}

// Delete removes a record. The response body is not interpreted.
func (r *Resource[T, I]) Delete(ctx context.Context, id models.ID) error {
	return r.client.do(ctx, http.MethodDelete, r.itemPath(id), nil, nil)
}

func (r *Resource[T, I]) itemPath(id models.ID) string {
	return r.path + "/" + url.PathEscape(id.String())
}

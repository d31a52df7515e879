// Package content describes the seven managed collections (blogs, courses,
// workshops, testimonials, faculty, certificates, gallery) as data: each
// Definition carries its form fields, add-mode defaults, category set, and
// the typed resource client that talks to the backend.
//
// The admin console is one generic CRUD feature instantiated over these
// definitions; per-entity behavior lives here, not in handler control flow.
package content

import (
	"context"
	"fmt"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

// Kind selects the widget a form field renders as.
type Kind string

const (
	KindText     Kind = "text"
	KindTextarea Kind = "textarea"
	KindRichText Kind = "richtext"
	KindNumber   Kind = "number"
	KindCheckbox Kind = "checkbox"
	KindSelect   Kind = "select"
	KindDate     Kind = "date"
	KindList     Kind = "list" // comma-separated text edited as one line
	KindImage    Kind = "image"
)

// Field is one form field of a definition. Fields are validated in
// declaration order; validation stops at the first failure.
type Field struct {
	Name        string // form input name and Values key
	Label       string
	Kind        Kind
	Required    bool
	Options     []string // for KindSelect
	Placeholder string
	Help        string
}

// Values holds a record as form values, keyed by Field.Name. Checkboxes
// use "on" for checked (HTML form convention); list fields hold the
// comma-joined text.
type Values map[string]string

// Get returns the value for a key, or "" when absent.
func (v Values) Get(key string) string { return v[key] }

// Clone returns an independent copy.
func (v Values) Clone() Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}

// Row is one record projected for the admin list table.
type Row struct {
	ID       models.ID
	Title    string
	Category string
	Image    string
	Meta     []string // secondary cells, definition-specific

	// SearchText is what the free-text filter matches against
	// (title plus description-like fields).
	SearchText string
}

// ValidationError reports a required field left blank. It is raised before
// any network call; the handler echoes the submitted values back.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Definition is one managed collection.
type Definition interface {
	// Slug is the URL path segment, e.g. "workshops".
	Slug() string
	// Label is the singular display name, e.g. "Workshop".
	Label() string
	// Plural is the collection display name, e.g. "Workshops".
	Plural() string
	// Fields lists the form fields in render and validation order.
	Fields() []Field
	// Categories is the closed category set used by the list filter,
	// nil when the collection has no category facet.
	Categories() []string
	// Defaults are the add-form starting values.
	Defaults() Values

	List(ctx context.Context) ([]Row, error)
	Get(ctx context.Context, id models.ID) (Values, error)
	Create(ctx context.Context, vals Values) error
	Update(ctx context.Context, id models.ID, vals Values) error
	Delete(ctx context.Context, id models.ID) error
}

// requiredMessage builds the fast-fail message for a blank required field,
// e.g. "Workshop title is required.".
func requiredMessage(entityLabel string, f Field) string {
	return fmt.Sprintf("%s %s is required.", entityLabel, strings.ToLower(f.Label))
}

// internal/app/features/admin/handler.go

// Package admin is the content console: one generic CRUD feature
// instantiated over every managed collection. The per-entity form fields,
// defaults, and validation live in the content definitions; handlers here
// only move form values and render pages.
package admin

import (
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	uierrors "github.com/AS-Danish/secure-future-hero/internal/app/features/errors"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/flash"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Handler is the feature-level entry point for the admin console.
type Handler struct {
	Defs   []content.Definition
	Flash  *flash.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs an admin handler over the content definitions.
func NewHandler(defs []content.Definition, fl *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{Defs: defs, Flash: fl, ErrLog: errLog, Log: logger}
}

// definition resolves the {resource} URL segment. On an unknown slug it
// renders the not-found page and reports false.
func (h *Handler) definition(w http.ResponseWriter, r *http.Request) (content.Definition, bool) {
	slug := chi.URLParam(r, "resource")
	def, ok := content.BySlug(h.Defs, slug)
	if !ok {
		uierrors.RenderNotFound(w, r, "Unknown content section.", "/admin")
		return nil, false
	}
	return def, true
}

// formValues collects the submitted value of every definition field.
// Unchecked checkboxes are simply absent from the form, which reads as "".
func formValues(def content.Definition, r *http.Request) content.Values {
	vals := content.Values{}
	for _, f := range def.Fields() {
		vals[f.Name] = r.FormValue(f.Name)
	}
	return vals
}

// internal/app/features/admin/form.go
package admin

import (
	"context"
	"errors"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// renderForm renders the add or edit form with the given values. errMsg,
// when non-empty, is the blocking message shown above the echoed-back draft.
func (h *Handler) renderForm(w http.ResponseWriter, r *http.Request, def content.Definition, id models.ID, vals content.Values, errMsg string) {
	title := "New " + def.Label()
	if id != "" {
		title = "Edit " + def.Label()
	}
	data := formData{
		BaseVM:   viewdata.NewBaseVM(r, title, "/admin/"+def.Slug()),
		Section:  section(def),
		Sections: h.sections(),
		Editing:  id != "",
		ID:       string(id),
		Fields:   fieldVMs(def, vals),
		Error:    errMsg,
	}
	templates.Render(w, r, "admin_form", data)
}

// ServeNew renders the add form seeded with the definition's defaults.
// Route: GET /admin/{resource}/new
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, def, "", def.Defaults(), "")
}

// HandleCreate processes the add form.
// Route: POST /admin/{resource}
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/admin/"+def.Slug())
		return
	}
	vals := formValues(def, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := def.Create(ctx, vals); err != nil {
		h.renderForm(w, r, def, "", vals, saveFailureMessage(def, err))
		return
	}

	h.Flash.SuccessF(w, r, def.Label()+" Created", "")
	http.Redirect(w, r, "/admin/"+def.Slug(), http.StatusSeeOther)
}

// ServeEdit renders the edit form. Values are seeded once, synchronously,
// from the authoritative single-record fetch so the form never shows a
// stale partial row.
// Route: GET /admin/{resource}/{id}/edit
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	vals, err := def.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			h.ErrLog.LogNotFound(w, r, "record not found for edit", err, def.Label()+" not found.", "/admin/"+def.Slug())
			return
		}
		h.ErrLog.LogServerError(w, r, "record fetch failed", err, "Unable to load "+def.Label()+".", "/admin/"+def.Slug())
		return
	}
	h.renderForm(w, r, def, id, vals, "")
}

// HandleUpdate processes the edit form as a full-record replace.
// Route: POST /admin/{resource}/{id}/edit
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/admin/"+def.Slug())
		return
	}
	vals := formValues(def, r)

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := def.Update(ctx, id, vals); err != nil {
		h.renderForm(w, r, def, id, vals, saveFailureMessage(def, err))
		return
	}

	h.Flash.SuccessF(w, r, def.Label()+" Updated", "")
	http.Redirect(w, r, "/admin/"+def.Slug(), http.StatusSeeOther)
}

// saveFailureMessage maps a create/update error to the message shown above
// the re-rendered form: a blank required field reports its own message,
// backend failures go through the shared precedence rules.
func saveFailureMessage(def content.Definition, err error) string {
	var verr *content.ValidationError
	if errors.As(err, &verr) {
		return verr.Message
	}
	return api.FailureMessage(def.Label(), err)
}

// internal/app/features/admin/delete.go
package admin

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeConfirmDelete renders the confirmation page. Deletion never happens
// on this GET; the record is untouched until the confirm form posts back.
// Route: GET /admin/{resource}/{id}/delete
func (h *Handler) ServeConfirmDelete(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	itemTitle := ""
	if vals, err := def.Get(ctx, id); err == nil {
		// First display field is the record's title/name.
		itemTitle = vals.Get(def.Fields()[0].Name)
	} else if api.IsNotFound(err) {
		h.ErrLog.LogNotFound(w, r, "record not found for delete", err, def.Label()+" not found.", "/admin/"+def.Slug())
		return
	}

	data := confirmData{
		BaseVM:    viewdata.NewBaseVM(r, "Delete "+def.Label(), "/admin/"+def.Slug()),
		Section:   section(def),
		Sections:  h.sections(),
		ID:        string(id),
		ItemTitle: itemTitle,
	}
	templates.Render(w, r, "admin_confirm_delete", data)
}

// HandleDelete removes the record and redirects back to the list.
// Route: POST /admin/{resource}/{id}/delete
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	def, ok := h.definition(w, r)
	if !ok {
		return
	}
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := def.Delete(ctx, id); err != nil {
		h.Log.Error("delete failed", zap.String("resource", def.Slug()), zap.String("id", string(id)), zap.Error(err))
		h.Flash.ErrorF(w, r, "Delete Failed", deleteFailureMessage(def.Label(), err))
	} else {
		h.Flash.SuccessF(w, r, def.Label()+" Deleted", "")
	}
	http.Redirect(w, r, "/admin/"+def.Slug(), http.StatusSeeOther)
}

func deleteFailureMessage(label string, err error) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fmt.Sprintf("Failed to delete %s.", strings.ToLower(label))
}

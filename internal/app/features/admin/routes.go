// internal/app/features/admin/routes.go
package admin

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the console under its base path (typically "/admin" from
// bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeOverview)

	r.Route("/{resource}", func(rr chi.Router) {
		// LIST
		rr.Get("/", h.ServeList)

		// CREATE
		rr.Get("/new", h.ServeNew)
		rr.Post("/", h.HandleCreate)

		// EDIT
		rr.Get("/{id}/edit", h.ServeEdit)
		rr.Post("/{id}/edit", h.HandleUpdate)

		// DELETE (explicit confirmation step, then POST)
		rr.Get("/{id}/delete", h.ServeConfirmDelete)
		rr.Post("/{id}/delete", h.HandleDelete)
	})

	return r
}

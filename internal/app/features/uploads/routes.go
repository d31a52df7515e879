// internal/app/features/uploads/routes.go
package uploads

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the upload endpoint (typically under "/admin/uploads").
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.HandleUpload)
	return r
}

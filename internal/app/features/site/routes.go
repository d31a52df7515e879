// internal/app/features/site/routes.go
package site

import (
	"github.com/go-chi/chi/v5"
)

// Routes mounts the public pages at the site root.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeHome)

	r.Get("/blogs", h.ServeBlogList)
	r.Get("/blogs/{id}", h.ServeBlog)

	r.Get("/courses", h.ServeCourseList)
	r.Get("/courses/{id}", h.ServeCourse)

	r.Get("/workshops", h.ServeWorkshopList)
	r.Get("/workshops/{id}", h.ServeWorkshop)
	r.Post("/workshops/{id}/register", h.HandleRegister)

	return r
}

// internal/app/features/errors/errors.go
package errors

import (
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// pageData is the basic view model for error pages.
type pageData struct {
	Title    string
	SiteName string
	Message  string
	BackURL  string
}

// Handler is the errors feature handler.
// No dependencies; it just renders templates.
type Handler struct{}

// NewHandler constructs an errors Handler.
func NewHandler() *Handler {
	return &Handler{}
}

// NotFound renders a friendly "page not found" page.
// Mounted as the router's NotFound handler.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	templates.Render(w, r, "error_page", pageData{
		Title:    "Page not found",
		SiteName: viewdata.SiteName(),
		Message:  "The page you were looking for does not exist.",
		BackURL:  "/",
	})
}

// ServerError renders a generic failure page.
func (h *Handler) ServerError(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusInternalServerError)
	templates.Render(w, r, "error_page", pageData{
		Title:    "Something went wrong",
		SiteName: viewdata.SiteName(),
		Message:  "An unexpected error occurred. Please try again.",
		BackURL:  "/",
	})
}

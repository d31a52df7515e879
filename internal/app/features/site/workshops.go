// internal/app/features/site/workshops.go
package site

import (
	"context"
	"net/http"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/inputval"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// ServeWorkshopList renders the schedule.
// Route: GET /workshops
func (h *Handler) ServeWorkshopList(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	workshops, err := fetch(ctx, h.Log, h.Workshops, "workshops")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "workshop list fetch failed", err, "Unable to load the schedule.", "/")
		return
	}

	data := workshopListData{
		BaseVM:    viewdata.NewBaseVM(r, "Workshops", "/"),
		Workshops: workshops,
	}
	templates.Render(w, r, "site_workshops", data)
}

// ServeWorkshop renders one workshop with its registration form.
// Route: GET /workshops/{id}
func (h *Handler) ServeWorkshop(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	ws, err := h.Workshops.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			h.ErrLog.LogNotFound(w, r, "workshop not found", err, "That workshop does not exist.", "/workshops")
			return
		}
		h.ErrLog.LogServerError(w, r, "workshop fetch failed", err, "Unable to load the workshop.", "/workshops")
		return
	}

	data := workshopData{
		BaseVM:   viewdata.NewBaseVM(r, ws.Title, "/workshops").WithFlashes(h.Flash.Pop(w, r)),
		Workshop: ws,
	}
	templates.Render(w, r, "site_workshop", data)
}

// HandleRegister processes the registration form on a workshop page.
// Route: POST /workshops/{id}/register
func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))
	if err := r.ParseForm(); err != nil {
		h.ErrLog.LogBadRequest(w, r, "parse form failed", err, "Invalid form submission.", "/workshops")
		return
	}

	name := strings.TrimSpace(r.FormValue("name"))
	email := strings.TrimSpace(r.FormValue("email"))
	phone := strings.TrimSpace(r.FormValue("phone"))
	message := strings.TrimSpace(r.FormValue("message"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	ws, err := h.Workshops.Get(ctx, id)
	if err != nil {
		h.ErrLog.LogNotFound(w, r, "workshop not found for registration", err, "That workshop does not exist.", "/workshops")
		return
	}

	renderWithError := func(msg string) {
		data := workshopData{
			BaseVM:   viewdata.NewBaseVM(r, ws.Title, "/workshops"),
			Workshop: ws,
			Name:     name,
			Email:    email,
			Phone:    phone,
			Message:  message,
			Error:    msg,
		}
		templates.Render(w, r, "site_workshop", data)
	}

	if !ws.RegistrationOpen {
		renderWithError("Registration for this workshop is closed.")
		return
	}
	if name == "" {
		renderWithError("Please enter your name.")
		return
	}
	if !inputval.IsValidEmail(email) {
		renderWithError("Please enter a valid email address.")
		return
	}

	reg := registrationInput{
		WorkshopID: id,
		Name:       name,
		Email:      email,
		Phone:      phone,
		Message:    message,
	}
	if _, err := h.Registrations.Create(ctx, reg); err != nil {
		h.Log.Error("registration create failed", zap.String("workshop_id", string(id)), zap.Error(err))
		renderWithError("We could not submit your registration. Please try again.")
		return
	}

	h.Flash.SuccessF(w, r, "Registration Received", "We will confirm your seat by email.")
	http.Redirect(w, r, "/workshops/"+string(id), http.StatusSeeOther)
}

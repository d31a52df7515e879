// internal/app/features/site/home.go
package site

import (
	"context"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// ServeHome renders the landing page. Each section is fetched
// independently and degrades to empty on its own.
// Route: GET /
func (h *Handler) ServeHome(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	blogs, err := fetch(ctx, h.Log, h.Blogs, "blogs")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home blogs fetch failed", err, "Unable to load the page.", "/")
		return
	}
	courses, err := fetch(ctx, h.Log, h.Courses, "courses")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home courses fetch failed", err, "Unable to load the page.", "/")
		return
	}
	workshops, err := fetch(ctx, h.Log, h.Workshops, "workshops")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home workshops fetch failed", err, "Unable to load the page.", "/")
		return
	}
	faculty, err := fetch(ctx, h.Log, h.Faculty, "faculty")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home faculty fetch failed", err, "Unable to load the page.", "/")
		return
	}
	testimonials, err := fetch(ctx, h.Log, h.Testimonials, "testimonials")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home testimonials fetch failed", err, "Unable to load the page.", "/")
		return
	}
	certificates, err := fetch(ctx, h.Log, h.Certificates, "certificates")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home certificates fetch failed", err, "Unable to load the page.", "/")
		return
	}
	gallery, err := fetch(ctx, h.Log, h.Gallery, "gallery")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "home gallery fetch failed", err, "Unable to load the page.", "/")
		return
	}

	data := homeData{
		BaseVM:       viewdata.NewBaseVM(r, "Home", "/").WithFlashes(h.Flash.Pop(w, r)),
		Slides:       heroSlides,
		Blogs:        limit(blogs, 3),
		Courses:      limit(courses, 3),
		Workshops:    limit(workshops, 3),
		Faculty:      activeFaculty(faculty),
		Testimonials: approvedTestimonials(testimonials),
		Certificates: certificates,
		Gallery:      gallery,
	}
	templates.Render(w, r, "site_home", data)
}

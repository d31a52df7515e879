// internal/app/features/site/courses.go
package site

import (
	"context"
	"net/http"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/filter"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/htmlsanitize"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

// ServeCourseList renders the catalog. Draft courses are hidden.
// Route: GET /courses
func (h *Handler) ServeCourseList(w http.ResponseWriter, r *http.Request) {
	category := query.Get(r, "category")
	if category == "" {
		category = filter.All
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	all, err := fetch(ctx, h.Log, h.Courses, "courses")
	if err != nil {
		h.ErrLog.LogServerError(w, r, "course list fetch failed", err, "Unable to load the catalog.", "/")
		return
	}
	courses := make([]models.Course, 0, len(all))
	for _, c := range all {
		if c.Status == models.CourseStatusDraft {
			continue
		}
		if filter.Match(c.Category, category, "", "") {
			courses = append(courses, c)
		}
	}

	data := courseListData{
		BaseVM:     viewdata.NewBaseVM(r, "Courses", "/"),
		Courses:    courses,
		Category:   category,
		Categories: filter.Options(models.CourseCategories),
	}
	templates.Render(w, r, "site_courses", data)
}

// ServeCourse renders one course page.
// Route: GET /courses/{id}
func (h *Handler) ServeCourse(w http.ResponseWriter, r *http.Request) {
	id := models.ID(chi.URLParam(r, "id"))

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	course, err := h.Courses.Get(ctx, id)
	if err != nil {
		if api.IsNotFound(err) {
			h.ErrLog.LogNotFound(w, r, "course not found", err, "That course does not exist.", "/courses")
			return
		}
		h.ErrLog.LogServerError(w, r, "course fetch failed", err, "Unable to load the course.", "/courses")
		return
	}

	data := courseData{
		BaseVM:   viewdata.NewBaseVM(r, course.Title, "/courses"),
		Course:   course,
		Overview: htmlsanitize.PrepareForDisplay(course.Description),
	}
	templates.Render(w, r, "site_course", data)
}

// internal/app/features/site/handler.go

// Package site serves the public marketing pages: the landing page, blog,
// course catalog, and workshop schedule with registration. Everything is
// read from the content backend and degrades to empty sections when the
// backend is unavailable.
package site

import (
	"context"
	"sort"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	uierrors "github.com/AS-Danish/secure-future-hero/internal/app/features/errors"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/flash"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"go.uber.org/zap"
)

// registrationInput is the outbound payload for a workshop registration.
type registrationInput struct {
	WorkshopID models.ID `json:"workshop_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Message    string    `json:"message,omitempty"`
}

// Handler is the public site entry point.
type Handler struct {
	Blogs         *api.Resource[models.Blog, content.BlogInput]
	Courses       *api.Resource[models.Course, content.CourseInput]
	Workshops     *api.Resource[models.Workshop, content.WorkshopInput]
	Testimonials  *api.Resource[models.Testimonial, content.TestimonialInput]
	Faculty       *api.Resource[models.Faculty, content.FacultyInput]
	Certificates  *api.Resource[models.Certificate, content.CertificateInput]
	Gallery       *api.Resource[models.GalleryItem, content.GalleryInput]
	Registrations *api.Resource[models.Registration, registrationInput]

	Flash  *flash.Store
	ErrLog *uierrors.ErrorLogger
	Log    *zap.Logger
}

// NewHandler constructs the site handler over the shared API client.
func NewHandler(client *api.Client, fl *flash.Store, errLog *uierrors.ErrorLogger, logger *zap.Logger) *Handler {
	return &Handler{
		Blogs:         api.NewResource[models.Blog, content.BlogInput](client, "/api/blogs", "Blog"),
		Courses:       api.NewResource[models.Course, content.CourseInput](client, "/api/courses", "Course"),
		Workshops:     api.NewResource[models.Workshop, content.WorkshopInput](client, "/api/workshops", "Workshop"),
		Testimonials:  api.NewResource[models.Testimonial, content.TestimonialInput](client, "/api/testimonials", "Testimonial"),
		Faculty:       api.NewResource[models.Faculty, content.FacultyInput](client, "/api/faculty", "Faculty"),
		Certificates:  api.NewResource[models.Certificate, content.CertificateInput](client, "/api/certificates", "Certificate"),
		Gallery:       api.NewResource[models.GalleryItem, content.GalleryInput](client, "/api/gallery", "Gallery Image"),
		Registrations: api.NewResource[models.Registration, registrationInput](client, "/api/registrations", "Registration"),
		Flash:         fl,
		ErrLog:        errLog,
		Log:           logger,
	}
}

// fetch runs a page-load list call. A missing or unreachable backend
// section renders as no items; any other failure is returned for the
// caller to surface as an error page.
func fetch[T, I any](ctx context.Context, log *zap.Logger, res *api.Resource[T, I], name string) ([]T, error) {
	items, err := res.List(ctx)
	if err != nil {
		if !api.Degraded(err) {
			return nil, err
		}
		log.Warn("public fetch degraded to empty", zap.String("resource", name), zap.Error(err))
		return nil, nil
	}
	return items, nil
}

// activeFaculty filters to visible members ordered by display position.
func activeFaculty(members []models.Faculty) []models.Faculty {
	out := make([]models.Faculty, 0, len(members))
	for _, m := range members {
		if m.Active {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out
}

// approvedTestimonials filters to publishable reviews.
func approvedTestimonials(items []models.Testimonial) []models.Testimonial {
	out := make([]models.Testimonial, 0, len(items))
	for _, t := range items {
		if t.Status == models.TestimonialStatusApproved {
			out = append(out, t)
		}
	}
	return out
}

func limit[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}

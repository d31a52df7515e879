// internal/app/features/site/types.go
package site

import (
	"html/template"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

// heroSlide is one panel of the landing page hero rotation.
type heroSlide struct {
	Heading string
	Text    string
	CTA     string
	CTALink string
}

// heroSlides is static page copy, not backend content.
var heroSlides = []heroSlide{
	{
		Heading: "Build a Career in Cybersecurity",
		Text:    "Industry-led courses, hands-on labs, and mentorship from working security professionals.",
		CTA:     "Explore Courses",
		CTALink: "/courses",
	},
	{
		Heading: "Learn by Doing",
		Text:    "Live workshops on incident response, penetration testing, and threat hunting.",
		CTA:     "See Workshops",
		CTALink: "/workshops",
	},
	{
		Heading: "Taught by Practitioners",
		Text:    "Our faculty defend real networks by day and teach what actually works.",
		CTA:     "Meet the Faculty",
		CTALink: "/#faculty",
	},
}

// homeData is the landing page view model.
type homeData struct {
	viewdata.BaseVM
	Slides       []heroSlide
	Blogs        []models.Blog
	Courses      []models.Course
	Workshops    []models.Workshop
	Faculty      []models.Faculty
	Testimonials []models.Testimonial
	Certificates []models.Certificate
	Gallery      []models.GalleryItem
}

// blogListData is the blog index view model.
type blogListData struct {
	viewdata.BaseVM
	Blogs      []models.Blog
	Category   string
	Categories []string
}

// blogData is the article page view model.
type blogData struct {
	viewdata.BaseVM
	Blog models.Blog
	// Body is the sanitized article HTML, safe for direct rendering.
	Body template.HTML
}

type courseListData struct {
	viewdata.BaseVM
	Courses    []models.Course
	Category   string
	Categories []string
}

type courseData struct {
	viewdata.BaseVM
	Course   models.Course
	Overview template.HTML
}

type workshopListData struct {
	viewdata.BaseVM
	Workshops []models.Workshop
}

// workshopData is the workshop detail + registration form view model.
type workshopData struct {
	viewdata.BaseVM
	Workshop models.Workshop

	// Registration form echo-back
	Name    string
	Email   string
	Phone   string
	Message string
	Error   string
}

// internal/app/content/testimonial.go
package content

import (
	"strconv"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/fields"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type TestimonialInput struct {
	Name   string `json:"name"`
	Course string `json:"course,omitempty"`
	Rating int    `json:"rating,omitempty"`
	Quote  string `json:"quote,omitempty"`
	Image  string `json:"image,omitempty"`
	Status string `json:"status,omitempty"`
}

// Testimonials builds the student review moderation definition.
func Testimonials(c *api.Client) Definition {
	return &resourceDef[models.Testimonial, TestimonialInput]{
		slug:   "testimonials",
		label:  "Testimonial",
		plural: "Testimonials",
		fieldList: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "course", Label: "Course", Kind: KindText},
			{Name: "rating", Label: "Rating", Kind: KindSelect, Options: []string{"5", "4", "3", "2", "1"}},
			{Name: "quote", Label: "Quote", Kind: KindTextarea},
			{Name: "image", Label: "Image", Kind: KindImage},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: models.TestimonialStatuses},
		},
		defaults: Values{
			"rating": "5",
			"status": models.TestimonialStatuses[0],
		},
		res: api.NewResource[models.Testimonial, TestimonialInput](c, "/api/testimonials", "Testimonial"),
		decode: func(t models.Testimonial) Values {
			return Values{
				"name":   t.Name,
				"course": t.Course,
				"rating": strconv.Itoa(int(t.Rating)),
				"quote":  t.Quote,
				"image":  t.Image,
				"status": t.Status,
			}
		},
		encode: func(v Values) TestimonialInput {
			return TestimonialInput{
				Name:   strings.TrimSpace(v["name"]),
				Course: strings.TrimSpace(v["course"]),
				// 1-5 stars, 5 when unset
				Rating: fields.ParseInt(v["rating"], 5),
				Quote:  strings.TrimSpace(v["quote"]),
				Image:  strings.TrimSpace(v["image"]),
				Status: v["status"],
			}
		},
		row: func(t models.Testimonial) Row {
			return Row{
				ID:         t.ID,
				Title:      t.Name,
				Image:      t.Image,
				Meta:       []string{t.Course, strconv.Itoa(int(t.Rating)) + " / 5", t.Status},
				SearchText: t.Name + " " + t.Quote,
			}
		},
	}
}

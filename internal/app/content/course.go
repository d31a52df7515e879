// internal/app/content/course.go
package content

import (
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/fields"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/htmlsanitize"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type CourseInput struct {
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Mode        string   `json:"mode,omitempty"`
	Level       string   `json:"level,omitempty"`
	Instructor  string   `json:"instructor,omitempty"`
	Status      string   `json:"status,omitempty"`
	Highlights  []string `json:"highlights,omitempty"`
}

// Courses builds the course catalog definition.
func Courses(c *api.Client) Definition {
	return &resourceDef[models.Course, CourseInput]{
		slug:   "courses",
		label:  "Course",
		plural: "Courses",
		fieldList: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "description", Label: "Description", Kind: KindRichText},
			{Name: "image", Label: "Image", Kind: KindImage},
			{Name: "category", Label: "Category", Kind: KindSelect, Options: models.CourseCategories},
			{Name: "duration", Label: "Duration", Kind: KindText, Placeholder: "e.g. 12 weeks"},
			{Name: "mode", Label: "Mode", Kind: KindText, Placeholder: "e.g. Online / On-campus"},
			{Name: "level", Label: "Level", Kind: KindText, Placeholder: "e.g. Beginner"},
			{Name: "instructor", Label: "Instructor", Kind: KindText},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: models.CourseStatuses},
			{Name: "highlights", Label: "Highlights", Kind: KindList, Help: "Comma-separated."},
		},
		categories: models.CourseCategories,
		defaults: Values{
			"category": models.CourseCategories[0],
			"status":   models.CourseStatuses[0],
		},
		res: api.NewResource[models.Course, CourseInput](c, "/api/courses", "Course"),
		decode: func(cr models.Course) Values {
			return Values{
				"title":       cr.Title,
				"description": cr.Description,
				"image":       cr.Image,
				"category":    cr.Category,
				"duration":    cr.Duration,
				"mode":        cr.Mode,
				"level":       cr.Level,
				"instructor":  cr.Instructor,
				"status":      cr.Status,
				"highlights":  fields.JoinList(cr.Highlights),
			}
		},
		encode: func(v Values) CourseInput {
			return CourseInput{
				Title:       strings.TrimSpace(v["title"]),
				Description: htmlsanitize.Sanitize(v["description"]),
				Image:       strings.TrimSpace(v["image"]),
				Category:    v["category"],
				Duration:    strings.TrimSpace(v["duration"]),
				Mode:        strings.TrimSpace(v["mode"]),
				Level:       strings.TrimSpace(v["level"]),
				Instructor:  strings.TrimSpace(v["instructor"]),
				Status:      v["status"],
				Highlights:  fields.SplitList(v["highlights"]),
			}
		},
		row: func(cr models.Course) Row {
			return Row{
				ID:         cr.ID,
				Title:      cr.Title,
				Category:   cr.Category,
				Image:      cr.Image,
				Meta:       []string{cr.Category, cr.Duration, cr.Status},
				SearchText: cr.Title + " " + cr.Description,
			}
		},
	}
}

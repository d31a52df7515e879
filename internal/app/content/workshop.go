// internal/app/content/workshop.go
package content

import (
	"strconv"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/fields"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type WorkshopInput struct {
	Title            string   `json:"title"`
	Date             string   `json:"date,omitempty"`
	Duration         string   `json:"duration,omitempty"`
	Location         string   `json:"location,omitempty"`
	Seats            int      `json:"seats,omitempty"`
	Description      string   `json:"description,omitempty"`
	Image            string   `json:"image,omitempty"`
	Instructor       string   `json:"instructor,omitempty"`
	Topics           []string `json:"topics,omitempty"`
	Category         string   `json:"category,omitempty"`
	Status           string   `json:"status,omitempty"`
	RegistrationOpen bool     `json:"registration_open"`
}

// Workshops builds the workshop schedule definition.
func Workshops(c *api.Client) Definition {
	return &resourceDef[models.Workshop, WorkshopInput]{
		slug:   "workshops",
		label:  "Workshop",
		plural: "Workshops",
		fieldList: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "date", Label: "Date", Kind: KindDate},
			{Name: "duration", Label: "Duration", Kind: KindText, Placeholder: "e.g. 2 days"},
			{Name: "location", Label: "Location", Kind: KindText},
			{Name: "seats", Label: "Seats", Kind: KindNumber},
			{Name: "description", Label: "Description", Kind: KindTextarea},
			{Name: "image", Label: "Image", Kind: KindImage},
			{Name: "instructor", Label: "Instructor", Kind: KindText},
			{Name: "topics", Label: "Topics", Kind: KindList, Help: "Comma-separated."},
			{Name: "category", Label: "Category", Kind: KindText},
			{Name: "status", Label: "Status", Kind: KindSelect, Options: models.WorkshopStatuses},
			{Name: "registration_open", Label: "Registration Open", Kind: KindCheckbox},
		},
		defaults: Values{
			"status":            models.WorkshopStatuses[0],
			"registration_open": "on",
		},
		res: api.NewResource[models.Workshop, WorkshopInput](c, "/api/workshops", "Workshop"),
		decode: func(w models.Workshop) Values {
			v := Values{
				"title":       w.Title,
				"date":        w.Date,
				"duration":    w.Duration,
				"location":    w.Location,
				"seats":       strconv.Itoa(int(w.Seats)),
				"description": w.Description,
				"image":       w.Image,
				"instructor":  w.Instructor,
				"topics":      fields.JoinList(w.Topics),
				"category":    w.Category,
				"status":      w.Status,
			}
			if w.RegistrationOpen {
				v["registration_open"] = "on"
			}
			return v
		},
		encode: func(v Values) WorkshopInput {
			return WorkshopInput{
				Title:            strings.TrimSpace(v["title"]),
				Date:             strings.TrimSpace(v["date"]),
				Duration:         strings.TrimSpace(v["duration"]),
				Location:         strings.TrimSpace(v["location"]),
				Seats:            fields.ParseInt(v["seats"], 0),
				Description:      strings.TrimSpace(v["description"]),
				Image:            strings.TrimSpace(v["image"]),
				Instructor:       strings.TrimSpace(v["instructor"]),
				Topics:           fields.SplitList(v["topics"]),
				Category:         strings.TrimSpace(v["category"]),
				Status:           v["status"],
				RegistrationOpen: fields.Checked(v["registration_open"]),
			}
		},
		row: func(w models.Workshop) Row {
			return Row{
				ID:         w.ID,
				Title:      w.Title,
				Category:   w.Category,
				Image:      w.Image,
				Meta:       []string{w.Date, w.Location, w.Status},
				SearchText: w.Title + " " + w.Description,
			}
		},
	}
}

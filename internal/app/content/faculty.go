// internal/app/content/faculty.go
package content

import (
	"strconv"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/fields"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type FacultyInput struct {
	Name           string   `json:"name"`
	Specialization string   `json:"specialization"`
	Bio            string   `json:"bio,omitempty"`
	Experience     string   `json:"experience,omitempty"`
	Image          string   `json:"image,omitempty"`
	Email          string   `json:"email,omitempty"`
	Phone          string   `json:"phone,omitempty"`
	Qualifications []string `json:"qualifications,omitempty"`
	ExpertiseAreas []string `json:"expertise_areas,omitempty"`
	DisplayOrder   int      `json:"order"`
	Active         bool     `json:"is_active"`
}

// FacultyMembers builds the teaching roster definition.
func FacultyMembers(c *api.Client) Definition {
	return &resourceDef[models.Faculty, FacultyInput]{
		slug:   "faculty",
		label:  "Faculty",
		plural: "Faculty",
		fieldList: []Field{
			{Name: "name", Label: "Name", Kind: KindText, Required: true},
			{Name: "specialization", Label: "Specialization", Kind: KindText, Required: true},
			{Name: "bio", Label: "Bio", Kind: KindTextarea},
			{Name: "experience", Label: "Experience", Kind: KindText, Placeholder: "e.g. 12 years"},
			{Name: "image", Label: "Photo", Kind: KindImage},
			{Name: "email", Label: "Email", Kind: KindText},
			{Name: "phone", Label: "Phone", Kind: KindText},
			{Name: "qualifications", Label: "Qualifications", Kind: KindList, Help: "Comma-separated."},
			{Name: "expertise_areas", Label: "Expertise Areas", Kind: KindList, Help: "Comma-separated."},
			{Name: "order", Label: "Display Order", Kind: KindNumber, Help: "Lower numbers appear first."},
			{Name: "is_active", Label: "Active", Kind: KindCheckbox},
		},
		defaults: Values{
			"order":     "0",
			"is_active": "on",
		},
		res: api.NewResource[models.Faculty, FacultyInput](c, "/api/faculty", "Faculty"),
		decode: func(f models.Faculty) Values {
			v := Values{
				"name":            f.Name,
				"specialization":  f.Specialization,
				"bio":             f.Bio,
				"experience":      f.Experience,
				"image":           f.Image,
				"email":           f.Email,
				"phone":           f.Phone,
				"qualifications":  fields.JoinList(f.Qualifications),
				"expertise_areas": fields.JoinList(f.ExpertiseAreas),
				"order":           strconv.Itoa(int(f.DisplayOrder)),
			}
			if f.Active {
				v["is_active"] = "on"
			}
			return v
		},
		encode: func(v Values) FacultyInput {
			return FacultyInput{
				Name:           strings.TrimSpace(v["name"]),
				Specialization: strings.TrimSpace(v["specialization"]),
				Bio:            strings.TrimSpace(v["bio"]),
				Experience:     strings.TrimSpace(v["experience"]),
				Image:          strings.TrimSpace(v["image"]),
				Email:          strings.TrimSpace(v["email"]),
				Phone:          strings.TrimSpace(v["phone"]),
				Qualifications: fields.SplitList(v["qualifications"]),
				ExpertiseAreas: fields.SplitList(v["expertise_areas"]),
				DisplayOrder:   fields.ParseInt(v["order"], 0),
				Active:         fields.Checked(v["is_active"]),
			}
		},
		row: func(f models.Faculty) Row {
			status := "inactive"
			if f.Active {
				status = "active"
			}
			return Row{
				ID:         f.ID,
				Title:      f.Name,
				Image:      f.Image,
				Meta:       []string{f.Specialization, f.Experience, status},
				SearchText: f.Name + " " + f.Specialization + " " + f.Bio,
			}
		},
	}
}

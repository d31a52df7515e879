// internal/app/content/certificate.go
package content

import (
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type CertificateInput struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Year        string `json:"year,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

// Certificates builds the accreditations definition.
func Certificates(c *api.Client) Definition {
	return &resourceDef[models.Certificate, CertificateInput]{
		slug:   "certificates",
		label:  "Certificate",
		plural: "Certificates",
		fieldList: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "issuer", Label: "Issuer", Kind: KindText},
			{Name: "year", Label: "Year", Kind: KindText, Placeholder: "e.g. 2024"},
			{Name: "image", Label: "Image", Kind: KindImage},
			{Name: "description", Label: "Description", Kind: KindTextarea},
		},
		res: api.NewResource[models.Certificate, CertificateInput](c, "/api/certificates", "Certificate"),
		decode: func(ct models.Certificate) Values {
			return Values{
				"title":       ct.Title,
				"issuer":      ct.Issuer,
				"year":        ct.Year,
				"image":       ct.Image,
				"description": ct.Description,
			}
		},
		encode: func(v Values) CertificateInput {
			return CertificateInput{
				Title:       strings.TrimSpace(v["title"]),
				Issuer:      strings.TrimSpace(v["issuer"]),
				Year:        strings.TrimSpace(v["year"]),
				Image:       strings.TrimSpace(v["image"]),
				Description: strings.TrimSpace(v["description"]),
			}
		},
		row: func(ct models.Certificate) Row {
			return Row{
				ID:         ct.ID,
				Title:      ct.Title,
				Image:      ct.Image,
				Meta:       []string{ct.Issuer, ct.Year},
				SearchText: ct.Title + " " + ct.Description,
			}
		},
	}
}

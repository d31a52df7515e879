// internal/app/content/gallery.go
package content

import (
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

type GalleryInput struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

// Gallery builds the photo gallery definition.
func Gallery(c *api.Client) Definition {
	return &resourceDef[models.GalleryItem, GalleryInput]{
		slug:   "gallery",
		label:  "Gallery Image",
		plural: "Gallery",
		fieldList: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "category", Label: "Category", Kind: KindSelect, Options: models.GalleryCategories},
			{Name: "image", Label: "Image", Kind: KindImage},
		},
		categories: models.GalleryCategories,
		defaults:   Values{"category": models.GalleryCategories[0]},
		res:        api.NewResource[models.GalleryItem, GalleryInput](c, "/api/gallery", "Gallery Image"),
		decode: func(g models.GalleryItem) Values {
			return Values{
				"title":    g.Title,
				"category": g.Category,
				"image":    g.Image,
			}
		},
		encode: func(v Values) GalleryInput {
			return GalleryInput{
				Title:    strings.TrimSpace(v["title"]),
				Category: v["category"],
				Image:    strings.TrimSpace(v["image"]),
			}
		},
		row: func(g models.GalleryItem) Row {
			return Row{
				ID:         g.ID,
				Title:      g.Title,
				Category:   g.Category,
				Image:      g.Image,
				Meta:       []string{g.Category},
				SearchText: g.Title,
			}
		},
	}
}

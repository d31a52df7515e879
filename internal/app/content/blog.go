// internal/app/content/blog.go
package content

import (
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/fields"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/htmlsanitize"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
)

// BlogInput is the outbound create/update payload. Blank optional fields
// are omitted so backend defaulting applies.
type BlogInput struct {
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt,omitempty"`
	Content     string   `json:"content,omitempty"`
	Image       string   `json:"image,omitempty"`
	Category    string   `json:"category,omitempty"`
	PublishedAt string   `json:"published_at,omitempty"`
	Tags        []string `json:"tags,omitempty"`
}

// Blogs builds the blog collection definition.
func Blogs(c *api.Client) Definition {
	return &resourceDef[models.Blog, BlogInput]{
		slug:   "blogs",
		label:  "Blog",
		plural: "Blogs",
		fieldList: []Field{
			{Name: "title", Label: "Title", Kind: KindText, Required: true},
			{Name: "excerpt", Label: "Excerpt", Kind: KindTextarea},
			{Name: "content", Label: "Content", Kind: KindRichText},
			{Name: "image", Label: "Image", Kind: KindImage},
			{Name: "category", Label: "Category", Kind: KindSelect, Options: models.BlogCategories},
			{Name: "published_at", Label: "Published", Kind: KindDate},
			{Name: "tags", Label: "Tags", Kind: KindList, Help: "Comma-separated, e.g. malware, phishing."},
		},
		categories: models.BlogCategories,
		defaults:   Values{"category": models.BlogCategories[0]},
		res:        api.NewResource[models.Blog, BlogInput](c, "/api/blogs", "Blog"),
		decode: func(b models.Blog) Values {
			return Values{
				"title":        b.Title,
				"excerpt":      b.Excerpt,
				"content":      b.Content,
				"image":        b.Image,
				"category":     b.Category,
				"published_at": b.PublishedAt,
				"tags":         fields.JoinList(b.Tags),
			}
		},
		encode: func(v Values) BlogInput {
			return BlogInput{
				Title:       strings.TrimSpace(v["title"]),
				Excerpt:     strings.TrimSpace(v["excerpt"]),
				Content:     htmlsanitize.Sanitize(v["content"]),
				Image:       strings.TrimSpace(v["image"]),
				Category:    v["category"],
				PublishedAt: strings.TrimSpace(v["published_at"]),
				Tags:        fields.SplitList(v["tags"]),
			}
		},
		row: func(b models.Blog) Row {
			return Row{
				ID:         b.ID,
				Title:      b.Title,
				Category:   b.Category,
				Image:      b.Image,
				Meta:       []string{b.Category, b.PublishedAt},
				SearchText: b.Title + " " + b.Excerpt,
			}
		},
	}
}

// internal/domain/models/blog.go
package models

// Blog is a published or draft article on the institute's blog.
type Blog struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Excerpt     string     `json:"excerpt,omitempty"`
	Content     string     `json:"content,omitempty"`
	Image       string     `json:"image,omitempty"`
	Category    string     `json:"category,omitempty"`
	PublishedAt string     `json:"published_at,omitempty"`
	Tags        StringList `json:"tags,omitempty"`
}

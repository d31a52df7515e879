// internal/domain/models/gallery.go
package models

// GalleryItem is a single photo in the campus/events gallery.
type GalleryItem struct {
	ID       ID     `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
	Image    string `json:"image,omitempty"`
}

// internal/domain/models/certificate.go
package models

// Certificate is an institutional accreditation or award shown on the
// public site (not a student certificate).
type Certificate struct {
	ID          ID     `json:"id"`
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Year        string `json:"year,omitempty"`
	Image       string `json:"image,omitempty"`
	Description string `json:"description,omitempty"`
}

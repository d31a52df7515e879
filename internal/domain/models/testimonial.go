// internal/domain/models/testimonial.go
package models

// Testimonial moderation states.
const (
	TestimonialStatusPending  = "pending"
	TestimonialStatusApproved = "approved"
)

// TestimonialStatuses is the closed set of moderation states, in select menu
// order. The first entry is the add-form default.
var TestimonialStatuses = []string{TestimonialStatusPending, TestimonialStatusApproved}

// Testimonial is a student review displayed on the public site once approved.
type Testimonial struct {
	ID     ID     `json:"id"`
	Name   string `json:"name"`
	Course string `json:"course,omitempty"`
	Rating Number `json:"rating,omitempty"`
	Quote  string `json:"quote,omitempty"`
	Image  string `json:"image,omitempty"`
	Status string `json:"status,omitempty"`
}

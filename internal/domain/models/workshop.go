// internal/domain/models/workshop.go
package models

// Workshop status values.
const (
	WorkshopStatusUpcoming  = "upcoming"
	WorkshopStatusOpen      = "open"
	WorkshopStatusCompleted = "completed"
	WorkshopStatusCancelled = "cancelled"
)

// WorkshopStatuses is the closed set of allowed workshop statuses, in select
// menu order. The first entry is the add-form default.
var WorkshopStatuses = []string{
	WorkshopStatusUpcoming,
	WorkshopStatusOpen,
	WorkshopStatusCompleted,
	WorkshopStatusCancelled,
}

// Workshop is a short, scheduled live training event.
type Workshop struct {
	ID               ID         `json:"id"`
	Title            string     `json:"title"`
	Date             string     `json:"date,omitempty"`
	Duration         string     `json:"duration,omitempty"`
	Location         string     `json:"location,omitempty"`
	Seats            Number     `json:"seats,omitempty"`
	Description      string     `json:"description,omitempty"`
	Image            string     `json:"image,omitempty"`
	Instructor       string     `json:"instructor,omitempty"`
	Topics           StringList `json:"topics,omitempty"`
	Category         string     `json:"category,omitempty"`
	Status           string     `json:"status,omitempty"`
	RegistrationOpen bool       `json:"registration_open"`
}

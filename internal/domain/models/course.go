// internal/domain/models/course.go
package models

// Course status values. These mirror the backend's enum; the UI constrains
// input to this set and does not re-validate before submission.
const (
	CourseStatusActive = "active"
	CourseStatusDraft  = "draft"
)

// CourseStatuses is the closed set of allowed course statuses, in the order
// they appear in select menus. The first entry is the add-form default.
var CourseStatuses = []string{CourseStatusActive, CourseStatusDraft}

// Course is a long-form training program in the catalog.
type Course struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Image       string     `json:"image,omitempty"`
	Category    string     `json:"category,omitempty"`
	Duration    string     `json:"duration,omitempty"`
	Mode        string     `json:"mode,omitempty"`
	Level       string     `json:"level,omitempty"`
	Instructor  string     `json:"instructor,omitempty"`
	Status      string     `json:"status,omitempty"`
	Highlights  StringList `json:"highlights,omitempty"`
}

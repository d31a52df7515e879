// internal/domain/models/faculty.go
package models

import "encoding/json"

// Faculty is a member of the teaching roster.
//
// DisplayOrder controls the position on the public faculty page (ascending,
// 0 first). Active toggles visibility without deleting the record.
type Faculty struct {
	ID             ID         `json:"id"`
	Name           string     `json:"name"`
	Specialization string     `json:"specialization"`
	Bio            string     `json:"bio,omitempty"`
	Experience     string     `json:"experience,omitempty"`
	Image          string     `json:"image,omitempty"`
	Email          string     `json:"email,omitempty"`
	Phone          string     `json:"phone,omitempty"`
	Qualifications StringList `json:"qualifications,omitempty"`
	ExpertiseAreas StringList `json:"expertise_areas,omitempty"`
	DisplayOrder   Number     `json:"order,omitempty"`
	Active         bool       `json:"is_active"`
}

// UnmarshalJSON treats a missing is_active as true. Records that predate
// the flag stay visible on the site instead of vanishing from the roster.
func (f *Faculty) UnmarshalJSON(b []byte) error {
	type alias Faculty
	aux := struct {
		*alias
		Active *bool `json:"is_active"`
	}{alias: (*alias)(f)}
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}
	f.Active = aux.Active == nil || *aux.Active
	return nil
}

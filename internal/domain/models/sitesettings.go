// internal/domain/models/sitesettings.go
package models

// DefaultSiteName is used anywhere a display name is needed before (or
// without) configuration.
const DefaultSiteName = "Secure Future Institute"

// Registration is a workshop registration submitted from the public site.
// It is write-only from this application's point of view: the backend owns
// the records and the admin console does not list them.
type Registration struct {
	ID         ID     `json:"id"`
	WorkshopID ID     `json:"workshop_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone,omitempty"`
	Message    string `json:"message,omitempty"`
}

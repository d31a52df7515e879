// internal/domain/models/categories.go
package models

// Category sets are closed: the admin forms constrain input with a select
// widget and the list filter matches the stored string exactly.

// BlogCategories in select menu order. The first entry is the add-form
// default.
var BlogCategories = []string{"Security", "Threats", "Career", "Tutorials", "News"}

// CourseCategories in select menu order.
var CourseCategories = []string{"Foundation", "Specialization", "Certification", "Advanced"}

// GalleryCategories in select menu order.
var GalleryCategories = []string{"Facilities", "Events", "Training"}

// internal/app/features/admin/types.go
package admin

import (
	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/viewdata"
)

// sectionVM identifies a collection in navigation and page chrome.
type sectionVM struct {
	Slug   string
	Label  string
	Plural string
}

func section(def content.Definition) sectionVM {
	return sectionVM{Slug: def.Slug(), Label: def.Label(), Plural: def.Plural()}
}

// overviewCard is one collection summary on the console landing page.
type overviewCard struct {
	sectionVM
	Count    int
	Degraded bool
}

// overviewData is the view model for the console landing page.
type overviewData struct {
	viewdata.BaseVM
	Section  sectionVM // zero; no section is active on the landing page
	Cards    []overviewCard
	Sections []sectionVM
}

// listData is the view model for a collection list page.
type listData struct {
	viewdata.BaseVM
	Section  sectionVM
	Sections []sectionVM

	Q          string
	Category   string
	Categories []string // filter options incl. "All"; nil hides the facet

	Rows []content.Row

	// Degraded marks a backend fetch failure rendered as an empty
	// collection rather than an error page.
	Degraded bool
}

// fieldVM is one form field with its current value.
type fieldVM struct {
	content.Field
	Value string
}

// formData is the view model for the add and edit forms.
type formData struct {
	viewdata.BaseVM
	Section  sectionVM
	Sections []sectionVM

	Editing bool
	ID      string
	Fields  []fieldVM

	// Error holds the blocking validation or save failure shown above
	// the form; submitted values are echoed back alongside it.
	Error string
}

// confirmData is the view model for the delete confirmation page.
type confirmData struct {
	viewdata.BaseVM
	Section  sectionVM
	Sections []sectionVM

	ID        string
	ItemTitle string
}

func fieldVMs(def content.Definition, vals content.Values) []fieldVM {
	out := make([]fieldVM, 0, len(def.Fields()))
	for _, f := range def.Fields() {
		out = append(out, fieldVM{Field: f, Value: vals.Get(f.Name)})
	}
	return out
}

func (h *Handler) sections() []sectionVM {
	out := make([]sectionVM, 0, len(h.Defs))
	for _, d := range h.Defs {
		out = append(out, section(d))
	}
	return out
}

// internal/app/content/registry.go
package content

import (
	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/filter"
)

// Definitions returns every managed collection in navigation order.
func Definitions(c *api.Client) []Definition {
	return []Definition{
		Blogs(c),
		Courses(c),
		Workshops(c),
		Testimonials(c),
		FacultyMembers(c),
		Certificates(c),
		Gallery(c),
	}
}

// BySlug finds a definition by its URL slug.
func BySlug(defs []Definition, slug string) (Definition, bool) {
	for _, d := range defs {
		if d.Slug() == slug {
			return d, true
		}
	}
	return nil, false
}

// FilterRows applies the list filter: exact category match (with the
// synthetic "All" bypass) AND case-insensitive substring over each row's
// search text. Both conditions apply simultaneously.
func FilterRows(rows []Row, category, query string) []Row {
	out := make([]Row, 0, len(rows))
	for _, row := range rows {
		if filter.Match(row.Category, category, query, row.SearchText) {
			out = append(out, row)
		}
	}
	return out
}

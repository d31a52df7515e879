// Package filter implements the list-view filters: a closed-set category
// filter and a case-insensitive substring search, applied simultaneously.
//
// Datasets are small (whole collections held in memory after a fetch), so
// this is a plain linear scan with no indexing or debouncing.
package filter

import "strings"

// All is the synthetic category option that disables category filtering.
const All = "All"

// Options returns the select-menu options for a closed category set:
// "All" followed by the set in declaration order.
func Options(categories []string) []string {
	return append([]string{All}, categories...)
}

// Match reports whether a record passes both filters.
//
// The category filter is an exact string match against the closed set value
// ("Security Architecture" does not match "Security"); All or blank matches
// everything. The query filter is a case-insensitive substring test against
// any of the haystacks (title/name and, where present, description).
func Match(recordCategory, category, query string, haystacks ...string) bool {
	if category != "" && category != All && recordCategory != category {
		return false
	}
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" {
		return true
	}
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), query) {
			return true
		}
	}
	return false
}

// Package fields converts between form text and domain field values.
//
// Collection-valued fields (tags, topics, qualifications) are edited as a
// single comma-separated string; the split sequence is what gets stored, so
// the two representations must round-trip consistently.
package fields

import (
	"strconv"
	"strings"
)

// SplitList splits comma-separated form text into an ordered sequence:
// split on comma, trim each segment, drop empties. Order is preserved.
func SplitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// JoinList renders a stored sequence back into editable form text.
func JoinList(items []string) string {
	return strings.Join(items, ", ")
}

// ParseInt parses a numeric form value, falling back to def for blank or
// unparseable input.
func ParseInt(s string, def int) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

// Checked reports whether a checkbox form value is set.
func Checked(s string) bool {
	return s == "on" || s == "true" || s == "1"
}

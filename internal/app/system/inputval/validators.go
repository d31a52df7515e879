// internal/app/system/inputval/validators.go
package inputval

import (
	"net/url"
	"strings"
)

// IsValidEmail reports whether s is a plausible email address for a
// registration form. It is stricter than "contains an @": the local part
// and domain may not start/end with a dot or contain consecutive dots, and
// display-name forms ("Name <a@b>") are rejected.
func IsValidEmail(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || strings.ContainsAny(s, " <>") {
		return false
	}
	local, domain, ok := strings.Cut(s, "@")
	if !ok || local == "" || domain == "" {
		return false
	}
	if strings.Contains(domain, "@") {
		return false
	}
	for _, part := range []string{local, domain} {
		if strings.HasPrefix(part, ".") || strings.HasSuffix(part, ".") || strings.Contains(part, "..") {
			return false
		}
	}
	return true
}

// IsValidHTTPURL reports whether s (after trimming) is an absolute http(s)
// URL. Used for manually entered image URLs.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsOneOf reports whether value is a member of the closed set. Enum form
// widgets already constrain input; this exists for the few places that
// accept enum values from query strings.
func IsOneOf(value string, set []string) bool {
	for _, s := range set {
		if value == s {
			return true
		}
	}
	return false
}

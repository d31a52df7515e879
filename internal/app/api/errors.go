// internal/app/api/errors.go
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
)

// Error is a non-2xx response from the backend.
//
// Validation failures arrive as {"message": "...", "errors": {"field":
// ["msg", ...]}}; Fields carries the per-field messages when present.
type Error struct {
	Status  int
	Message string
	Fields  map[string][]string
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("backend: %d %s", e.Status, e.Message)
	}
	return fmt.Sprintf("backend: %d %s", e.Status, http.StatusText(e.Status))
}

// decodeError builds an *Error from an HTTP error response body, tolerating
// non-JSON bodies.
func decodeError(status int, raw []byte) *Error {
	apiErr := &Error{Status: status}
	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		apiErr.Message = body.Message
		apiErr.Fields = body.Errors
	}
	return apiErr
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound
}

// Unreachable reports whether err is a transport-level failure (connection
// refused, DNS, timeout) rather than an HTTP response from the backend.
func Unreachable(err error) bool {
	if err == nil {
		return false
	}
	var apiErr *Error
	return !errors.As(err, &apiErr)
}

// Degraded reports whether a page-load list fetch should be treated as an
// empty collection: a missing endpoint or an unreachable backend degrades
// the section to "no items" instead of failing the page.
func Degraded(err error) bool {
	return IsNotFound(err) || Unreachable(err)
}

// genericValidationMessage is the backend's unhelpful catch-all; it is
// skipped in favor of the fixed fallback.
const genericValidationMessage = "Validation failed"

// FailureMessage renders a mutation error for the notifier. Precedence:
// backend field errors joined into one line, then the backend's general
// message (unless it is the generic "Validation failed"), then a fixed
// fallback naming the entity type.
func FailureMessage(label string, err error) string {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		if len(apiErr.Fields) > 0 {
			names := make([]string, 0, len(apiErr.Fields))
			for f := range apiErr.Fields {
				names = append(names, f)
			}
			sort.Strings(names)
			var msgs []string
			for _, f := range names {
				msgs = append(msgs, apiErr.Fields[f]...)
			}
			return strings.Join(msgs, " ")
		}
		if apiErr.Message != "" && apiErr.Message != genericValidationMessage {
			return apiErr.Message
		}
	}
	return fmt.Sprintf("Failed to save %s. Please check all required fields.", strings.ToLower(label))
}

// internal/domain/models/wire.go
package models

import (
	"encoding/json"
	"strconv"
	"strings"
)

// ID is an opaque backend-assigned record identifier.
//
// The backend is inconsistent about the wire type: older records come back
// with numeric ids, newer ones with strings. Both decode to the same string
// form, which is what every route and payload uses.
type ID string

func (id ID) String() string { return string(id) }

// IsZero reports whether the id has not been assigned by the backend.
func (id ID) IsZero() bool { return id == "" }

func (id *ID) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(id))
}

// StringList is an ordered sequence of strings (tags, topics, qualifications).
//
// The backend stores these as JSON arrays but some endpoints return the raw
// column value, a JSON-encoded string like "[\"a\",\"b\"]". Both forms decode
// to the same slice; anything unparseable decodes to an empty list rather
// than failing the whole record.
type StringList []string

func (l *StringList) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*l = nil
		return nil
	}
	var ss []string
	if err := json.Unmarshal(b, &ss); err == nil {
		*l = ss
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	s = strings.TrimSpace(s)
	if s == "" {
		*l = nil
		return nil
	}
	if err := json.Unmarshal([]byte(s), &ss); err == nil {
		*l = ss
		return nil
	}
	*l = nil
	return nil
}

// Number is an integer that the backend may send as a JSON number or a
// quoted string ("5", 5, or null all decode to the same value).
type Number int

func (n *Number) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "null" || s == "" {
		*n = 0
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		f, ferr := strconv.ParseFloat(s, 64)
		if ferr != nil {
			return err
		}
		v = int(f)
	}
	*n = Number(v)
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	return json.Marshal(int(n))
}

func (n Number) Int() int { return int(n) }

// internal/domain/models/wire_test.go
package models

import (
	"encoding/json"
	"testing"
)

func TestID_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want ID
	}{
		{`"42"`, "42"},
		{`42`, "42"},
		{`"top-cyber-threats-2025"`, "top-cyber-threats-2025"},
		{`null`, ""},
	}
	for _, tt := range tests {
		var id ID
		if err := json.Unmarshal([]byte(tt.in), &id); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if id != tt.want {
			t.Errorf("unmarshal %s = %q, want %q", tt.in, id, tt.want)
		}
	}
}

func TestID_RoundTrip(t *testing.T) {
	b, err := json.Marshal(ID("7"))
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"7"` {
		t.Errorf("marshal = %s, want %q", b, `"7"`)
	}
}

func TestStringList_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"array", `["a","b"]`, []string{"a", "b"}},
		{"encoded string", `"[\"zero trust\",\"vpn\"]"`, []string{"zero trust", "vpn"}},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
		{"garbage string", `"not json"`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l StringList
			if err := json.Unmarshal([]byte(tt.in), &l); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if len(l) != len(tt.want) {
				t.Fatalf("got %v, want %v", l, tt.want)
			}
			for i := range l {
				if l[i] != tt.want[i] {
					t.Errorf("got %v, want %v", l, tt.want)
				}
			}
		})
	}
}

func TestNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{`5`, 5},
		{`"25"`, 25},
		{`4.0`, 4},
		{`null`, 0},
		{`""`, 0},
	}
	for _, tt := range tests {
		var n Number
		if err := json.Unmarshal([]byte(tt.in), &n); err != nil {
			t.Fatalf("unmarshal %s: %v", tt.in, err)
		}
		if n.Int() != tt.want {
			t.Errorf("unmarshal %s = %d, want %d", tt.in, n.Int(), tt.want)
		}
	}
}

func TestBlog_DecodesWireRecord(t *testing.T) {
	raw := `{"id":3,"title":"Understanding Zero Trust Architecture","excerpt":"Why perimeters fail.","category":"Security Architecture","tags":"[\"zero trust\",\"architecture\"]","published_at":"2025-01-05"}`
	var b Blog
	if err := json.Unmarshal([]byte(raw), &b); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if b.ID != "3" {
		t.Errorf("ID = %q, want %q", b.ID, "3")
	}
	if len(b.Tags) != 2 || b.Tags[0] != "zero trust" {
		t.Errorf("Tags = %v", b.Tags)
	}
}

func TestFaculty_ActiveDefaultsTrue(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"omitted", `{"id":"1","name":"Aisha Khan","specialization":"Network Defense"}`, true},
		{"explicit true", `{"id":"1","name":"Aisha Khan","specialization":"Network Defense","is_active":true}`, true},
		{"explicit false", `{"id":"1","name":"Aisha Khan","specialization":"Network Defense","is_active":false}`, false},
		{"null", `{"id":"1","name":"Aisha Khan","specialization":"Network Defense","is_active":null}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var f Faculty
			if err := json.Unmarshal([]byte(tt.in), &f); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if f.Active != tt.want {
				t.Errorf("Active = %v, want %v", f.Active, tt.want)
			}
			if f.Name != "Aisha Khan" {
				t.Errorf("Name = %q, other fields must still decode", f.Name)
			}
		})
	}
}

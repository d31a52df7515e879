package inputval

import "testing"

func TestValidate_RequiredFastFail(t *testing.T) {
	type input struct {
		Title    string `validate:"required" label:"Workshop title"`
		Category string `validate:"required" label:"Category"`
	}

	res := Validate(input{})
	if !res.HasErrors() {
		t.Fatal("expected errors")
	}
	if res.First() != "Workshop title is required." {
		t.Errorf("First() = %q, want the first declared field's message", res.First())
	}
	if len(res.All()) != 2 {
		t.Errorf("All() = %v, want both failures in order", res.All())
	}
}

func TestValidate_TrimsWhitespace(t *testing.T) {
	type input struct {
		Title string `validate:"required" label:"Title"`
	}
	if res := Validate(input{Title: "   "}); !res.HasErrors() {
		t.Error("whitespace-only value should fail required")
	}
	if res := Validate(input{Title: " ok "}); res.HasErrors() {
		t.Errorf("unexpected error: %v", res.All())
	}
}

func TestValidate_Max(t *testing.T) {
	type input struct {
		Title string `validate:"required,max=5" label:"Title"`
	}
	if res := Validate(input{Title: "123456"}); res.First() != "Title must be at most 5 characters." {
		t.Errorf("First() = %q", res.First())
	}
}

func TestValidate_OneOf(t *testing.T) {
	type input struct {
		Status string `validate:"oneof=upcoming open completed cancelled" label:"Status"`
	}
	if res := Validate(input{Status: "open"}); res.HasErrors() {
		t.Errorf("unexpected error: %v", res.All())
	}
	if res := Validate(input{Status: "archived"}); res.First() != "Status is invalid." {
		t.Errorf("First() = %q", res.First())
	}
	// Blank enum values are left for required to catch.
	if res := Validate(input{}); res.HasErrors() {
		t.Errorf("blank oneof should pass: %v", res.All())
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"user@example.com", true},
		{"user.name@example.com", true},
		{"user+tag@example.com", true},
		{"user@subdomain.example.com", true},
		{"a@b.co", true},
		{"user@localhost", true},

		{"", false},
		{"   ", false},
		{"user", false},
		{"user@", false},
		{"@example.com", false},
		{".user@example.com", false},
		{"user.@example.com", false},
		{"user..name@example.com", false},
		{"user@.example.com", false},
		{"user@example..com", false},
		{"User Name <user@example.com>", false},
		{"user @example.com", false},
		{"user@exam ple.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			if got := IsValidEmail(tt.email); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.email, got, tt.want)
			}
		})
	}
}

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},
		{"  https://example.com  ", true},

		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsValidHTTPURL(tt.url); got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsOneOf(t *testing.T) {
	set := []string{"upcoming", "open"}
	if !IsOneOf("open", set) {
		t.Error("expected member")
	}
	if IsOneOf("Open", set) {
		t.Error("match must be exact")
	}
}

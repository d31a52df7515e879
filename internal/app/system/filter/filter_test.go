package filter

import (
	"reflect"
	"testing"
)

func TestMatch_CategoryIsExact(t *testing.T) {
	// A blog titled "Understanding Zero Trust Architecture" in category
	// "Security Architecture" must be excluded when filtering on the
	// closed-set value "Security".
	if Match("Security Architecture", "Security", "zero", "Understanding Zero Trust Architecture") {
		t.Error("category match must be exact, not prefix")
	}
	if !Match("Security", "Security", "zero", "Understanding Zero Trust Architecture") {
		t.Error("expected exact category + substring to match")
	}
}

func TestMatch_BothFiltersApply(t *testing.T) {
	// Right category, query not present anywhere.
	if Match("Security", "Security", "quantum", "Understanding Zero Trust Architecture", "Why perimeters fail") {
		t.Error("query must match one of the haystacks")
	}
	// Query present, wrong category.
	if Match("Threats", "Security", "zero", "Understanding Zero Trust Architecture") {
		t.Error("both filters must pass simultaneously")
	}
}

func TestMatch_CaseInsensitiveQuery(t *testing.T) {
	if !Match("Threats", All, "ZERO", "Understanding zero trust") {
		t.Error("query should be case-insensitive")
	}
	if !Match("Threats", All, "  zero  ", "Understanding zero trust") {
		t.Error("query should be trimmed")
	}
}

func TestMatch_SearchesDescription(t *testing.T) {
	if !Match("Threats", All, "ransomware", "Weekly roundup", "New ransomware strains observed") {
		t.Error("description should be searched when present")
	}
}

func TestMatch_AllAndBlank(t *testing.T) {
	if !Match("Threats", All, "", "anything") {
		t.Error("All category with blank query should match")
	}
	if !Match("Threats", "", "", "anything") {
		t.Error("blank category should match")
	}
}

func TestOptions(t *testing.T) {
	got := Options([]string{"Security", "Threats"})
	want := []string{"All", "Security", "Threats"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Options = %v, want %v", got, want)
	}
}

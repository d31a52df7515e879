package content_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/AS-Danish/secure-future-hero/internal/app/content"
	"github.com/AS-Danish/secure-future-hero/internal/domain/models"
	"github.com/AS-Danish/secure-future-hero/internal/testutil"
)

func TestDefinitionsCoverAllCollections(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))

	want := []string{"blogs", "courses", "workshops", "testimonials", "faculty", "certificates", "gallery"}
	if len(defs) != len(want) {
		t.Fatalf("got %d definitions, want %d", len(defs), len(want))
	}
	for i, slug := range want {
		if defs[i].Slug() != slug {
			t.Errorf("definition %d slug = %q, want %q", i, defs[i].Slug(), slug)
		}
	}
	if _, ok := content.BySlug(defs, "workshops"); !ok {
		t.Error("BySlug(workshops) not found")
	}
	if _, ok := content.BySlug(defs, "members"); ok {
		t.Error("BySlug(members) should not resolve")
	}
}

func TestAddFormDefaults(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))

	cases := []struct {
		slug string
		key  string
		want string
	}{
		{"workshops", "status", models.WorkshopStatusUpcoming},
		{"workshops", "registration_open", "on"},
		{"testimonials", "rating", "5"},
		{"testimonials", "status", models.TestimonialStatusPending},
		{"faculty", "order", "0"},
		{"faculty", "is_active", "on"},
		{"courses", "status", models.CourseStatusActive},
	}
	for _, tc := range cases {
		def, ok := content.BySlug(defs, tc.slug)
		if !ok {
			t.Fatalf("missing definition %q", tc.slug)
		}
		if got := def.Defaults().Get(tc.key); got != tc.want {
			t.Errorf("%s default %s = %q, want %q", tc.slug, tc.key, got, tc.want)
		}
	}
}

func TestCreateBlankTitleFailsBeforeNetwork(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "workshops")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := def.Defaults()
	vals["title"] = "   "
	vals["date"] = "2026-09-12"

	err := def.Create(ctx, vals)
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create = %v, want ValidationError", err)
	}
	if verr.Message != "Workshop title is required." {
		t.Errorf("message = %q, want %q", verr.Message, "Workshop title is required.")
	}
	if n := b.RequestCount(http.MethodPost, "/api/workshops"); n != 0 {
		t.Errorf("backend saw %d POSTs, want 0", n)
	}
}

func TestValidationOrderIsFixed(t *testing.T) {
	// Faculty has two required fields; with both blank the first
	// (name) wins.
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "faculty")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	err := def.Create(ctx, content.Values{})
	var verr *content.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("Create = %v, want ValidationError", err)
	}
	if verr.Message != "Faculty name is required." {
		t.Errorf("message = %q, want name to fail first", verr.Message)
	}
}

func TestCreateGrowsList(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Seed("blogs", map[string]any{"title": "Existing"})
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "blogs")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := def.Defaults()
	vals["title"] = "Phishing Trends"
	vals["tags"] = "phishing, email , "
	if err := def.Create(ctx, vals); err != nil {
		t.Fatalf("Create: %v", err)
	}

	rows, err := def.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("list has %d rows after create, want 2", len(rows))
	}

	recs := b.Records("blogs")
	created := recs[len(recs)-1]
	if created["title"] != "Phishing Trends" {
		t.Errorf("stored title = %v", created["title"])
	}
	tags, _ := created["tags"].([]any)
	if len(tags) != 2 || tags[0] != "phishing" || tags[1] != "email" {
		t.Errorf("stored tags = %v, want trimmed two-element list", created["tags"])
	}
}

func TestBlankOptionalFieldsOmitted(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "certificates")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := def.Create(ctx, content.Values{"title": "ISO 27001"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rec := b.Records("certificates")[0]
	if _, present := rec["issuer"]; present {
		t.Errorf("blank issuer was sent: %v", rec)
	}
	if _, present := rec["description"]; present {
		t.Errorf("blank description was sent: %v", rec)
	}
}

func TestGetSeedsEditValues(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Seed("faculty", map[string]any{
		"id":              "9",
		"name":            "Dr. Mehta",
		"specialization":  "Network Security",
		"expertise_areas": []string{"firewalls", "ids"},
		"order":           2,
		"is_active":       true,
	})
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "faculty")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals, err := def.Get(ctx, models.ID("9"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if vals.Get("name") != "Dr. Mehta" {
		t.Errorf("name = %q", vals.Get("name"))
	}
	if vals.Get("expertise_areas") != "firewalls, ids" {
		t.Errorf("expertise_areas = %q, want comma-joined", vals.Get("expertise_areas"))
	}
	if vals.Get("order") != "2" {
		t.Errorf("order = %q", vals.Get("order"))
	}
	if vals.Get("is_active") != "on" {
		t.Errorf("is_active = %q, want on", vals.Get("is_active"))
	}
}

func TestUpdateReplacesRecord(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Seed("workshops", map[string]any{
		"id":          "3",
		"title":       "Incident Response",
		"location":    "Lab A",
		"description": "Hands-on IR.",
	})
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "workshops")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals, err := def.Get(ctx, models.ID("3"))
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	vals["location"] = "Lab B"
	// Full-record replace: a field blanked in the form disappears.
	vals["description"] = ""
	if err := def.Update(ctx, models.ID("3"), vals); err != nil {
		t.Fatalf("Update: %v", err)
	}

	rec := b.Records("workshops")[0]
	if rec["location"] != "Lab B" {
		t.Errorf("location = %v", rec["location"])
	}
	if rec["title"] != "Incident Response" {
		t.Errorf("title = %v, want preserved", rec["title"])
	}
	if _, present := rec["description"]; present {
		t.Errorf("blanked description still stored: %v", rec["description"])
	}
}

func TestDeleteRemovesRecord(t *testing.T) {
	b := testutil.NewBackend(t)
	b.Seed("gallery", map[string]any{"id": "1", "title": "Lab"}, map[string]any{"id": "2", "title": "Campus"})
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "gallery")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := def.Delete(ctx, models.ID("1")); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	rows, err := def.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(rows) != 1 || rows[0].Title != "Campus" {
		t.Fatalf("rows after delete = %+v", rows)
	}
}

func TestFilterRows(t *testing.T) {
	rows := []content.Row{
		{Title: "Understanding Zero Trust Architecture", Category: "Security Architecture", SearchText: "Understanding Zero Trust Architecture"},
		{Title: "Zero-Day Roundup", Category: "Security", SearchText: "Zero-Day Roundup weekly digest"},
		{Title: "Career Ladders", Category: "Career", SearchText: "Career Ladders"},
	}

	got := content.FilterRows(rows, "Security", "zero")
	if len(got) != 1 || got[0].Title != "Zero-Day Roundup" {
		t.Fatalf("FilterRows = %+v, want only the exact-category match", got)
	}

	if got := content.FilterRows(rows, "All", ""); len(got) != 3 {
		t.Fatalf("All/blank filter should pass everything, got %d", len(got))
	}
}

func TestRichTextSanitizedOnSave(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "blogs")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	vals := def.Defaults()
	vals["title"] = "Safe Content"
	vals["content"] = "<p>Hello</p><script>alert('x')</script>"
	if err := def.Create(ctx, vals); err != nil {
		t.Fatalf("Create: %v", err)
	}
	rec := b.Records("blogs")[0]
	if rec["content"] != "<p>Hello</p>" {
		t.Errorf("stored content = %q, want script stripped", rec["content"])
	}
}

func TestPastedImageURLResolvedOnSave(t *testing.T) {
	b := testutil.NewBackend(t)
	defs := content.Definitions(testutil.NewClient(t, b))
	def, _ := content.BySlug(defs, "certificates")

	ctx, cancel := testutil.TestContext()
	defer cancel()

	cases := []struct {
		title string
		image string
		want  string
	}{
		{"Relative Path", "/uploads/cissp.png", b.URL() + "/uploads/cissp.png"},
		{"Absolute URL", "https://cdn.example.com/ceh.png", "https://cdn.example.com/ceh.png"},
		{"Padded", "  /uploads/oscp.png ", b.URL() + "/uploads/oscp.png"},
	}
	for _, tc := range cases {
		vals := content.Values{"title": tc.title, "image": tc.image}
		if err := def.Create(ctx, vals); err != nil {
			t.Fatalf("Create %s: %v", tc.title, err)
		}
	}

	recs := b.Records("certificates")
	if len(recs) != len(cases) {
		t.Fatalf("stored %d records, want %d", len(recs), len(cases))
	}
	for i, tc := range cases {
		if got := recs[i]["image"]; got != tc.want {
			t.Errorf("%s stored image = %v, want %q", tc.title, got, tc.want)
		}
	}
}

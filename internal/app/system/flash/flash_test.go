package flash_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/AS-Danish/secure-future-hero/internal/app/system/flash"
	"go.uber.org/zap"
)

func newStore(t *testing.T) *flash.Store {
	t.Helper()
	s, err := flash.NewStore("test-only-key-0123456789abcdef0123", "sf-test", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewStore: %v", err)
	}
	return s
}

// carry copies the session cookie from a response onto a fresh request,
// simulating the browser following a redirect.
func carry(t *testing.T, from *httptest.ResponseRecorder, path string) *http.Request {
	t.Helper()
	next := httptest.NewRequest(http.MethodGet, path, nil)
	for _, c := range from.Result().Cookies() {
		next.AddCookie(c)
	}
	return next
}

func TestNotifyThenPop(t *testing.T) {
	s := newStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/blogs", nil)
	s.SuccessF(w, r, "Blog Created", "")

	r2 := carry(t, w, "/admin/blogs")
	w2 := httptest.NewRecorder()
	got := s.Pop(w2, r2)
	if len(got) != 1 {
		t.Fatalf("Pop returned %d messages, want 1", len(got))
	}
	if got[0].Kind != flash.Success || got[0].Title != "Blog Created" {
		t.Fatalf("unexpected message: %+v", got[0])
	}
}

func TestPopClears(t *testing.T) {
	s := newStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/workshops/7", nil)
	s.ErrorF(w, r, "Validation Error", "Workshop title is required.")

	r2 := carry(t, w, "/admin/workshops")
	w2 := httptest.NewRecorder()
	if got := s.Pop(w2, r2); len(got) != 1 {
		t.Fatalf("first Pop returned %d messages, want 1", len(got))
	}

	// The cleared session travels in w2's cookie; a page reload after
	// reading must see nothing.
	r3 := carry(t, w2, "/admin/workshops")
	w3 := httptest.NewRecorder()
	if got := s.Pop(w3, r3); len(got) != 0 {
		t.Fatalf("second Pop returned %d messages, want 0", len(got))
	}
}

func TestPopWithoutCookie(t *testing.T) {
	s := newStore(t)
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/admin", nil)
	if got := s.Pop(w, r); got != nil {
		t.Fatalf("Pop on empty session = %v, want nil", got)
	}
}

func TestMultipleMessagesPreserveOrder(t *testing.T) {
	s := newStore(t)

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/admin/gallery", nil)
	s.SuccessF(w, r, "Gallery Image Created", "")

	// Second notify on the same response must append, not replace.
	r1 := carry(t, w, "/admin/gallery")
	w1 := httptest.NewRecorder()
	s.ErrorF(w1, r1, "Delete Failed", "Failed to delete gallery image.")

	r2 := carry(t, w1, "/admin/gallery")
	w2 := httptest.NewRecorder()
	got := s.Pop(w2, r2)
	if len(got) != 2 {
		t.Fatalf("Pop returned %d messages, want 2", len(got))
	}
	if got[0].Title != "Gallery Image Created" || got[1].Title != "Delete Failed" {
		t.Fatalf("order wrong: %+v", got)
	}
}

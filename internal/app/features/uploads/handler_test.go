package uploads_test

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/AS-Danish/secure-future-hero/internal/app/features/uploads"
	"github.com/AS-Danish/secure-future-hero/internal/testutil"
	"go.uber.org/zap"
)

// pngBytes is a minimal payload http.DetectContentType reads as image/png.
func pngBytes(size int) []byte {
	b := make([]byte, size)
	copy(b, []byte("\x89PNG\r\n\x1a\n"))
	return b
}

func multipartBody(t *testing.T, filename string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write(payload); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	mw.Close()
	return &buf, mw.FormDataContentType()
}

func post(t *testing.T, h *uploads.Handler, filename string, payload []byte) *httptest.ResponseRecorder {
	t.Helper()
	body, contentType := multipartBody(t, filename, payload)
	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()
	out := map[string]string{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestUploadResolvesRelativeURL(t *testing.T) {
	b := testutil.NewBackend(t)
	h := uploads.NewHandler(testutil.NewClient(t, b), 0, zap.NewNop())

	rec := post(t, h, "photo.PNG", pngBytes(2048))
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	url := decode(t, rec)["url"]
	if !strings.HasPrefix(url, b.URL()+"/uploads/") {
		t.Errorf("url = %q, want absolute against the backend base", url)
	}
	// Client-supplied names are replaced, keeping only the extension.
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("url = %q, want lowercased original extension", url)
	}
	if strings.Contains(url, "photo") {
		t.Errorf("url = %q, original filename should not survive", url)
	}
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	b := testutil.NewBackend(t)
	h := uploads.NewHandler(testutil.NewClient(t, b), 1024, zap.NewNop())

	rec := post(t, h, "big.png", pngBytes(4096))
	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want 413", rec.Code)
	}
	if msg := decode(t, rec)["error"]; !strings.Contains(msg, "too large") {
		t.Errorf("error message = %q", msg)
	}
	if n := b.RequestCount(http.MethodPost, "/api/upload"); n != 0 {
		t.Errorf("backend saw %d uploads, want 0", n)
	}
}

func TestUploadRejectsNonImage(t *testing.T) {
	b := testutil.NewBackend(t)
	h := uploads.NewHandler(testutil.NewClient(t, b), 0, zap.NewNop())

	rec := post(t, h, "notes.png", []byte("just some plain text, not an image"))
	if rec.Code != http.StatusUnsupportedMediaType {
		t.Fatalf("status = %d, want 415", rec.Code)
	}
	if msg := decode(t, rec)["error"]; msg != "Only image files can be uploaded." {
		t.Errorf("error message = %q", msg)
	}
	if n := b.RequestCount(http.MethodPost, "/api/upload"); n != 0 {
		t.Errorf("backend saw %d uploads, want 0", n)
	}
}

func TestUploadMissingFile(t *testing.T) {
	b := testutil.NewBackend(t)
	h := uploads.NewHandler(testutil.NewClient(t, b), 0, zap.NewNop())

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	mw.WriteField("other", "x")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/admin/uploads", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	h.HandleUpload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

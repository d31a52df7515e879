// internal/app/features/uploads/handler.go

// Package uploads proxies image uploads from the admin forms to the
// backend's upload endpoint. Size and content-type are checked here so a
// bad file never leaves this process.
package uploads

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/AS-Danish/secure-future-hero/internal/app/api"
	"github.com/AS-Danish/secure-future-hero/internal/app/system/timeouts"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultMaxBytes is the upload ceiling when none is configured.
const DefaultMaxBytes = 10 << 20 // 10 MiB

// Handler is the uploads feature entry point.
type Handler struct {
	Client   *api.Client
	MaxBytes int64
	Log      *zap.Logger
}

// NewHandler constructs an uploads handler. maxBytes <= 0 falls back to
// DefaultMaxBytes.
func NewHandler(client *api.Client, maxBytes int64, logger *zap.Logger) *Handler {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &Handler{Client: client, MaxBytes: maxBytes, Log: logger}
}

// HandleUpload accepts one multipart image, forwards it to the backend,
// and replies with the resolved absolute URL as JSON for the in-form
// helper.
//
// Route: POST /admin/uploads
func (h *Handler) HandleUpload(w http.ResponseWriter, r *http.Request) {
	// Some slack over the ceiling for the multipart framing itself.
	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes+(1<<20))
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		h.Log.Warn("upload parse failed", zap.Error(err))
		writeError(w, http.StatusRequestEntityTooLarge, h.sizeMessage())
		return
	}

	file, hdr, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file was selected.")
		return
	}
	defer file.Close()

	if hdr.Size > h.MaxBytes {
		writeError(w, http.StatusRequestEntityTooLarge, h.sizeMessage())
		return
	}

	contentType := detectContentType(file)
	if !strings.HasPrefix(contentType, "image/") {
		writeError(w, http.StatusUnsupportedMediaType, "Only image files can be uploaded.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	// The original name is untrusted; keep only its extension.
	name := uuid.NewString() + strings.ToLower(filepath.Ext(hdr.Filename))
	url, err := h.Client.UploadImage(ctx, name, contentType, file)
	if err != nil {
		h.Log.Error("upload forward failed", zap.String("name", name), zap.Error(err))
		writeError(w, http.StatusBadGateway, "Upload failed. Please try again.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"url": url})
}

func (h *Handler) sizeMessage() string {
	return fmt.Sprintf("File is too large. Maximum size is %d MB.", h.MaxBytes>>20)
}

// detectContentType sniffs the first 512 bytes and rewinds.
func detectContentType(file io.ReadSeeker) string {
	buf := make([]byte, 512)
	n, _ := file.Read(buf)
	file.Seek(0, io.SeekStart)
	if n == 0 {
		return "application/octet-stream"
	}
	return http.DetectContentType(buf[:n])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

package http

import (
	"io"
	"net/http"
	"strings"

	"souvenaria-backend/internal/storage"
)

// MediaHandler serves the upload and download endpoints the local storage
// service issues URLs for.
type MediaHandler struct {
	store *storage.LocalStorageService
}

func NewMediaHandler(store *storage.LocalStorageService) *MediaHandler {
	return &MediaHandler{store: store}
}

// Upload accepts the PUT request a client makes against an issued upload URL.
func (h *MediaHandler) Upload(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	contentType := r.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") && !strings.HasPrefix(contentType, "video/") {
		http.Error(w, "Unsupported content type", http.StatusBadRequest)
		return
	}

	if err := h.store.SaveFile(key, r.Body); err != nil {
		http.Error(w, "Failed to save file", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// Download streams a stored media file back to the client.
func (h *MediaHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.store.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	io.Copy(w, file)
}

package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"souvenaria-backend/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMediaHandlerForTest(t *testing.T) *MediaHandler {
	t.Helper()
	store, err := storage.NewLocalStorageService("http://localhost:8080", t.TempDir())
	require.NoError(t, err)
	return NewMediaHandler(store)
}

func TestMediaHandler_Upload(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		handler := newMediaHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/media/upload/tok", strings.NewReader("bytes"))
		r.Header.Set("Content-Type", "image/jpeg")
		handler.Upload(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("RejectsNonMediaContentType", func(t *testing.T) {
		handler := newMediaHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/media/upload/tok?key=f1/m1.jpg", strings.NewReader("bytes"))
		r.Header.Set("Content-Type", "application/pdf")
		handler.Upload(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("SavedFileIsDownloadable", func(t *testing.T) {
		handler := newMediaHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPut, "/api/v1/media/upload/tok?key=f1/m1.jpg", strings.NewReader("jpeg bytes"))
		r.Header.Set("Content-Type", "image/jpeg")
		handler.Upload(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		w = httptest.NewRecorder()
		r = httptest.NewRequest(http.MethodGet, "/api/v1/media/download?key=f1/m1.jpg", nil)
		handler.Download(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/octet-stream", w.Header().Get("Content-Type"))
		assert.Equal(t, "jpeg bytes", w.Body.String())
	})
}

func TestMediaHandler_Download(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		handler := newMediaHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/media/download", nil)
		handler.Download(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("UnknownKeyIs404", func(t *testing.T) {
		handler := newMediaHandlerForTest(t)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/v1/media/download?key=f1/missing.jpg", nil)
		handler.Download(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

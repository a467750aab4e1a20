package http

import (
	"net/http"

	"souvenaria-backend/internal/service"

	"github.com/gorilla/mux"
)

type MemoryHandler struct {
	memorySvc service.MemoryService
}

func NewMemoryHandler(memorySvc service.MemoryService) *MemoryHandler {
	return &MemoryHandler{memorySvc: memorySvc}
}

type createMemoryRequest struct {
	Title       string `json:"title" validate:"required"`
	ContentType string `json:"content_type" validate:"required"`
}

type setFavoriteRequest struct {
	Favorite *bool `json:"favorite" validate:"required"`
}

func (h *MemoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req createMemoryRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	memory, uploadURL, err := h.memorySvc.CreateMemory(r.Context(), userID, mux.Vars(r)["familyID"], req.Title, req.ContentType)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, map[string]any{
		"memory":     memory,
		"upload_url": uploadURL,
	})
}

func (h *MemoryHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	favoritesOnly := r.URL.Query().Get("favorites") == "true"
	memories, err := h.memorySvc.ListMemories(r.Context(), userID, mux.Vars(r)["familyID"], favoritesOnly)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"memories": memories})
}

func (h *MemoryHandler) SetFavorite(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req setFavoriteRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.memorySvc.SetFavorite(r.Context(), userID, mux.Vars(r)["memoryID"], *req.Favorite); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *MemoryHandler) DownloadURL(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	downloadURL, err := h.memorySvc.GetDownloadURL(r.Context(), userID, mux.Vars(r)["memoryID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"download_url": downloadURL})
}

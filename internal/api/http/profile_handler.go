package http

import (
	"net/http"

	"souvenaria-backend/internal/service"
)

type ProfileHandler struct {
	profileSvc service.ProfileService
}

func NewProfileHandler(profileSvc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileSvc: profileSvc}
}

type updateProfileRequest struct {
	Username string `json:"username" validate:"required"`
}

func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	profile, families, err := h.profileSvc.GetProfile(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{
		"profile":  profile,
		"families": families,
	})
}

func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req updateProfileRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if err := h.profileSvc.UpdateProfile(r.Context(), userID, req.Username); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

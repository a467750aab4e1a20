package http

import (
	"net/http"

	"souvenaria-backend/internal/service"

	"github.com/gorilla/mux"
)

type FamilyHandler struct {
	familySvc service.FamilyService
}

func NewFamilyHandler(familySvc service.FamilyService) *FamilyHandler {
	return &FamilyHandler{familySvc: familySvc}
}

type createFamilyRequest struct {
	Name string `json:"family_name" validate:"required"`
}

type joinRequestRequest struct {
	FamilyID string `json:"family_id" validate:"required"`
}

func (h *FamilyHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req createFamilyRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	family, err := h.familySvc.CreateFamily(r.Context(), userID, req.Name)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, family)
}

func (h *FamilyHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	families, err := h.familySvc.ListMyFamilies(r.Context(), userID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"families": families})
}

func (h *FamilyHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	family, err := h.familySvc.GetFamily(r.Context(), userID, mux.Vars(r)["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, family)
}

// RequestJoin takes the invite id the requester typed in; validation of the
// id happens in the service.
func (h *FamilyHandler) RequestJoin(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req joinRequestRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	request, err := h.familySvc.RequestJoin(r.Context(), userID, req.FamilyID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, request)
}

func (h *FamilyHandler) ListPendingRequests(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	requests, err := h.familySvc.ListPendingRequests(r.Context(), userID, mux.Vars(r)["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"requests": requests})
}

func (h *FamilyHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	vars := mux.Vars(r)
	membership, err := h.familySvc.AcceptRequest(r.Context(), userID, vars["requestID"], vars["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, membership)
}

func (h *FamilyHandler) RejectRequest(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	vars := mux.Vars(r)
	if err := h.familySvc.RejectRequest(r.Context(), userID, vars["requestID"], vars["familyID"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

func (h *FamilyHandler) ListMembers(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	members, err := h.familySvc.ListMembers(r.Context(), userID, mux.Vars(r)["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"members": members})
}

func (h *FamilyHandler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	vars := mux.Vars(r)
	if err := h.familySvc.RemoveMember(r.Context(), userID, vars["userID"], vars["familyID"]); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

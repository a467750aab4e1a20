package http

import (
	"net/http"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/service"

	"github.com/gorilla/mux"
)

type EventHandler struct {
	eventSvc service.EventService
}

func NewEventHandler(eventSvc service.EventService) *EventHandler {
	return &EventHandler{eventSvc: eventSvc}
}

type createEventRequest struct {
	Name string `json:"event_name" validate:"required"`
	Date string `json:"event_date" validate:"required"`
	Type string `json:"event_type" validate:"required"`
}

func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	var req createEventRequest
	if err := decodeAndValidate(r, &req); err != nil {
		respondError(w, err)
		return
	}

	event, err := h.eventSvc.AddEvent(r.Context(), userID, mux.Vars(r)["familyID"], req.Name, req.Date, req.Type)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, event)
}

func (h *EventHandler) ListUpcoming(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	events, err := h.eventSvc.ListUpcomingEvents(r.Context(), userID, mux.Vars(r)["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"events": events})
}

// Calendar returns the upcoming events already bucketed by month, in the
// shape the calendar screen renders section-by-section.
func (h *EventHandler) Calendar(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondJSON(w, http.StatusUnauthorized, errorResponse{Error: "not authenticated"})
		return
	}

	events, err := h.eventSvc.ListUpcomingEvents(r.Context(), userID, mux.Vars(r)["familyID"])
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"months": domain.GroupEventsByMonth(events)})
}

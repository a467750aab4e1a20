package http

import (
	"net/http"

	"souvenaria-backend/internal/security"
	"souvenaria-backend/internal/service"
	"souvenaria-backend/internal/storage"

	"github.com/gorilla/mux"
)

// RouterDeps carries everything the API routes need.
type RouterDeps struct {
	Tokens     security.TokenManager
	AuthSvc    service.AuthService
	FamilySvc  service.FamilyService
	EventSvc   service.EventService
	ProfileSvc service.ProfileService
	MemorySvc  service.MemoryService
	Store      *storage.LocalStorageService
}

// NewRouter assembles all API routes. Everything under /api/v1 except the
// auth endpoints and the media endpoints requires a valid access token.
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	authHandler := NewAuthHandler(deps.AuthSvc, deps.ProfileSvc)
	familyHandler := NewFamilyHandler(deps.FamilySvc)
	eventHandler := NewEventHandler(deps.EventSvc)
	profileHandler := NewProfileHandler(deps.ProfileSvc)
	memoryHandler := NewMemoryHandler(deps.MemorySvc)
	mediaHandler := NewMediaHandler(deps.Store)

	api := router.PathPrefix("/api/v1").Subrouter()

	// Public auth endpoints.
	api.HandleFunc("/auth/signup", authHandler.Signup).Methods(http.MethodPost)
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)
	api.HandleFunc("/auth/logout", authHandler.Logout).Methods(http.MethodPost)

	// Media endpoints are reached through issued URLs, not bearer tokens.
	api.HandleFunc("/media/upload/{token}", mediaHandler.Upload).Methods(http.MethodPut)
	api.HandleFunc("/media/download", mediaHandler.Download).Methods(http.MethodGet)

	protected := api.NewRoute().Subrouter()
	protected.Use(AuthMiddleware(deps.Tokens))

	protected.HandleFunc("/auth/session", authHandler.Session).Methods(http.MethodGet)

	protected.HandleFunc("/profile", profileHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/profile", profileHandler.Update).Methods(http.MethodPut)

	protected.HandleFunc("/families", familyHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/families", familyHandler.ListMine).Methods(http.MethodGet)
	protected.HandleFunc("/families/{familyID}", familyHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/families/{familyID}/members", familyHandler.ListMembers).Methods(http.MethodGet)
	protected.HandleFunc("/families/{familyID}/members/{userID}", familyHandler.RemoveMember).Methods(http.MethodDelete)

	protected.HandleFunc("/join-requests", familyHandler.RequestJoin).Methods(http.MethodPost)
	protected.HandleFunc("/families/{familyID}/requests", familyHandler.ListPendingRequests).Methods(http.MethodGet)
	protected.HandleFunc("/families/{familyID}/requests/{requestID}/accept", familyHandler.AcceptRequest).Methods(http.MethodPost)
	protected.HandleFunc("/families/{familyID}/requests/{requestID}", familyHandler.RejectRequest).Methods(http.MethodDelete)

	protected.HandleFunc("/families/{familyID}/events", eventHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/families/{familyID}/events", eventHandler.ListUpcoming).Methods(http.MethodGet)
	protected.HandleFunc("/families/{familyID}/calendar", eventHandler.Calendar).Methods(http.MethodGet)

	protected.HandleFunc("/families/{familyID}/memories", memoryHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/families/{familyID}/memories", memoryHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/memories/{memoryID}/favorite", memoryHandler.SetFavorite).Methods(http.MethodPut)
	protected.HandleFunc("/memories/{memoryID}/download-url", memoryHandler.DownloadURL).Methods(http.MethodGet)

	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	return router
}

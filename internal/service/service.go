package service

import (
	"context"

	"souvenaria-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, string, error) // access, refresh
	Refresh(ctx context.Context, refreshToken string) (string, string, error)
	Logout(ctx context.Context, refreshToken string) error
}

type FamilyService interface {
	CreateFamily(ctx context.Context, userID, name string) (*domain.Family, error)
	GetFamily(ctx context.Context, userID, familyID string) (*domain.Family, error)
	ListMyFamilies(ctx context.Context, userID string) ([]domain.Family, error)
	RequestJoin(ctx context.Context, userID, familyID string) (*domain.JoinRequest, error)
	ListPendingRequests(ctx context.Context, callerID, familyID string) ([]domain.PendingJoinRequest, error)
	AcceptRequest(ctx context.Context, callerID, requestID, familyID string) (*domain.Membership, error)
	RejectRequest(ctx context.Context, callerID, requestID, familyID string) error
	ListMembers(ctx context.Context, callerID, familyID string) ([]domain.Member, error)
	RemoveMember(ctx context.Context, callerID, userID, familyID string) error
}

type EventService interface {
	AddEvent(ctx context.Context, userID, familyID, name, date, eventType string) (*domain.Event, error)
	ListUpcomingEvents(ctx context.Context, userID, familyID string) ([]domain.Event, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, []domain.Family, error)
	UpdateProfile(ctx context.Context, userID, username string) error
}

type MemoryService interface {
	CreateMemory(ctx context.Context, userID, familyID, title, contentType string) (*domain.Memory, string, error) // memory, uploadURL
	ListMemories(ctx context.Context, userID, familyID string, favoritesOnly bool) ([]domain.Memory, error)
	SetFavorite(ctx context.Context, userID, memoryID string, favorite bool) error
	GetDownloadURL(ctx context.Context, userID, memoryID string) (string, error)
}

type EmailService interface {
	SendJoinRequestDecision(ctx context.Context, email, familyName, decision string) error
	SendEventReminder(ctx context.Context, email, eventName, eventDate, eventType string) error
}

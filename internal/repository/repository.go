package repository

import (
	"context"
	"time"

	"souvenaria-backend/internal/domain"
)

type UserRepository interface {
	// Create inserts the user and an empty profile row in one transaction.
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpdateProfile(ctx context.Context, userID, username string) error
}

type FamilyRepository interface {
	// CreateWithCreator inserts the family and the creator's membership in
	// one transaction so a failed membership insert never leaves an orphaned
	// family behind.
	CreateWithCreator(ctx context.Context, family *domain.Family, creatorID string) error
	GetByID(ctx context.Context, id string) (*domain.Family, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Family, error)
	IsMember(ctx context.Context, userID, familyID string) (bool, error)
	ListMembers(ctx context.Context, familyID string) ([]domain.Member, error)
	ListMemberEmails(ctx context.Context, familyID string) ([]string, error)
	RemoveMember(ctx context.Context, userID, familyID string) error
}

type JoinRequestRepository interface {
	Create(ctx context.Context, req *domain.JoinRequest) error
	GetByID(ctx context.Context, id string) (*domain.JoinRequest, error)
	HasPending(ctx context.Context, userID, familyID string) (bool, error)
	// ListPendingByFamily is always family-scoped and resolves usernames in
	// the same query.
	ListPendingByFamily(ctx context.Context, familyID string) ([]domain.PendingJoinRequest, error)
	// Accept runs mark-accepted, membership insert and request delete in one
	// transaction. A request that is not pending for the given family yields
	// domain.ErrConflict or domain.ErrNotFound and changes nothing.
	Accept(ctx context.Context, requestID, familyID string) (*domain.Membership, error)
	// Delete removes a pending request (rejection).
	Delete(ctx context.Context, requestID, familyID string) error
	DeleteStale(ctx context.Context, olderThan time.Time) (int64, error)
}

type EventRepository interface {
	Create(ctx context.Context, event *domain.Event) error
	// ListUpcoming returns events with date >= from, ascending by date.
	ListUpcoming(ctx context.Context, familyID, from string) ([]domain.Event, error)
	ListOnDate(ctx context.Context, date string) ([]domain.Event, error)
}

type MemoryRepository interface {
	Create(ctx context.Context, memory *domain.Memory) error
	GetByID(ctx context.Context, id string) (*domain.Memory, error)
	ListByFamily(ctx context.Context, familyID string, favoritesOnly bool) ([]domain.Memory, error)
	SetFavorite(ctx context.Context, id string, favorite bool) error
}

type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error)
	DeleteByTokenHash(ctx context.Context, tokenHash string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
}

package postgres

import (
	"database/sql"
	"errors"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.UserRepository
	repository.FamilyRepository
	repository.JoinRequestRepository
	repository.EventRepository
	repository.MemoryRepository
	repository.SessionRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                    db,
		UserRepository:        NewUserRepository(db),
		FamilyRepository:      NewFamilyRepository(db),
		JoinRequestRepository: NewJoinRequestRepository(db),
		EventRepository:       NewEventRepository(db),
		MemoryRepository:      NewMemoryRepository(db),
		SessionRepository:     NewSessionRepository(db),
	}
}

// uniqueViolation is the Postgres error code for duplicate keys.
const uniqueViolation = "23505"

// translateErr maps driver-level failures onto the domain error kinds so
// callers never see raw sql/pq errors.
func translateErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return domain.ErrConflict
	}
	return err
}

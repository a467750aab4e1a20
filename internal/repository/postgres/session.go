package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/repository"

	"github.com/google/uuid"
)

type sessionRepository struct {
	db *sql.DB
}

func NewSessionRepository(db *sql.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *domain.Session) error {
	if session.ID == "" {
		session.ID = uuid.New().String()
	}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO sessions (id, user_id, token_hash, expires_on) VALUES ($1, $2, $3, $4) RETURNING created_on`,
		session.ID, session.UserID, session.TokenHash, session.ExpiresOn,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert session: %w", translateErr(err))
	}
	session.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *sessionRepository) GetByTokenHash(ctx context.Context, tokenHash string) (*domain.Session, error) {
	session := &domain.Session{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_on, created_on FROM sessions WHERE token_hash = $1`,
		tokenHash,
	).Scan(&session.ID, &session.UserID, &session.TokenHash, &session.ExpiresOn, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", translateErr(err))
	}
	session.CreatedOn = createdOn.Format(time.RFC3339)
	return session, nil
}

func (r *sessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE token_hash = $1`, tokenHash)
	if err != nil {
		return fmt.Errorf("delete session: %w", translateErr(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete session: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_on < $1`, now)
	if err != nil {
		return 0, fmt.Errorf("delete expired sessions: %w", translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

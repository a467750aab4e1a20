package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"souvenaria-backend/internal/domain"
	"souvenaria-backend/internal/repository"

	"github.com/google/uuid"
)

type joinRequestRepository struct {
	db *sql.DB
}

func NewJoinRequestRepository(db *sql.DB) repository.JoinRequestRepository {
	return &joinRequestRepository{db: db}
}

func (r *joinRequestRepository) Create(ctx context.Context, req *domain.JoinRequest) error {
	if req.ID == "" {
		req.ID = uuid.New().String()
	}
	if req.Status == "" {
		req.Status = domain.JoinRequestStatusPending
	}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO family_requests (id, user_id, family_id, status) VALUES ($1, $2, $3, $4) RETURNING created_on`,
		req.ID, req.UserID, req.FamilyID, req.Status,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert join request: %w", translateErr(err))
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *joinRequestRepository) GetByID(ctx context.Context, id string) (*domain.JoinRequest, error) {
	req := &domain.JoinRequest{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, family_id, status, created_on FROM family_requests WHERE id = $1`, id,
	).Scan(&req.ID, &req.UserID, &req.FamilyID, &req.Status, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get join request: %w", translateErr(err))
	}
	req.CreatedOn = createdOn.Format(time.RFC3339)
	return req, nil
}

func (r *joinRequestRepository) HasPending(ctx context.Context, userID, familyID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM family_requests WHERE user_id = $1 AND family_id = $2 AND status = 'pending')`,
		userID, familyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check pending request: %w", translateErr(err))
	}
	return exists, nil
}

func (r *joinRequestRepository) ListPendingByFamily(ctx context.Context, familyID string) ([]domain.PendingJoinRequest, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT fr.id, fr.user_id, fr.family_id, fr.status, fr.created_on,
		        COALESCE(NULLIF(p.username, ''), 'Unknown')
		 FROM family_requests fr
		 LEFT JOIN user_profiles p ON p.user_id = fr.user_id
		 WHERE fr.family_id = $1 AND fr.status = 'pending'
		 ORDER BY fr.created_on`, familyID)
	if err != nil {
		return nil, fmt.Errorf("list pending requests: %w", translateErr(err))
	}
	defer rows.Close()

	var reqs []domain.PendingJoinRequest
	for rows.Next() {
		var req domain.PendingJoinRequest
		var createdOn time.Time
		if err := rows.Scan(&req.ID, &req.UserID, &req.FamilyID, &req.Status, &createdOn, &req.Username); err != nil {
			return nil, fmt.Errorf("scan pending request: %w", err)
		}
		req.CreatedOn = createdOn.Format(time.RFC3339)
		reqs = append(reqs, req)
	}
	return reqs, rows.Err()
}

// Accept performs the whole three-step acceptance inside one transaction:
// mark accepted, insert the membership, delete the request. The row lock plus
// the status guard make a second accept on the same request a clean conflict
// with no duplicate membership insert.
func (r *joinRequestRepository) Accept(ctx context.Context, requestID, familyID string) (*domain.Membership, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin accept: %w", err)
	}
	defer tx.Rollback()

	var userID string
	var status domain.JoinRequestStatus
	err = tx.QueryRowContext(ctx,
		`SELECT user_id, status FROM family_requests WHERE id = $1 AND family_id = $2 FOR UPDATE`,
		requestID, familyID,
	).Scan(&userID, &status)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("accept: request %s: %w", requestID, domain.ErrNotFound)
		}
		return nil, fmt.Errorf("accept: lock request: %w", err)
	}
	if status != domain.JoinRequestStatusPending {
		return nil, fmt.Errorf("accept: request %s already %s: %w", requestID, status, domain.ErrConflict)
	}

	if _, err := tx.ExecContext(ctx,
		`UPDATE family_requests SET status = 'accepted' WHERE id = $1`, requestID); err != nil {
		return nil, fmt.Errorf("accept: mark accepted: %w", translateErr(err))
	}

	var joinedOn time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO user_families (user_id, family_id) VALUES ($1, $2) RETURNING joined_on`,
		userID, familyID,
	).Scan(&joinedOn)
	if err != nil {
		return nil, fmt.Errorf("accept: insert membership: %w", translateErr(err))
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM family_requests WHERE id = $1`, requestID); err != nil {
		return nil, fmt.Errorf("accept: delete request: %w", translateErr(err))
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("accept: commit: %w", err)
	}

	return &domain.Membership{
		UserID:   userID,
		FamilyID: familyID,
		JoinedOn: joinedOn.Format(time.RFC3339),
	}, nil
}

func (r *joinRequestRepository) Delete(ctx context.Context, requestID, familyID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM family_requests WHERE id = $1 AND family_id = $2 AND status = 'pending'`,
		requestID, familyID)
	if err != nil {
		return fmt.Errorf("delete join request: %w", translateErr(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("delete join request: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *joinRequestRepository) DeleteStale(ctx context.Context, olderThan time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM family_requests WHERE status = 'pending' AND created_on < $1`, olderThan)
	if err != nil {
		return 0, fmt.Errorf("delete stale requests: %w", translateErr(err))
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return n, nil
}

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

type userRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) repository.UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create user: %w", err)
	}
	defer tx.Rollback()

	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	var createdOn time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO users (id, email, password_hash) VALUES ($1, $2, $3) RETURNING created_on`,
		user.ID, user.Email, user.PasswordHash,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert user: %w", translateErr(err))
	}
	user.CreatedOn = createdOn.Format(time.RFC3339)

	// Empty profile row; the username is filled in by a later profile edit.
	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_profiles (user_id, username) VALUES ($1, '')`, user.ID)
	if err != nil {
		return fmt.Errorf("insert profile: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT id, email, password_hash, created_on FROM users WHERE id = $1`, id)
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.getBy(ctx, `SELECT id, email, password_hash, created_on FROM users WHERE email = $1`, email)
}

func (r *userRepository) getBy(ctx context.Context, query string, arg any) (*domain.User, error) {
	user := &domain.User{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", translateErr(err))
	}
	user.CreatedOn = createdOn.Format(time.RFC3339)
	return user, nil
}

func (r *userRepository) GetProfile(ctx context.Context, userID string) (*domain.Profile, error) {
	profile := &domain.Profile{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT user_id, username, created_on FROM user_profiles WHERE user_id = $1`, userID,
	).Scan(&profile.UserID, &profile.Username, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get profile: %w", translateErr(err))
	}
	profile.CreatedOn = createdOn.Format(time.RFC3339)
	return profile, nil
}

func (r *userRepository) UpdateProfile(ctx context.Context, userID, username string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE user_profiles SET username = $1 WHERE user_id = $2`, username, userID)
	if err != nil {
		return fmt.Errorf("update profile: %w", translateErr(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("update profile: %w", domain.ErrNotFound)
	}
	return nil
}

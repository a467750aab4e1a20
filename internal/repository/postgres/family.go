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

type familyRepository struct {
	db *sql.DB
}

func NewFamilyRepository(db *sql.DB) repository.FamilyRepository {
	return &familyRepository{db: db}
}

func (r *familyRepository) CreateWithCreator(ctx context.Context, family *domain.Family, creatorID string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create family: %w", err)
	}
	defer tx.Rollback()

	if family.ID == "" {
		family.ID = uuid.New().String()
	}
	var createdOn time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO families (id, family_name) VALUES ($1, $2) RETURNING created_on`,
		family.ID, family.Name,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert family: %w", translateErr(err))
	}
	family.CreatedOn = createdOn.Format(time.RFC3339)

	_, err = tx.ExecContext(ctx,
		`INSERT INTO user_families (user_id, family_id) VALUES ($1, $2)`,
		creatorID, family.ID)
	if err != nil {
		return fmt.Errorf("insert creator membership: %w", translateErr(err))
	}

	return tx.Commit()
}

func (r *familyRepository) GetByID(ctx context.Context, id string) (*domain.Family, error) {
	family := &domain.Family{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, family_name, created_on FROM families WHERE id = $1`, id,
	).Scan(&family.ID, &family.Name, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get family: %w", translateErr(err))
	}
	family.CreatedOn = createdOn.Format(time.RFC3339)
	return family, nil
}

func (r *familyRepository) ListByUser(ctx context.Context, userID string) ([]domain.Family, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT f.id, f.family_name, f.created_on
		 FROM families f
		 JOIN user_families uf ON uf.family_id = f.id
		 WHERE uf.user_id = $1
		 ORDER BY uf.joined_on`, userID)
	if err != nil {
		return nil, fmt.Errorf("list families: %w", translateErr(err))
	}
	defer rows.Close()

	var families []domain.Family
	for rows.Next() {
		var f domain.Family
		var createdOn time.Time
		if err := rows.Scan(&f.ID, &f.Name, &createdOn); err != nil {
			return nil, fmt.Errorf("scan family: %w", err)
		}
		f.CreatedOn = createdOn.Format(time.RFC3339)
		families = append(families, f)
	}
	return families, rows.Err()
}

func (r *familyRepository) IsMember(ctx context.Context, userID, familyID string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM user_families WHERE user_id = $1 AND family_id = $2)`,
		userID, familyID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check membership: %w", translateErr(err))
	}
	return exists, nil
}

// ListMembers resolves usernames in the same query instead of the two-phase
// id-then-name fetch the mobile client repeated per screen.
func (r *familyRepository) ListMembers(ctx context.Context, familyID string) ([]domain.Member, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT uf.user_id, COALESCE(NULLIF(p.username, ''), 'Unknown'), uf.joined_on
		 FROM user_families uf
		 LEFT JOIN user_profiles p ON p.user_id = uf.user_id
		 WHERE uf.family_id = $1
		 ORDER BY uf.joined_on`, familyID)
	if err != nil {
		return nil, fmt.Errorf("list members: %w", translateErr(err))
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var joinedOn time.Time
		if err := rows.Scan(&m.UserID, &m.Username, &joinedOn); err != nil {
			return nil, fmt.Errorf("scan member: %w", err)
		}
		m.JoinedOn = joinedOn.Format(time.RFC3339)
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *familyRepository) ListMemberEmails(ctx context.Context, familyID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT u.email
		 FROM user_families uf
		 JOIN users u ON u.id = uf.user_id
		 WHERE uf.family_id = $1`, familyID)
	if err != nil {
		return nil, fmt.Errorf("list member emails: %w", translateErr(err))
	}
	defer rows.Close()

	var emails []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("scan member email: %w", err)
		}
		emails = append(emails, email)
	}
	return emails, rows.Err()
}

func (r *familyRepository) RemoveMember(ctx context.Context, userID, familyID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM user_families WHERE user_id = $1 AND family_id = $2`, userID, familyID)
	if err != nil {
		return fmt.Errorf("remove member: %w", translateErr(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("remove member: %w", domain.ErrNotFound)
	}
	return nil
}

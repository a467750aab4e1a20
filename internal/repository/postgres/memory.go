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

type memoryRepository struct {
	db *sql.DB
}

func NewMemoryRepository(db *sql.DB) repository.MemoryRepository {
	return &memoryRepository{db: db}
}

func (r *memoryRepository) Create(ctx context.Context, memory *domain.Memory) error {
	if memory.ID == "" {
		memory.ID = uuid.New().String()
	}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO memories (id, family_id, user_id, title, storage_key, content_type)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING created_on`,
		memory.ID, memory.FamilyID, memory.UserID, memory.Title, memory.StorageKey, memory.ContentType,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert memory: %w", translateErr(err))
	}
	memory.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *memoryRepository) GetByID(ctx context.Context, id string) (*domain.Memory, error) {
	memory := &domain.Memory{}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`SELECT id, family_id, user_id, title, storage_key, content_type, favorite, created_on
		 FROM memories WHERE id = $1`, id,
	).Scan(&memory.ID, &memory.FamilyID, &memory.UserID, &memory.Title,
		&memory.StorageKey, &memory.ContentType, &memory.Favorite, &createdOn)
	if err != nil {
		return nil, fmt.Errorf("get memory: %w", translateErr(err))
	}
	memory.CreatedOn = createdOn.Format(time.RFC3339)
	return memory, nil
}

func (r *memoryRepository) ListByFamily(ctx context.Context, familyID string, favoritesOnly bool) ([]domain.Memory, error) {
	query := `SELECT id, family_id, user_id, title, storage_key, content_type, favorite, created_on
	          FROM memories WHERE family_id = $1`
	if favoritesOnly {
		query += ` AND favorite`
	}
	query += ` ORDER BY created_on DESC`

	rows, err := r.db.QueryContext(ctx, query, familyID)
	if err != nil {
		return nil, fmt.Errorf("list memories: %w", translateErr(err))
	}
	defer rows.Close()

	var memories []domain.Memory
	for rows.Next() {
		var m domain.Memory
		var createdOn time.Time
		if err := rows.Scan(&m.ID, &m.FamilyID, &m.UserID, &m.Title,
			&m.StorageKey, &m.ContentType, &m.Favorite, &createdOn); err != nil {
			return nil, fmt.Errorf("scan memory: %w", err)
		}
		m.CreatedOn = createdOn.Format(time.RFC3339)
		memories = append(memories, m)
	}
	return memories, rows.Err()
}

func (r *memoryRepository) SetFavorite(ctx context.Context, id string, favorite bool) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memories SET favorite = $1 WHERE id = $2`, favorite, id)
	if err != nil {
		return fmt.Errorf("set favorite: %w", translateErr(err))
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set favorite: %w", domain.ErrNotFound)
	}
	return nil
}

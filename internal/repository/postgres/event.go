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

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	if event.ID == "" {
		event.ID = uuid.New().String()
	}
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO events (id, family_id, event_name, event_date, event_type)
		 VALUES ($1, $2, $3, $4, $5) RETURNING created_on`,
		event.ID, event.FamilyID, event.Name, event.Date, event.Type,
	).Scan(&createdOn)
	if err != nil {
		return fmt.Errorf("insert event: %w", translateErr(err))
	}
	event.CreatedOn = createdOn.Format(time.RFC3339)
	return nil
}

func (r *eventRepository) ListUpcoming(ctx context.Context, familyID, from string) ([]domain.Event, error) {
	return r.list(ctx,
		`SELECT id, family_id, event_name, event_date, event_type, created_on
		 FROM events
		 WHERE family_id = $1 AND event_date >= $2
		 ORDER BY event_date ASC`, familyID, from)
}

func (r *eventRepository) ListOnDate(ctx context.Context, date string) ([]domain.Event, error) {
	return r.list(ctx,
		`SELECT id, family_id, event_name, event_date, event_type, created_on
		 FROM events
		 WHERE event_date = $1
		 ORDER BY family_id`, date)
}

func (r *eventRepository) list(ctx context.Context, query string, args ...any) ([]domain.Event, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", translateErr(err))
	}
	defer rows.Close()

	var events []domain.Event
	for rows.Next() {
		var ev domain.Event
		var date, createdOn time.Time
		if err := rows.Scan(&ev.ID, &ev.FamilyID, &ev.Name, &date, &ev.Type, &createdOn); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		ev.Date = date.Format(domain.EventDateLayout)
		ev.CreatedOn = createdOn.Format(time.RFC3339)
		events = append(events, ev)
	}
	return events, rows.Err()
}

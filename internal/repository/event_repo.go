package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"platformone/internal/model"
	"platformone/pkg/tier"
)

type EventRepository struct {
	db *pgxpool.Pool
}

func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// FindByID returns an event by id, pgx.ErrNoRows when absent.
func (r *EventRepository) FindByID(ctx context.Context, id int) (*model.Event, error) {
	query := `
        SELECT id, name, start_time, end_time, location, min_tier, created_at
        FROM events
        WHERE id = $1
    `
	var e model.Event
	var minTier *string
	err := r.db.QueryRow(ctx, query, id).Scan(
		&e.ID,
		&e.Name,
		&e.StartTime,
		&e.EndTime,
		&e.Location,
		&minTier,
		&e.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if minTier != nil {
		e.MinTier = tier.Tier(*minTier)
	}
	return &e, nil
}

// List returns all events ordered by start time, for the calendar feed.
func (r *EventRepository) List(ctx context.Context) ([]model.Event, error) {
	query := `
        SELECT id, name, start_time, end_time, location, min_tier, created_at
        FROM events
        ORDER BY start_time ASC
    `
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []model.Event{}
	for rows.Next() {
		var e model.Event
		var minTier *string
		if err := rows.Scan(
			&e.ID,
			&e.Name,
			&e.StartTime,
			&e.EndTime,
			&e.Location,
			&minTier,
			&e.CreatedAt,
		); err != nil {
			return nil, err
		}
		if minTier != nil {
			e.MinTier = tier.Tier(*minTier)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

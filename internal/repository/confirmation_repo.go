package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"platformone/internal/model"
)

type ConfirmationRepository struct {
	db *pgxpool.Pool
}

func NewConfirmationRepository(db *pgxpool.Pool) *ConfirmationRepository {
	return &ConfirmationRepository{db: db}
}

// Create inserts a fresh PENDING confirmation for a booking. The unique
// constraint on token is the database-side guard on the lookup key.
func (r *ConfirmationRepository) Create(ctx context.Context, c *model.ReminderConfirmation) error {
	query := `
        INSERT INTO reminder_confirmations (token, booking_id, status, sent_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id
    `
	return r.db.QueryRow(ctx, query, c.Token, c.BookingID, c.Status, c.SentAt).Scan(&c.ID)
}

// FindDetailByToken returns a confirmation joined with its booking's event
// and user, pgx.ErrNoRows when the token is unknown.
func (r *ConfirmationRepository) FindDetailByToken(ctx context.Context, token string) (*model.ConfirmationDetail, error) {
	query := `
        SELECT c.id, c.token, c.booking_id, c.status, c.sent_at, c.responded_at,
               e.id, e.name, e.start_time, e.end_time, e.location,
               u.name, u.email
        FROM reminder_confirmations c
        JOIN bookings b ON c.booking_id = b.id
        JOIN events e ON b.event_id = e.id
        JOIN users u ON b.user_id = u.id
        WHERE c.token = $1
    `
	var d model.ConfirmationDetail
	err := r.db.QueryRow(ctx, query, token).Scan(
		&d.ID,
		&d.Token,
		&d.BookingID,
		&d.Status,
		&d.SentAt,
		&d.RespondedAt,
		&d.EventID,
		&d.EventName,
		&d.EventStart,
		&d.EventEnd,
		&d.EventLocation,
		&d.UserName,
		&d.UserEmail,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// UpdateStatusByToken sets status and responded_at on the record addressed
// by token and returns the updated row.
func (r *ConfirmationRepository) UpdateStatusByToken(ctx context.Context, token, status string, respondedAt time.Time) (*model.ReminderConfirmation, error) {
	query := `
        UPDATE reminder_confirmations
        SET status = $1, responded_at = $2
        WHERE token = $3
        RETURNING id, token, booking_id, status, sent_at, responded_at
    `
	var c model.ReminderConfirmation
	err := r.db.QueryRow(ctx, query, status, respondedAt, token).Scan(
		&c.ID,
		&c.Token,
		&c.BookingID,
		&c.Status,
		&c.SentAt,
		&c.RespondedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// LatestByEvent returns, per booking of the event, the most recently sent
// confirmation record. Bookings that were never sent a link are absent
// from the map.
func (r *ConfirmationRepository) LatestByEvent(ctx context.Context, eventID int) (map[int]model.ReminderConfirmation, error) {
	query := `
        SELECT DISTINCT ON (c.booking_id)
               c.id, c.token, c.booking_id, c.status, c.sent_at, c.responded_at
        FROM reminder_confirmations c
        JOIN bookings b ON c.booking_id = b.id
        WHERE b.event_id = $1
        ORDER BY c.booking_id, c.sent_at DESC, c.id DESC
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	latest := map[int]model.ReminderConfirmation{}
	for rows.Next() {
		var c model.ReminderConfirmation
		if err := rows.Scan(
			&c.ID,
			&c.Token,
			&c.BookingID,
			&c.Status,
			&c.SentAt,
			&c.RespondedAt,
		); err != nil {
			return nil, err
		}
		latest[c.BookingID] = c
	}

	return latest, rows.Err()
}

package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"platformone/internal/model"
)

type BookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) *BookingRepository {
	return &BookingRepository{db: db}
}

// ListByEventWithUser returns an event's bookings joined with user display
// fields, in insertion order. Insertion order keeps email dedup stable.
func (r *BookingRepository) ListByEventWithUser(ctx context.Context, eventID int) ([]model.BookingWithUser, error) {
	query := `
        SELECT b.id, b.event_id, b.user_id, b.role_at_booking, b.created_at,
               u.name, u.email
        FROM bookings b
        JOIN users u ON b.user_id = u.id
        WHERE b.event_id = $1
        ORDER BY b.id ASC
    `
	rows, err := r.db.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := []model.BookingWithUser{}
	for rows.Next() {
		var b model.BookingWithUser
		if err := rows.Scan(
			&b.ID,
			&b.EventID,
			&b.UserID,
			&b.RoleAtBooking,
			&b.CreatedAt,
			&b.UserName,
			&b.UserEmail,
		); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

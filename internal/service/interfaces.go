package service

import (
	"context"
	"time"

	"platformone/internal/model"
)

// Repository interfaces are declared on the consumer side so the services
// can be tested against in-memory fakes. The pgx implementations live in
// internal/repository.

type EventRepository interface {
	FindByID(ctx context.Context, id int) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
}

type BookingRepository interface {
	ListByEventWithUser(ctx context.Context, eventID int) ([]model.BookingWithUser, error)
}

type ConfirmationRepository interface {
	Create(ctx context.Context, c *model.ReminderConfirmation) error
	FindDetailByToken(ctx context.Context, token string) (*model.ConfirmationDetail, error)
	UpdateStatusByToken(ctx context.Context, token, status string, respondedAt time.Time) (*model.ReminderConfirmation, error)
	LatestByEvent(ctx context.Context, eventID int) (map[int]model.ReminderConfirmation, error)
}

type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindByID(ctx context.Context, id int) (*model.User, error)
}

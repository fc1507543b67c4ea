package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"platformone/internal/mailer"
	"platformone/internal/model"
)

// Handwritten fakes backing the service tests. Absence is reported as
// pgx.ErrNoRows, matching the real repositories.

type fakeEventRepo struct {
	events map[int]*model.Event
	err    error
}

func (f *fakeEventRepo) FindByID(ctx context.Context, id int) (*model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.events[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return e, nil
}

func (f *fakeEventRepo) List(ctx context.Context) ([]model.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	events := []model.Event{}
	for _, e := range f.events {
		events = append(events, *e)
	}
	return events, nil
}

type fakeBookingRepo struct {
	bookings []model.BookingWithUser
	err      error
}

func (f *fakeBookingRepo) ListByEventWithUser(ctx context.Context, eventID int) ([]model.BookingWithUser, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := []model.BookingWithUser{}
	for _, b := range f.bookings {
		if b.EventID == eventID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeConfirmationRepo struct {
	created   []*model.ReminderConfirmation
	createErr error
	details   map[string]*model.ConfirmationDetail
	latest    map[int]model.ReminderConfirmation
}

func (f *fakeConfirmationRepo) Create(ctx context.Context, c *model.ReminderConfirmation) error {
	if f.createErr != nil {
		return f.createErr
	}
	c.ID = len(f.created) + 1
	f.created = append(f.created, c)
	return nil
}

func (f *fakeConfirmationRepo) FindDetailByToken(ctx context.Context, token string) (*model.ConfirmationDetail, error) {
	d, ok := f.details[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return d, nil
}

func (f *fakeConfirmationRepo) UpdateStatusByToken(ctx context.Context, token, status string, respondedAt time.Time) (*model.ReminderConfirmation, error) {
	d, ok := f.details[token]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	d.Status = status
	d.RespondedAt = &respondedAt
	updated := d.ReminderConfirmation
	return &updated, nil
}

func (f *fakeConfirmationRepo) LatestByEvent(ctx context.Context, eventID int) (map[int]model.ReminderConfirmation, error) {
	if f.latest == nil {
		return map[int]model.ReminderConfirmation{}, nil
	}
	return f.latest, nil
}

type fakeUserRepo struct {
	users map[string]*model.User
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	u, ok := f.users[email]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return u, nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id int) (*model.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, pgx.ErrNoRows
}

type fakeSender struct {
	mu      sync.Mutex
	sent    []mailer.Message
	failFor map[string]bool
}

func (f *fakeSender) Send(ctx context.Context, msg mailer.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failFor[msg.To] {
		return errors.New("upstream rejected message")
	}
	f.sent = append(f.sent, msg)
	return nil
}

func (f *fakeSender) sentTo() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	emails := make([]string, len(f.sent))
	for i, m := range f.sent {
		emails[i] = m.To
	}
	return emails
}

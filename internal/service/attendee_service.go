package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"platformone/internal/model"
)

// Attendee is one booking row in the staff console, carrying the status of
// the booking's most recently sent confirmation, if any.
type Attendee struct {
	ID                 int        `json:"id"`
	BookingID          int        `json:"bookingId"`
	Name               string     `json:"name"`
	Email              string     `json:"email"`
	Role               string     `json:"role"`
	ConfirmationStatus *string    `json:"confirmationStatus"`
	LastReminderSent   *time.Time `json:"lastReminderSent"`
}

type ConfirmationStats struct {
	Confirmed int `json:"confirmed"`
	Declined  int `json:"declined"`
	Pending   int `json:"pending"`
	NotSent   int `json:"notSent"`
}

type AttendeeView struct {
	Event          *model.Event
	Participants   []Attendee
	Volunteers     []Attendee
	TotalAttendees int
	Stats          ConfirmationStats
}

type AttendeeService struct {
	eventRepo        EventRepository
	bookingRepo      BookingRepository
	confirmationRepo ConfirmationRepository
}

func NewAttendeeService(eventRepo EventRepository, bookingRepo BookingRepository, confirmationRepo ConfirmationRepository) *AttendeeService {
	return &AttendeeService{
		eventRepo:        eventRepo,
		bookingRepo:      bookingRepo,
		confirmationRepo: confirmationRepo,
	}
}

// GetAttendeeView joins an event's bookings with the latest confirmation
// per booking and computes the summary counts. Read-only.
func (s *AttendeeService) GetAttendeeView(ctx context.Context, eventID int) (*AttendeeView, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEventWithUser(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	latest, err := s.confirmationRepo.LatestByEvent(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("latest confirmations: %w", err)
	}

	view := &AttendeeView{
		Event:        event,
		Participants: []Attendee{},
		Volunteers:   []Attendee{},
	}

	for _, b := range bookings {
		a := Attendee{
			ID:        b.UserID,
			BookingID: b.ID,
			Name:      b.UserName,
			Email:     b.UserEmail,
			Role:      b.RoleAtBooking,
		}
		if c, ok := latest[b.ID]; ok {
			status := c.Status
			sentAt := c.SentAt
			a.ConfirmationStatus = &status
			a.LastReminderSent = &sentAt
		}

		switch a.Role {
		case model.RoleParticipant:
			view.Participants = append(view.Participants, a)
		case model.RoleVolunteer:
			view.Volunteers = append(view.Volunteers, a)
		default:
			continue
		}

		switch {
		case a.ConfirmationStatus == nil:
			view.Stats.NotSent++
		case *a.ConfirmationStatus == model.ConfirmationConfirmed:
			view.Stats.Confirmed++
		case *a.ConfirmationStatus == model.ConfirmationDeclined:
			view.Stats.Declined++
		case *a.ConfirmationStatus == model.ConfirmationPending:
			view.Stats.Pending++
		}
	}

	view.TotalAttendees = len(view.Participants) + len(view.Volunteers)
	return view, nil
}

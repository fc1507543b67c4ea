package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"platformone/internal/mailer"
	"platformone/internal/model"
	"platformone/pkg/metrics"
)

const (
	RecipientsAll          = "all"
	RecipientsParticipants = "participants"
	RecipientsVolunteers   = "volunteers"
)

type SendRemindersRequest struct {
	EventID                 int
	Subject                 string
	Message                 string
	RecipientType           string
	IncludeConfirmationLink bool
}

// DispatchResult aggregates the outcome of one reminder send. Sends are
// independent per recipient; partial completion is a normal outcome.
type DispatchResult struct {
	Mock          bool
	Total         int
	Successful    int
	Failed        int
	Recipients    []string
	TokensCreated int
}

type ReminderService struct {
	eventRepo        EventRepository
	bookingRepo      BookingRepository
	confirmationRepo ConfirmationRepository
	sender           mailer.Sender // nil when no email credential is configured
	baseURL          string
	concurrency      int
	logger           *zap.Logger
}

func NewReminderService(
	eventRepo EventRepository,
	bookingRepo BookingRepository,
	confirmationRepo ConfirmationRepository,
	sender mailer.Sender,
	baseURL string,
	concurrency int,
	logger *zap.Logger,
) *ReminderService {
	if concurrency <= 0 {
		concurrency = 8
	}
	return &ReminderService{
		eventRepo:        eventRepo,
		bookingRepo:      bookingRepo,
		confirmationRepo: confirmationRepo,
		sender:           sender,
		baseURL:          baseURL,
		concurrency:      concurrency,
		logger:           logger,
	}
}

type preparedRecipient struct {
	email     string
	name      string
	bookingID int
	token     string
}

// SendReminders resolves the event's recipients, mints confirmation tokens
// when requested and fans the rendered emails out with bounded concurrency.
// One recipient's failure never blocks or fails the others.
func (s *ReminderService) SendReminders(ctx context.Context, req SendRemindersRequest) (*DispatchResult, error) {
	event, err := s.eventRepo.FindByID(ctx, req.EventID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("find event: %w", err)
	}

	bookings, err := s.bookingRepo.ListByEventWithUser(ctx, req.EventID)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	recipients := bookings
	switch req.RecipientType {
	case RecipientsParticipants:
		recipients = filterByRole(bookings, model.RoleParticipant)
	case RecipientsVolunteers:
		recipients = filterByRole(bookings, model.RoleVolunteer)
	}

	if len(recipients) == 0 {
		return nil, ErrNoRecipients
	}

	// Dedup by email, first booking in iteration order wins.
	seen := map[string]bool{}
	unique := []model.BookingWithUser{}
	for _, r := range recipients {
		if seen[r.UserEmail] {
			continue
		}
		seen[r.UserEmail] = true
		unique = append(unique, r)
	}

	// Token creation is sequential: each rendered email needs its token.
	prepared := make([]preparedRecipient, 0, len(unique))
	tokensCreated := 0
	for _, r := range unique {
		p := preparedRecipient{
			email:     r.UserEmail,
			name:      r.UserName,
			bookingID: r.ID,
		}
		if req.IncludeConfirmationLink {
			confirmation := &model.ReminderConfirmation{
				Token:     uuid.NewString(),
				BookingID: r.ID,
				Status:    model.ConfirmationPending,
				SentAt:    time.Now(),
			}
			if err := s.confirmationRepo.Create(ctx, confirmation); err != nil {
				return nil, fmt.Errorf("create confirmation: %w", err)
			}
			metrics.ConfirmationTokensCreated.Inc()
			p.token = confirmation.Token
			tokensCreated++
		}
		prepared = append(prepared, p)
	}

	emails := make([]string, len(prepared))
	for i, p := range prepared {
		emails[i] = p.email
	}

	// Degraded mode: no email credential configured. Tokens above were
	// still created so the confirmation flow stays exercisable.
	if s.sender == nil {
		s.logger.Info("Email credential not configured, mock sending",
			zap.Int("event_id", event.ID),
			zap.Strings("recipients", emails),
		)
		for range prepared {
			metrics.ReminderEmailsTotal.WithLabelValues("mocked").Inc()
		}
		return &DispatchResult{
			Mock:          true,
			Total:         len(prepared),
			Recipients:    emails,
			TokensCreated: tokensCreated,
		}, nil
	}

	eventDate := event.StartTime.Format("Monday, January 2, 2006 at 3:04 PM")

	var successful, failed atomic.Int64
	g := &errgroup.Group{}
	g.SetLimit(s.concurrency)

	for _, p := range prepared {
		p := p
		g.Go(func() error {
			confirmURL := ""
			if p.token != "" {
				confirmURL = fmt.Sprintf("%s/confirm/%s", s.baseURL, p.token)
			}

			html, err := mailer.RenderReminderHTML(mailer.ReminderEmail{
				RecipientName: p.name,
				EventName:     event.Name,
				EventDate:     eventDate,
				Location:      event.Location,
				Message:       req.Message,
				ConfirmURL:    confirmURL,
			})
			if err != nil {
				s.logger.Error("Failed to render reminder email",
					zap.String("to", p.email),
					zap.Error(err),
				)
				failed.Add(1)
				metrics.ReminderEmailsTotal.WithLabelValues("failed").Inc()
				return nil
			}

			start := time.Now()
			err = s.sender.Send(ctx, mailer.Message{
				To:      p.email,
				Subject: req.Subject,
				HTML:    html,
			})
			if err != nil {
				failed.Add(1)
				metrics.RecordEmailSend("failed", time.Since(start))
				return nil
			}
			successful.Add(1)
			metrics.RecordEmailSend("sent", time.Since(start))
			return nil
		})
	}
	// Goroutines swallow their own errors into the tally, so Wait cannot
	// fail here.
	_ = g.Wait()

	s.logger.Info("Reminder dispatch finished",
		zap.Int("event_id", event.ID),
		zap.Int64("successful", successful.Load()),
		zap.Int64("failed", failed.Load()),
		zap.Int("tokens_created", tokensCreated),
	)

	return &DispatchResult{
		Total:         len(prepared),
		Successful:    int(successful.Load()),
		Failed:        int(failed.Load()),
		Recipients:    emails,
		TokensCreated: tokensCreated,
	}, nil
}

func filterByRole(bookings []model.BookingWithUser, role string) []model.BookingWithUser {
	filtered := []model.BookingWithUser{}
	for _, b := range bookings {
		if b.RoleAtBooking == role {
			filtered = append(filtered, b)
		}
	}
	return filtered
}

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"platformone/internal/model"
	"platformone/pkg/metrics"
)

const (
	ActionConfirm = "confirm"
	ActionDecline = "decline"
)

// RespondResult is what the RSVP page shows after answering.
type RespondResult struct {
	Status    string
	EventName string
}

type ConfirmationService struct {
	confirmationRepo ConfirmationRepository
	allowReresponse  bool
	logger           *zap.Logger
}

func NewConfirmationService(confirmationRepo ConfirmationRepository, allowReresponse bool, logger *zap.Logger) *ConfirmationService {
	return &ConfirmationService{
		confirmationRepo: confirmationRepo,
		allowReresponse:  allowReresponse,
		logger:           logger,
	}
}

// Get resolves a confirmation token to its record plus the denormalized
// event and user display fields. Token possession is the entire trust
// boundary: the link is only ever emailed to the recipient.
func (s *ConfirmationService) Get(ctx context.Context, token string) (*model.ConfirmationDetail, error) {
	detail, err := s.confirmationRepo.FindDetailByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("find confirmation: %w", err)
	}
	return detail, nil
}

// Respond records a confirm or decline for the token. By default this is
// last-write-wins: a second response overwrites the first. With
// allowReresponse disabled, terminal records reject further responses.
func (s *ConfirmationService) Respond(ctx context.Context, token, action string) (*RespondResult, error) {
	if action != ActionConfirm && action != ActionDecline {
		return nil, ErrInvalidAction
	}

	detail, err := s.confirmationRepo.FindDetailByToken(ctx, token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrConfirmationNotFound
		}
		return nil, fmt.Errorf("find confirmation: %w", err)
	}

	if !s.allowReresponse && detail.Status != model.ConfirmationPending {
		return nil, ErrAlreadyResponded
	}

	newStatus := model.ConfirmationConfirmed
	if action == ActionDecline {
		newStatus = model.ConfirmationDeclined
	}

	updated, err := s.confirmationRepo.UpdateStatusByToken(ctx, token, newStatus, time.Now())
	if err != nil {
		return nil, fmt.Errorf("update confirmation: %w", err)
	}

	metrics.ConfirmationResponsesTotal.WithLabelValues(action).Inc()
	s.logger.Info("Confirmation response recorded",
		zap.Int("booking_id", detail.BookingID),
		zap.String("status", updated.Status),
	)

	return &RespondResult{
		Status:    updated.Status,
		EventName: detail.EventName,
	}, nil
}

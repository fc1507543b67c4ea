package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"

	"platformone/internal/model"
)

func pendingDetail(token string) *model.ConfirmationDetail {
	return &model.ConfirmationDetail{
		ReminderConfirmation: model.ReminderConfirmation{
			ID:        1,
			Token:     token,
			BookingID: 10,
			Status:    model.ConfirmationPending,
			SentAt:    time.Now().Add(-time.Hour),
		},
		EventID:       1,
		EventName:     "Community Park Cleanup",
		EventLocation: "Riverside Park",
		UserName:      "Ada",
		UserEmail:     "ada@example.com",
	}
}

func TestConfirmationGet(t *testing.T) {
	repo := &fakeConfirmationRepo{details: map[string]*model.ConfirmationDetail{
		"tok-1": pendingDetail("tok-1"),
	}}
	svc := NewConfirmationService(repo, true, zap.NewNop())

	detail, err := svc.Get(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if detail.EventName != "Community Park Cleanup" || detail.UserName != "Ada" {
		t.Errorf("unexpected joined fields: %+v", detail)
	}

	if _, err := svc.Get(context.Background(), "unknown"); !errors.Is(err, ErrConfirmationNotFound) {
		t.Errorf("expected ErrConfirmationNotFound for unknown token, got %v", err)
	}
}

func TestConfirmationRespond(t *testing.T) {
	tests := []struct {
		name            string
		action          string
		startStatus     string
		allowReresponse bool
		wantErr         error
		wantStatus      string
	}{
		{name: "confirm pending", action: ActionConfirm, startStatus: model.ConfirmationPending, allowReresponse: true, wantStatus: model.ConfirmationConfirmed},
		{name: "decline pending", action: ActionDecline, startStatus: model.ConfirmationPending, allowReresponse: true, wantStatus: model.ConfirmationDeclined},
		{name: "invalid action", action: "maybe", startStatus: model.ConfirmationPending, allowReresponse: true, wantErr: ErrInvalidAction},
		{name: "empty action", action: "", startStatus: model.ConfirmationPending, allowReresponse: true, wantErr: ErrInvalidAction},
		{name: "re-respond allowed overwrites", action: ActionDecline, startStatus: model.ConfirmationConfirmed, allowReresponse: true, wantStatus: model.ConfirmationDeclined},
		{name: "re-respond rejected when terminal", action: ActionConfirm, startStatus: model.ConfirmationDeclined, allowReresponse: false, wantErr: ErrAlreadyResponded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			detail := pendingDetail("tok-1")
			detail.Status = tt.startStatus
			repo := &fakeConfirmationRepo{details: map[string]*model.ConfirmationDetail{"tok-1": detail}}
			svc := NewConfirmationService(repo, tt.allowReresponse, zap.NewNop())

			result, err := svc.Respond(context.Background(), "tok-1", tt.action)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Respond() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Respond() error = %v", err)
			}

			if result.Status != tt.wantStatus {
				t.Errorf("status = %s, want %s", result.Status, tt.wantStatus)
			}
			if result.EventName != "Community Park Cleanup" {
				t.Errorf("eventName = %s", result.EventName)
			}
			if detail.RespondedAt == nil {
				t.Error("respondedAt was not set")
			}
		})
	}
}

func TestConfirmationRespond_UnknownToken(t *testing.T) {
	svc := NewConfirmationService(&fakeConfirmationRepo{details: map[string]*model.ConfirmationDetail{}}, true, zap.NewNop())

	if _, err := svc.Respond(context.Background(), "unknown", ActionConfirm); !errors.Is(err, ErrConfirmationNotFound) {
		t.Errorf("expected ErrConfirmationNotFound, got %v", err)
	}
}

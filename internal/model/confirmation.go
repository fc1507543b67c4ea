package model

import "time"

const (
	ConfirmationPending   = "PENDING"
	ConfirmationConfirmed = "CONFIRMED"
	ConfirmationDeclined  = "DECLINED"
)

// ReminderConfirmation is a token-addressable RSVP ticket tied to one
// booking. A booking accumulates one record per reminder send that asked
// for a confirmation link; the most recently sent record is the current one.
type ReminderConfirmation struct {
	ID          int
	Token       string
	BookingID   int
	Status      string
	SentAt      time.Time
	RespondedAt *time.Time // nil while the record is PENDING
}

// ConfirmationDetail is a confirmation joined with the booking's event and
// user display fields, as shown on the RSVP page.
type ConfirmationDetail struct {
	ReminderConfirmation
	EventID       int
	EventName     string
	EventStart    time.Time
	EventEnd      time.Time
	EventLocation string
	UserName      string
	UserEmail     string
}

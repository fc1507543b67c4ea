package service

import "errors"

var (
	ErrEventNotFound        = errors.New("event not found")
	ErrConfirmationNotFound = errors.New("invalid or expired confirmation link")
	ErrNoRecipients         = errors.New("no recipients found for the selected criteria")
	ErrInvalidAction        = errors.New("invalid action: must be 'confirm' or 'decline'")
	ErrAlreadyResponded     = errors.New("this confirmation has already been answered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
)

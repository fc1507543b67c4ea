package model

import "time"

const (
	RoleParticipant = "PARTICIPANT"
	RoleVolunteer   = "VOLUNTEER"
)

// Booking ties a user to an event with the role they booked under.
// Read-only here; bookings are created by the booking flow.
type Booking struct {
	ID            int
	EventID       int
	UserID        int
	RoleAtBooking string
	CreatedAt     time.Time
}

// BookingWithUser is a booking joined with its user's display fields,
// as needed for addressing reminder emails.
type BookingWithUser struct {
	Booking
	UserName  string
	UserEmail string
}

package model

import (
	"time"

	"platformone/pkg/tier"
)

// Event is owned by the event-management side; this service only reads it.
type Event struct {
	ID        int
	Name      string
	StartTime time.Time
	EndTime   time.Time
	Location  string
	MinTier   tier.Tier
	CreatedAt time.Time
}

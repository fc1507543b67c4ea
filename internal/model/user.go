package model

import (
	"time"

	"platformone/pkg/tier"
)

const (
	RoleStaff  = "STAFF"
	RoleMember = "MEMBER"
)

type User struct {
	ID           int
	Name         string
	Email        string
	PasswordHash string
	Role         string
	LoyaltyTier  tier.Tier // empty when the user has no tier yet
	CreatedAt    time.Time
}

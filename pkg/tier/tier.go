// Package tier implements loyalty-tier eligibility checks for event booking.
package tier

import "strings"

type Tier string

const (
	Bronze   Tier = "BRONZE"
	Silver   Tier = "SILVER"
	Gold     Tier = "GOLD"
	Platinum Tier = "PLATINUM"
)

// Tier hierarchy: BRONZE (lowest) -> SILVER -> GOLD -> PLATINUM (highest).
var tierOrder = map[Tier]int{
	Bronze:   1,
	Silver:   2,
	Gold:     3,
	Platinum: 4,
}

// CanBook reports whether a user's tier meets or exceeds the minimum tier
// required by an event. A user without a tier can only book BRONZE events.
func CanBook(userTier Tier, minTier Tier) bool {
	if userTier == "" {
		return minTier == Bronze
	}
	return tierOrder[userTier] >= tierOrder[minTier]
}

// Level returns the tier level (1-4) for comparison, 0 for unknown tiers.
func Level(t Tier) int {
	return tierOrder[t]
}

// DisplayName returns the tier name with proper casing, e.g. "Gold".
func DisplayName(t Tier) string {
	s := string(t)
	if s == "" {
		return ""
	}
	return s[:1] + strings.ToLower(s[1:])
}

// Accessible returns all tiers a user can access given their own tier.
func Accessible(userTier Tier) []Tier {
	if userTier == "" {
		return []Tier{Bronze}
	}
	level := tierOrder[userTier]
	tiers := []Tier{}
	for _, t := range []Tier{Bronze, Silver, Gold, Platinum} {
		if tierOrder[t] <= level {
			tiers = append(tiers, t)
		}
	}
	return tiers
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"platformone/internal/service"
	"platformone/internal/util"
	"platformone/pkg/category"
	"platformone/pkg/tier"
)

// EventHandler serves the calendar feed. The list is public; when a bearer
// token is presented the response additionally says which events the
// caller's loyalty tier lets them book.
type EventHandler struct {
	eventRepo service.EventRepository
	userRepo  service.UserRepository
	jwtSecret string
}

func NewEventHandler(eventRepo service.EventRepository, userRepo service.UserRepository, jwtSecret string) *EventHandler {
	return &EventHandler{
		eventRepo: eventRepo,
		userRepo:  userRepo,
		jwtSecret: jwtSecret,
	}
}

// ListEvents handles GET /events
func (h *EventHandler) ListEvents(c *gin.Context) {
	events, err := h.eventRepo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch events"})
		return
	}

	var userTier tier.Tier
	authenticated := false
	if tokenStr := util.ExtractToken(c.Request); tokenStr != "" {
		if userID, _, err := util.ParseJWT(tokenStr, h.jwtSecret); err == nil {
			if u, err := h.userRepo.FindByID(c.Request.Context(), userID); err == nil {
				userTier = u.LoyaltyTier
				authenticated = true
			}
		}
	}

	out := make([]gin.H, 0, len(events))
	for _, e := range events {
		cat := category.FromName(e.Name)
		item := gin.H{
			"id":       e.ID,
			"name":     e.Name,
			"start":    e.StartTime,
			"end":      e.EndTime,
			"location": e.Location,
			"minTier":  e.MinTier,
			"category": cat,
			"colors":   category.ColorsFor(cat),
		}
		if authenticated {
			item["canBook"] = tier.CanBook(userTier, e.MinTier)
		}
		out = append(out, item)
	}

	c.JSON(http.StatusOK, gin.H{"events": out})
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"platformone/internal/service"
)

type ReminderHandler struct {
	reminderService *service.ReminderService
	attendeeService *service.AttendeeService
}

func NewReminderHandler(reminderService *service.ReminderService, attendeeService *service.AttendeeService) *ReminderHandler {
	return &ReminderHandler{
		reminderService: reminderService,
		attendeeService: attendeeService,
	}
}

// SendReminders handles POST /reminders
func (h *ReminderHandler) SendReminders(c *gin.Context) {
	var req struct {
		EventID                 int    `json:"eventId"`
		Subject                 string `json:"subject"`
		Message                 string `json:"message"`
		RecipientType           string `json:"recipientType"`
		IncludeConfirmationLink bool   `json:"includeConfirmationLink"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.EventID == 0 || req.Subject == "" || req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Missing required fields: eventId, subject, and message are required",
		})
		return
	}

	result, err := h.reminderService.SendReminders(c.Request.Context(), service.SendRemindersRequest{
		EventID:                 req.EventID,
		Subject:                 req.Subject,
		Message:                 req.Message,
		RecipientType:           req.RecipientType,
		IncludeConfirmationLink: req.IncludeConfirmationLink,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEventNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, service.ErrNoRecipients):
			c.JSON(http.StatusBadRequest, gin.H{"error": "No recipients found for the selected criteria"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send reminders"})
		}
		return
	}

	if result.Mock {
		c.JSON(http.StatusOK, gin.H{
			"success":                   true,
			"message":                   fmt.Sprintf("Email would be sent to %d recipient(s) (API key not configured)", result.Total),
			"recipients":                result.Recipients,
			"confirmationTokensCreated": result.TokensCreated,
			"mock":                      true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Emails sent successfully",
		"stats": gin.H{
			"total":      result.Total,
			"successful": result.Successful,
			"failed":     result.Failed,
		},
		"recipients":                result.Recipients,
		"confirmationTokensCreated": result.TokensCreated,
	})
}

// GetAttendees handles GET /reminders?eventId=
func (h *ReminderHandler) GetAttendees(c *gin.Context) {
	eventIDStr := c.Query("eventId")
	if eventIDStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing eventId parameter"})
		return
	}

	eventID, err := strconv.Atoi(eventIDStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid eventId parameter"})
		return
	}

	view, err := h.attendeeService.GetAttendeeView(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendees"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"event": gin.H{
			"id":       view.Event.ID,
			"name":     view.Event.Name,
			"start":    view.Event.StartTime,
			"end":      view.Event.EndTime,
			"location": view.Event.Location,
		},
		"participants":      view.Participants,
		"volunteers":        view.Volunteers,
		"totalAttendees":    view.TotalAttendees,
		"confirmationStats": view.Stats,
	})
}

package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"platformone/internal/service"
)

type ConfirmationHandler struct {
	confirmationService *service.ConfirmationService
}

func NewConfirmationHandler(confirmationService *service.ConfirmationService) *ConfirmationHandler {
	return &ConfirmationHandler{
		confirmationService: confirmationService,
	}
}

// GetConfirmation handles GET /confirm/:token
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	token := c.Param("token")

	detail, err := h.confirmationService.Get(c.Request.Context(), token)
	if err != nil {
		if errors.Is(err, service.ErrConfirmationNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired confirmation link"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch confirmation details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":          detail.ID,
		"token":       detail.Token,
		"status":      detail.Status,
		"sentAt":      detail.SentAt,
		"respondedAt": detail.RespondedAt,
		"event": gin.H{
			"id":       detail.EventID,
			"name":     detail.EventName,
			"start":    detail.EventStart,
			"end":      detail.EventEnd,
			"location": detail.EventLocation,
		},
		"user": gin.H{
			"name":  detail.UserName,
			"email": detail.UserEmail,
		},
	})
}

// Respond handles POST /confirm/:token
func (h *ConfirmationHandler) Respond(c *gin.Context) {
	token := c.Param("token")

	var req struct {
		Action string `json:"action"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be 'confirm' or 'decline'"})
		return
	}

	result, err := h.confirmationService.Respond(c.Request.Context(), token, req.Action)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidAction):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid action. Must be 'confirm' or 'decline'"})
		case errors.Is(err, service.ErrConfirmationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Invalid or expired confirmation link"})
		case errors.Is(err, service.ErrAlreadyResponded):
			c.JSON(http.StatusConflict, gin.H{"error": "This confirmation has already been answered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update confirmation"})
		}
		return
	}

	message := "Your response has been recorded."
	if req.Action == service.ActionConfirm {
		message = "Your attendance has been confirmed!"
	}

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   message,
		"status":    result.Status,
		"eventName": result.EventName,
	})
}

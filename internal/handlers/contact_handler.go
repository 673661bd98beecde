package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "spendwise/internal/errors"
)

// ContactSender relays a contact-form submission over email.
type ContactSender interface {
	SendContact(name, email, subject, message string) error
}

// ContactHandler handles contact-form submissions for the relay service.
type ContactHandler struct {
	sender ContactSender
}

// NewContactHandler creates a new ContactHandler
func NewContactHandler(sender ContactSender) *ContactHandler {
	return &ContactHandler{sender: sender}
}

// ContactRequest represents a contact-form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=200"`
	Email   string `json:"email" binding:"omitempty,email"`
	Subject string `json:"subject" binding:"required,max=200"`
	Message string `json:"message" binding:"required,max=5000"`
}

// Send relays a contact-form submission over email
// @Summary     Send contact form
// @Description Relay a contact-form submission to the configured recipient
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       request body ContactRequest true "Contact form data"
// @Success     200 {object} map[string]string "Email sent"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     500 {object} ErrorResponse "Relay failure"
// @Router      /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	if err := h.sender.SendContact(req.Name, req.Email, req.Subject, req.Message); err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrMailDelivery, err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Email sent successfully",
	})
}

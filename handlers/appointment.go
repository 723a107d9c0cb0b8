package handlers

import (
	"fmt"
	"net/http"

	appointmentsRepo "apptly/database/repository/appointments"
	"apptly/models"
	"apptly/services/notification"
	"apptly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler serves the direct booking endpoint, which bypasses the
// conversational flow: the payload is already schema-validated and nothing
// is written to the session store or the vector index.
type AppointmentHandler struct {
	mailer     notification.Mailer
	repo       appointmentsRepo.AppointmentRepository
	adminEmail string
	logger     *zap.Logger
}

func NewAppointmentHandler(mailer notification.Mailer, repo appointmentsRepo.AppointmentRepository, adminEmail string, logger *zap.Logger) *AppointmentHandler {
	return &AppointmentHandler{
		mailer:     mailer,
		repo:       repo,
		adminEmail: adminEmail,
		logger:     logger,
	}
}

// BookAppointment sends both notifications synchronously and requires both
// to succeed. This is stricter than the chat-flow finalizer on purpose: the
// direct caller gets a hard error instead of a best-effort confirmation.
func (h *AppointmentHandler) BookAppointment(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid appointment request", err.Error())
		return
	}

	customerBody := fmt.Sprintf(
		"Hello %s,\n\n"+
			"Your appointment has been booked successfully.\n"+
			"📅 Date: %s\n⏰ Time: %s\n\n"+
			"We look forward to seeing you!\n\n"+
			"Best regards,\nAppointment Team",
		req.Name, req.Date, req.Time,
	)
	adminBody := fmt.Sprintf(
		"📢 New Appointment Confirmed\n\n"+
			"Name: %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s\nMessage: %s\n",
		req.Name, req.Email, req.Phone, req.Date, req.Time, req.Message,
	)

	customerErr := h.mailer.Send(req.Email, "Appointment Confirmation", customerBody)
	adminErr := h.mailer.Send(h.adminEmail, fmt.Sprintf("New Appointment with %s", req.Name), adminBody)

	if customerErr != nil || adminErr != nil {
		h.logger.Error("direct booking notification failed",
			zap.NamedError("customer", customerErr), zap.NamedError("admin", adminErr))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to send one or more emails.", "")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Appointment booked. Emails sent to customer and admin.",
	})
}

// ListAppointments returns all finalized appointment records, newest first.
// Admin only.
func (h *AppointmentHandler) ListAppointments(c *gin.Context) {
	records, err := h.repo.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to list appointments", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": records})
}

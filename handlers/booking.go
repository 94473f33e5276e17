package handlers

import (
	"errors"
	"net/http"

	"serviciohogar/middleware"
	"serviciohogar/models"
	"serviciohogar/services/booking"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking wizard over HTTP. Every mutation
// returns the full session view so the client can rerender in one call.
type BookingHandler struct {
	Service booking.BookingSessionService
}

func NewBookingHandler(service booking.BookingSessionService) *BookingHandler {
	return &BookingHandler{Service: service}
}

func bookingError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		utils.JSONError(c, http.StatusNotFound, "Booking session not found", "The session expired or was cancelled. Start a new one.")
	case errors.Is(err, booking.ErrInvalidTransition):
		utils.JSONError(c, http.StatusConflict, "Invalid wizard step", err.Error())
	case errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrUnknownQuestion),
		errors.Is(err, booking.ErrInvalidAnswer),
		errors.Is(err, booking.ErrInvalidSchedule):
		utils.JSONError(c, http.StatusBadRequest, "Invalid booking input", err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "Booking operation failed", err.Error())
	}
}

// StartSession creates a fresh wizard session.
func (h *BookingHandler) StartSession(c *gin.Context) {
	view, err := h.Service.Start(c.Request.Context())
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

// GetSession returns the current session view.
func (h *BookingHandler) GetSession(c *gin.Context) {
	view, err := h.Service.Get(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectService picks the service to book.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	view, err := h.Service.SelectService(c.Request.Context(), c.Param("sessionID"), input.ServiceID)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SubmitAnswer records one diagnostic answer.
func (h *BookingHandler) SubmitAnswer(c *gin.Context) {
	var input struct {
		QuestionID string        `json:"questionId" binding:"required"`
		Answer     models.Answer `json:"answer"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	view, err := h.Service.SubmitAnswer(c.Request.Context(), c.Param("sessionID"), input.QuestionID, input.Answer)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Advance moves the wizard one step forward.
func (h *BookingHandler) Advance(c *gin.Context) {
	view, err := h.Service.Advance(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Retreat moves the wizard one step back.
func (h *BookingHandler) Retreat(c *gin.Context) {
	view, err := h.Service.Retreat(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SelectSchedule picks the visit date and time slot.
func (h *BookingHandler) SelectSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date" binding:"required"`
		Slot string `json:"slot" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	view, err := h.Service.SelectSchedule(c.Request.Context(), c.Param("sessionID"), input.Date, input.Slot)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// SetContact stores the customer's contact details.
func (h *BookingHandler) SetContact(c *gin.Context) {
	var contact models.BookingContact
	if err := c.ShouldBindJSON(&contact); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	view, err := h.Service.SetContact(c.Request.Context(), c.Param("sessionID"), contact)
	if err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

// Confirm finalizes the booking and returns the WhatsApp handoff.
func (h *BookingHandler) Confirm(c *gin.Context) {
	view, err := h.Service.Confirm(c.Request.Context(), c.Param("sessionID"))
	if err != nil {
		bookingError(c, err)
		return
	}
	middleware.CountBookingConfirmed()
	c.JSON(http.StatusOK, view)
}

// Cancel discards the session.
func (h *BookingHandler) Cancel(c *gin.Context) {
	if err := h.Service.Cancel(c.Request.Context(), c.Param("sessionID")); err != nil {
		bookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "cancelled"})
}

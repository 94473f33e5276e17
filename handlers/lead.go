package handlers

import (
	"errors"
	"net/http"

	"serviciohogar/services/lead"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

// LeadHandler captures callback requests and contact-form submissions and
// serves the admin lead inbox.
type LeadHandler struct {
	Service lead.LeadService
}

func NewLeadHandler(service lead.LeadService) *LeadHandler {
	return &LeadHandler{Service: service}
}

// RequestCallback records a "we call you back" request.
func (h *LeadHandler) RequestCallback(c *gin.Context) {
	var input struct {
		Phone string `json:"phone" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Service.RequestCallback(c.Request.Context(), input.Phone)
	if err != nil {
		if errors.Is(err, lead.ErrInvalidPhone) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid phone number", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store callback request", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// SubmitContact records a contact-form submission.
func (h *LeadHandler) SubmitContact(c *gin.Context) {
	var form lead.ContactForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	created, err := h.Service.SubmitContact(c.Request.Context(), form)
	if err != nil {
		if errors.Is(err, lead.ErrInvalidPhone) {
			utils.JSONError(c, http.StatusBadRequest, "Invalid phone number", err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to store contact form", err.Error())
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListLeads returns every stored lead for the admin panel.
func (h *LeadHandler) ListLeads(c *gin.Context) {
	leads, err := h.Service.List(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Failed to load leads", err.Error())
		return
	}
	c.JSON(http.StatusOK, leads)
}

// MarkLeadDone flips a lead to done.
func (h *LeadHandler) MarkLeadDone(c *gin.Context) {
	if err := h.Service.MarkDone(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, lead.ErrLeadNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lead not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to update lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "done"})
}

// DeleteLead removes a lead.
func (h *LeadHandler) DeleteLead(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, lead.ErrLeadNotFound) {
			utils.JSONError(c, http.StatusNotFound, "Lead not found", c.Param("id"))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Failed to delete lead", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

package handlers

import (
	"errors"
	"net/http"

	"serviciohogar/services/admin"
	"serviciohogar/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler covers the admin session lifecycle.
type AdminHandler struct {
	Auth admin.AuthService
}

func NewAdminHandler(auth admin.AuthService) *AdminHandler {
	return &AdminHandler{Auth: auth}
}

// Login verifies credentials and issues a session token.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	resp, err := h.Auth.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "Invalid email or password", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "Login failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Logout revokes the current session token.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := c.GetString("adminToken")
	if token == "" {
		utils.JSONError(c, http.StatusUnauthorized, "No active session", "")
		return
	}
	if err := h.Auth.Logout(c.Request.Context(), token); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "Logout failed", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged out"})
}

// ChangePassword re-hashes and saves the admin credentials.
func (h *AdminHandler) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"currentPassword" binding:"required"`
		NewPassword     string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}
	if err := h.Auth.ChangePassword(c.Request.Context(), input.CurrentPassword, input.NewPassword); err != nil {
		switch {
		case errors.Is(err, admin.ErrInvalidCredentials):
			utils.JSONError(c, http.StatusUnauthorized, "Current password is wrong", "")
		case errors.Is(err, admin.ErrWeakPassword):
			utils.JSONError(c, http.StatusBadRequest, "Password too weak", err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, "Failed to change password", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "password changed"})
}

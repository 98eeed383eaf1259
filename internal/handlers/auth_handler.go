package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"gmbtravels/internal/models"
	"gmbtravels/internal/services"
	"gmbtravels/internal/utils"
)

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates against the admin collection.
func (h *AuthHandler) Login(c *gin.Context) {
	h.login(c, h.authService.LoginAdmin)
}

// TeamLogin authenticates against the team member collection.
func (h *AuthHandler) TeamLogin(c *gin.Context) {
	h.login(c, h.authService.LoginTeamMember)
}

func (h *AuthHandler) login(c *gin.Context, authenticate func(ctx context.Context, request *models.LoginRequest) (*models.LoginResponse, error)) {
	var request models.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	response, err := authenticate(c.Request.Context(), &request)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", utils.ErrInvalidCredentials)
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Login successful", response)
}

// Me returns the authenticated user's identity from the token claims.
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := c.Get("user_id")
	role, _ := c.Get("role")

	utils.SuccessResponse(c, "Authenticated", gin.H{
		"userId":   userID,
		"username": currentUsername(c),
		"role":     role,
	})
}

// ChangePassword updates the caller's own password.
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var request models.ChangePasswordRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	userID, exists := c.Get("user_id")
	if !exists {
		utils.UnauthorizedResponse(c)
		return
	}
	userObjectID, ok := userID.(primitive.ObjectID)
	if !ok {
		utils.BadRequestResponse(c, "Invalid user ID")
		return
	}

	roleValue, _ := c.Get("role")
	role, _ := roleValue.(models.Role)

	if err := h.authService.ChangePassword(c.Request.Context(), userObjectID, role, &request); err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.ErrorResponse(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Current password is incorrect")
			return
		}
		utils.InternalServerErrorResponse(c)
		return
	}

	utils.SuccessResponse(c, "Password changed successfully", nil)
}

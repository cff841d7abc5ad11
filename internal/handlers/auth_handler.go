package handlers

import (
	"errors"
	"net/http"

	"infohub/internal/apperrors"
	"infohub/internal/auth"
	"infohub/internal/dto"
	"infohub/internal/middleware"
	"infohub/internal/services"
	"infohub/pkg/logger"
	"infohub/pkg/responses"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{users: users}
}

// Register creates an account. A request that already carries a valid
// session token is rejected; the caller has to log out first.
func (h *AuthHandler) Register(c *gin.Context) {
	if middleware.Viewer(c).IsAuthenticated() {
		respondError(c, apperrors.ErrAlreadyAuthenticated, "Already logged in")
		return
	}

	var req dto.RegisterReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, firstAdmin, err := h.users.Register(req.Username, req.Email, req.Password)
	if err != nil {
		respondError(c, err, "Failed to register")
		return
	}

	message := "Registration successful"
	if firstAdmin {
		message = "Registration successful, admin rights granted"
	}

	c.JSON(http.StatusCreated, responses.NewSuccessResponse(message, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"admin":    user.IsAdmin,
	}))
}

// Login verifies credentials and issues a JWT. remember_me extends the
// token lifetime.
func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.Viewer(c).IsAuthenticated() {
		respondError(c, apperrors.ErrAlreadyAuthenticated, "Already logged in")
		return
	}

	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, responses.NewErrorResponse("Invalid request format", err.Error()))
		return
	}

	user, err := h.users.Login(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, responses.NewErrorResponse("Invalid username or password", ""))
			return
		}
		respondError(c, err, "Failed to log in")
		return
	}

	token, err := auth.GenerateToken(user.ID, req.RememberMe)
	if err != nil {
		logger.Log.Error().Err(err).Msg("Failed to sign token")
		c.JSON(http.StatusInternalServerError, responses.NewErrorResponse("Failed to log in", ""))
		return
	}

	c.JSON(http.StatusOK, responses.NewSuccessResponse("Login successful", gin.H{
		"token":    token,
		"id":       user.ID,
		"username": user.Username,
		"admin":    user.IsAdmin,
	}))
}

// Logout acknowledges the request; tokens are stateless and discarded
// client-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.JSON(http.StatusOK, responses.NewSuccessResponse("Logged out", nil))
}

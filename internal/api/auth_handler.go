package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"pushpull/studio-admin/internal/domain"
	"pushpull/studio-admin/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthHandler holds the authentication service dependency.
type AuthHandler struct {
	authService service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// --- Request/Response Structs ---

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserResponse excludes sensitive info like password hash.
type UserResponse struct {
	ID             string      `json:"id"`
	DisplayName    string      `json:"displayName"`
	Email          string      `json:"email"`
	Mobile         string      `json:"mobile,omitempty"`
	Role           domain.Role `json:"role"`
	Specialization string      `json:"specialization,omitempty"`
	Goal           string      `json:"goal,omitempty"`
	PreferredSlot  string      `json:"preferredSlot,omitempty"`
	FreeTrial      bool        `json:"freetrial,omitempty"`
	FreeTrialDate  *time.Time  `json:"freetrialDate,omitempty"`
	CreatedAt      time.Time   `json:"createdAt"`
}

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

// MapUserToResponse converts a domain user into its API shape.
func MapUserToResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:             user.ID.Hex(),
		DisplayName:    user.DisplayName,
		Email:          user.Email,
		Mobile:         user.Mobile,
		Role:           user.Role,
		Specialization: user.Specialization,
		Goal:           user.Goal,
		PreferredSlot:  user.PreferredSlot,
		FreeTrial:      user.FreeTrial,
		FreeTrialDate:  user.FreeTrialDate,
		CreatedAt:      user.CreatedAt,
	}
}

// Login godoc
// @Summary Log in to the dashboard
// @Description Authenticates a staff user and returns a JWT token.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse "Login successful"
// @Failure 400 {object} gin.H "Invalid input (validation error)"
// @Failure 401 {object} gin.H "Unauthorized (invalid credentials)"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	token, user, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrAuthenticationFailed) {
			abortWithError(c, http.StatusUnauthorized, err.Error())
		} else {
			abortWithError(c, http.StatusInternalServerError, "An unexpected error occurred during login")
		}
		return
	}

	c.JSON(http.StatusOK, LoginResponse{
		Token: token,
		User:  MapUserToResponse(user),
	})
}

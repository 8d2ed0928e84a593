package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
	"fintrack/internal/middleware"
	"fintrack/internal/models"
	"fintrack/internal/services"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	userService    services.UserServicer
	sessionService services.SessionServicer
	auditService   services.AuditServicer
	sessionTTL     time.Duration
	cookieSecure   bool
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(
	userService services.UserServicer,
	sessionService services.SessionServicer,
	auditService services.AuditServicer,
	sessionTTL time.Duration,
	cookieSecure bool,
) *AuthHandler {
	return &AuthHandler{
		userService:    userService,
		sessionService: sessionService,
		auditService:   auditService,
		sessionTTL:     sessionTTL,
		cookieSecure:   cookieSecure,
	}
}

// RegisterRequest represents the registration request payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,max=80"`
	Email    string `json:"email" binding:"required,email,max=255"`
	Password string `json:"password" binding:"required,min=6,max=128"`
}

// LoginRequest represents the login request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserResponse represents the user data in the response
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}

func toUserResponse(user *models.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}

// Register handles user registration
// @Summary     Register a new user
// @Description Create an account, seed the default categories and log the user in
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body RegisterRequest true "User registration data"
// @Success     200 {object} AuthResponse "Account created and session started"
// @Failure     400 {object} ErrorResponse "Invalid input or duplicate user"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, registerBindError(err))
		return
	}

	user, err := h.userService.CreateUser(req.Username, req.Email, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, ok := h.startSession(c, user)
	if !ok {
		return
	}

	h.auditService.Log(user.ID, services.AuditActionRegister, "user", user.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Account created successfully!",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Login handles user login
// @Summary     Login user
// @Description Verify credentials and start a session
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       request body LoginRequest true "User login credentials"
// @Success     200 {object} AuthResponse "Session started"
// @Failure     400 {object} ErrorResponse "Invalid input"
// @Failure     401 {object} ErrorResponse "Invalid credentials"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, bindError(err))
		return
	}

	user, err := h.userService.VerifyUser(req.Username, req.Password)
	if err != nil {
		respondWithError(c, err)
		return
	}

	token, ok := h.startSession(c, user)
	if !ok {
		return
	}

	h.auditService.Log(user.ID, services.AuditActionLogin, "user", user.ID, c.ClientIP(), nil)
	c.JSON(http.StatusOK, AuthResponse{
		Success: true,
		Message: "Login successful!",
		Token:   token,
		User:    toUserResponse(user),
	})
}

// Logout handles user logout
// @Summary     Logout user
// @Description Revoke the current session and redirect to the home page
// @Tags        auth
// @Security    SessionCookie
// @Success     302 "Redirect to /"
// @Router      /logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	userID, _ := getUserID(c)
	if sessionID := c.GetString(middleware.SessionIDKey); sessionID != "" {
		if err := h.sessionService.Revoke(sessionID); err != nil {
			logger.Get().Errorw("failed to revoke session", "error", err, "session_id", sessionID)
		}
	}

	h.auditService.Log(userID, services.AuditActionLogout, "session", 0, c.ClientIP(), nil)
	middleware.ClearSessionCookie(c, h.cookieSecure)
	c.Redirect(http.StatusFound, "/")
}

// GetProfile returns the user's profile
// @Summary     Get user profile
// @Description Get the authenticated user's profile information
// @Tags        user
// @Produce     json
// @Security    SessionCookie
// @Success     200 {object} UserResponse "User profile"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /api/profile [get]
func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	user, err := h.userService.GetUserByID(userID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(user)})
}

// registerBindError keeps the registration form's wording for the two
// common failures.
func registerBindError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch {
		case fe.Tag() == "required":
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "All fields are required")
		case fe.Field() == "password" && fe.Tag() == "min":
			return apperrors.WithMessage(apperrors.ErrInvalidInput, "Password must be at least 6 characters")
		}
	}
	return bindError(err)
}

func (h *AuthHandler) startSession(c *gin.Context, user *models.User) (string, bool) {
	token, _, err := h.sessionService.Issue(user, c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		respondWithError(c, apperrors.Wrap(apperrors.ErrInternalServer, err))
		return "", false
	}
	middleware.SetSessionCookie(c, token, int(h.sessionTTL.Seconds()), h.cookieSecure)
	return token, true
}

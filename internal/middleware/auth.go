package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/services"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "session"

// Context keys set by the session middleware.
const (
	UserIDKey    = "userID"
	UsernameKey  = "username"
	SessionIDKey = "sessionID"
)

// RequireSession validates the session token from the cookie or the
// Authorization header and aborts with a 401 JSON error when it is missing
// or no longer active.
func RequireSession(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, sessions); err != nil {
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

// RequireSessionOrRedirect behaves like RequireSession but sends browsers to
// the login page instead of returning JSON.
func RequireSessionOrRedirect(sessions services.SessionServicer) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := authenticate(c, sessions); err != nil {
			var appErr *apperrors.AppError
			if errors.As(err, &appErr) && appErr.StatusCode == http.StatusUnauthorized {
				c.Redirect(http.StatusFound, "/login")
				c.Abort()
				return
			}
			AbortWithError(c, err)
			return
		}
		c.Next()
	}
}

func authenticate(c *gin.Context, sessions services.SessionServicer) error {
	tokens := tokensFromRequest(c)
	if len(tokens) == 0 {
		return apperrors.ErrUnauthorized
	}

	var err error
	for _, token := range tokens {
		var claims *services.SessionClaims
		claims, err = sessions.Validate(token)
		if err != nil {
			continue
		}

		c.Set(UserIDKey, claims.UserID)
		c.Set(UsernameKey, claims.Username)
		c.Set(SessionIDKey, claims.ID)
		return nil
	}
	return err
}

// tokensFromRequest returns the session cookie followed by the Bearer token,
// skipping whichever is absent. A stale cookie does not hide a valid header.
func tokensFromRequest(c *gin.Context) []string {
	var tokens []string
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		tokens = append(tokens, cookie)
	}

	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		if bearer := strings.TrimSpace(parts[1]); bearer != "" && (len(tokens) == 0 || tokens[0] != bearer) {
			tokens = append(tokens, bearer)
		}
	}
	return tokens
}

// SetSessionCookie stores the session token in an HttpOnly cookie.
func SetSessionCookie(c *gin.Context, token string, maxAge int, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, token, maxAge, "/", "", secure, true)
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c *gin.Context, secure bool) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(SessionCookieName, "", -1, "/", "", secure, true)
}

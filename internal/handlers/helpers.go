package handlers

import (
	"encoding/json"
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/middleware"
	"fintrack/internal/validator"
)

// getUserID extracts the authenticated user ID from the Gin context.
// Returns ErrUnauthorized if not present.
func getUserID(c *gin.Context) (uint, error) {
	userID, exists := c.Get(middleware.UserIDKey)
	if !exists {
		return 0, apperrors.ErrUnauthorized
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		return 0, apperrors.ErrUnauthorized
	}
	return id, nil
}

// parsePathInt parses an integer path parameter.
func parsePathInt(c *gin.Context, param string) (int, error) {
	n, err := strconv.Atoi(c.Param(param))
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, "Invalid "+param)
	}
	return n, nil
}

// parseID converts a number-or-string id from a request body.
func parseID(field string, raw json.Number) (uint, error) {
	id, err := strconv.ParseUint(raw.String(), 10, 32)
	if err != nil || id == 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidInput, field+" is invalid")
	}
	return uint(id), nil
}

// bindError converts a binding failure into an INVALID_INPUT error naming the field.
func bindError(err error) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, validator.Message(err))
}

// respondWithError writes a consistent JSON error response. If the error is an
// *AppError it uses the error's status code, code, and message. Otherwise it
// logs the unexpected error and returns a generic internal server error.
func respondWithError(c *gin.Context, err error) {
	middleware.AbortWithError(c, err)
}

// MessageResponse is the acknowledgement returned by write endpoints.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Error   ErrorDetail `json:"error"`
}

package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/logger"
)

// ErrorBody renders an AppError in the JSON envelope shared by every endpoint.
func ErrorBody(appErr *apperrors.AppError) gin.H {
	return gin.H{
		"success": false,
		"message": appErr.Message,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	}
}

// AbortWithError writes err as a JSON error envelope and stops the chain.
// Errors that are not AppErrors are logged and reported as internal errors.
func AbortWithError(c *gin.Context, err error) {
	appErr := toAppError(c, err)
	c.AbortWithStatusJSON(appErr.StatusCode, ErrorBody(appErr))
}

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message; unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		appErr := toAppError(c, c.Errors.Last().Err)
		c.JSON(appErr.StatusCode, ErrorBody(appErr))
	}
}

func toAppError(c *gin.Context, err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Internal != nil {
			logger.Get().Errorw("app error",
				"code", appErr.Code,
				"message", appErr.Message,
				"internal", appErr.Internal.Error(),
				"path", c.Request.URL.Path,
			)
		}
		return appErr
	}

	// Unexpected error: log full details, return generic message
	logger.Get().Errorw("unexpected error",
		"error", err.Error(),
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)
	return apperrors.ErrInternalServer
}

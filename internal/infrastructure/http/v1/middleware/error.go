package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/core/apperror"
	"tally/internal/infrastructure/http/v1/dto"
	"tally/pkg/logger"
)

// statusOf maps an error kind to its HTTP status. This is the only
// place where kinds and status codes meet; the domain layer knows
// nothing about HTTP.
func statusOf(kind apperror.Kind) int {
	switch kind {
	case apperror.KindNotFound:
		return http.StatusNotFound
	case apperror.KindConflict:
		return http.StatusConflict
	case apperror.KindInvalidInput:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler middleware transforms errors into consistent JSON
// responses of the form {"error": {"message": ..., "status": ...}}.
// Hides internal errors from clients while logging full details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check for errors
		if len(c.Errors) == 0 {
			return
		}

		// Get last error
		err := c.Errors.Last().Err

		// If response already written by handler, do not override it.
		if c.Writer.Written() {
			return
		}

		if appErr, ok := apperror.AsAppError(err); ok {
			// Log internal cause if present
			if appErr.Err != nil {
				logger.Error(c.Request.Context(), "request error",
					"kind", appErr.Kind,
					"cause", appErr.Err,
				)
			}

			status := statusOf(appErr.Kind)
			message := appErr.Message
			if appErr.Kind == apperror.KindInternal {
				message = "internal server error"
			}

			c.JSON(status, dto.ErrorResponse{
				Error: dto.ErrorBody{Message: message, Status: status},
			})
			return
		}

		// Unknown error - log and return generic message
		logger.Error(c.Request.Context(), "unhandled error",
			"error", err,
		)

		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: dto.ErrorBody{
				Message: "internal server error",
				Status:  http.StatusInternalServerError,
			},
		})
	}
}

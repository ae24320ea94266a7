// Package middleware provides HTTP middleware components.
package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"

	"tally/internal/infrastructure/http/v1/dto"
	"tally/pkg/logger"
)

// Recovery middleware recovers from panics and returns 500 error.
// Logs stack trace but never exposes internal details to client.
//
// Recovery is the outermost middleware, so a panic unwinds past
// ErrorHandler's rendering before the deferred recover runs. The
// envelope must be written here; registering the error for ErrorHandler
// would leave the response unwritten with a default 200.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				// Log full stack trace
				logger.Error(c.Request.Context(), "panic recovered",
					"error", err,
					"request_id", c.GetString("request_id"),
					"stack", string(debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
					Error: dto.ErrorBody{
						Message: "internal server error",
						Status:  http.StatusInternalServerError,
					},
				})
			}
		}()
		c.Next()
	}
}

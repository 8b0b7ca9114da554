package middleware

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/pkg/apperror"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the context to JSON responses. It is
// the last line of defense: handlers normally map workflow errors themselves,
// so anything arriving here is either an AppError or unexpected.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Fail(c, appErr.Code, appErr.Message, nil, "")
				return
			}
			// Never expose internal error details to clients. Log the actual
			// error server-side and send a generic message.
			reqID, _ := c.Get("RequestID")
			logger.Log.Error("unhandled error", "error", err, "request_id", reqID, "path", c.Request.URL.Path)
			response.Fail(c, http.StatusInternalServerError, "Server error occurred", nil, "")
		}
	}
}

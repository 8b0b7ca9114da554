package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Response standardizes contact API JSON responses. MissingFields is only
// populated for validation failures; Error carries provider diagnostics and
// is only included in development mode.
type Response struct {
	Success       bool     `json:"success"`
	Message       string   `json:"message"`
	MissingFields []string `json:"missingFields,omitempty"`
	Error         string   `json:"error,omitempty"`
}

// OK sends a success response
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// Fail sends an error response
func Fail(c *gin.Context, code int, message string, missingFields []string, errDetail string) {
	c.JSON(code, Response{
		Success:       false,
		Message:       message,
		MissingFields: missingFields,
		Error:         errDetail,
	})
}

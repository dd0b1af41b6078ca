package respond

import (
	"github.com/gin-gonic/gin"

	"transparency-ai/internal/shared/telemetry"
)

// ErrorResponse is the body returned for every failed request.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// Error logs the failure and aborts with a standardized error body.
func Error(c *gin.Context, status int, title, message string) {
	telemetry.Error("http.error", map[string]any{
		"status":     status,
		"error":      title,
		"message":    message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
	})

	c.AbortWithStatusJSON(status, ErrorResponse{
		Success: false,
		Error:   title,
		Message: message,
	})
}

package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse matches the body shape the admin panel already consumes.
// Details is only filled on the update path outside release mode.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// RespondWithError sends a standardized error response
func RespondWithError(c *gin.Context, statusCode int, message, details string) {
	c.JSON(statusCode, ErrorResponse{
		Error:   message,
		Details: details,
	})
}

// RespondWithBadRequest sends a 400 Bad Request error
func RespondWithBadRequest(c *gin.Context, message string) {
	RespondWithError(c, http.StatusBadRequest, message, "")
}

// RespondWithInternalError sends a 500 Internal Server Error
func RespondWithInternalError(c *gin.Context, message, details string) {
	RespondWithError(c, http.StatusInternalServerError, message, details)
}

// Package response holds the JSON error shapes of the API. Every error body
// carries a human-readable mensagem in the error field; the report endpoint
// additionally carries the underlying cause in detalhes.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the standard error response shape
type ErrorBody struct {
	Error string `json:"error"`
}

// DetailedErrorBody adds the underlying cause, used by the report endpoint
type DetailedErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"detalhes"`
}

// Error sends an error response with the given status
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Error: message})
}

// ErrorWithDetails sends an error response carrying the underlying cause
func ErrorWithDetails(c *gin.Context, status int, message, details string) {
	c.JSON(status, DetailedErrorBody{Error: message, Details: details})
}

// BadRequest sends a 400 validation-failure response
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 response
func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

// Internal sends a 500 response
func Internal(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

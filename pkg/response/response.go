package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the standard failure envelope: {"success": false, "error": "..."}.
type ErrorBody struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// FieldError is one entry of a validation failure list.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationBody carries per-field validation failures.
type ValidationBody struct {
	Success bool         `json:"success"`
	Error   string       `json:"error"`
	Errors  []FieldError `json:"errors"`
}

// Error writes the standard failure envelope.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorBody{Success: false, Error: message})
}

// AbortError writes the failure envelope and aborts the handler chain.
// Used by middleware.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Success: false, Error: message})
}

// SignupError writes a bare {"error": "..."} body. The signup endpoint
// historically omits the success flag; callers depend on that shape.
func SignupError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// ValidationFailed writes a 400 with the per-field failure list.
func ValidationFailed(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusBadRequest, ValidationBody{Success: false, Error: "Validation failed", Errors: errs})
}

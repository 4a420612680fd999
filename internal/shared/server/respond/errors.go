package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// MessageBody is a plain message response.
type MessageBody struct {
	Message string `json:"message"`
}

// ServerErrorBody is the generic 5xx payload. Error carries a stable code,
// never the underlying failure.
type ServerErrorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// ValidationBody lists field violations.
type ValidationBody struct {
	Errors any `json:"errors"`
}

// Message aborts with a {message} payload.
func Message(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, MessageBody{Message: message})
}

// ValidationFailed aborts with 400 and the given field errors.
func ValidationFailed(c *gin.Context, errs any) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ValidationBody{Errors: errs})
}

// ServerError aborts with a generic 500.
func ServerError(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, ServerErrorBody{
		Message: message,
		Error:   "internal_error",
	})
}

package apperrors

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the wire shape for failures: HTTP status and the
// success flag always agree.
type ErrorResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

// HandleError converts any error into the standard failure envelope.
// Non-AppError causes are hidden behind a generic 500.
func HandleError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	status := appErr.HTTPCode
	if status == 0 {
		status = http.StatusInternalServerError
	}

	message := appErr.Message
	if status >= http.StatusInternalServerError {
		message = "Internal server error"
	}

	c.JSON(status, ErrorResponse{
		Success: false,
		Message: message,
		Details: appErr.Details,
	})
}

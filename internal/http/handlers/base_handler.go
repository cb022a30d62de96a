// README: Base handler utilities (response envelope, error mapping).
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"busquote/internal/http/middleware"
)

type apiResponse struct {
	Status    string `json:"status"`
	Code      int    `json:"code"`
	Message   string `json:"message,omitempty"`
	RequestID string `json:"request_id,omitempty"`
	Data      any    `json:"data,omitempty"`
}

func writeJSON(c *gin.Context, status int, data any) {
	c.JSON(status, apiResponse{
		Status:    "success",
		Code:      status,
		RequestID: middleware.GetRequestID(c),
		Data:      data,
	})
}

func writeError(c *gin.Context, status int, msg string) {
	c.JSON(status, apiResponse{
		Status:    "error",
		Code:      status,
		Message:   msg,
		RequestID: middleware.GetRequestID(c),
	})
}

// compareErrorStatus maps a failed submission onto an HTTP status. Invalid
// input is the caller's fault; everything else is an upstream failure.
func compareErrorStatus(err error) int {
	var ie *inputError
	if errors.As(err, &ie) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}

type inputError struct {
	msg string
}

func (e *inputError) Error() string { return e.msg }

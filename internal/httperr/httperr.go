package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ContextRequestID is where middleware.RequestID stores the request id.
const ContextRequestID = "requestID"

type HTTPError struct {
	Code      string `json:"error_code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, HTTPError{
		Code:      code,
		Message:   message,
		RequestID: c.GetString(ContextRequestID),
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func MethodNotAllowed(c *gin.Context, code, message string) {
	Write(c, http.StatusMethodNotAllowed, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const TraceIDKey = "trace_id"

// ErrorResponse is the JSON body of every failed suggestion request.
type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"error,omitempty"`
	Details string `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// MapError turns a service error into the status code and body returned to the caller.
// Both the HTTP server and the serverless function go through it.
func MapError(err error) (int, ErrorResponse) {
	var (
		cfgErr      *ConfigError
		upstreamErr *UpstreamError
		emptyErr    *EmptyCompletionError
	)

	switch {
	case errors.Is(err, ErrMethodNotAllowed):
		return http.StatusMethodNotAllowed, ErrorResponse{Message: "Method Not Allowed"}
	case errors.As(err, &cfgErr):
		return http.StatusInternalServerError, ErrorResponse{
			Message: cfgErr.Error(),
			Code:    cfgErr.Code,
		}
	case errors.As(err, &upstreamErr):
		status := upstreamErr.StatusCode
		if status < 400 || status > 599 {
			status = http.StatusBadGateway
		}
		return status, ErrorResponse{
			Message: upstreamErr.Provider + " API Error",
			Details: upstreamErr.Details,
		}
	case errors.As(err, &emptyErr):
		return http.StatusInternalServerError, ErrorResponse{Message: emptyErr.Error()}
	default:
		return http.StatusInternalServerError, ErrorResponse{Message: err.Error()}
	}
}

func RespondContent(c *gin.Context, content []byte) {
	c.Data(http.StatusOK, "application/json", content)
}

func RespondMethodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, "Method Not Allowed")
}

func HandleServiceError(c *gin.Context, err error) {
	status, body := MapError(err)
	if status == http.StatusMethodNotAllowed {
		RespondMethodNotAllowed(c)
		return
	}
	body.TraceID = c.GetString(TraceIDKey)
	c.JSON(status, body)
}

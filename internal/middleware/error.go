package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pageza/recommendations/backend/internal/logging"
	"github.com/pageza/recommendations/backend/internal/models"
)

// ErrUnsupportedMediaType is pushed by RequireContentType when the request
// body is not declared as the expected media type.
var ErrUnsupportedMediaType = errors.New("unsupported media type")

// ErrorResponse is the JSON body written for every failed request.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Error   string `json:"error"`
	Message string `json:"message"`
}

// NewErrorResponse builds an ErrorResponse using the standard reason phrase
// for status.
func NewErrorResponse(status int, message string) ErrorResponse {
	return ErrorResponse{
		Status:  status,
		Error:   http.StatusText(status),
		Message: message,
	}
}

// StatusFor maps an error returned by a handler to an HTTP status code.
func StatusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case models.IsValidationError(err):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// ErrorHandler turns the last error recorded with c.Error into a JSON error
// response. Server errors are logged and their detail is not sent to the client.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := StatusFor(err)
		message := err.Error()

		if status >= http.StatusInternalServerError {
			logging.Ctx(c.Request.Context()).Error().
				Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("Request failed")
			message = "An internal error occurred"
		} else {
			logging.Ctx(c.Request.Context()).Warn().
				Int("status", status).
				Msg(message)
		}

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(status, NewErrorResponse(status, message))
	}
}

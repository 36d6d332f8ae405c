// Package httperr is the single place where handler failures become HTTP
// responses. Handlers return *Error values; Handler renders them.
package httperr

import (
	"errors"
	"fmt"
	"net/http"

	"contacts-api/internal/api"
	"contacts-api/internal/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Error carries the status a failure maps to, the client-facing message and
// the underlying cause (never shown to clients in production).
type Error struct {
	Status  int
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func New(status int, message string, err error) *Error {
	return &Error{Status: status, Message: message, Err: err}
}

func Validation(message string) *Error { return New(http.StatusBadRequest, message, nil) }

func Unauthorized(message string) *Error { return New(http.StatusUnauthorized, message, nil) }

func Forbidden(message string) *Error { return New(http.StatusForbidden, message, nil) }

func NotFound(message string) *Error { return New(http.StatusNotFound, message, nil) }

// Server hides err behind a generic message.
func Server(err error) *Error { return New(http.StatusInternalServerError, "Internal server error", err) }

var titles = map[int]string{
	http.StatusBadRequest:          "Validation Error",
	http.StatusUnauthorized:        "Unauthorized Error",
	http.StatusForbidden:           "Forbidden Error",
	http.StatusNotFound:            "Not Found Error",
	http.StatusInternalServerError: "Server Error",
}

// Title returns the envelope title for status. Statuses outside the table
// fall back to their standard reason phrase.
func Title(status int) string {
	if t, ok := titles[status]; ok {
		return t
	}
	if t := http.StatusText(status); t != "" {
		return t
	}
	return titles[http.StatusInternalServerError]
}

// Translate resolves the status and envelope for any error a handler or
// middleware returned. Unknown errors become 500.
func Translate(err error, withTrace bool) (int, api.ErrorResponse) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	var appErr *Error
	var echoErr *echo.HTTPError
	switch {
	case errors.As(err, &appErr):
		status, message = appErr.Status, appErr.Message
	case errors.As(err, &echoErr):
		status = echoErr.Code
		message = fmt.Sprint(echoErr.Message)
	}

	resp := api.ErrorResponse{Title: Title(status), Message: message}
	if withTrace {
		resp.StackTrace = fmt.Sprintf("%+v", err)
	}
	return status, resp
}

// Handler returns an echo.HTTPErrorHandler that writes the error envelope.
// debug controls whether the error chain is echoed as stackTrace.
func Handler(debug bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status, resp := Translate(err, debug)

		log := logger.WithRequestID(c.Response().Header().Get(echo.HeaderXRequestID))
		fields := []zap.Field{
			zap.Int("status", status),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			log.Error("request failed", fields...)
		} else {
			log.Warn("request rejected", fields...)
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(status)
		} else {
			writeErr = c.JSON(status, resp)
		}
		if writeErr != nil {
			log.Error("write error response", zap.Error(writeErr))
		}
	}
}

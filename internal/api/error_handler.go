package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Error string `json:"error"`
}

// statusTable maps domain error kinds to HTTP responses. Anything not in the
// table is reported as a generic 500 with no internal detail.
var statusTable = []struct {
	err  error
	code int
	msg  string
}{
	{domain.ErrUserExists, http.StatusConflict, "email already in use"},
	{domain.ErrInvalidCredentials, http.StatusUnauthorized, "invalid email or password"},
	{domain.ErrTokenInvalid, http.StatusUnauthorized, "invalid token"},
	{domain.ErrTooManyAttempts, http.StatusTooManyRequests, "too many login attempts"},
	{domain.ErrUserNotFound, http.StatusNotFound, "user not found"},
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their appropriate HTTP status codes.
//   - Logs unexpected errors internally without leaking details to the client.
//   - Renders a consistent JSON envelope: {"error": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, msg := resolveError(err, log, c)
		_ = c.JSON(code, errorResponse{Error: msg})
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, string) {
	// Echo's own errors (bind failures, 404 from router, etc.)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprintf("%v", he.Message)
	}

	for _, entry := range statusTable {
		if errors.Is(err, entry.err) {
			return entry.code, entry.msg
		}
	}

	// Unexpected error (including a missing seeded role): log the real
	// cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, "internal server error"
}

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/authcore/identity-service/internal/core/domain"
)

func newErrContext() echo.Context {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	return e.NewContext(req, httptest.NewRecorder())
}

func TestResolveError_DomainMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{domain.ErrUserExists, http.StatusConflict},
		{domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{domain.ErrTokenInvalid, http.StatusUnauthorized},
		{domain.ErrTooManyAttempts, http.StatusTooManyRequests},
		{domain.ErrUserNotFound, http.StatusNotFound},
	}
	for _, tc := range cases {
		code, _ := resolveError(tc.err, zerolog.Nop(), newErrContext())
		if code != tc.want {
			t.Fatalf("%v: expected %d, got %d", tc.err, tc.want, code)
		}
	}
}

func TestResolveError_WrappedDomainError(t *testing.T) {
	wrapped := fmt.Errorf("save user: %w", domain.ErrUserExists)
	code, _ := resolveError(wrapped, zerolog.Nop(), newErrContext())
	if code != http.StatusConflict {
		t.Fatalf("expected 409 for wrapped ErrUserExists, got %d", code)
	}
}

func TestResolveError_UnexpectedIsGeneric(t *testing.T) {
	for _, err := range []error{errors.New("mongo connection reset"), domain.ErrRoleNotConfigured} {
		code, msg := resolveError(err, zerolog.Nop(), newErrContext())
		if code != http.StatusInternalServerError {
			t.Fatalf("%v: expected 500, got %d", err, code)
		}
		if msg != "internal server error" {
			t.Fatalf("%v: internal detail leaked: %q", err, msg)
		}
	}
}

func TestResolveError_EchoHTTPError(t *testing.T) {
	code, msg := resolveError(echo.NewHTTPError(http.StatusBadRequest, "email is required"), zerolog.Nop(), newErrContext())
	if code != http.StatusBadRequest || msg != "email is required" {
		t.Fatalf("unexpected mapping: %d %q", code, msg)
	}
}

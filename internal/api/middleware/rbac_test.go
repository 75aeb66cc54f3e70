package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authcore/identity-service/internal/core/domain"
)

func runGuard(t *testing.T, claim, required string) (int, bool) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if claim != "" {
		c.Set(CtxRole, claim)
	}

	called := false
	handler := RequireRole(required)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		he, ok := err.(*echo.HTTPError)
		if !ok {
			t.Fatalf("unexpected error type: %v", err)
		}
		return he.Code, called
	}
	return rec.Code, called
}

func TestRequireRole_ExactMatch(t *testing.T) {
	code, called := runGuard(t, domain.RoleUser, domain.RoleUser)
	if !called || code != http.StatusOK {
		t.Fatalf("USER must pass a USER requirement, got %d", code)
	}
}

func TestRequireRole_AdminImpliesUser(t *testing.T) {
	code, called := runGuard(t, domain.RoleAdmin, domain.RoleUser)
	if !called || code != http.StatusOK {
		t.Fatalf("ADMIN must pass a USER requirement, got %d", code)
	}
}

func TestRequireRole_UserCannotEscalate(t *testing.T) {
	code, called := runGuard(t, domain.RoleUser, domain.RoleAdmin)
	if called {
		t.Fatalf("USER must not reach an ADMIN handler")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

func TestRequireRole_MissingClaim(t *testing.T) {
	code, called := runGuard(t, "", domain.RoleUser)
	if called {
		t.Fatalf("request without a role claim must not pass")
	}
	if code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", code)
	}
}

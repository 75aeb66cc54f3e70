package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/identity-service/internal/api/middleware"
)

// ctxClaims extracts the token claims injected by the Auth middleware and
// performs a fast-fail check before the handler body runs: both values must
// be present, their presence proves the middleware ran on this route.
func ctxClaims(c echo.Context) (subject, role string, err error) {
	subject, _ = c.Get(middleware.CtxSubject).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if subject == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subject, role, nil
}

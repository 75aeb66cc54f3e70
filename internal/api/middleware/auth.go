package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/authcore/identity-service/internal/api/metrics"
	"github.com/authcore/identity-service/internal/core/ports"
)

// Context keys set by Auth for downstream handlers and guards.
const (
	CtxSubject = "subject"
	CtxRole    = "role"
)

// Auth validates the bearer token and injects its claims into the request
// context. Every validation failure maps to the same 401; the client never
// learns whether the token was expired, tampered or malformed.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Validate(parts[1])
			if err != nil {
				metrics.TokenValidationsTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenValidationsTotal.WithLabelValues("valid").Inc()

			c.Set(CtxSubject, claims.Subject)
			c.Set(CtxRole, claims.RoleName)

			return next(c)
		}
	}
}

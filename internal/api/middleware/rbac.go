package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/authcore/identity-service/internal/api/metrics"
	"github.com/authcore/identity-service/internal/core/domain"
)

// RequireRole guards a route behind a minimum role. The decision uses the
// role claim Auth placed in the context, with flat privilege inclusion:
// ADMIN passes a USER requirement, USER never passes an ADMIN one.
func RequireRole(required string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claim, _ := c.Get(CtxRole).(string)
			if !domain.RoleSatisfies(claim, required) {
				metrics.AccessDecisionsTotal.WithLabelValues(required, "deny").Inc()
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			metrics.AccessDecisionsTotal.WithLabelValues(required, "allow").Inc()
			return next(c)
		}
	}
}

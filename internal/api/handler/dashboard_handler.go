package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the role-guarded demo endpoints. The interesting
// logic lives in the middleware chain in front of them; the handlers only
// echo back who got through.
type DashboardHandler struct{}

func NewDashboardHandler() *DashboardHandler {
	return &DashboardHandler{}
}

// UserDashboard is reachable by USER and ADMIN tokens.
//
// @Summary      User dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/user/dashboard [get]
func (h *DashboardHandler) UserDashboard(c echo.Context) error {
	subject, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Message: "Welcome to the user dashboard.",
		Subject: subject,
		Role:    role,
	})
}

// AdminDashboard is reachable by ADMIN tokens only.
//
// @Summary      Admin dashboard
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dashboardResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Security     BearerAuth
// @Router       /api/admin/dashboard [get]
func (h *DashboardHandler) AdminDashboard(c echo.Context) error {
	subject, role, err := ctxClaims(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, dashboardResponse{
		Message: "Welcome to the admin dashboard.",
		Subject: subject,
		Role:    role,
	})
}

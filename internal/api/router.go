package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/authcore/identity-service/docs"
	"github.com/authcore/identity-service/internal/api/handler"
	"github.com/authcore/identity-service/internal/api/middleware"
	"github.com/authcore/identity-service/internal/core/domain"
	"github.com/authcore/identity-service/internal/core/ports"
)

// Dependencies is the object graph the router wires into routes. It is
// assembled explicitly at process startup; the router adds no construction
// logic of its own.
type Dependencies struct {
	AuthService ports.AuthService
	Tokens      ports.TokenService
	Mongo       *mongo.Database
	Redis       *redis.Client
	Logger      zerolog.Logger
	// Metrics overrides the request-metrics registry; the process-wide
	// default registry is used when nil.
	Metrics *prometheus.Registry
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())

	var registerer prometheus.Registerer = prometheus.DefaultRegisterer
	var gatherer prometheus.Gatherer = prometheus.DefaultGatherer
	if deps.Metrics != nil {
		registerer = deps.Metrics
		gatherer = deps.Metrics
	}
	e.Use(echoprometheus.NewMiddlewareWithConfig(echoprometheus.MiddlewareConfig{
		Subsystem:  "identity",
		Registerer: registerer,
	}))

	authHandler := handler.NewAuthHandler(deps.AuthService)
	dashboardHandler := handler.NewDashboardHandler()
	requireAuth := middleware.Auth(deps.Tokens)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	// Only an existing admin may mint another admin.
	e.POST("/auth/register-admin", authHandler.RegisterAdmin,
		requireAuth, middleware.RequireRole(domain.RoleAdmin))

	// --- Role-guarded demo endpoints ---
	apiGroup := e.Group("/api", requireAuth)
	apiGroup.GET("/user/dashboard", dashboardHandler.UserDashboard,
		middleware.RequireRole(domain.RoleUser))
	apiGroup.GET("/admin/dashboard", dashboardHandler.AdminDashboard,
		middleware.RequireRole(domain.RoleAdmin))

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)          // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: gatherer,
	}))
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}

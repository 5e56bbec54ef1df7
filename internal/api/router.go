package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/macetwatch/traffic-monitor/docs"
	"github.com/macetwatch/traffic-monitor/internal/api/handler"
	"github.com/macetwatch/traffic-monitor/internal/api/middleware"
	"github.com/macetwatch/traffic-monitor/internal/core/ports"
	"github.com/macetwatch/traffic-monitor/internal/core/service"
	mongorepo "github.com/macetwatch/traffic-monitor/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, monitor ports.MonitorService, jwtSecret string, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("traffic"))

	// --- Dependencies ---
	authRepo := mongorepo.NewAuthRepository(db)
	authService := service.NewAuthService(authRepo, jwtSecret, 24*time.Hour)
	authHandler := handler.NewAuthHandler(authService)
	trafficHandler := handler.NewTrafficHandler(monitor)
	healthHandler := handler.NewHealthHandler(db, rdb)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Health probes (no auth required) ---
	e.GET("/health", healthHandler.Liveness)        // liveness  – is the process alive?
	e.GET("/health/ready", healthHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Traffic API (JWT required) ---
	v1 := e.Group("/v1", middleware.Auth(jwtSecret))
	v1.GET("/traffic/report", trafficHandler.Report)
	v1.GET("/traffic/locations", trafficHandler.Locations)
	v1.GET("/traffic/locations/:key/report", trafficHandler.LocationReport)
	v1.POST("/traffic/route-query", trafficHandler.RouteQuery)
	v1.GET("/traffic/stats", trafficHandler.Stats)
	v1.POST("/traffic/sweep", trafficHandler.Sweep, middleware.RequireAdmin())

	return e
}

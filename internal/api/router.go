package api

import (
	"database/sql"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"

	"github.com/aviiiii01/AI-Workflow/internal/api/handler"
	"github.com/aviiiii01/AI-Workflow/internal/api/middleware"
	"github.com/aviiiii01/AI-Workflow/internal/core/service"
	"github.com/aviiiii01/AI-Workflow/internal/infrastructure/config"
	"github.com/aviiiii01/AI-Workflow/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *sql.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("workflow"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	workflowRepo := sqlite.NewWorkflowRepository(db)

	tokens := service.NewTokenService(cfg.JWTSecret, time.Duration(cfg.TokenTTLMinutes)*time.Minute)
	authService := service.NewAuthService(userRepo, tokens, cfg.BcryptCost, log)
	workflowService := service.NewWorkflowService(workflowRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	workflowHandler := handler.NewWorkflowHandler(workflowService)
	authMiddleware := middleware.Auth(authService, log)

	// --- Public routes ---
	e.POST("/token", authHandler.Token)
	e.POST("/users/", authHandler.CreateUser)

	// --- Protected routes ---
	e.GET("/users/me/", authHandler.Me, authMiddleware)

	workflows := e.Group("/workflows", authMiddleware)
	workflows.POST("/", workflowHandler.Create)
	workflows.GET("/", workflowHandler.List)
	workflows.GET("/:id", workflowHandler.Get)
	workflows.PUT("/:id", workflowHandler.Update)
	workflows.DELETE("/:id", workflowHandler.Delete)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler(db)
	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}

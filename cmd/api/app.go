package main

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"weather-widget/internal/config"
	"weather-widget/internal/middleware"
	"weather-widget/internal/widget"

	_ "weather-widget/docs" // Ensure docs are imported
)

// App encapsulates application dependencies
type App struct {
	router *gin.Engine
	logger *slog.Logger
	widget *widget.Widget
	cfg    *config.Config
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	w, err := widget.New(cfg, logger)
	if err != nil {
		return nil, err
	}

	return newAppWithWidget(cfg, logger, w), nil
}

func newAppWithWidget(cfg *config.Config, logger *slog.Logger, w *widget.Widget) *App {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(logger))

	app := &App{
		router: router,
		logger: logger,
		widget: w,
		cfg:    cfg,
	}

	// Register routes
	app.registerRoutes()

	return app
}

// Handler returns the router wrapped with CORS for the configured origins
func (app *App) Handler() http.Handler {
	return middleware.CORS(app.router, app.cfg.Server.AllowedOrigins)
}

// Close releases the chart on display and the history store
func (app *App) Close() error {
	return app.widget.Close()
}

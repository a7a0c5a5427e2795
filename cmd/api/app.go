package main

import (
	"log/slog"

	"store-locator/internal/config"
	"store-locator/internal/location"
	"store-locator/internal/merchants"

	"github.com/gin-gonic/gin"
)

// App encapsulates application dependencies
type App struct {
	router  *gin.Engine
	logger  *slog.Logger
	cfg     *config.Config
	store   *merchants.Store
	session *location.Session
}

// NewApp creates a new application with injected dependencies
func NewApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	// Set Gin mode from configuration
	gin.SetMode(cfg.Server.GinMode)

	// Create Gin router
	router := gin.New()

	// Add middleware
	router.Use(gin.Recovery())
	router.Use(requestLogger(logger))

	// Load the merchant dataset once; it is immutable afterwards
	store, err := merchants.Load(cfg.Dataset.Path, logger)
	if err != nil {
		return nil, err
	}

	app := &App{
		router:  router,
		logger:  logger,
		cfg:     cfg,
		store:   store,
		session: location.NewSession(location.NewResolver(cfg, logger)),
	}

	// Register routes
	app.registerRoutes()

	return app, nil
}

// Run starts the HTTP server
func (app *App) Run(addr string) error {
	return app.router.Run(addr)
}

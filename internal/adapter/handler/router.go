package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/huytran-le/vidlens/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	analyzeHandler *Analyze
	counterHandler *Counter
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analyzeHandler *Analyze, counterHandler *Counter) *Router {
	return &Router{
		cfg:            cfg,
		analyzeHandler: analyzeHandler,
		counterHandler: counterHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	api := e.Group("/api")
	api.POST("/analyze", rt.analyzeHandler.Handle)
	api.GET("/init", rt.counterHandler.Init)
	api.POST("/increment", rt.counterHandler.Increment)
	api.POST("/decrement", rt.counterHandler.Decrement)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

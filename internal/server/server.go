// Package server wires services, handlers and middleware into the gin engine.
package server

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog"

	"paralympics-api/internal/event"
	"paralympics-api/internal/handler"
	"paralympics-api/internal/middleware"
	"paralympics-api/internal/region"
	"paralympics-api/pkg/logger"
)

// Options configures the router
type Options struct {
	AllowedOrigins []string
	Metrics        *middleware.Metrics
}

// NewRouter builds the API engine on top of db
func NewRouter(db *sqlx.DB, log zerolog.Logger, opts Options) *gin.Engine {
	metrics := opts.Metrics
	if metrics == nil {
		metrics = middleware.NewMetrics()
	}

	// Initialize services
	regionService := region.NewRegionService(db, logger.Component(log, "region"))
	eventService := event.NewEventService(db)

	// Initialize handlers
	httpLog := logger.Component(log, "http")
	regionHandler := handler.NewRegionHandler(regionService, httpLog)
	eventHandler := handler.NewEventHandler(eventService, httpLog)
	healthHandler := handler.NewHealthHandler(db, httpLog)

	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(
		middleware.Recovery(httpLog),
		middleware.RequestID(),
		middleware.AccessLog(httpLog),
		metrics.Middleware(),
		middleware.JSONContentType(),
	)

	if len(opts.AllowedOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     opts.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
			ExposeHeaders:    []string{"Content-Length", "Content-Type", middleware.RequestIDHeader},
			AllowCredentials: true,
			MaxAge:           24 * time.Hour,
		}))
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// Region routes
	router.GET("/regions", regionHandler.GetRegions)
	router.GET("/regions/:noc", regionHandler.GetRegion)
	router.POST("/regions", regionHandler.CreateRegion)
	router.PATCH("/regions/:noc", regionHandler.UpdateRegion)
	router.DELETE("/regions/:noc", regionHandler.DeleteRegion)

	// Event routes
	router.GET("/events", eventHandler.GetEvents)
	router.GET("/events/:id", eventHandler.GetEvent)

	router.GET("/health", healthHandler.Health)
	router.GET("/metrics", metrics.Handler())

	return router
}

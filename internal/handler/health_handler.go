package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Pinger is satisfied by *sqlx.DB and *sql.DB
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler reports whether the API can reach its database
type HealthHandler struct {
	db  Pinger
	log zerolog.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db Pinger, log zerolog.Logger) *HealthHandler {
	return &HealthHandler{db: db, log: log}
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		h.log.Warn().Err(err).Msg("health check failed")
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": "database unreachable"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

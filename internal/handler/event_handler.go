package handler

import (
	"errors"
	"net/http"
	"strconv"

	"paralympics-api/internal/event"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// EventHandler handles read-only event requests
type EventHandler struct {
	eventService *event.EventService
	log          zerolog.Logger
}

// NewEventHandler creates a new event handler
func NewEventHandler(eventService *event.EventService, log zerolog.Logger) *EventHandler {
	return &EventHandler{
		eventService: eventService,
		log:          log,
	}
}

// GetEvents handles GET /events
func (h *EventHandler) GetEvents(c *gin.Context) {
	events, err := h.eventService.GetEvents(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching events")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /events/:id
func (h *EventHandler) GetEvent(c *gin.Context) {
	eventID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid event ID"})
		return
	}

	ev, err := h.eventService.GetEvent(c.Request.Context(), eventID)
	if err != nil {
		if errors.Is(err, event.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		h.log.Error().Err(err).Int("event_id", eventID).Msg("error fetching event")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, ev)
}

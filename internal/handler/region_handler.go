package handler

import (
	"errors"
	"fmt"
	"net/http"

	"paralympics-api/internal/region"
	"paralympics-api/pkg/model"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RegionHandler handles region-related HTTP requests
type RegionHandler struct {
	regionService *region.RegionService
	log           zerolog.Logger
}

// NewRegionHandler creates a new region handler
func NewRegionHandler(regionService *region.RegionService, log zerolog.Logger) *RegionHandler {
	return &RegionHandler{
		regionService: regionService,
		log:           log,
	}
}

// GetRegions handles GET /regions
func (h *RegionHandler) GetRegions(c *gin.Context) {
	regions, err := h.regionService.GetRegions(c.Request.Context())
	if err != nil {
		h.log.Error().Err(err).Msg("error fetching regions")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch regions"})
		return
	}

	c.JSON(http.StatusOK, regions)
}

// GetRegion handles GET /regions/:noc
func (h *RegionHandler) GetRegion(c *gin.Context) {
	noc := c.Param("noc")

	region, err := h.regionService.GetRegion(c.Request.Context(), noc)
	if err != nil {
		h.storeError(c, err, noc, "Failed to fetch region")
		return
	}

	c.JSON(http.StatusOK, region)
}

// CreateRegion handles POST /regions.
// Responds 200 rather than 201 with the created region; existing clients rely on it.
func (h *RegionHandler) CreateRegion(c *gin.Context) {
	var req model.RegionCreateRequest
	if err := bindJSON(c, &req); err != nil {
		respondInvalid(c, err)
		return
	}

	created, err := h.regionService.CreateRegion(c.Request.Context(), req)
	if err != nil {
		var verr *region.ValidationError
		if errors.As(err, &verr) {
			respondInvalid(c, verr)
			return
		}
		h.log.Error().Err(err).Msg("error creating region")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create region: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, created)
}

// UpdateRegion handles PATCH /regions/:noc
func (h *RegionHandler) UpdateRegion(c *gin.Context) {
	noc := c.Param("noc")

	var req model.RegionUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		respondInvalid(c, err)
		return
	}

	err := h.regionService.UpdateRegion(c.Request.Context(), noc, req)
	if err != nil {
		var verr *region.ValidationError
		if errors.As(err, &verr) {
			respondInvalid(c, verr)
			return
		}
		h.storeError(c, err, noc, "Failed to update region")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: fmt.Sprintf("Region %s updated", noc)})
}

// DeleteRegion handles DELETE /regions/:noc
func (h *RegionHandler) DeleteRegion(c *gin.Context) {
	noc := c.Param("noc")

	err := h.regionService.DeleteRegion(c.Request.Context(), noc)
	if err != nil {
		h.storeError(c, err, noc, "Failed to delete region")
		return
	}

	c.JSON(http.StatusOK, model.MessageResponse{Message: fmt.Sprintf("Region %s deleted", noc)})
}

// storeError maps a service error to 404 or 500
func (h *RegionHandler) storeError(c *gin.Context, err error, noc, message string) {
	if errors.Is(err, region.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("Region %s not found", noc)})
		return
	}
	h.log.Error().Err(err).Str("noc", noc).Msg(message)
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}

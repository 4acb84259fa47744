package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
	"github.com/univag/eventos-api/pkg/response"
)

type resourceService interface {
	Search(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
	Get(ctx context.Context, id string) (*models.Resource, error)
	UsageOf(ctx context.Context, resourceID string) ([]models.Event, error)
	Stats(ctx context.Context) ([]models.ResourceTypeStats, error)
}

// ResourceHandler exposes the bookable asset registry.
type ResourceHandler struct {
	service resourceService
}

// NewResourceHandler constructs the handler.
func NewResourceHandler(service resourceService) *ResourceHandler {
	return &ResourceHandler{service: service}
}

// List godoc
// @Summary Search the resource registry
// @Tags Resources
// @Produce json
// @Param q query string false "Name or location substring"
// @Param type query string false "Resource type"
// @Param available query bool false "Availability flag"
// @Success 200 {object} response.Envelope
// @Router /resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	filter := models.ResourceFilter{
		Query: strings.TrimSpace(c.Query("q")),
		Type:  models.ResourceType(strings.TrimSpace(c.Query("type"))),
	}
	if raw := c.Query("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, appErrors.Clone(appErrors.ErrValidation, "available must be a boolean"))
			return
		}
		filter.Available = &available
	}
	resources, err := h.service.Search(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resources, nil)
}

// Get godoc
// @Summary Get one registry entry
// @Tags Resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
// @Router /resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	resource, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, resource, nil)
}

// Usage godoc
// @Summary List events that reference a resource
// @Tags Resources
// @Produce json
// @Param id path string true "Resource ID"
// @Success 200 {object} response.Envelope
// @Router /resources/{id}/usage [get]
func (h *ResourceHandler) Usage(c *gin.Context) {
	events, err := h.service.UsageOf(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// Stats godoc
// @Summary Availability counts per resource type
// @Tags Resources
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /resources/stats [get]
func (h *ResourceHandler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, stats, nil)
}

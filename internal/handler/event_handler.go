package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
	"github.com/univag/eventos-api/pkg/response"
)

type workflowService interface {
	Submit(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error)
	Decide(ctx context.Context, eventID string, req dto.DecisionRequest) (*models.Event, error)
	Progress(ctx context.Context, eventID string) (dto.ProgressResponse, error)
	Get(ctx context.Context, eventID string) (*models.Event, error)
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
	Pending(ctx context.Context, dept models.Department) ([]models.Event, error)
}

type dashboardInvalidator interface {
	Invalidate(ctx context.Context)
}

// EventHandler exposes REST endpoints for the event request workflow.
type EventHandler struct {
	service   workflowService
	dashboard dashboardInvalidator
}

// NewEventHandler constructs the handler.
func NewEventHandler(service workflowService, dashboard dashboardInvalidator) *EventHandler {
	return &EventHandler{service: service, dashboard: dashboard}
}

// Create godoc
// @Summary Submit an event request
// @Tags Events
// @Accept json
// @Produce json
// @Param payload body dto.CreateEventRequest true "Event payload"
// @Success 201 {object} response.Envelope
// @Router /events [post]
func (h *EventHandler) Create(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid event payload"))
		return
	}
	event, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.Created(c, event)
}

// List godoc
// @Summary List event requests
// @Tags Events
// @Produce json
// @Param status query string false "Event status"
// @Param type query string false "Event type"
// @Success 200 {object} response.Envelope
// @Router /events [get]
func (h *EventHandler) List(c *gin.Context) {
	filter := models.EventFilter{
		Status: models.EventStatus(strings.TrimSpace(c.Query("status"))),
		Type:   models.EventType(strings.TrimSpace(c.Query("type"))),
	}
	events, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// Get godoc
// @Summary Get event detail
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id} [get]
func (h *EventHandler) Get(c *gin.Context) {
	event, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, event, nil)
}

// Pending godoc
// @Summary List events awaiting approval
// @Tags Events
// @Produce json
// @Param department query string false "Department inbox"
// @Success 200 {object} response.Envelope
// @Router /events/pending [get]
func (h *EventHandler) Pending(c *gin.Context) {
	dept := models.Department(strings.TrimSpace(c.Query("department")))
	events, err := h.service.Pending(c.Request.Context(), dept)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, events, nil)
}

// Decide godoc
// @Summary Record a department decision
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.DecisionRequest true "Decision payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/decisions [post]
func (h *EventHandler) Decide(c *gin.Context) {
	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid decision payload"))
		return
	}
	event, err := h.service.Decide(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	h.invalidateDashboard(c)
	response.JSON(c, http.StatusOK, event, nil)
}

// Progress godoc
// @Summary Get approval progress
// @Tags Events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/progress [get]
func (h *EventHandler) Progress(c *gin.Context) {
	progress, err := h.service.Progress(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, progress, nil)
}

func (h *EventHandler) invalidateDashboard(c *gin.Context) {
	if h.dashboard != nil {
		h.dashboard.Invalidate(c.Request.Context())
	}
}

package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
	"github.com/univag/eventos-api/pkg/response"
)

type scheduleService interface {
	Checklist(ctx context.Context, eventID string) ([]models.ChecklistTask, error)
	ToggleTask(ctx context.Context, eventID, taskID string) ([]models.ChecklistTask, error)
	ResetChecklist(ctx context.Context, eventID string) error
	MarketingSchedule(ctx context.Context, eventID string) ([]models.MarketingDeadline, error)
	MarketingAssets(ctx context.Context, eventID string) ([]models.MarketingAsset, error)
	UploadAsset(ctx context.Context, eventID, assetID string) (*models.MarketingAsset, error)
	ReviewAsset(ctx context.Context, eventID, assetID string, approved bool) (*models.MarketingAsset, error)
}

// ScheduleHandler exposes derived checklists and marketing schedules.
type ScheduleHandler struct {
	service scheduleService
}

// NewScheduleHandler constructs the handler.
func NewScheduleHandler(service scheduleService) *ScheduleHandler {
	return &ScheduleHandler{service: service}
}

// Checklist godoc
// @Summary Get the event logistics checklist
// @Tags Schedule
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/checklist [get]
func (h *ScheduleHandler) Checklist(c *gin.Context) {
	tasks, err := h.service.Checklist(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil)
}

// ToggleTask godoc
// @Summary Toggle a checklist task completion flag
// @Tags Schedule
// @Produce json
// @Param id path string true "Event ID"
// @Param taskId path string true "Task ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/checklist/{taskId}/toggle [post]
func (h *ScheduleHandler) ToggleTask(c *gin.Context) {
	tasks, err := h.service.ToggleTask(c.Request.Context(), c.Param("id"), c.Param("taskId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, tasks, nil)
}

// ResetChecklist godoc
// @Summary Clear every checklist completion flag
// @Tags Schedule
// @Param id path string true "Event ID"
// @Success 204
// @Router /events/{id}/checklist [delete]
func (h *ScheduleHandler) ResetChecklist(c *gin.Context) {
	if err := h.service.ResetChecklist(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// MarketingSchedule godoc
// @Summary Get the marketing production schedule
// @Tags Schedule
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/marketing/schedule [get]
func (h *ScheduleHandler) MarketingSchedule(c *gin.Context) {
	schedule, err := h.service.MarketingSchedule(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, schedule, nil)
}

// MarketingAssets godoc
// @Summary Get the marketing material tracking list
// @Tags Schedule
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/marketing/assets [get]
func (h *ScheduleHandler) MarketingAssets(c *gin.Context) {
	assets, err := h.service.MarketingAssets(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, assets, nil)
}

// UploadAsset godoc
// @Summary Mark a marketing material as submitted for review
// @Tags Schedule
// @Produce json
// @Param id path string true "Event ID"
// @Param assetId path string true "Asset ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/marketing/assets/{assetId}/upload [post]
func (h *ScheduleHandler) UploadAsset(c *gin.Context) {
	asset, err := h.service.UploadAsset(c.Request.Context(), c.Param("id"), c.Param("assetId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, asset, nil)
}

// ReviewAsset godoc
// @Summary Record a marketing material review verdict
// @Tags Schedule
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param assetId path string true "Asset ID"
// @Param payload body dto.ReviewAssetRequest true "Review payload"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/marketing/assets/{assetId}/review [post]
func (h *ScheduleHandler) ReviewAsset(c *gin.Context) {
	var req dto.ReviewAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Approved == nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid review payload"))
		return
	}
	asset, err := h.service.ReviewAsset(c.Request.Context(), c.Param("id"), c.Param("assetId"), *req.Approved)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, asset, nil)
}

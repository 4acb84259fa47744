package handler

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/univag/eventos-api/internal/service"
	"github.com/univag/eventos-api/pkg/response"
)

type reportService interface {
	Generate(ctx context.Context, eventID string, format service.ReportFormat) (*service.ReportResult, error)
}

// ReportHandler serves rendered event reports.
type ReportHandler struct {
	service reportService
}

// NewReportHandler constructs the handler.
func NewReportHandler(service reportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// Download godoc
// @Summary Download the event report
// @Tags Reports
// @Produce application/pdf
// @Produce text/csv
// @Param id path string true "Event ID"
// @Param format query string false "pdf or csv (default pdf)"
// @Success 200 {file} binary
// @Router /events/{id}/report [get]
func (h *ReportHandler) Download(c *gin.Context) {
	format := service.ReportFormat(strings.ToLower(strings.TrimSpace(c.Query("format"))))
	if format == "" {
		format = service.ReportFormatPDF
	}
	result, err := h.service.Generate(c.Request.Context(), c.Param("id"), format)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Payload)
}

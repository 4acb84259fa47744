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

type commentService interface {
	Add(ctx context.Context, eventID string, req dto.CreateCommentRequest) (*models.Comment, error)
	ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error)
}

// CommentHandler exposes the per-event communication log.
type CommentHandler struct {
	service commentService
}

// NewCommentHandler constructs the handler.
func NewCommentHandler(service commentService) *CommentHandler {
	return &CommentHandler{service: service}
}

// Create godoc
// @Summary Add a comment to an event
// @Tags Comments
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param payload body dto.CreateCommentRequest true "Comment payload"
// @Success 201 {object} response.Envelope
// @Router /events/{id}/comments [post]
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid comment payload"))
		return
	}
	comment, err := h.service.Add(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, comment)
}

// List godoc
// @Summary List event comments and notifications
// @Tags Comments
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} response.Envelope
// @Router /events/{id}/comments [get]
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.service.ListByEvent(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, comments, nil)
}

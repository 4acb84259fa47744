package service

import (
	"context"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type commentStore interface {
	Append(ctx context.Context, comment models.Comment) error
	ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error)
}

// CommentService manages the per-event communication log. Decision
// notifications land in the same log, flagged as notifications.
type CommentService struct {
	comments  commentStore
	events    eventReader
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time
}

// NewCommentService constructs the service.
func NewCommentService(comments commentStore, events eventReader, validate *validator.Validate, logger *zap.Logger) *CommentService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CommentService{
		comments:  comments,
		events:    events,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// Add appends a user comment to the event's log.
func (s *CommentService) Add(ctx context.Context, eventID string, req dto.CreateCommentRequest) (*models.Comment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	if strings.TrimSpace(req.Message) == "" {
		return nil, appErrors.Clone(appErrors.ErrValidation, "message must not be blank")
	}
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		ID:         uuid.NewString(),
		EventID:    eventID,
		Author:     req.Author,
		Department: req.Department,
		Message:    req.Message,
		Timestamp:  s.now().UTC(),
	}
	if err := s.comments.Append(ctx, comment); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store comment")
	}
	return &comment, nil
}

// ListByEvent returns the event's log in chronological append order.
func (s *CommentService) ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type eventStore interface {
	Create(ctx context.Context, event *models.Event) error
	GetByID(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, event *models.Event) error
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

type resourceReader interface {
	GetByID(ctx context.Context, id string) (*models.Resource, error)
}

type notificationAppender interface {
	Append(ctx context.Context, comment models.Comment) error
}

var departmentLabels = map[models.Department]string{
	models.DepartmentProvost:     "Pró-Reitoria",
	models.DepartmentCeremonial:  "Cerimonial",
	models.DepartmentAudiovisual: "Audiovisual",
	models.DepartmentMarketing:   "Marketing",
}

// WorkflowService runs the department-by-department approval pipeline.
// It is the only mutator of Event.Status, which it always recomputes from
// the approvals list.
type WorkflowService struct {
	events        eventStore
	resources     resourceReader
	notifications notificationAppender
	validator     *validator.Validate
	metrics       *MetricsService
	logger        *zap.Logger
	now           func() time.Time
}

// WorkflowOption customises optional service collaborators.
type WorkflowOption func(*WorkflowService)

// WithWorkflowMetrics attaches domain counters to the workflow.
func WithWorkflowMetrics(metrics *MetricsService) WorkflowOption {
	return func(s *WorkflowService) {
		s.metrics = metrics
	}
}

// NewWorkflowService constructs the service.
func NewWorkflowService(events eventStore, resources resourceReader, notifications notificationAppender, validate *validator.Validate, logger *zap.Logger, opts ...WorkflowOption) *WorkflowService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	svc := &WorkflowService{
		events:        events,
		resources:     resources,
		notifications: notifications,
		validator:     validate,
		logger:        logger,
		now:           time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

// Submit validates the draft and creates the event with one pending approval
// step per required department, in pipeline order. Status starts at the first
// required department's aguardando_* state.
func (s *WorkflowService) Submit(ctx context.Context, req dto.CreateEventRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	if !req.Type.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown event type: %s", req.Type))
	}
	if req.ExpectedAttendees == nil || *req.ExpectedAttendees < 0 {
		return nil, appErrors.Clone(appErrors.ErrValidation, "expectedAttendees must be a non-negative integer")
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, appErrors.Clone(appErrors.ErrValidation, "endDate must not be before startDate")
	}

	snapshots, err := s.resolveResources(ctx, req.ResourceIDs)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	event := &models.Event{
		ID:                  uuid.NewString(),
		Title:               strings.TrimSpace(req.Title),
		Type:                req.Type,
		Description:         req.Description,
		RequestedBy:         req.RequestedBy,
		Department:          req.Department,
		StartDate:           req.StartDate,
		EndDate:             req.EndDate,
		Location:            req.Location,
		ExpectedAttendees:   *req.ExpectedAttendees,
		Resources:           snapshots,
		RequiresCeremony:    req.RequiresCeremony,
		RequiresAudiovisual: req.RequiresAudiovisual,
		RequiresMarketing:   req.RequiresMarketing,
		MarketingAssets:     req.MarketingAssets,
		CreatedAt:           now,
		UpdatedAt:           now,
	}
	if req.Notes != "" {
		notes := req.Notes
		event.Notes = &notes
	}
	for _, dept := range event.RequiredDepartments() {
		event.Approvals = append(event.Approvals, models.ApprovalStep{
			Department: dept,
			Status:     models.ApprovalStatusPending,
		})
	}
	event.Status = deriveStatus(event)

	if err := s.events.Create(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store event")
	}
	s.metrics.RecordEventSubmitted()
	s.logger.Info("event submitted",
		zap.String("event_id", event.ID),
		zap.String("status", string(event.Status)),
		zap.Int("approval_steps", len(event.Approvals)),
	)
	return event, nil
}

// Decide records one department's verdict. A rejection cancels the event and
// halts the pipeline: later decisions fail with ALREADY_DECIDED rather than
// silently succeeding.
func (s *WorkflowService) Decide(ctx context.Context, eventID string, req dto.DecisionRequest) (*models.Event, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "missing required fields")
	}
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.Status == models.EventStatusCancelled {
		return nil, appErrors.Clone(appErrors.ErrAlreadyDecided, "approval pipeline halted: event is cancelled")
	}
	step := event.Step(req.Department)
	if step == nil {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("event does not require %s approval", req.Department))
	}
	if step.Status != models.ApprovalStatusPending {
		return nil, appErrors.ErrAlreadyDecided
	}

	now := s.now().UTC()
	approver := req.Approver
	step.ApprovedBy = &approver
	step.ApprovedAt = &now
	if req.Notes != "" {
		notes := req.Notes
		step.Notes = &notes
	}
	if *req.Approved {
		step.Status = models.ApprovalStatusApproved
	} else {
		step.Status = models.ApprovalStatusRejected
	}
	event.Status = deriveStatus(event)
	event.UpdatedAt = now

	if err := s.events.Update(ctx, event); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to update event")
	}
	s.metrics.RecordDecision(req.Department, *req.Approved)
	s.notifyDecision(ctx, event, req, now)
	return event, nil
}

// Progress returns approved and total step counts for the event.
func (s *WorkflowService) Progress(ctx context.Context, eventID string) (dto.ProgressResponse, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	approved := 0
	for _, step := range event.Approvals {
		if step.Status == models.ApprovalStatusApproved {
			approved++
		}
	}
	return dto.ProgressResponse{EventID: event.ID, Approved: approved, Total: len(event.Approvals)}, nil
}

// Get returns one event.
func (s *WorkflowService) Get(ctx context.Context, eventID string) (*models.Event, error) {
	return s.events.GetByID(ctx, eventID)
}

// List returns events matching the filter, in store order.
func (s *WorkflowService) List(ctx context.Context, filter models.EventFilter) ([]models.Event, error) {
	return s.events.List(ctx, filter)
}

// Pending returns events sitting in the approval pipeline, optionally only
// those with a pending step for one department.
func (s *WorkflowService) Pending(ctx context.Context, dept models.Department) ([]models.Event, error) {
	filter := models.EventFilter{Awaiting: true}
	if dept != "" {
		if _, ok := departmentLabels[dept]; !ok {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown department: %s", dept))
		}
		filter.PendingDepartment = dept
	}
	return s.events.List(ctx, filter)
}

func (s *WorkflowService) resolveResources(ctx context.Context, ids []string) ([]models.Resource, error) {
	if s.resources == nil || len(ids) == 0 {
		return nil, nil
	}
	snapshots := make([]models.Resource, 0, len(ids))
	for _, id := range ids {
		resource, err := s.resources.GetByID(ctx, id)
		if err != nil {
			return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown resource: %s", id))
		}
		snapshots = append(snapshots, *resource)
	}
	return snapshots, nil
}

func (s *WorkflowService) notifyDecision(ctx context.Context, event *models.Event, req dto.DecisionRequest, now time.Time) {
	if s.notifications == nil {
		return
	}
	verdict := "aprovou"
	if !*req.Approved {
		verdict = "rejeitou"
	}
	message := fmt.Sprintf("%s %s a solicitação do evento \"%s\".", departmentLabels[req.Department], verdict, event.Title)
	if req.Notes != "" {
		message = fmt.Sprintf("%s Observações: %s", message, req.Notes)
	}
	comment := models.Comment{
		ID:             uuid.NewString(),
		EventID:        event.ID,
		Author:         req.Approver,
		Department:     departmentLabels[req.Department],
		Message:        message,
		Timestamp:      now,
		IsNotification: true,
	}
	if err := s.notifications.Append(ctx, comment); err != nil {
		s.logger.Warn("failed to append decision notification", zap.String("event_id", event.ID), zap.Error(err))
	}
}

// deriveStatus recomputes the aggregate status from the approvals list:
// any rejection cancels the event; otherwise the first pending step names
// the awaiting department; with none left the event is approved.
func deriveStatus(event *models.Event) models.EventStatus {
	for _, step := range event.Approvals {
		if step.Status == models.ApprovalStatusRejected {
			return models.EventStatusCancelled
		}
	}
	for _, step := range event.Approvals {
		if step.Status == models.ApprovalStatusPending {
			return models.AwaitingStatusFor(step.Department)
		}
	}
	return models.EventStatusApproved
}

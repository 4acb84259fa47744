package service

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
)

const dashboardCacheKey = "dash:overview"

type eventLister interface {
	List(ctx context.Context, filter models.EventFilter) ([]models.Event, error)
}

// DashboardService composes the overview tiles from the event list. Payloads
// are cached for a short TTL and invalidated on every workflow mutation.
type DashboardService struct {
	events   eventLister
	cache    *CacheService
	logger   *zap.Logger
	now      func() time.Time
	cacheTTL time.Duration
	upcoming int
}

// NewDashboardService constructs the service.
func NewDashboardService(events eventLister, cache *CacheService, cacheTTL time.Duration, logger *zap.Logger) *DashboardService {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DashboardService{
		events:   events,
		cache:    cache,
		logger:   logger,
		now:      time.Now,
		cacheTTL: cacheTTL,
		upcoming: 5,
	}
}

// Overview returns the dashboard payload and whether it came from cache.
func (s *DashboardService) Overview(ctx context.Context) (*dto.DashboardResponse, bool, error) {
	var cached dto.DashboardResponse
	if hit, err := s.cache.Get(ctx, dashboardCacheKey, &cached); err == nil && hit {
		return &cached, true, nil
	}

	events, err := s.events.List(ctx, models.EventFilter{})
	if err != nil {
		return nil, false, err
	}
	summary := s.compose(events)
	if err := s.cache.Set(ctx, dashboardCacheKey, summary, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
	return summary, false, nil
}

// Invalidate drops the cached payload after a workflow mutation.
func (s *DashboardService) Invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx, dashboardCacheKey); err != nil {
		s.logger.Warn("dashboard cache invalidate failed", zap.Error(err))
	}
}

func (s *DashboardService) compose(events []models.Event) *dto.DashboardResponse {
	now := s.now()
	summary := &dto.DashboardResponse{
		TotalEvents: len(events),
		Upcoming:    []models.Event{},
	}

	pendingByDept := make(map[models.Department]int, len(models.PipelineOrder))
	countByType := make(map[models.EventType]int, len(models.EventTypes))
	for _, event := range events {
		countByType[event.Type]++
		switch {
		case event.Status.Awaiting():
			summary.PendingApproval++
		case event.Status == models.EventStatusApproved:
			summary.Approved++
		}
		if event.Status != models.EventStatusCancelled {
			summary.ExpectedAttendees += event.ExpectedAttendees
		}
		for _, step := range event.Approvals {
			if step.Status == models.ApprovalStatusPending && event.Status.Awaiting() {
				pendingByDept[step.Department]++
			}
		}
		if event.StartDate.After(now) && event.Status != models.EventStatusCancelled {
			summary.Upcoming = append(summary.Upcoming, event)
		}
	}

	sort.SliceStable(summary.Upcoming, func(i, j int) bool {
		return summary.Upcoming[i].StartDate.Before(summary.Upcoming[j].StartDate)
	})
	if len(summary.Upcoming) > s.upcoming {
		summary.Upcoming = summary.Upcoming[:s.upcoming]
	}

	for _, dept := range models.PipelineOrder {
		summary.ByDepartment = append(summary.ByDepartment, dto.DepartmentQueue{
			Department: dept,
			Pending:    pendingByDept[dept],
		})
	}
	for _, eventType := range models.EventTypes {
		summary.ByType = append(summary.ByType, dto.TypeBreakdown{
			Type:  eventType,
			Count: countByType[eventType],
		})
	}
	return summary
}

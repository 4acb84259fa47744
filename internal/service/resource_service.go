package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type resourceLister interface {
	GetByID(ctx context.Context, id string) (*models.Resource, error)
	List(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error)
}

type resourceUsageReader interface {
	UsageOf(ctx context.Context, resourceID string) ([]models.Event, error)
}

// ResourceService answers registry and usage queries over bookable assets.
type ResourceService struct {
	resources resourceLister
	events    resourceUsageReader
	logger    *zap.Logger
}

// NewResourceService constructs the service.
func NewResourceService(resources resourceLister, events resourceUsageReader, logger *zap.Logger) *ResourceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceService{resources: resources, events: events, logger: logger}
}

// Search lists registry entries matching the filter.
func (s *ResourceService) Search(ctx context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	if filter.Type != "" && !filter.Type.Valid() {
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unknown resource type: %s", filter.Type))
	}
	return s.resources.List(ctx, filter)
}

// Get returns one registry entry.
func (s *ResourceService) Get(ctx context.Context, id string) (*models.Resource, error) {
	return s.resources.GetByID(ctx, id)
}

// UsageOf returns the events referencing the resource, in event list order.
// Unknown or unused resource ids yield an empty list, never an error.
func (s *ResourceService) UsageOf(ctx context.Context, resourceID string) ([]models.Event, error) {
	events, err := s.events.UsageOf(ctx, resourceID)
	if err != nil {
		return nil, err
	}
	if events == nil {
		events = []models.Event{}
	}
	return events, nil
}

// Stats aggregates availability counts per resource type, in type order.
func (s *ResourceService) Stats(ctx context.Context) ([]models.ResourceTypeStats, error) {
	resources, err := s.resources.List(ctx, models.ResourceFilter{})
	if err != nil {
		return nil, err
	}
	byType := make(map[models.ResourceType]*models.ResourceTypeStats, len(models.ResourceTypes))
	stats := make([]models.ResourceTypeStats, len(models.ResourceTypes))
	for i, t := range models.ResourceTypes {
		stats[i] = models.ResourceTypeStats{Type: t}
		byType[t] = &stats[i]
	}
	for _, resource := range resources {
		entry, ok := byType[resource.Type]
		if !ok {
			continue
		}
		entry.Total++
		if resource.Available {
			entry.Available++
		} else {
			entry.InUse++
		}
	}
	return stats, nil
}

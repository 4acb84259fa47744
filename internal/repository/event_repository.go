package repository

import (
	"context"
	"sync"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

// EventRepository is an in-memory event store. Events keep their insertion
// order, which listing preserves; callers receive copies, never the stored
// values.
type EventRepository struct {
	mu     sync.RWMutex
	events []*models.Event
	index  map[string]int
}

// NewEventRepository returns an empty event store.
func NewEventRepository() *EventRepository {
	return &EventRepository{index: make(map[string]int)}
}

// Create appends the event. Duplicate IDs are rejected.
func (r *EventRepository) Create(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[event.ID]; exists {
		return appErrors.Clone(appErrors.ErrConflict, "event id already exists")
	}
	stored := cloneEvent(event)
	r.index[event.ID] = len(r.events)
	r.events = append(r.events, stored)
	return nil
}

// GetByID returns a copy of the event or ErrNotFound.
func (r *EventRepository) GetByID(_ context.Context, id string) (*models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	return cloneEvent(r.events[pos]), nil
}

// Update replaces the stored event in place, keeping its list position.
func (r *EventRepository) Update(_ context.Context, event *models.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	pos, ok := r.index[event.ID]
	if !ok {
		return appErrors.ErrNotFound
	}
	r.events[pos] = cloneEvent(event)
	return nil
}

// List returns events matching the filter, in insertion order.
func (r *EventRepository) List(_ context.Context, filter models.EventFilter) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]models.Event, 0, len(r.events))
	for _, event := range r.events {
		if filter.Status != "" && event.Status != filter.Status {
			continue
		}
		if filter.Type != "" && event.Type != filter.Type {
			continue
		}
		if filter.Awaiting && !event.Status.Awaiting() {
			continue
		}
		if filter.PendingDepartment != "" {
			step := event.Step(filter.PendingDepartment)
			if step == nil || step.Status != models.ApprovalStatusPending {
				continue
			}
		}
		result = append(result, *cloneEvent(event))
	}
	return result, nil
}

// UsageOf returns the events whose resource snapshots reference resourceID,
// in insertion order.
func (r *EventRepository) UsageOf(_ context.Context, resourceID string) ([]models.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []models.Event
	for _, event := range r.events {
		for _, res := range event.Resources {
			if res.ID == resourceID {
				result = append(result, *cloneEvent(event))
				break
			}
		}
	}
	return result, nil
}

func cloneEvent(event *models.Event) *models.Event {
	clone := *event
	clone.Resources = append([]models.Resource(nil), event.Resources...)
	clone.Approvals = append([]models.ApprovalStep(nil), event.Approvals...)
	if event.MarketingAssets != nil {
		flags := *event.MarketingAssets
		clone.MarketingAssets = &flags
	}
	return &clone
}

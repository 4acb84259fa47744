package repository

import (
	"context"
	"strings"
	"sync"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

// ResourceRepository is the in-memory resource registry.
type ResourceRepository struct {
	mu        sync.RWMutex
	resources []models.Resource
	index     map[string]int
}

// NewResourceRepository returns an empty registry.
func NewResourceRepository() *ResourceRepository {
	return &ResourceRepository{index: make(map[string]int)}
}

// Create registers a resource. Duplicate IDs are rejected.
func (r *ResourceRepository) Create(_ context.Context, resource models.Resource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.index[resource.ID]; exists {
		return appErrors.Clone(appErrors.ErrConflict, "resource id already exists")
	}
	r.index[resource.ID] = len(r.resources)
	r.resources = append(r.resources, resource)
	return nil
}

// GetByID returns the resource or ErrNotFound.
func (r *ResourceRepository) GetByID(_ context.Context, id string) (*models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.index[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	resource := r.resources[pos]
	return &resource, nil
}

// List returns registry entries matching the filter, in registry order.
// The query matches name and location case-insensitively; all filters AND.
func (r *ResourceRepository) List(_ context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	query := strings.ToLower(strings.TrimSpace(filter.Query))
	result := make([]models.Resource, 0, len(r.resources))
	for _, resource := range r.resources {
		if filter.Type != "" && resource.Type != filter.Type {
			continue
		}
		if filter.Available != nil && resource.Available != *filter.Available {
			continue
		}
		if query != "" && !matchesQuery(resource, query) {
			continue
		}
		result = append(result, resource)
	}
	return result, nil
}

func matchesQuery(resource models.Resource, query string) bool {
	if strings.Contains(strings.ToLower(resource.Name), query) {
		return true
	}
	return resource.Location != nil && strings.Contains(strings.ToLower(*resource.Location), query)
}

package models

// ResourceType enumerates bookable asset categories.
type ResourceType string

const (
	ResourceTypeRoom      ResourceType = "sala"
	ResourceTypeEquipment ResourceType = "equipamento"
	ResourceTypeMaterial  ResourceType = "material"
)

// ResourceTypes lists every valid resource type.
var ResourceTypes = []ResourceType{
	ResourceTypeRoom,
	ResourceTypeEquipment,
	ResourceTypeMaterial,
}

// Valid reports whether the type belongs to the closed set.
func (t ResourceType) Valid() bool {
	for _, known := range ResourceTypes {
		if t == known {
			return true
		}
	}
	return false
}

// Resource is a bookable asset. Available is a static flag maintained by the
// registry, not derived from overlapping reservations.
type Resource struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Type      ResourceType `json:"type"`
	Available bool         `json:"available"`
	Location  *string      `json:"location,omitempty"`
}

// ResourceFilter narrows down registry queries. Available is tri-state:
// nil means no availability constraint.
type ResourceFilter struct {
	Query     string
	Type      ResourceType
	Available *bool
}

// ResourceTypeStats aggregates availability counts for one resource type.
type ResourceTypeStats struct {
	Type      ResourceType `json:"type"`
	Total     int          `json:"total"`
	Available int          `json:"available"`
	InUse     int          `json:"inUse"`
}

package dto

import "github.com/univag/eventos-api/internal/models"

// DepartmentQueue reports how many events sit in one department's inbox.
type DepartmentQueue struct {
	Department models.Department `json:"department"`
	Pending    int               `json:"pending"`
}

// TypeBreakdown counts events per category.
type TypeBreakdown struct {
	Type  models.EventType `json:"type"`
	Count int              `json:"count"`
}

// DashboardResponse mirrors the admin dashboard tiles: totals, the upcoming
// event list and per-department / per-type breakdowns.
type DashboardResponse struct {
	TotalEvents       int               `json:"totalEvents"`
	PendingApproval   int               `json:"pendingApproval"`
	Approved          int               `json:"approved"`
	ExpectedAttendees int               `json:"expectedAttendees"`
	Upcoming          []models.Event    `json:"upcoming"`
	ByDepartment      []DepartmentQueue `json:"byDepartment"`
	ByType            []TypeBreakdown   `json:"byType"`
}

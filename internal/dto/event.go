package dto

import (
	"time"

	"github.com/univag/eventos-api/internal/models"
)

// CreateEventRequest is the submission payload for a new event request.
// Resources carries registry IDs; snapshots are resolved server-side.
type CreateEventRequest struct {
	Title               string                      `json:"title" validate:"required"`
	Type                models.EventType            `json:"type" validate:"required"`
	Description         string                      `json:"description" validate:"required"`
	RequestedBy         string                      `json:"requestedBy" validate:"required"`
	Department          string                      `json:"department" validate:"required"`
	StartDate           time.Time                   `json:"startDate" validate:"required"`
	EndDate             time.Time                   `json:"endDate" validate:"required"`
	Location            string                      `json:"location" validate:"required"`
	ExpectedAttendees   *int                        `json:"expectedAttendees" validate:"required"`
	ResourceIDs         []string                    `json:"resourceIds"`
	RequiresCeremony    bool                        `json:"requiresCeremony"`
	RequiresAudiovisual bool                        `json:"requiresAudiovisual"`
	RequiresMarketing   bool                        `json:"requiresMarketing"`
	MarketingAssets     *models.MarketingAssetFlags `json:"marketingAssets"`
	Notes               string                      `json:"notes"`
}

// DecisionRequest records one department's verdict on an event.
type DecisionRequest struct {
	Department models.Department `json:"department" validate:"required"`
	Approved   *bool             `json:"approved" validate:"required"`
	Approver   string            `json:"approver" validate:"required"`
	Notes      string            `json:"notes"`
}

// ProgressResponse summarises pipeline completion for one event.
type ProgressResponse struct {
	EventID  string `json:"eventId"`
	Approved int    `json:"approved"`
	Total    int    `json:"total"`
}

// CreateCommentRequest appends a message to an event's communication log.
type CreateCommentRequest struct {
	Author     string `json:"author" validate:"required"`
	Department string `json:"department" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// ReviewAssetRequest records a marketing material review verdict.
type ReviewAssetRequest struct {
	Approved *bool `json:"approved" validate:"required"`
}

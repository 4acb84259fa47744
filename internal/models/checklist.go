package models

import "time"

// ChecklistCategory splits logistics tasks around the event date.
type ChecklistCategory string

const (
	ChecklistCategoryPre    ChecklistCategory = "pre_evento"
	ChecklistCategoryDuring ChecklistCategory = "durante_evento"
	ChecklistCategoryPost   ChecklistCategory = "pos_evento"
)

// ChecklistTask is a derived logistics action item. OffsetDays is signed:
// negative means before the event start, zero the day of, positive after.
// Deadline is always startDate + OffsetDays at midnight.
type ChecklistTask struct {
	ID         string            `json:"id"`
	Title      string            `json:"title"`
	Category   ChecklistCategory `json:"category"`
	OffsetDays int               `json:"offsetDays"`
	Deadline   time.Time         `json:"deadline"`
	Completed  bool              `json:"completed"`
	Overdue    bool              `json:"overdue"`
}

// MarketingTaskStatus tracks progress of a production schedule entry.
type MarketingTaskStatus string

const (
	MarketingTaskPending    MarketingTaskStatus = "pendente"
	MarketingTaskInProgress MarketingTaskStatus = "em_andamento"
	MarketingTaskDone       MarketingTaskStatus = "concluido"
)

// MarketingPriority ranks production schedule entries.
type MarketingPriority string

const (
	MarketingPriorityHigh   MarketingPriority = "alta"
	MarketingPriorityMedium MarketingPriority = "media"
	MarketingPriorityLow    MarketingPriority = "baixa"
)

// MarketingDeadline is a derived production schedule entry.
type MarketingDeadline struct {
	Task       string              `json:"task"`
	OffsetDays int                 `json:"offsetDays"`
	Deadline   time.Time           `json:"deadline"`
	Status     MarketingTaskStatus `json:"status"`
	Priority   MarketingPriority   `json:"priority"`
	Overdue    bool                `json:"overdue"`
}

// MarketingAssetType enumerates material kinds tracked for an event.
type MarketingAssetType string

const (
	MarketingAssetLogo     MarketingAssetType = "logo"
	MarketingAssetBriefing MarketingAssetType = "briefing"
	MarketingAssetDigital  MarketingAssetType = "layout_digital"
	MarketingAssetPrint    MarketingAssetType = "layout_impresso"
	MarketingAssetPhotos   MarketingAssetType = "fotos"
)

// MarketingAssetStatus tracks the review lifecycle of one material.
type MarketingAssetStatus string

const (
	MarketingAssetAwaitingUpload MarketingAssetStatus = "aguardando_upload"
	MarketingAssetInReview       MarketingAssetStatus = "em_revisao"
	MarketingAssetApproved       MarketingAssetStatus = "aprovado"
	MarketingAssetRejected       MarketingAssetStatus = "rejeitado"
)

// MarketingAsset is a derived material tracking entry. No file content is
// handled; upload marks the entry as submitted for review.
type MarketingAsset struct {
	ID         string               `json:"id"`
	Type       MarketingAssetType   `json:"type"`
	Name       string               `json:"name"`
	Status     MarketingAssetStatus `json:"status"`
	UploadedAt *time.Time           `json:"uploadedAt,omitempty"`
	ApprovedAt *time.Time           `json:"approvedAt,omitempty"`
	Deadline   time.Time            `json:"deadline"`
	Overdue    bool                 `json:"overdue"`
}

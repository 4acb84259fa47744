package models

import "time"

// Department enumerates the approval authorities, in pipeline order.
type Department string

const (
	DepartmentProvost     Department = "pro_reitoria"
	DepartmentCeremonial  Department = "cerimonial"
	DepartmentAudiovisual Department = "audiovisual"
	DepartmentMarketing   Department = "marketing"
)

// PipelineOrder is the fixed review sequence for approval steps.
var PipelineOrder = []Department{
	DepartmentProvost,
	DepartmentCeremonial,
	DepartmentAudiovisual,
	DepartmentMarketing,
}

// ApprovalStatus captures one department's verdict state.
type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pendente"
	ApprovalStatusApproved ApprovalStatus = "aprovado"
	ApprovalStatusRejected ApprovalStatus = "rejeitado"
)

// EventStatus is the aggregate lifecycle state of an event request.
type EventStatus string

const (
	EventStatusDraft               EventStatus = "rascunho"
	EventStatusAwaitingProvost     EventStatus = "aguardando_pro_reitoria"
	EventStatusAwaitingCeremonial  EventStatus = "aguardando_cerimonial"
	EventStatusAwaitingAudiovisual EventStatus = "aguardando_audiovisual"
	EventStatusAwaitingMarketing   EventStatus = "aguardando_marketing"
	EventStatusApproved            EventStatus = "aprovado"
	EventStatusInExecution         EventStatus = "em_execucao"
	EventStatusCompleted           EventStatus = "concluido"
	EventStatusCancelled           EventStatus = "cancelado"
)

// Awaiting reports whether the status is one of the aguardando_* pipeline states.
func (s EventStatus) Awaiting() bool {
	switch s {
	case EventStatusAwaitingProvost, EventStatusAwaitingCeremonial,
		EventStatusAwaitingAudiovisual, EventStatusAwaitingMarketing:
		return true
	}
	return false
}

// AwaitingStatusFor maps a department to its aguardando_* status.
func AwaitingStatusFor(dept Department) EventStatus {
	return EventStatus("aguardando_" + string(dept))
}

// EventType enumerates supported event categories.
type EventType string

const (
	EventTypeAcademic      EventType = "academico"
	EventTypeInstitutional EventType = "institucional"
	EventTypeCultural      EventType = "cultural"
	EventTypeOutreach      EventType = "extensao"
	EventTypeScientific    EventType = "cientifico"
)

// EventTypes lists every valid event type, in display order.
var EventTypes = []EventType{
	EventTypeAcademic,
	EventTypeInstitutional,
	EventTypeCultural,
	EventTypeOutreach,
	EventTypeScientific,
}

// Valid reports whether the type belongs to the closed set.
func (t EventType) Valid() bool {
	for _, known := range EventTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ApprovalStep is one department's verdict on one event. Approver and
// timestamp are set exactly when the status leaves pendente; a rejected
// step records who rejected it.
type ApprovalStep struct {
	Department Department     `json:"department"`
	Status     ApprovalStatus `json:"status"`
	ApprovedBy *string        `json:"approvedBy,omitempty"`
	ApprovedAt *time.Time     `json:"approvedAt,omitempty"`
	Notes      *string        `json:"notes,omitempty"`
}

// MarketingAssetFlags describes the requested material channels.
type MarketingAssetFlags struct {
	Digital bool `json:"digital"`
	Print   bool `json:"print"`
	Social  bool `json:"social"`
}

// Event is a request for an institutional activity. Resources are snapshots
// of registry entries at request time; the approvals list holds one step per
// required department in pipeline order.
type Event struct {
	ID                  string               `json:"id"`
	Title               string               `json:"title"`
	Type                EventType            `json:"type"`
	Description         string               `json:"description"`
	RequestedBy         string               `json:"requestedBy"`
	Department          string               `json:"department"`
	StartDate           time.Time            `json:"startDate"`
	EndDate             time.Time            `json:"endDate"`
	Location            string               `json:"location"`
	ExpectedAttendees   int                  `json:"expectedAttendees"`
	Status              EventStatus          `json:"status"`
	Resources           []Resource           `json:"resources"`
	Approvals           []ApprovalStep       `json:"approvals"`
	RequiresCeremony    bool                 `json:"requiresCeremony"`
	RequiresAudiovisual bool                 `json:"requiresAudiovisual"`
	RequiresMarketing   bool                 `json:"requiresMarketing"`
	MarketingAssets     *MarketingAssetFlags `json:"marketingAssets,omitempty"`
	Notes               *string              `json:"notes,omitempty"`
	CreatedAt           time.Time            `json:"createdAt"`
	UpdatedAt           time.Time            `json:"updatedAt"`
}

// RequiredDepartments returns the pipeline departments this event needs,
// in pipeline order. Provost review is always required.
func (e *Event) RequiredDepartments() []Department {
	required := []Department{DepartmentProvost}
	if e.RequiresCeremony {
		required = append(required, DepartmentCeremonial)
	}
	if e.RequiresAudiovisual {
		required = append(required, DepartmentAudiovisual)
	}
	if e.RequiresMarketing {
		required = append(required, DepartmentMarketing)
	}
	return required
}

// Step returns the approval step for dept, or nil when the event does not
// require that department.
func (e *Event) Step(dept Department) *ApprovalStep {
	for i := range e.Approvals {
		if e.Approvals[i].Department == dept {
			return &e.Approvals[i]
		}
	}
	return nil
}

// EventFilter constrains event listing queries.
type EventFilter struct {
	Status            EventStatus
	Type              EventType
	Awaiting          bool
	PendingDepartment Department
}

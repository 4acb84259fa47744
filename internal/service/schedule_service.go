package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type checklistTemplateEntry struct {
	id       string
	title    string
	category models.ChecklistCategory
	offset   int
}

// checklistTemplate is the fixed logistics plan every event derives its
// checklist from. Offsets are days relative to the event start.
var checklistTemplate = []checklistTemplateEntry{
	{"check_location", "Verificar disponibilidade do local", models.ChecklistCategoryPre, -30},
	{"reserve_equipment", "Reservar equipamentos necessários (projetores, microfones, etc.)", models.ChecklistCategoryPre, -25},
	{"confirm_catering", "Confirmar serviço de coffee break/catering", models.ChecklistCategoryPre, -20},
	{"setup_seating", "Organizar disposição de cadeiras e mesas", models.ChecklistCategoryPre, -15},
	{"prepare_materials", "Preparar materiais (crachás, certificados, pastas)", models.ChecklistCategoryPre, -10},
	{"coordinate_staff", "Coordenar equipe de apoio e recepcionistas", models.ChecklistCategoryPre, -7},
	{"test_equipment", "Testar todos os equipamentos audiovisuais", models.ChecklistCategoryPre, -3},
	{"final_inspection", "Inspeção final do local e setup", models.ChecklistCategoryPre, -1},
	{"reception_setup", "Montar recepção e credenciamento", models.ChecklistCategoryDuring, 0},
	{"guest_reception", "Recepcionar convidados e autoridades", models.ChecklistCategoryDuring, 0},
	{"ceremony_coordination", "Coordenar protocolo e cerimônia", models.ChecklistCategoryDuring, 0},
	{"monitor_logistics", "Monitorar logística durante o evento", models.ChecklistCategoryDuring, 0},
	{"collect_feedback", "Coletar feedback dos participantes", models.ChecklistCategoryPost, 1},
	{"return_equipment", "Devolver equipamentos e materiais", models.ChecklistCategoryPost, 1},
	{"final_report", "Elaborar relatório final do evento", models.ChecklistCategoryPost, 3},
}

type marketingScheduleEntry struct {
	task     string
	offset   int
	status   models.MarketingTaskStatus
	priority models.MarketingPriority
}

// marketingScheduleTemplate is the fixed campaign production plan.
var marketingScheduleTemplate = []marketingScheduleEntry{
	{"Receber briefing e materiais do cliente", -30, models.MarketingTaskDone, models.MarketingPriorityHigh},
	{"Criar layouts digitais (redes sociais)", -25, models.MarketingTaskInProgress, models.MarketingPriorityHigh},
	{"Aprovação de layouts digitais", -20, models.MarketingTaskPending, models.MarketingPriorityHigh},
	{"Criar materiais impressos (banners, cartazes)", -18, models.MarketingTaskPending, models.MarketingPriorityMedium},
	{"Aprovação de materiais impressos", -15, models.MarketingTaskPending, models.MarketingPriorityMedium},
	{"Enviar para impressão", -12, models.MarketingTaskPending, models.MarketingPriorityHigh},
	{"Publicar campanha digital", -10, models.MarketingTaskPending, models.MarketingPriorityHigh},
	{"Receber materiais impressos", -5, models.MarketingTaskPending, models.MarketingPriorityHigh},
	{"Distribuir materiais impressos", -3, models.MarketingTaskPending, models.MarketingPriorityMedium},
	{"Cobertura durante o evento (fotos/vídeos)", 0, models.MarketingTaskPending, models.MarketingPriorityHigh},
	{"Publicar conteúdo pós-evento", 2, models.MarketingTaskPending, models.MarketingPriorityLow},
}

type marketingAssetEntry struct {
	id             string
	assetType      models.MarketingAssetType
	name           string
	status         models.MarketingAssetStatus
	uploadedOffset *int
	approvedOffset *int
	deadlineOffset int
}

func offsetPtr(v int) *int { return &v }

// marketingAssetTemplate is the fixed material tracking plan. Uploaded and
// approved offsets are relative to the event start, like deadlines.
var marketingAssetTemplate = []marketingAssetEntry{
	{"asset_1", models.MarketingAssetLogo, "Logo do Evento", models.MarketingAssetApproved, offsetPtr(-28), offsetPtr(-27), -30},
	{"asset_2", models.MarketingAssetBriefing, "Briefing do Evento", models.MarketingAssetApproved, offsetPtr(-28), nil, -30},
	{"asset_3", models.MarketingAssetDigital, "Arte para Instagram - Feed", models.MarketingAssetInReview, offsetPtr(-2), nil, -20},
	{"asset_4", models.MarketingAssetDigital, "Arte para Instagram - Stories", models.MarketingAssetInReview, offsetPtr(-2), nil, -20},
	{"asset_5", models.MarketingAssetPrint, "Banner 2x1m", models.MarketingAssetAwaitingUpload, nil, nil, -15},
	{"asset_6", models.MarketingAssetPrint, "Cartaz A3", models.MarketingAssetAwaitingUpload, nil, nil, -15},
}

type assetState struct {
	status     models.MarketingAssetStatus
	uploadedAt *time.Time
	approvedAt *time.Time
}

type eventReader interface {
	GetByID(ctx context.Context, id string) (*models.Event, error)
}

// ScheduleService derives checklists, marketing schedules and material
// tracking from an event's start date. Derivation is pure; completion
// toggles and asset review state live in per-event overlays that are never
// written back to the event.
type ScheduleService struct {
	events eventReader
	logger *zap.Logger
	now    func() time.Time

	mu      sync.Mutex
	toggles map[string]map[string]bool
	assets  map[string]map[string]assetState
}

// NewScheduleService constructs the service.
func NewScheduleService(events eventReader, logger *zap.Logger) *ScheduleService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ScheduleService{
		events:  events,
		logger:  logger,
		now:     time.Now,
		toggles: make(map[string]map[string]bool),
		assets:  make(map[string]map[string]assetState),
	}
}

// Checklist derives the event's logistics checklist, applying any completion
// toggles recorded for it. Overdue means not completed and past the deadline.
func (s *ScheduleService) Checklist(ctx context.Context, eventID string) ([]models.ChecklistTask, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	s.mu.Lock()
	overlay := s.toggles[eventID]
	completed := make(map[string]bool, len(overlay))
	for id, done := range overlay {
		completed[id] = done
	}
	s.mu.Unlock()

	tasks := make([]models.ChecklistTask, 0, len(checklistTemplate))
	for _, entry := range checklistTemplate {
		deadline := deadlineFrom(event.StartDate, entry.offset)
		task := models.ChecklistTask{
			ID:         entry.id,
			Title:      entry.title,
			Category:   entry.category,
			OffsetDays: entry.offset,
			Deadline:   deadline,
			Completed:  completed[entry.id],
		}
		task.Overdue = !task.Completed && now.After(deadline)
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// ToggleTask flips one checklist task's completion state and returns the
// refreshed checklist.
func (s *ScheduleService) ToggleTask(ctx context.Context, eventID, taskID string) ([]models.ChecklistTask, error) {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return nil, err
	}
	if !knownChecklistTask(taskID) {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown checklist task: %s", taskID))
	}

	s.mu.Lock()
	overlay := s.toggles[eventID]
	if overlay == nil {
		overlay = make(map[string]bool)
		s.toggles[eventID] = overlay
	}
	overlay[taskID] = !overlay[taskID]
	s.mu.Unlock()

	return s.Checklist(ctx, eventID)
}

// ResetChecklist clears every completion toggle for the event.
func (s *ScheduleService) ResetChecklist(ctx context.Context, eventID string) error {
	if _, err := s.events.GetByID(ctx, eventID); err != nil {
		return err
	}
	s.mu.Lock()
	delete(s.toggles, eventID)
	s.mu.Unlock()
	return nil
}

// MarketingSchedule derives the campaign production schedule for the event.
// Entries not yet concluded and past their deadline are overdue.
func (s *ScheduleService) MarketingSchedule(ctx context.Context, eventID string) ([]models.MarketingDeadline, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	schedule := make([]models.MarketingDeadline, 0, len(marketingScheduleTemplate))
	for _, entry := range marketingScheduleTemplate {
		deadline := deadlineFrom(event.StartDate, entry.offset)
		schedule = append(schedule, models.MarketingDeadline{
			Task:       entry.task,
			OffsetDays: entry.offset,
			Deadline:   deadline,
			Status:     entry.status,
			Priority:   entry.priority,
			Overdue:    entry.status != models.MarketingTaskDone && now.After(deadline),
		})
	}
	return schedule, nil
}

// MarketingAssets derives the material tracking list for the event, applying
// any upload or review transitions recorded for it.
func (s *ScheduleService) MarketingAssets(ctx context.Context, eventID string) ([]models.MarketingAsset, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	now := s.now()

	s.mu.Lock()
	overlay := s.assets[eventID]
	states := make(map[string]assetState, len(overlay))
	for id, state := range overlay {
		states[id] = state
	}
	s.mu.Unlock()

	assets := make([]models.MarketingAsset, 0, len(marketingAssetTemplate))
	for _, entry := range marketingAssetTemplate {
		asset := deriveAsset(entry, event.StartDate)
		if state, ok := states[entry.id]; ok {
			asset.Status = state.status
			asset.UploadedAt = state.uploadedAt
			asset.ApprovedAt = state.approvedAt
		}
		asset.Overdue = asset.Status != models.MarketingAssetApproved && now.After(asset.Deadline)
		assets = append(assets, asset)
	}
	return assets, nil
}

// UploadAsset marks a material as submitted for review. Approved materials
// cannot be re-uploaded.
func (s *ScheduleService) UploadAsset(ctx context.Context, eventID, assetID string) (*models.MarketingAsset, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	entry, ok := assetEntry(assetID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown marketing asset: %s", assetID))
	}
	now := s.now().UTC()

	s.mu.Lock()
	state := s.currentAssetState(eventID, entry, event.StartDate)
	if state.status == models.MarketingAssetApproved {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, "asset already approved")
	}
	state.status = models.MarketingAssetInReview
	state.uploadedAt = &now
	state.approvedAt = nil
	s.setAssetState(eventID, assetID, state)
	s.mu.Unlock()

	s.logger.Info("marketing asset uploaded", zap.String("event_id", eventID), zap.String("asset_id", assetID))
	return s.assetByID(ctx, eventID, assetID)
}

// ReviewAsset records a review verdict for a material in revision.
func (s *ScheduleService) ReviewAsset(ctx context.Context, eventID, assetID string, approved bool) (*models.MarketingAsset, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	entry, ok := assetEntry(assetID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, fmt.Sprintf("unknown marketing asset: %s", assetID))
	}
	now := s.now().UTC()

	s.mu.Lock()
	state := s.currentAssetState(eventID, entry, event.StartDate)
	if state.status != models.MarketingAssetInReview {
		s.mu.Unlock()
		return nil, appErrors.Clone(appErrors.ErrConflict, fmt.Sprintf("asset is not in review: %s", state.status))
	}
	if approved {
		state.status = models.MarketingAssetApproved
		state.approvedAt = &now
	} else {
		state.status = models.MarketingAssetRejected
		state.approvedAt = nil
	}
	s.setAssetState(eventID, assetID, state)
	s.mu.Unlock()

	return s.assetByID(ctx, eventID, assetID)
}

func (s *ScheduleService) assetByID(ctx context.Context, eventID, assetID string) (*models.MarketingAsset, error) {
	assets, err := s.MarketingAssets(ctx, eventID)
	if err != nil {
		return nil, err
	}
	for i := range assets {
		if assets[i].ID == assetID {
			return &assets[i], nil
		}
	}
	return nil, appErrors.ErrNotFound
}

// currentAssetState reads the overlay entry, deriving the template's initial
// state on first touch. Caller holds s.mu.
func (s *ScheduleService) currentAssetState(eventID string, entry marketingAssetEntry, start time.Time) assetState {
	if overlay, ok := s.assets[eventID]; ok {
		if state, ok := overlay[entry.id]; ok {
			return state
		}
	}
	state := assetState{status: entry.status}
	if entry.uploadedOffset != nil {
		ts := deadlineFrom(start, *entry.uploadedOffset)
		state.uploadedAt = &ts
	}
	if entry.approvedOffset != nil {
		ts := deadlineFrom(start, *entry.approvedOffset)
		state.approvedAt = &ts
	}
	return state
}

func (s *ScheduleService) setAssetState(eventID, assetID string, state assetState) {
	overlay := s.assets[eventID]
	if overlay == nil {
		overlay = make(map[string]assetState)
		s.assets[eventID] = overlay
	}
	overlay[assetID] = state
}

func deriveAsset(entry marketingAssetEntry, start time.Time) models.MarketingAsset {
	asset := models.MarketingAsset{
		ID:       entry.id,
		Type:     entry.assetType,
		Name:     entry.name,
		Status:   entry.status,
		Deadline: deadlineFrom(start, entry.deadlineOffset),
	}
	if entry.uploadedOffset != nil {
		ts := deadlineFrom(start, *entry.uploadedOffset)
		asset.UploadedAt = &ts
	}
	if entry.approvedOffset != nil {
		ts := deadlineFrom(start, *entry.approvedOffset)
		asset.ApprovedAt = &ts
	}
	return asset
}

func knownChecklistTask(taskID string) bool {
	for _, entry := range checklistTemplate {
		if entry.id == taskID {
			return true
		}
	}
	return false
}

func assetEntry(assetID string) (marketingAssetEntry, bool) {
	for _, entry := range marketingAssetTemplate {
		if entry.id == assetID {
			return entry, true
		}
	}
	return marketingAssetEntry{}, false
}

// deadlineFrom anchors start at midnight UTC and shifts it by whole days.
func deadlineFrom(start time.Time, offsetDays int) time.Time {
	anchored := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	return anchored.AddDate(0, 0, offsetDays)
}

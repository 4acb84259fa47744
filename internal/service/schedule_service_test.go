package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type eventReaderStub struct {
	events map[string]*models.Event
}

func (s *eventReaderStub) GetByID(_ context.Context, id string) (*models.Event, error) {
	event, ok := s.events[id]
	if !ok {
		return nil, appErrors.ErrNotFound
	}
	copy := *event
	return &copy, nil
}

func novemberEventReader() *eventReaderStub {
	return &eventReaderStub{events: map[string]*models.Event{
		"1": {
			ID:        "1",
			Title:     "Semana Acadêmica",
			StartDate: time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC),
		},
	}}
}

func newTestScheduleService(events eventReader, now time.Time) *ScheduleService {
	svc := NewScheduleService(events, nil)
	svc.now = func() time.Time { return now }
	return svc
}

func TestChecklistDeadlinesFromStartDate(t *testing.T) {
	svc := newTestScheduleService(novemberEventReader(), time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	tasks, err := svc.Checklist(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, tasks, 15)

	byID := make(map[string]models.ChecklistTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}

	first := byID["check_location"]
	assert.Equal(t, "Verificar disponibilidade do local", first.Title)
	assert.Equal(t, models.ChecklistCategoryPre, first.Category)
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), first.Deadline)

	assert.Equal(t, time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC), byID["reception_setup"].Deadline)
	assert.Equal(t, time.Date(2025, 11, 18, 0, 0, 0, 0, time.UTC), byID["final_report"].Deadline)

	for _, task := range tasks {
		assert.False(t, task.Completed)
		assert.False(t, task.Overdue)
	}
}

func TestChecklistIsDeterministic(t *testing.T) {
	svc := newTestScheduleService(novemberEventReader(), time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))

	first, err := svc.Checklist(context.Background(), "1")
	require.NoError(t, err)
	second, err := svc.Checklist(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestChecklistOverdueRequiresIncomplete(t *testing.T) {
	// Past the -30 and -25 deadlines, before the rest.
	now := time.Date(2025, 10, 22, 12, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(novemberEventReader(), now)

	tasks, err := svc.ToggleTask(context.Background(), "1", "check_location")
	require.NoError(t, err)

	byID := make(map[string]models.ChecklistTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}
	assert.True(t, byID["check_location"].Completed)
	assert.False(t, byID["check_location"].Overdue)
	assert.True(t, byID["reserve_equipment"].Overdue)
	assert.False(t, byID["confirm_catering"].Overdue)
}

func TestChecklistToggleAndReset(t *testing.T) {
	svc := newTestScheduleService(novemberEventReader(), time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	tasks, err := svc.ToggleTask(ctx, "1", "final_report")
	require.NoError(t, err)
	byID := make(map[string]models.ChecklistTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}
	assert.True(t, byID["final_report"].Completed)

	tasks, err = svc.ToggleTask(ctx, "1", "final_report")
	require.NoError(t, err)
	for _, task := range tasks {
		assert.False(t, task.Completed)
	}

	_, err = svc.ToggleTask(ctx, "1", "final_report")
	require.NoError(t, err)
	require.NoError(t, svc.ResetChecklist(ctx, "1"))
	tasks, err = svc.Checklist(ctx, "1")
	require.NoError(t, err)
	for _, task := range tasks {
		assert.False(t, task.Completed)
	}

	_, err = svc.ToggleTask(ctx, "1", "nonexistent_task")
	require.Error(t, err)
	_, err = svc.ToggleTask(ctx, "missing", "final_report")
	require.Error(t, err)
}

func TestMarketingScheduleDerivation(t *testing.T) {
	// Past the -30 through -20 deadlines.
	now := time.Date(2025, 10, 27, 12, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(novemberEventReader(), now)

	schedule, err := svc.MarketingSchedule(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, schedule, 11)

	assert.Equal(t, "Receber briefing e materiais do cliente", schedule[0].Task)
	assert.Equal(t, models.MarketingTaskDone, schedule[0].Status)
	assert.Equal(t, time.Date(2025, 10, 16, 0, 0, 0, 0, time.UTC), schedule[0].Deadline)
	assert.False(t, schedule[0].Overdue)

	assert.Equal(t, models.MarketingTaskInProgress, schedule[1].Status)
	assert.True(t, schedule[1].Overdue)
	assert.True(t, schedule[2].Overdue)
	assert.False(t, schedule[3].Overdue)

	last := schedule[len(schedule)-1]
	assert.Equal(t, "Publicar conteúdo pós-evento", last.Task)
	assert.Equal(t, time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC), last.Deadline)
	assert.Equal(t, models.MarketingPriorityLow, last.Priority)
}

func TestMarketingAssetsDerivation(t *testing.T) {
	svc := newTestScheduleService(novemberEventReader(), time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC))

	assets, err := svc.MarketingAssets(context.Background(), "1")
	require.NoError(t, err)
	require.Len(t, assets, 6)

	logo := assets[0]
	assert.Equal(t, "asset_1", logo.ID)
	assert.Equal(t, models.MarketingAssetApproved, logo.Status)
	require.NotNil(t, logo.UploadedAt)
	assert.Equal(t, time.Date(2025, 10, 18, 0, 0, 0, 0, time.UTC), *logo.UploadedAt)
	require.NotNil(t, logo.ApprovedAt)
	assert.False(t, logo.Overdue)

	feed := assets[2]
	assert.Equal(t, models.MarketingAssetInReview, feed.Status)
	assert.True(t, feed.Overdue)

	banner := assets[4]
	assert.Equal(t, models.MarketingAssetAwaitingUpload, banner.Status)
	assert.Nil(t, banner.UploadedAt)
	assert.True(t, banner.Overdue)
}

func TestMarketingAssetUploadAndReview(t *testing.T) {
	now := time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC)
	svc := newTestScheduleService(novemberEventReader(), now)
	ctx := context.Background()

	asset, err := svc.UploadAsset(ctx, "1", "asset_5")
	require.NoError(t, err)
	assert.Equal(t, models.MarketingAssetInReview, asset.Status)
	require.NotNil(t, asset.UploadedAt)
	assert.Equal(t, now, *asset.UploadedAt)

	asset, err = svc.ReviewAsset(ctx, "1", "asset_5", true)
	require.NoError(t, err)
	assert.Equal(t, models.MarketingAssetApproved, asset.Status)
	require.NotNil(t, asset.ApprovedAt)
	assert.False(t, asset.Overdue)

	_, err = svc.UploadAsset(ctx, "1", "asset_5")
	require.Error(t, err)
	_, err = svc.ReviewAsset(ctx, "1", "asset_5", false)
	require.Error(t, err)
}

func TestMarketingAssetRejectionAllowsReupload(t *testing.T) {
	svc := newTestScheduleService(novemberEventReader(), time.Date(2025, 11, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	asset, err := svc.ReviewAsset(ctx, "1", "asset_3", false)
	require.NoError(t, err)
	assert.Equal(t, models.MarketingAssetRejected, asset.Status)
	assert.Nil(t, asset.ApprovedAt)

	asset, err = svc.UploadAsset(ctx, "1", "asset_3")
	require.NoError(t, err)
	assert.Equal(t, models.MarketingAssetInReview, asset.Status)

	_, err = svc.UploadAsset(ctx, "1", "asset_99")
	require.Error(t, err)
}

func TestScheduleStateIsPerEvent(t *testing.T) {
	reader := novemberEventReader()
	reader.events["2"] = &models.Event{
		ID:        "2",
		Title:     "Formatura",
		StartDate: time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC),
	}
	svc := newTestScheduleService(reader, time.Date(2025, 10, 1, 12, 0, 0, 0, time.UTC))
	ctx := context.Background()

	_, err := svc.ToggleTask(ctx, "1", "check_location")
	require.NoError(t, err)

	tasks, err := svc.Checklist(ctx, "2")
	require.NoError(t, err)
	byID := make(map[string]models.ChecklistTask, len(tasks))
	for _, task := range tasks {
		byID[task.ID] = task
	}
	assert.False(t, byID["check_location"].Completed)
	assert.Equal(t, time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC), byID["check_location"].Deadline)
}

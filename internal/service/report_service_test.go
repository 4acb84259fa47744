package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univag/eventos-api/internal/models"
)

func reportFixtureReader() *eventReaderStub {
	approver := "Dra. Maria Santos"
	approvedAt := time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC)
	return &eventReaderStub{events: map[string]*models.Event{
		"1": {
			ID:                "1",
			Title:             "Semana Acadêmica",
			Type:              models.EventTypeAcademic,
			Status:            models.EventStatusAwaitingCeremonial,
			RequestedBy:       "Prof. Carlos Mendes",
			Department:        "Coordenação de Engenharia",
			StartDate:         time.Date(2025, 11, 15, 0, 0, 0, 0, time.UTC),
			EndDate:           time.Date(2025, 11, 17, 0, 0, 0, 0, time.UTC),
			Location:          "Auditório Central",
			ExpectedAttendees: 300,
			Resources: []models.Resource{
				{ID: "r1", Name: "Auditório Central", Type: models.ResourceTypeRoom},
			},
			Approvals: []models.ApprovalStep{
				{Department: models.DepartmentProvost, Status: models.ApprovalStatusApproved, ApprovedBy: &approver, ApprovedAt: &approvedAt},
				{Department: models.DepartmentCeremonial, Status: models.ApprovalStatusPending},
			},
		},
	}}
}

func newTestReportService(t *testing.T) *ReportService {
	t.Helper()
	events := reportFixtureReader()
	schedules := NewScheduleService(events, nil)
	schedules.now = func() time.Time { return time.Date(2025, 10, 20, 0, 0, 0, 0, time.UTC) }
	comments := newCommentStoreStub()
	comments.comments["1"] = []models.Comment{{
		ID:             "c1",
		EventID:        "1",
		Author:         "Sistema",
		Department:     "Pró-Reitoria",
		Message:        "Pró-Reitoria aprovou a solicitação.",
		Timestamp:      time.Date(2025, 10, 5, 10, 0, 0, 0, time.UTC),
		IsNotification: true,
	}}
	return NewReportService(events, schedules, comments, nil)
}

func TestReportGenerateCSV(t *testing.T) {
	svc := newTestReportService(t)

	result, err := svc.Generate(context.Background(), "1", ReportFormatCSV)
	require.NoError(t, err)
	assert.Equal(t, "text/csv", result.ContentType)
	assert.Equal(t, "evento_1.csv", result.Filename)

	payload := string(result.Payload)
	assert.Contains(t, payload, "Dados Gerais")
	assert.Contains(t, payload, "Semana Acadêmica")
	assert.Contains(t, payload, "Fluxo de Aprovação")
	assert.Contains(t, payload, "Checklist Operacional")
	assert.Contains(t, payload, "Verificar disponibilidade do local")
	assert.Contains(t, payload, "Cronograma de Marketing")
	assert.Contains(t, payload, "Comunicação")
	assert.Contains(t, payload, "notificação")
}

func TestReportGeneratePDF(t *testing.T) {
	svc := newTestReportService(t)

	result, err := svc.Generate(context.Background(), "1", ReportFormatPDF)
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", result.ContentType)
	assert.Equal(t, "evento_1.pdf", result.Filename)
	assert.True(t, strings.HasPrefix(string(result.Payload), "%PDF"))
}

func TestReportGenerateErrors(t *testing.T) {
	svc := newTestReportService(t)

	_, err := svc.Generate(context.Background(), "missing", ReportFormatCSV)
	require.Error(t, err)

	_, err = svc.Generate(context.Background(), "1", "xlsx")
	require.Error(t, err)
}

package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
	"github.com/univag/eventos-api/pkg/export"
)

// ReportFormat selects the rendered output encoding.
type ReportFormat string

const (
	ReportFormatPDF ReportFormat = "pdf"
	ReportFormatCSV ReportFormat = "csv"
)

// ReportResult is a rendered event report ready for download.
type ReportResult struct {
	Payload     []byte
	ContentType string
	Filename    string
}

type checklistProvider interface {
	Checklist(ctx context.Context, eventID string) ([]models.ChecklistTask, error)
	MarketingSchedule(ctx context.Context, eventID string) ([]models.MarketingDeadline, error)
}

type commentReader interface {
	ListByEvent(ctx context.Context, eventID string) ([]models.Comment, error)
}

type documentRenderer interface {
	Render(doc export.Document) ([]byte, error)
}

// ReportService assembles the full event report and renders it as PDF or CSV.
type ReportService struct {
	events    eventReader
	schedules checklistProvider
	comments  commentReader
	csv       documentRenderer
	pdf       documentRenderer
	logger    *zap.Logger
}

// NewReportService constructs a ReportService.
func NewReportService(events eventReader, schedules checklistProvider, comments commentReader, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{
		events:    events,
		schedules: schedules,
		comments:  comments,
		csv:       export.NewCSVExporter(),
		pdf:       export.NewPDFExporter(),
		logger:    logger,
	}
}

// Generate renders the event report in the requested format.
func (s *ReportService) Generate(ctx context.Context, eventID string, format ReportFormat) (*ReportResult, error) {
	doc, err := s.buildDocument(ctx, eventID)
	if err != nil {
		return nil, err
	}

	result := &ReportResult{}
	switch format {
	case ReportFormatPDF:
		result.Payload, err = s.pdf.Render(*doc)
		result.ContentType = "application/pdf"
		result.Filename = fmt.Sprintf("evento_%s.pdf", eventID)
	case ReportFormatCSV:
		result.Payload, err = s.csv.Render(*doc)
		result.ContentType = "text/csv"
		result.Filename = fmt.Sprintf("evento_%s.csv", eventID)
	default:
		return nil, appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("unsupported report format: %s", format))
	}
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to render report")
	}
	s.logger.Info("event report generated",
		zap.String("event_id", eventID),
		zap.String("format", string(format)),
		zap.Int("bytes", len(result.Payload)),
	)
	return result, nil
}

func (s *ReportService) buildDocument(ctx context.Context, eventID string) (*export.Document, error) {
	event, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	checklist, err := s.schedules.Checklist(ctx, eventID)
	if err != nil {
		return nil, err
	}
	schedule, err := s.schedules.MarketingSchedule(ctx, eventID)
	if err != nil {
		return nil, err
	}
	comments, err := s.comments.ListByEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	doc := &export.Document{
		Title: fmt.Sprintf("Relatório do Evento - %s", event.Title),
		Sections: []export.Section{
			overviewSection(event),
			approvalsSection(event),
			checklistSection(checklist),
			marketingSection(schedule),
		},
	}
	if len(comments) > 0 {
		doc.Sections = append(doc.Sections, commentsSection(comments))
	}
	return doc, nil
}

func overviewSection(event *models.Event) export.Section {
	resources := make([]string, 0, len(event.Resources))
	for _, resource := range event.Resources {
		resources = append(resources, resource.Name)
	}
	row := map[string]string{
		"Título":        event.Title,
		"Tipo":          string(event.Type),
		"Status":        string(event.Status),
		"Solicitante":   event.RequestedBy,
		"Setor":         event.Department,
		"Início":        formatDate(event.StartDate),
		"Término":       formatDate(event.EndDate),
		"Local":         event.Location,
		"Participantes": strconv.Itoa(event.ExpectedAttendees),
		"Recursos":      strings.Join(resources, "; "),
	}
	return export.Section{
		Name: "Dados Gerais",
		Headers: []string{
			"Título", "Tipo", "Status", "Solicitante", "Setor",
			"Início", "Término", "Local", "Participantes", "Recursos",
		},
		Rows: []map[string]string{row},
	}
}

func approvalsSection(event *models.Event) export.Section {
	rows := make([]map[string]string, 0, len(event.Approvals))
	for _, step := range event.Approvals {
		row := map[string]string{
			"Departamento": string(step.Department),
			"Situação":     string(step.Status),
			"Responsável":  "",
			"Data":         "",
			"Observações":  "",
		}
		if step.ApprovedBy != nil {
			row["Responsável"] = *step.ApprovedBy
		}
		if step.ApprovedAt != nil {
			row["Data"] = formatDate(*step.ApprovedAt)
		}
		if step.Notes != nil {
			row["Observações"] = *step.Notes
		}
		rows = append(rows, row)
	}
	return export.Section{
		Name:    "Fluxo de Aprovação",
		Headers: []string{"Departamento", "Situação", "Responsável", "Data", "Observações"},
		Rows:    rows,
	}
}

func checklistSection(tasks []models.ChecklistTask) export.Section {
	rows := make([]map[string]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, map[string]string{
			"Tarefa":    task.Title,
			"Categoria": string(task.Category),
			"Prazo":     formatDate(task.Deadline),
			"Concluída": boolLabel(task.Completed),
			"Atrasada":  boolLabel(task.Overdue),
		})
	}
	return export.Section{
		Name:    "Checklist Operacional",
		Headers: []string{"Tarefa", "Categoria", "Prazo", "Concluída", "Atrasada"},
		Rows:    rows,
	}
}

func marketingSection(schedule []models.MarketingDeadline) export.Section {
	rows := make([]map[string]string, 0, len(schedule))
	for _, entry := range schedule {
		rows = append(rows, map[string]string{
			"Tarefa":     entry.Task,
			"Prazo":      formatDate(entry.Deadline),
			"Situação":   string(entry.Status),
			"Prioridade": string(entry.Priority),
			"Atrasada":   boolLabel(entry.Overdue),
		})
	}
	return export.Section{
		Name:    "Cronograma de Marketing",
		Headers: []string{"Tarefa", "Prazo", "Situação", "Prioridade", "Atrasada"},
		Rows:    rows,
	}
}

func commentsSection(comments []models.Comment) export.Section {
	rows := make([]map[string]string, 0, len(comments))
	for _, comment := range comments {
		kind := "comentário"
		if comment.IsNotification {
			kind = "notificação"
		}
		rows = append(rows, map[string]string{
			"Data":     comment.Timestamp.Format("02/01/2006 15:04"),
			"Autor":    comment.Author,
			"Setor":    comment.Department,
			"Tipo":     kind,
			"Mensagem": comment.Message,
		})
	}
	return export.Section{
		Name:    "Comunicação",
		Headers: []string{"Data", "Autor", "Setor", "Tipo", "Mensagem"},
		Rows:    rows,
	}
}

func formatDate(t time.Time) string {
	return t.Format("02/01/2006")
}

func boolLabel(v bool) string {
	if v {
		return "sim"
	}
	return "não"
}

package repository

import (
	"context"
	"time"

	"github.com/univag/eventos-api/internal/models"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func str(s string) *string {
	return &s
}

func ts(year int, month time.Month, day, hour, minute int) time.Time {
	return time.Date(year, month, day, hour, minute, 0, 0, time.UTC)
}

// SeedSampleData loads the canonical sample dataset into the given stores.
// It is used for development boots and as a shared fixture base.
func SeedSampleData(ctx context.Context, events *EventRepository, resources *ResourceRepository, comments *CommentRepository) error {
	for _, resource := range SampleResources() {
		if err := resources.Create(ctx, resource); err != nil {
			return err
		}
	}
	for _, event := range SampleEvents() {
		event := event
		if err := events.Create(ctx, &event); err != nil {
			return err
		}
	}
	for _, comment := range SampleComments() {
		if err := comments.Append(ctx, comment); err != nil {
			return err
		}
	}
	return nil
}

// SampleResources returns the registry's sample inventory.
func SampleResources() []models.Resource {
	return []models.Resource{
		{ID: "r1", Name: "Auditório Principal", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco A")},
		{ID: "r2", Name: "Auditório Secundário", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco B")},
		{ID: "r3", Name: "Sala de Conferências 1", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco A")},
		{ID: "r4", Name: "Sala de Conferências 2", Type: models.ResourceTypeRoom, Available: false, Location: str("Bloco A")},
		{ID: "r5", Name: "Lab de Informática 1", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco C")},
		{ID: "r6", Name: "Lab de Informática 2", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco C")},
		{ID: "r7", Name: "Lab de Informática 3", Type: models.ResourceTypeRoom, Available: false, Location: str("Bloco C")},
		{ID: "r8", Name: "Pátio Central", Type: models.ResourceTypeRoom, Available: true, Location: str("Externo")},
		{ID: "r9", Name: "Projetor 4K (5 un)", Type: models.ResourceTypeEquipment, Available: true},
		{ID: "r10", Name: "Sistema de Som Completo", Type: models.ResourceTypeEquipment, Available: true},
		{ID: "r11", Name: "Microfones sem fio (10 un)", Type: models.ResourceTypeEquipment, Available: true},
		{ID: "r12", Name: "Câmeras Profissionais (2 un)", Type: models.ResourceTypeEquipment, Available: false},
		{ID: "r13", Name: "Notebooks (20 un)", Type: models.ResourceTypeEquipment, Available: true},
		{ID: "r14", Name: "Telão LED Grande", Type: models.ResourceTypeEquipment, Available: true},
		{ID: "r15", Name: "Estrutura de Palco", Type: models.ResourceTypeMaterial, Available: true},
		{ID: "r16", Name: "Cadeiras (500 un)", Type: models.ResourceTypeMaterial, Available: true},
		{ID: "r17", Name: "Mesas (50 un)", Type: models.ResourceTypeMaterial, Available: true},
		{ID: "r18", Name: "Banners e Stands", Type: models.ResourceTypeMaterial, Available: true},
	}
}

// SampleEvents returns the sample event requests in their canonical order.
func SampleEvents() []models.Event {
	return []models.Event{
		{
			ID:          "1",
			Title:       "Semana de Engenharia 2025",
			Type:        models.EventTypeAcademic,
			Description: "Evento anual com palestras, workshops e feira de projetos dos alunos de engenharia.",
			RequestedBy: "Prof. João Silva",
			Department:  "Engenharia Civil",
			StartDate:   date(2025, time.November, 15),
			EndDate:     date(2025, time.November, 19),
			Location:    "Auditório Principal + Labs",
			ExpectedAttendees: 450,
			Status:            models.EventStatusAwaitingCeremonial,
			Resources: []models.Resource{
				{ID: "r1", Name: "Auditório Principal", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco A")},
				{ID: "r2", Name: "Projetor 4K", Type: models.ResourceTypeEquipment, Available: true},
				{ID: "r3", Name: "Sistema de Som", Type: models.ResourceTypeEquipment, Available: true},
			},
			Approvals: []models.ApprovalStep{
				{Department: models.DepartmentProvost, Status: models.ApprovalStatusApproved, ApprovedBy: str("Dr. Carlos Santos"), ApprovedAt: timePtr(date(2025, time.November, 1))},
				{Department: models.DepartmentCeremonial, Status: models.ApprovalStatusPending},
				{Department: models.DepartmentAudiovisual, Status: models.ApprovalStatusPending},
				{Department: models.DepartmentMarketing, Status: models.ApprovalStatusPending},
			},
			RequiresCeremony:    true,
			RequiresAudiovisual: true,
			RequiresMarketing:   true,
			MarketingAssets:     &models.MarketingAssetFlags{Digital: true, Print: true, Social: true},
			CreatedAt:           date(2025, time.October, 25),
			UpdatedAt:           date(2025, time.November, 1),
		},
		{
			ID:          "2",
			Title:       "Colação de Grau - Medicina",
			Type:        models.EventTypeInstitutional,
			Description: "Cerimônia de formatura da turma 2025/2 do curso de Medicina.",
			RequestedBy: "Prof. Maria Oliveira",
			Department:  "Medicina",
			StartDate:   date(2025, time.December, 18),
			EndDate:     date(2025, time.December, 18),
			Location:    "Teatro Municipal",
			ExpectedAttendees: 800,
			Status:            models.EventStatusAwaitingMarketing,
			Resources: []models.Resource{
				{ID: "r4", Name: "Teatro Municipal", Type: models.ResourceTypeRoom, Available: true, Location: str("Externo")},
				{ID: "r5", Name: "Câmeras Profissionais", Type: models.ResourceTypeEquipment, Available: true},
			},
			Approvals: []models.ApprovalStep{
				{Department: models.DepartmentProvost, Status: models.ApprovalStatusApproved, ApprovedBy: str("Dr. Carlos Santos"), ApprovedAt: timePtr(date(2025, time.October, 20))},
				{Department: models.DepartmentCeremonial, Status: models.ApprovalStatusApproved, ApprovedBy: str("Ana Paula"), ApprovedAt: timePtr(date(2025, time.October, 25))},
				{Department: models.DepartmentAudiovisual, Status: models.ApprovalStatusApproved, ApprovedBy: str("Ricardo Tech"), ApprovedAt: timePtr(date(2025, time.October, 26))},
				{Department: models.DepartmentMarketing, Status: models.ApprovalStatusPending},
			},
			RequiresCeremony:    true,
			RequiresAudiovisual: true,
			RequiresMarketing:   true,
			MarketingAssets:     &models.MarketingAssetFlags{Digital: true, Print: true, Social: true},
			CreatedAt:           date(2025, time.October, 15),
			UpdatedAt:           date(2025, time.October, 26),
		},
		{
			ID:          "3",
			Title:       "Workshop: Inteligência Artificial Aplicada",
			Type:        models.EventTypeOutreach,
			Description: "Workshop sobre aplicações práticas de IA no mercado de trabalho.",
			RequestedBy: "Prof. Roberto Lima",
			Department:  "Ciência da Computação",
			StartDate:   date(2025, time.November, 22),
			EndDate:     date(2025, time.November, 22),
			Location:    "Lab de Informática 3",
			ExpectedAttendees: 60,
			Status:            models.EventStatusApproved,
			Resources: []models.Resource{
				{ID: "r6", Name: "Lab de Informática 3", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco C")},
				{ID: "r7", Name: "Notebooks (20 un)", Type: models.ResourceTypeEquipment, Available: true},
			},
			Approvals: []models.ApprovalStep{
				{Department: models.DepartmentProvost, Status: models.ApprovalStatusApproved, ApprovedBy: str("Dr. Carlos Santos"), ApprovedAt: timePtr(date(2025, time.November, 2))},
				{Department: models.DepartmentAudiovisual, Status: models.ApprovalStatusApproved, ApprovedBy: str("Ricardo Tech"), ApprovedAt: timePtr(date(2025, time.November, 3))},
				{Department: models.DepartmentMarketing, Status: models.ApprovalStatusApproved, ApprovedBy: str("Laura Marketing"), ApprovedAt: timePtr(date(2025, time.November, 4))},
			},
			RequiresCeremony:    false,
			RequiresAudiovisual: true,
			RequiresMarketing:   true,
			MarketingAssets:     &models.MarketingAssetFlags{Digital: true, Print: false, Social: true},
			CreatedAt:           date(2025, time.October, 28),
			UpdatedAt:           date(2025, time.November, 4),
		},
		{
			ID:          "4",
			Title:       "Simpósio de Pesquisa Científica",
			Type:        models.EventTypeScientific,
			Description: "Apresentação dos trabalhos de iniciação científica desenvolvidos no ano.",
			RequestedBy: "Prof. Fernanda Costa",
			Department:  "Pró-Reitoria de Pesquisa",
			StartDate:   date(2025, time.December, 5),
			EndDate:     date(2025, time.December, 6),
			Location:    "Campus Completo",
			ExpectedAttendees: 300,
			Status:            models.EventStatusAwaitingAudiovisual,
			Resources: []models.Resource{
				{ID: "r8", Name: "Auditório Principal", Type: models.ResourceTypeRoom, Available: false, Location: str("Bloco A")},
				{ID: "r9", Name: "Salas 201-210", Type: models.ResourceTypeRoom, Available: true, Location: str("Bloco B")},
			},
			Approvals: []models.ApprovalStep{
				{Department: models.DepartmentProvost, Status: models.ApprovalStatusApproved, ApprovedBy: str("Dr. Carlos Santos"), ApprovedAt: timePtr(date(2025, time.November, 5))},
				{Department: models.DepartmentCeremonial, Status: models.ApprovalStatusApproved, ApprovedBy: str("Ana Paula"), ApprovedAt: timePtr(date(2025, time.November, 6))},
				{Department: models.DepartmentAudiovisual, Status: models.ApprovalStatusPending},
				{Department: models.DepartmentMarketing, Status: models.ApprovalStatusPending},
			},
			RequiresCeremony:    true,
			RequiresAudiovisual: true,
			RequiresMarketing:   true,
			MarketingAssets:     &models.MarketingAssetFlags{Digital: true, Print: true, Social: true},
			CreatedAt:           date(2025, time.November, 1),
			UpdatedAt:           date(2025, time.November, 6),
		},
	}
}

// SampleComments returns the sample communication log for event 1.
func SampleComments() []models.Comment {
	return []models.Comment{
		{ID: "c1", EventID: "1", Author: "Dr. Carlos Santos", Department: "Pró-Reitoria", Message: "Solicitação aprovada. Pode prosseguir com as próximas etapas.", Timestamp: ts(2025, time.November, 1, 10, 30), IsNotification: true},
		{ID: "c2", EventID: "1", Author: "Ana Paula", Department: "Cerimonial", Message: "Precisamos confirmar a disponibilidade do Auditório Principal. Já entrei em contato com a administração.", Timestamp: ts(2025, time.November, 2, 14, 15)},
		{ID: "c3", EventID: "1", Author: "Ricardo Tech", Department: "Audiovisual", Message: "Os equipamentos solicitados estão reservados. Faremos um teste técnico 2 dias antes do evento.", Timestamp: ts(2025, time.November, 3, 9, 0), IsNotification: true},
		{ID: "c4", EventID: "1", Author: "Laura Marketing", Department: "Marketing", Message: "Estamos aguardando o logo do evento para iniciar a produção dos materiais digitais.", Timestamp: ts(2025, time.November, 4, 11, 45)},
		{ID: "c5", EventID: "1", Author: "Prof. João Silva", Department: "Engenharia Civil", Message: "Logo enviado! Podem começar a produção.", Timestamp: ts(2025, time.November, 5, 8, 20)},
	}
}

func timePtr(t time.Time) *time.Time {
	return &t
}

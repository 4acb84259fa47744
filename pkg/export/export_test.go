package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDocument() Document {
	return Document{
		Title: "Relatório do Evento - Semana Acadêmica",
		Sections: []Section{
			{
				Name:    "Dados Gerais",
				Headers: []string{"Título", "Local"},
				Rows: []map[string]string{
					{"Título": "Semana Acadêmica", "Local": "Auditório Central"},
				},
			},
			{
				Name:    "Fluxo de Aprovação",
				Headers: []string{"Departamento", "Situação"},
				Rows: []map[string]string{
					{"Departamento": "pro_reitoria", "Situação": "aprovado"},
					{"Departamento": "cerimonial", "Situação": "pendente"},
				},
			},
		},
	}
}

func TestCSVExporterRendersSections(t *testing.T) {
	payload, err := NewCSVExporter().Render(sampleDocument())
	require.NoError(t, err)

	text := string(payload)
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	assert.Equal(t, "Dados Gerais", lines[0])
	assert.Equal(t, "Título,Local", lines[1])
	assert.Contains(t, text, "Semana Acadêmica,Auditório Central")
	assert.Contains(t, text, "Fluxo de Aprovação")
	assert.Contains(t, text, "cerimonial,pendente")
}

func TestCSVExporterRejectsEmptyDocument(t *testing.T) {
	_, err := NewCSVExporter().Render(Document{Title: "vazio"})
	require.Error(t, err)

	_, err = NewCSVExporter().Render(Document{Sections: []Section{{Name: "sem cabeçalho"}}})
	require.Error(t, err)
}

func TestPDFExporterRendersDocument(t *testing.T) {
	payload, err := NewPDFExporter().Render(sampleDocument())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(payload), "%PDF"))
	assert.Greater(t, len(payload), 500)
}

func TestPDFExporterRejectsEmptyDocument(t *testing.T) {
	_, err := NewPDFExporter().Render(Document{})
	require.Error(t, err)
}

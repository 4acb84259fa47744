package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/univag/eventos-api/internal/service"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type fakeReportSrv struct {
	result     *service.ReportResult
	err        error
	lastID     string
	lastFormat service.ReportFormat
}

func (f *fakeReportSrv) Generate(_ context.Context, eventID string, format service.ReportFormat) (*service.ReportResult, error) {
	f.lastID = eventID
	f.lastFormat = format
	return f.result, f.err
}

func TestReportHandlerDownloadCSV(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{result: &service.ReportResult{
		Payload:     []byte("Dados Gerais\n"),
		ContentType: "text/csv",
		Filename:    "evento_1.csv",
	}}
	handler := NewReportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/1/report?format=csv", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Download(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ReportFormatCSV, srv.lastFormat)
	assert.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "evento_1.csv")
	assert.Contains(t, rec.Body.String(), "Dados Gerais")
}

func TestReportHandlerDefaultsToPDF(t *testing.T) {
	gin.SetMode(gin.TestMode)
	srv := &fakeReportSrv{result: &service.ReportResult{
		Payload:     []byte("%PDF-1.3"),
		ContentType: "application/pdf",
		Filename:    "evento_1.pdf",
	}}
	handler := NewReportHandler(srv)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/1/report", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Download(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, service.ReportFormatPDF, srv.lastFormat)
}

func TestReportHandlerUnknownFormat(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewReportHandler(&fakeReportSrv{err: appErrors.Clone(appErrors.ErrValidation, "unsupported report format: xlsx")})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/1/report?format=xlsx", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Download(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

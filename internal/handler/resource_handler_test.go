package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univag/eventos-api/internal/models"
)

type fakeResourceSrv struct {
	resources  []models.Resource
	resource   *models.Resource
	events     []models.Event
	stats      []models.ResourceTypeStats
	err        error
	lastFilter models.ResourceFilter
	lastID     string
}

func (f *fakeResourceSrv) Search(_ context.Context, filter models.ResourceFilter) ([]models.Resource, error) {
	f.lastFilter = filter
	return f.resources, f.err
}

func (f *fakeResourceSrv) Get(_ context.Context, id string) (*models.Resource, error) {
	f.lastID = id
	return f.resource, f.err
}

func (f *fakeResourceSrv) UsageOf(_ context.Context, resourceID string) ([]models.Event, error) {
	f.lastID = resourceID
	return f.events, f.err
}

func (f *fakeResourceSrv) Stats(context.Context) ([]models.ResourceTypeStats, error) {
	return f.stats, f.err
}

func TestResourceHandlerListParsesFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeResourceSrv{resources: []models.Resource{{ID: "r1"}}}
	handler := NewResourceHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/resources?q=auditório&type=sala&available=true", nil)

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "auditório", service.lastFilter.Query)
	assert.Equal(t, models.ResourceTypeRoom, service.lastFilter.Type)
	require.NotNil(t, service.lastFilter.Available)
	assert.True(t, *service.lastFilter.Available)
}

func TestResourceHandlerListRejectsBadAvailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(&fakeResourceSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/resources?available=talvez", nil)

	handler.List(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestResourceHandlerUsage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeResourceSrv{events: []models.Event{{ID: "1"}, {ID: "3"}}}
	handler := NewResourceHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/resources/r1/usage", nil)
	c.Params = gin.Params{{Key: "id", Value: "r1"}}

	handler.Usage(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "r1", service.lastID)
	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Len(t, envelope.Data, 2)
}

func TestResourceHandlerStats(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewResourceHandler(&fakeResourceSrv{stats: []models.ResourceTypeStats{
		{Type: models.ResourceTypeRoom, Total: 5, Available: 3, InUse: 2},
	}})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/resources/stats", nil)

	handler.Stats(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 1)
	assert.Equal(t, "sala", envelope.Data[0]["type"])
	assert.Equal(t, float64(5), envelope.Data[0]["total"])
}

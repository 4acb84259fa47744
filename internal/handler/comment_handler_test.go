package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/univag/eventos-api/internal/dto"
	"github.com/univag/eventos-api/internal/models"
	appErrors "github.com/univag/eventos-api/pkg/errors"
)

type fakeCommentSrv struct {
	comment     *models.Comment
	comments    []models.Comment
	err         error
	lastEventID string
	lastReq     dto.CreateCommentRequest
}

func (f *fakeCommentSrv) Add(_ context.Context, eventID string, req dto.CreateCommentRequest) (*models.Comment, error) {
	f.lastEventID = eventID
	f.lastReq = req
	return f.comment, f.err
}

func (f *fakeCommentSrv) ListByEvent(_ context.Context, eventID string) ([]models.Comment, error) {
	f.lastEventID = eventID
	return f.comments, f.err
}

func TestCommentHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeCommentSrv{comment: &models.Comment{ID: "c9", EventID: "1"}}
	handler := NewCommentHandler(service)

	body := `{"author":"João Oliveira","department":"Cerimonial","message":"olá"}`
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/events/1/comments", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Create(c)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "1", service.lastEventID)
	assert.Equal(t, "João Oliveira", service.lastReq.Author)
	var envelope responseEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	assert.Equal(t, "c9", envelope.Data["id"])
}

func TestCommentHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCommentHandler(&fakeCommentSrv{})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/events/1/comments", strings.NewReader("{"))
	c.Request.Header.Set("Content-Type", "application/json")
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.Create(c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCommentHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	service := &fakeCommentSrv{comments: []models.Comment{
		{ID: "c1", IsNotification: true},
		{ID: "c2"},
	}}
	handler := NewCommentHandler(service)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/1/comments", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	handler.List(c)

	assert.Equal(t, http.StatusOK, rec.Code)
	var envelope listEnvelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Len(t, envelope.Data, 2)
	assert.Equal(t, true, envelope.Data[0]["isNotification"])
}

func TestCommentHandlerListUnknownEvent(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewCommentHandler(&fakeCommentSrv{err: appErrors.ErrNotFound})

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/events/missing/comments", nil)
	c.Params = gin.Params{{Key: "id", Value: "missing"}}

	handler.List(c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

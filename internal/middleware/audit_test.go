package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"modamart/internal/models"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingAuditService captures the entry the middleware writes.
type recordingAuditService struct {
	called  bool
	action  string
	details string
}

func (s *recordingAuditService) Record(ctx context.Context, userID *uuid.UUID, username, action, tableName, rowID, details string) error {
	s.called = true
	s.action = action
	s.details = details
	return nil
}

func (s *recordingAuditService) List(ctx context.Context, limit, offset int) ([]*models.AuditLog, error) {
	return nil, nil
}

func invokeAudit(method string, next echo.HandlerFunc) (*recordingAuditService, error) {
	e := echo.New()
	req := httptest.NewRequest(method, "/v1/designers", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetPath("/v1/designers")

	service := &recordingAuditService{}
	handler := NewAuditMiddleware(service).AuditRequest()(next)
	return service, handler(c)
}

func TestAuditRequest_RecordsSuccessStatus(t *testing.T) {
	service, err := invokeAudit(http.MethodPost, func(c echo.Context) error {
		return c.NoContent(http.StatusCreated)
	})

	require.NoError(t, err)
	require.True(t, service.called)
	assert.Equal(t, "POST /v1/designers", service.action)
	assert.Contains(t, service.details, "status=201")
}

func TestAuditRequest_RecordsErrorStatusFromHandlerError(t *testing.T) {
	// The response is not written yet when the handler errors, so the
	// status must come from the returned error, not the recorder.
	service, err := invokeAudit(http.MethodDelete, func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusConflict, "still has collections")
	})

	require.Error(t, err)
	require.True(t, service.called)
	assert.Contains(t, service.details, "status=409")
	assert.Contains(t, service.details, "still has collections")
}

func TestAuditRequest_PlainErrorIs500(t *testing.T) {
	service, err := invokeAudit(http.MethodPost, func(c echo.Context) error {
		return assert.AnError
	})

	require.Error(t, err)
	require.True(t, service.called)
	assert.Contains(t, service.details, "status=500")
}

func TestAuditRequest_IgnoresReads(t *testing.T) {
	service, err := invokeAudit(http.MethodGet, func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	require.NoError(t, err)
	assert.False(t, service.called)
}

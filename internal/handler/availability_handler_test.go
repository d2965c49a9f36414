package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/portal-api/internal/models"
	"github.com/tutorlink/portal-api/internal/service"
	appErrors "github.com/tutorlink/portal-api/pkg/errors"
)

type availabilityServiceMock struct {
	windows      []models.AvailabilityWindow
	window       *models.AvailabilityWindow
	importResult *service.ImportResult
	err          error
	lastTutor    string
	lastWindow   string
	deleteCalled bool
}

func (m *availabilityServiceMock) List(_ context.Context, tutorID string) ([]models.AvailabilityWindow, error) {
	m.lastTutor = tutorID
	return m.windows, m.err
}

func (m *availabilityServiceMock) Create(_ context.Context, tutorID string, _ service.UpsertAvailabilityRequest) (*models.AvailabilityWindow, error) {
	m.lastTutor = tutorID
	return m.window, m.err
}

func (m *availabilityServiceMock) Update(_ context.Context, tutorID, windowID string, _ service.UpsertAvailabilityRequest) (*models.AvailabilityWindow, error) {
	m.lastTutor = tutorID
	m.lastWindow = windowID
	return m.window, m.err
}

func (m *availabilityServiceMock) Delete(_ context.Context, tutorID, windowID string) error {
	m.deleteCalled = true
	m.lastTutor = tutorID
	m.lastWindow = windowID
	return m.err
}

func (m *availabilityServiceMock) Import(_ context.Context, tutorID string, _ []map[string]interface{}) (*service.ImportResult, error) {
	m.lastTutor = tutorID
	return m.importResult, m.err
}

func availabilityTestContext(t *testing.T, method, target string, body []byte) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, target, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	c.Request = req
	c.Params = gin.Params{
		{Key: "id", Value: "tutor-1"},
		{Key: "windowId", Value: "window-1"},
	}
	return c, w
}

func TestAvailabilityHandlerList(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &availabilityServiceMock{
		windows: []models.AvailabilityWindow{{ID: "window-1", TutorID: "tutor-1"}},
	}
	handler := NewAvailabilityHandler(mockSvc)

	c, w := availabilityTestContext(t, http.MethodGet, "/tutors/tutor-1/availability", nil)
	handler.List(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tutor-1", mockSvc.lastTutor)
	assert.Contains(t, w.Body.String(), "window-1")
}

func TestAvailabilityHandlerCreate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &availabilityServiceMock{
		window: &models.AvailabilityWindow{ID: "window-1", TutorID: "tutor-1"},
	}
	handler := NewAvailabilityHandler(mockSvc)

	payload, _ := json.Marshal(service.UpsertAvailabilityRequest{
		DaysOfWeek:     42,
		AvailableFrom:  "16:00",
		AvailableUntil: "21:00",
		EffectiveFrom:  "2024-01-01",
	})
	c, w := availabilityTestContext(t, http.MethodPost, "/tutors/tutor-1/availability", payload)
	handler.Create(c)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "tutor-1", mockSvc.lastTutor)
}

func TestAvailabilityHandlerCreateInvalidBody(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewAvailabilityHandler(&availabilityServiceMock{})

	c, w := availabilityTestContext(t, http.MethodPost, "/tutors/tutor-1/availability", []byte(`{"days_of_week":`))
	handler.Create(c)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAvailabilityHandlerUpdateNotFound(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &availabilityServiceMock{err: appErrors.ErrNotFound}
	handler := NewAvailabilityHandler(mockSvc)

	payload, _ := json.Marshal(service.UpsertAvailabilityRequest{
		DaysOfWeek:     2,
		AvailableFrom:  "16:00",
		AvailableUntil: "21:00",
		EffectiveFrom:  "2024-01-01",
	})
	c, w := availabilityTestContext(t, http.MethodPut, "/tutors/tutor-1/availability/window-1", payload)
	handler.Update(c)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "window-1", mockSvc.lastWindow)
}

func TestAvailabilityHandlerDelete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &availabilityServiceMock{}
	handler := NewAvailabilityHandler(mockSvc)

	c, w := availabilityTestContext(t, http.MethodDelete, "/tutors/tutor-1/availability/window-1", nil)
	handler.Delete(c)
	c.Writer.WriteHeaderNow()

	require.Equal(t, http.StatusNoContent, w.Code)
	assert.True(t, mockSvc.deleteCalled)
}

func TestAvailabilityHandlerImport(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockSvc := &availabilityServiceMock{
		importResult: &service.ImportResult{Imported: []models.AvailabilityWindow{{ID: "window-2"}}, Skipped: 1},
	}
	handler := NewAvailabilityHandler(mockSvc)

	payload := []byte(`[{"tutorId":"tutor-1","daysOfWeek":42,"availableFrom":"16:00","availableUntil":"21:00","effectiveFrom":"2024-01-01"},{"availableFrom":"16:00"}]`)
	c, w := availabilityTestContext(t, http.MethodPost, "/tutors/tutor-1/availability/import", payload)
	handler.Import(c)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"skipped":1`)
}

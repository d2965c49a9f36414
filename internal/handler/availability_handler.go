package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tutorlink/portal-api/internal/models"
	"github.com/tutorlink/portal-api/internal/service"
	appErrors "github.com/tutorlink/portal-api/pkg/errors"
	"github.com/tutorlink/portal-api/pkg/response"
)

type availabilityService interface {
	List(ctx context.Context, tutorID string) ([]models.AvailabilityWindow, error)
	Create(ctx context.Context, tutorID string, req service.UpsertAvailabilityRequest) (*models.AvailabilityWindow, error)
	Update(ctx context.Context, tutorID, windowID string, req service.UpsertAvailabilityRequest) (*models.AvailabilityWindow, error)
	Delete(ctx context.Context, tutorID, windowID string) error
	Import(ctx context.Context, tutorID string, records []map[string]interface{}) (*service.ImportResult, error)
}

// AvailabilityHandler manages tutor availability window endpoints.
type AvailabilityHandler struct {
	service availabilityService
}

// NewAvailabilityHandler builds a new handler.
func NewAvailabilityHandler(svc availabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{service: svc}
}

// List godoc
// @Summary List a tutor's availability windows
// @Tags Availability
// @Produce json
// @Param id path string true "Tutor ID"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/availability [get]
func (h *AvailabilityHandler) List(c *gin.Context) {
	windows, err := h.service.List(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, windows, nil)
}

// Create godoc
// @Summary Add an availability window
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body service.UpsertAvailabilityRequest true "Window payload"
// @Success 201 {object} response.Envelope
// @Router /tutors/{id}/availability [post]
func (h *AvailabilityHandler) Create(c *gin.Context) {
	var req service.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	window, err := h.service.Create(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, window)
}

// Update godoc
// @Summary Replace an availability window
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param windowId path string true "Window ID"
// @Param payload body service.UpsertAvailabilityRequest true "Window payload"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/availability/{windowId} [put]
func (h *AvailabilityHandler) Update(c *gin.Context) {
	var req service.UpsertAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	window, err := h.service.Update(c.Request.Context(), c.Param("id"), c.Param("windowId"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, window, nil)
}

// Delete godoc
// @Summary Remove an availability window
// @Tags Availability
// @Produce json
// @Param id path string true "Tutor ID"
// @Param windowId path string true "Window ID"
// @Success 204
// @Router /tutors/{id}/availability/{windowId} [delete]
func (h *AvailabilityHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id"), c.Param("windowId")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Import godoc
// @Summary Bulk import availability records from an external tool
// @Tags Availability
// @Accept json
// @Produce json
// @Param id path string true "Tutor ID"
// @Param payload body []map[string]interface{} true "Raw availability records"
// @Success 200 {object} response.Envelope
// @Router /tutors/{id}/availability/import [post]
func (h *AvailabilityHandler) Import(c *gin.Context) {
	var records []map[string]interface{}
	if err := c.ShouldBindJSON(&records); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	result, err := h.service.Import(c.Request.Context(), c.Param("id"), records)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, result, nil)
}

package handler

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tutorlink/portal-api/internal/schedule"
	"github.com/tutorlink/portal-api/internal/service"
	appErrors "github.com/tutorlink/portal-api/pkg/errors"
	"github.com/tutorlink/portal-api/pkg/response"
)

type rescheduleService interface {
	BuildWeek(ctx context.Context, contractID, bookingID string, weekOffset int, now time.Time) (*schedule.WeekCalendar, error)
	ValidateSelection(ctx context.Context, contractID, bookingID string, req service.SelectSlotRequest, now time.Time) (*schedule.Slot, error)
	ExportWeek(ctx context.Context, contractID, bookingID string, weekOffset int, now time.Time, format string) ([]byte, string, error)
}

// RescheduleHandler exposes the makeup-session slot flow.
type RescheduleHandler struct {
	service rescheduleService
	clock   func() time.Time
}

// NewRescheduleHandler builds a new handler.
func NewRescheduleHandler(svc rescheduleService) *RescheduleHandler {
	return &RescheduleHandler{service: svc, clock: time.Now}
}

// Calendar godoc
// @Summary Weekly makeup slot calendar
// @Tags Reschedule
// @Produce json
// @Param id path string true "Contract ID"
// @Param bookingId path string true "Booking to reschedule"
// @Param week query int false "Week offset from the current week"
// @Success 200 {object} response.Envelope
// @Router /contracts/{id}/reschedule/{bookingId}/calendar [get]
func (h *RescheduleHandler) Calendar(c *gin.Context) {
	weekOffset, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be an integer"))
		return
	}

	calendar, err := h.service.BuildWeek(c.Request.Context(), c.Param("id"), c.Param("bookingId"), weekOffset, h.clock())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, calendar, nil)
}

// Select godoc
// @Summary Validate a chosen makeup slot
// @Tags Reschedule
// @Accept json
// @Produce json
// @Param id path string true "Contract ID"
// @Param bookingId path string true "Booking to reschedule"
// @Param payload body service.SelectSlotRequest true "Chosen slot"
// @Success 200 {object} response.Envelope
// @Router /contracts/{id}/reschedule/{bookingId}/selection [post]
func (h *RescheduleHandler) Select(c *gin.Context) {
	var req service.SelectSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	slot, err := h.service.ValidateSelection(c.Request.Context(), c.Param("id"), c.Param("bookingId"), req, h.clock())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, slot, nil)
}

// Export godoc
// @Summary Export a week's calendar as CSV or PDF
// @Tags Reschedule
// @Produce text/csv
// @Produce application/pdf
// @Param id path string true "Contract ID"
// @Param bookingId path string true "Booking to reschedule"
// @Param week query int false "Week offset from the current week"
// @Param format query string true "csv or pdf"
// @Success 200 {file} byte
// @Router /contracts/{id}/reschedule/{bookingId}/calendar/export [get]
func (h *RescheduleHandler) Export(c *gin.Context) {
	weekOffset, err := strconv.Atoi(c.DefaultQuery("week", "0"))
	if err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "week must be an integer"))
		return
	}
	format := c.DefaultQuery("format", "csv")

	payload, contentType, err := h.service.ExportWeek(c.Request.Context(), c.Param("id"), c.Param("bookingId"), weekOffset, h.clock(), format)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("makeup-slots-week-%d.%s", weekOffset, format)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, payload)
}

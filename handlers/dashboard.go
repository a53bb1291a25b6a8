package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StateHandler returns the full render snapshot for the dashboard.
func (h *DashboardHandler) StateHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// LoadHandler fetches the schedule and time-off list from the remote API.
// Called once when the dashboard mounts; safe to call again to refresh.
func (h *DashboardHandler) LoadHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if err := session.Load(c.Request.Context()); err != nil {
		getLogger(c).Warn("Dashboard load failed", zap.Error(err))
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// ScheduleFieldHandler records a single working-hours edit.
func (h *DashboardHandler) ScheduleFieldHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}

	var req struct {
		Day   string `json:"day" binding:"required"`
		Field string `json:"field" binding:"required"`
		Value string `json:"value"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := session.SetScheduleField(req.Day, req.Field, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// SubmitScheduleHandler validates and submits the weekly schedule.
func (h *DashboardHandler) SubmitScheduleHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if fieldErrs, err := session.SubmitSchedule(c.Request.Context()); err != nil {
		respondError(c, err, fieldErrs)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// DismissNotificationHandler clears the active notification.
func (h *DashboardHandler) DismissNotificationHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	session.DismissNotification()
	c.JSON(http.StatusOK, session.State())
}

// ExportHandler streams the schedule and time-off list as an xlsx workbook.
func (h *DashboardHandler) ExportHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}

	filename := "schedule-" + time.Now().UTC().Format("2006-01-02") + ".xlsx"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")

	if err := session.Export(c.Writer); err != nil {
		getLogger(c).Error("Export failed", zap.Error(err))
		c.Status(http.StatusInternalServerError)
	}
}

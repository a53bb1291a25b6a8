package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type fieldEdit struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// DraftFieldHandler updates one field of the new time-off draft.
func (h *DashboardHandler) DraftFieldHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}

	var req fieldEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := session.SetDraftField(req.Field, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// AddTimeOffHandler submits the new time-off draft.
func (h *DashboardHandler) AddTimeOffHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if fieldErrs, err := session.AddTimeOff(c.Request.Context()); err != nil {
		respondError(c, err, fieldErrs)
		return
	}
	c.JSON(http.StatusCreated, session.State())
}

// EditTimeOffHandler opens the editing session for a committed entry.
func (h *DashboardHandler) EditTimeOffHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if err := session.EditTimeOff(c.Param("id")); err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// EditFieldHandler updates one field of the entry under edit.
func (h *DashboardHandler) EditFieldHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}

	var req fieldEdit
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := session.SetEditField(req.Field, req.Value); err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// SaveTimeOffHandler commits the entry under edit.
func (h *DashboardHandler) SaveTimeOffHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if fieldErrs, err := session.SaveTimeOff(c.Request.Context()); err != nil {
		respondError(c, err, fieldErrs)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// CancelEditHandler discards the edit draft.
func (h *DashboardHandler) CancelEditHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	if err := session.CancelEdit(); err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

// DeleteTimeOffHandler deletes an entry. The browser sends confirm=true
// after the user accepts the confirmation dialog.
func (h *DashboardHandler) DeleteTimeOffHandler(c *gin.Context) {
	session, ok := h.sessionFor(c)
	if !ok {
		return
	}
	confirmed := c.Query("confirm") == "true"
	if err := session.DeleteTimeOff(c.Request.Context(), c.Param("id"), confirmed); err != nil {
		respondError(c, err, nil)
		return
	}
	c.JSON(http.StatusOK, session.State())
}

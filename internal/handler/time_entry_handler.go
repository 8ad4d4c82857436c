package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// TimeEntryHandler handles time tracking endpoints.
type TimeEntryHandler struct {
	timeEntryService service.TimeEntryService
}

// NewTimeEntryHandler creates a new TimeEntryHandler.
func NewTimeEntryHandler(timeEntryService service.TimeEntryService) *TimeEntryHandler {
	return &TimeEntryHandler{timeEntryService: timeEntryService}
}

// Get handles GET /api/time-entries[?id=]
// @Summary List time entries or fetch one
// @Tags time-entries
// @Produce json
// @Param id query string false "Time entry ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.TimeEntry} "Time entries"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Time entry not found"
// @Security CookieAuth
// @Router /time-entries [get]
func (h *TimeEntryHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		entryID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid time entry ID")
			return
		}
		entry, err := h.timeEntryService.GetByID(c.Request.Context(), owner, entryID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, entry)
		return
	}

	entries, err := h.timeEntryService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, entries)
}

// Upsert handles POST /api/time-entries
// @Summary Create or update a time entry
// @Tags time-entries
// @Accept json
// @Produce json
// @Param request body service.UpsertTimeEntryInput true "Time entry details"
// @Success 200 {object} Response{data=domain.TimeEntry} "Time entry updated"
// @Success 201 {object} Response{data=domain.TimeEntry} "Time entry created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Time entry not found"
// @Security CookieAuth
// @Router /time-entries [post]
func (h *TimeEntryHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertTimeEntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	entry, created, err := h.timeEntryService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, entry)
		return
	}
	RespondOK(c, entry)
}

// Delete handles DELETE /api/time-entries?id=
// @Summary Delete a time entry
// @Tags time-entries
// @Produce json
// @Param id query string true "Time entry ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Time entry deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Time entry not found"
// @Security CookieAuth
// @Router /time-entries [delete]
func (h *TimeEntryHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	entryID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid time entry ID")
		return
	}

	if err := h.timeEntryService.Delete(c.Request.Context(), owner, entryID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "time entry deleted"})
}

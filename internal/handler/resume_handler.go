package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// ResumeHandler handles resume builder endpoints.
type ResumeHandler struct {
	resumeService service.ResumeService
}

// NewResumeHandler creates a new ResumeHandler.
func NewResumeHandler(resumeService service.ResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

// Get handles GET /api/resumes[?id=]
// @Summary List resumes or fetch one
// @Tags resumes
// @Produce json
// @Param id query string false "Resume ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Resume} "Resumes"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security CookieAuth
// @Router /resumes [get]
func (h *ResumeHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		resumeID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
			return
		}
		resume, err := h.resumeService.GetByID(c.Request.Context(), owner, resumeID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, resume)
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, resumes)
}

// Upsert handles POST /api/resumes
// @Summary Create or update a resume
// @Description The experience, education, and skill lists fully replace the
// @Description stored ones.
// @Tags resumes
// @Accept json
// @Produce json
// @Param request body service.UpsertResumeInput true "Resume details"
// @Success 200 {object} Response{data=domain.Resume} "Resume updated"
// @Success 201 {object} Response{data=domain.Resume} "Resume created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security CookieAuth
// @Router /resumes [post]
func (h *ResumeHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertResumeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	resume, created, err := h.resumeService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, resume)
		return
	}
	RespondOK(c, resume)
}

// Delete handles DELETE /api/resumes?id=
// @Summary Delete a resume
// @Tags resumes
// @Produce json
// @Param id query string true "Resume ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Resume deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Resume not found"
// @Security CookieAuth
// @Router /resumes [delete]
func (h *ResumeHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	resumeID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid resume ID")
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), owner, resumeID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "resume deleted"})
}

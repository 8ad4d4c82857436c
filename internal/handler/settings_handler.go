package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/config"
	"folio/internal/service"
)

// SettingsHandler handles business settings endpoints.
type SettingsHandler struct {
	settingsService service.SettingsService
	s3cfg           config.S3Config
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(settingsService service.SettingsService, s3cfg config.S3Config) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService, s3cfg: s3cfg}
}

// Get handles GET /api/settings
// @Summary Get business settings
// @Description Returns stored settings, or the defaults when the owner has
// @Description never saved any. Reading defaults does not create a row.
// @Tags settings
// @Produce json
// @Success 200 {object} Response{data=domain.InvoiceSettings} "Settings"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	settings, err := h.settingsService.Get(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// Update handles POST /api/settings
// @Summary Update business settings
// @Description Numbering counters are server-managed and ignored if sent.
// @Tags settings
// @Accept json
// @Produce json
// @Param request body service.UpdateSettingsInput true "Settings"
// @Success 200 {object} Response{data=domain.InvoiceSettings} "Settings saved"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /settings [post]
func (h *SettingsHandler) Update(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpdateSettingsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, settings)
}

// UploadLogo handles POST /api/settings/logo
// @Summary Upload a business logo
// @Tags settings
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Logo image"
// @Success 200 {object} Response{data=LogoResponse} "Logo stored"
// @Failure 400 {object} ErrorResponseBody "Missing or oversized file"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 500 {object} ErrorResponseBody "Upload failed"
// @Security CookieAuth
// @Router /settings/logo [post]
func (h *SettingsHandler) UploadLogo(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		RespondError(c, http.StatusBadRequest, "MISSING_FILE", "file field is required")
		return
	}
	if fileHeader.Size > h.s3cfg.MaxFileSizeMB*1024*1024 {
		RespondError(c, http.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "file exceeds maximum allowed size")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_FILE", "could not read uploaded file")
		return
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	location, err := h.settingsService.UploadLogo(c.Request.Context(), owner, fileHeader.Filename, contentType, file)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"logo": location})
}

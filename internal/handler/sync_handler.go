package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"folio/internal/service"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// SyncHandler exposes full-account downloads for the owner.
type SyncHandler struct {
	syncService service.SyncService
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService service.SyncService) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Download handles GET /api/sync/download
// @Summary Download all account data as JSON
// @Tags sync
// @Produce json
// @Success 200 {object} Response{data=domain.SyncPayload} "Full account snapshot"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /sync/download [get]
func (h *SyncHandler) Download(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	payload, err := h.syncService.Download(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, payload)
}

// Export handles GET /api/sync/export
// @Summary Export all account data as an Excel workbook
// @Tags sync
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} binary "Excel workbook"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Security CookieAuth
// @Router /sync/export [get]
func (h *SyncHandler) Export(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}
	data, err := h.syncService.ExportExcel(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	filename := fmt.Sprintf("folio-export-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}

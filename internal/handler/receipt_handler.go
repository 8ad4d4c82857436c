package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// ReceiptHandler handles receipt endpoints.
type ReceiptHandler struct {
	receiptService service.ReceiptService
}

// NewReceiptHandler creates a new ReceiptHandler.
func NewReceiptHandler(receiptService service.ReceiptService) *ReceiptHandler {
	return &ReceiptHandler{receiptService: receiptService}
}

// Get handles GET /api/receipts[?id=]
// @Summary List receipts or fetch one
// @Tags receipts
// @Produce json
// @Param id query string false "Receipt ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Receipt} "Receipts"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security CookieAuth
// @Router /receipts [get]
func (h *ReceiptHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		receiptID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid receipt ID")
			return
		}
		rec, err := h.receiptService.GetByID(c.Request.Context(), owner, receiptID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, rec)
		return
	}

	receipts, err := h.receiptService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, receipts)
}

// Upsert handles POST /api/receipts
// @Summary Create or update a receipt
// @Tags receipts
// @Accept json
// @Produce json
// @Param request body service.UpsertReceiptInput true "Receipt details"
// @Success 200 {object} Response{data=domain.Receipt} "Receipt updated"
// @Success 201 {object} Response{data=domain.Receipt} "Receipt created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security CookieAuth
// @Router /receipts [post]
func (h *ReceiptHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertReceiptInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	rec, created, err := h.receiptService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, rec)
		return
	}
	RespondOK(c, rec)
}

// Delete handles DELETE /api/receipts?id=
// @Summary Delete a receipt
// @Tags receipts
// @Produce json
// @Param id query string true "Receipt ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Receipt deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Receipt not found"
// @Security CookieAuth
// @Router /receipts [delete]
func (h *ReceiptHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	receiptID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid receipt ID")
		return
	}

	if err := h.receiptService.Delete(c.Request.Context(), owner, receiptID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "receipt deleted"})
}

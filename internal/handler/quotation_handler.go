package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// QuotationHandler handles quotation endpoints.
type QuotationHandler struct {
	quotationService service.QuotationService
}

// NewQuotationHandler creates a new QuotationHandler.
func NewQuotationHandler(quotationService service.QuotationService) *QuotationHandler {
	return &QuotationHandler{quotationService: quotationService}
}

// Get handles GET /api/quotations[?id=]
// @Summary List quotations or fetch one
// @Tags quotations
// @Produce json
// @Param id query string false "Quotation ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Quotation} "Quotations"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Quotation not found"
// @Security CookieAuth
// @Router /quotations [get]
func (h *QuotationHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		quotationID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
			return
		}
		q, err := h.quotationService.GetByID(c.Request.Context(), owner, quotationID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, q)
		return
	}

	quotations, err := h.quotationService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, quotations)
}

// Upsert handles POST /api/quotations
// @Summary Create or update a quotation
// @Tags quotations
// @Accept json
// @Produce json
// @Param request body service.UpsertQuotationInput true "Quotation details"
// @Success 200 {object} Response{data=domain.Quotation} "Quotation updated"
// @Success 201 {object} Response{data=domain.Quotation} "Quotation created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Quotation not found"
// @Security CookieAuth
// @Router /quotations [post]
func (h *QuotationHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertQuotationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	q, created, err := h.quotationService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, q)
		return
	}
	RespondOK(c, q)
}

// Delete handles DELETE /api/quotations?id=
// @Summary Delete a quotation
// @Tags quotations
// @Produce json
// @Param id query string true "Quotation ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Quotation deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Quotation not found"
// @Security CookieAuth
// @Router /quotations [delete]
func (h *QuotationHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	quotationID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid quotation ID")
		return
	}

	if err := h.quotationService.Delete(c.Request.Context(), owner, quotationID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "quotation deleted"})
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// InvoiceHandler handles invoice endpoints.
type InvoiceHandler struct {
	invoiceService service.InvoiceService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceService service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// Get handles GET /api/invoices[?id=]
// @Summary List invoices or fetch one
// @Tags invoices
// @Produce json
// @Param id query string false "Invoice ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Invoice} "Invoices"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security CookieAuth
// @Router /invoices [get]
func (h *InvoiceHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		invoiceID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
			return
		}
		inv, err := h.invoiceService.GetByID(c.Request.Context(), owner, invoiceID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, inv)
		return
	}

	invoices, err := h.invoiceService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, invoices)
}

// Upsert handles POST /api/invoices
// @Summary Create or update an invoice
// @Description Creating stamps the next sequence number and a fresh share
// @Description token; updating preserves both. Totals are always recomputed
// @Description server side.
// @Tags invoices
// @Accept json
// @Produce json
// @Param request body service.UpsertInvoiceInput true "Invoice details"
// @Success 200 {object} Response{data=domain.Invoice} "Invoice updated"
// @Success 201 {object} Response{data=domain.Invoice} "Invoice created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security CookieAuth
// @Router /invoices [post]
func (h *InvoiceHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	inv, created, err := h.invoiceService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, inv)
		return
	}
	RespondOK(c, inv)
}

// Delete handles DELETE /api/invoices?id=
// @Summary Delete an invoice
// @Tags invoices
// @Produce json
// @Param id query string true "Invoice ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Invoice deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Invoice not found"
// @Security CookieAuth
// @Router /invoices [delete]
func (h *InvoiceHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	invoiceID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), owner, invoiceID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "invoice deleted"})
}

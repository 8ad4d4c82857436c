package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// ContractHandler handles contract endpoints.
type ContractHandler struct {
	contractService service.ContractService
}

// NewContractHandler creates a new ContractHandler.
func NewContractHandler(contractService service.ContractService) *ContractHandler {
	return &ContractHandler{contractService: contractService}
}

// Get handles GET /api/contracts[?id=]
// @Summary List contracts or fetch one
// @Tags contracts
// @Produce json
// @Param id query string false "Contract ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Contract} "Contracts"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Contract not found"
// @Security CookieAuth
// @Router /contracts [get]
func (h *ContractHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		contractID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contract ID")
			return
		}
		ct, err := h.contractService.GetByID(c.Request.Context(), owner, contractID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, ct)
		return
	}

	contracts, err := h.contractService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, contracts)
}

// Upsert handles POST /api/contracts
// @Summary Create or update a contract
// @Description Contracts draw from their own numbering sequence, independent
// @Description of the shared invoice/quotation/receipt counter.
// @Tags contracts
// @Accept json
// @Produce json
// @Param request body service.UpsertContractInput true "Contract details"
// @Success 200 {object} Response{data=domain.Contract} "Contract updated"
// @Success 201 {object} Response{data=domain.Contract} "Contract created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Contract not found"
// @Security CookieAuth
// @Router /contracts [post]
func (h *ContractHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertContractInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	ct, created, err := h.contractService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, ct)
		return
	}
	RespondOK(c, ct)
}

// Delete handles DELETE /api/contracts?id=
// @Summary Delete a contract
// @Tags contracts
// @Produce json
// @Param id query string true "Contract ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Contract deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Contract not found"
// @Security CookieAuth
// @Router /contracts [delete]
func (h *ContractHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	contractID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid contract ID")
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), owner, contractID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "contract deleted"})
}

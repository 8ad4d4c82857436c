package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/domain"
	"folio/internal/service"
)

// PublicHandler handles unauthenticated, token-keyed document reads.
type PublicHandler struct {
	publicService service.PublicService
}

// NewPublicHandler creates a new PublicHandler.
func NewPublicHandler(publicService service.PublicService) *PublicHandler {
	return &PublicHandler{publicService: publicService}
}

// Get handles GET /api/public/:type/:token
// @Summary Fetch a shared document by token
// @Description Resolves a share token within the named document type only.
// @Description An unknown token, or a token of a different type, yields 404.
// @Tags public
// @Produce json
// @Param type path string true "Document type" Enums(invoices, quotations, receipts, contracts)
// @Param token path string true "Share token"
// @Success 200 {object} Response{data=service.SharedDocument} "Shared document"
// @Failure 400 {object} ErrorResponseBody "Missing token"
// @Failure 404 {object} ErrorResponseBody "Unknown token or type"
// @Router /public/{type}/{token} [get]
func (h *PublicHandler) Get(c *gin.Context) {
	docType := c.Param("type")
	token := c.Param("token")
	ctx := c.Request.Context()

	var (
		shared *service.SharedDocument
		err    error
	)
	switch docType {
	case "invoices":
		shared, err = h.publicService.GetInvoice(ctx, token)
	case "quotations":
		shared, err = h.publicService.GetQuotation(ctx, token)
	case "receipts":
		shared, err = h.publicService.GetReceipt(ctx, token)
	case "contracts":
		shared, err = h.publicService.GetContract(ctx, token)
	default:
		HandleError(c, domain.ErrNotFound)
		return
	}
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, shared)
}

// MissingToken handles GET /api/public/:type with no token segment.
func (h *PublicHandler) MissingToken(c *gin.Context) {
	RespondError(c, http.StatusBadRequest, "TOKEN_REQUIRED", "share token is required")
}

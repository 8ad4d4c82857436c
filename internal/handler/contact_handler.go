package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"folio/internal/service"
)

// ContactHandler handles the public contact form.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// Send handles POST /api/contact
// @Summary Send a contact form message
// @Tags contact
// @Accept json
// @Produce json
// @Param request body service.ContactInput true "Contact message"
// @Success 200 {object} Response{data=MessageResponse} "Message sent"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 500 {object} ErrorResponseBody "Delivery failure"
// @Router /contact [post]
func (h *ContactHandler) Send(c *gin.Context) {
	var input service.ContactInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	if err := h.contactService.Send(c.Request.Context(), input); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "Message sent"})
}

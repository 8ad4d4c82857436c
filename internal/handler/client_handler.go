package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"folio/internal/service"
)

// ClientHandler handles client registry endpoints. The collection follows
// the query-parameter convention: GET without id lists, GET with id fetches
// one, POST upserts by body id, DELETE requires id.
type ClientHandler struct {
	clientService service.ClientService
}

// NewClientHandler creates a new ClientHandler.
func NewClientHandler(clientService service.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Get handles GET /api/clients[?id=]
// @Summary List clients or fetch one
// @Tags clients
// @Produce json
// @Param id query string false "Client ID (UUID); omit to list all"
// @Success 200 {object} Response{data=[]domain.Client} "Clients"
// @Failure 400 {object} ErrorResponseBody "Invalid ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Client not found"
// @Security CookieAuth
// @Router /clients [get]
func (h *ClientHandler) Get(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	if idParam := c.Query("id"); idParam != "" {
		clientID, err := uuid.Parse(idParam)
		if err != nil {
			RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
			return
		}
		client, err := h.clientService.GetByID(c.Request.Context(), owner, clientID)
		if err != nil {
			HandleError(c, err)
			return
		}
		RespondOK(c, client)
		return
	}

	clients, err := h.clientService.List(c.Request.Context(), owner)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, clients)
}

// Upsert handles POST /api/clients
// @Summary Create or update a client
// @Tags clients
// @Accept json
// @Produce json
// @Param request body service.UpsertClientInput true "Client details"
// @Success 200 {object} Response{data=domain.Client} "Client updated"
// @Success 201 {object} Response{data=domain.Client} "Client created"
// @Failure 400 {object} ErrorResponseBody "Validation error"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Client not found"
// @Security CookieAuth
// @Router /clients [post]
func (h *ClientHandler) Upsert(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	var input service.UpsertClientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	client, created, err := h.clientService.Upsert(c.Request.Context(), owner, input)
	if err != nil {
		HandleError(c, err)
		return
	}
	if created {
		RespondCreated(c, client)
		return
	}
	RespondOK(c, client)
}

// Delete handles DELETE /api/clients?id=
// @Summary Delete a client
// @Description Deletion is refused while any document still references the client.
// @Tags clients
// @Produce json
// @Param id query string true "Client ID (UUID)"
// @Success 200 {object} Response{data=MessageResponse} "Client deleted"
// @Failure 400 {object} ErrorResponseBody "Invalid or missing ID"
// @Failure 401 {object} ErrorResponseBody "Unauthorized"
// @Failure 404 {object} ErrorResponseBody "Client not found"
// @Failure 409 {object} ErrorResponseBody "Client in use"
// @Security CookieAuth
// @Router /clients [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	owner, ok := ownerID(c)
	if !ok {
		return
	}

	clientID, err := uuid.Parse(c.Query("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid client ID")
		return
	}

	if err := h.clientService.Delete(c.Request.Context(), owner, clientID); err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, gin.H{"message": "client deleted"})
}

package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/handler"
	"folio/internal/middleware"
	"folio/internal/service"
	"folio/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// setOwner injects the authenticated owner the way AuthMiddleware does.
func setOwner(c *gin.Context, ownerID uuid.UUID) {
	c.Set(middleware.ContextKeyUserID, ownerID)
}

func newClientHandler() (*handler.ClientHandler, *mocks.MockClientService) {
	mockSvc := new(mocks.MockClientService)
	h := handler.NewClientHandler(mockSvc)
	return h, mockSvc
}

// --- Get ---

func TestClientHandler_Get_List(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()

	clients := []domain.Client{
		{ID: uuid.New(), OwnerID: ownerID, Name: "Acme Corp", Email: "billing@acme.test"},
		{ID: uuid.New(), OwnerID: ownerID, Name: "Globex", Email: "ap@globex.test"},
	}
	mockSvc.On("List", mock.Anything, ownerID).Return(clients, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/clients", http.NoBody)
	setOwner(c, ownerID)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Len(t, resp.Data, 2)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Get_ByID(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()
	clientID := uuid.New()

	client := &domain.Client{ID: clientID, OwnerID: ownerID, Name: "Acme Corp", Email: "billing@acme.test"}
	mockSvc.On("GetByID", mock.Anything, ownerID, clientID).Return(client, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/clients?id="+clientID.String(), http.NoBody)
	setOwner(c, ownerID)

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertNotCalled(t, "List")
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Get_InvalidID(t *testing.T) {
	h, mockSvc := newClientHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/clients?id=not-a-uuid", http.NoBody)
	setOwner(c, uuid.New())

	h.Get(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "INVALID_ID", resp.Error.Code)
	mockSvc.AssertNotCalled(t, "GetByID")
}

func TestClientHandler_Get_NoOwnerContext(t *testing.T) {
	h, mockSvc := newClientHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/clients", http.NoBody)

	h.Get(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	mockSvc.AssertNotCalled(t, "List")
}

// --- Upsert ---

func TestClientHandler_Upsert_Create(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()

	created := &domain.Client{ID: uuid.New(), OwnerID: ownerID, Name: "Acme Corp", Email: "billing@acme.test"}
	mockSvc.On("Upsert", mock.Anything, ownerID, mock.MatchedBy(func(input service.UpsertClientInput) bool {
		return input.ID == nil && input.Name == "Acme Corp"
	})).Return(created, true, nil)

	body, _ := json.Marshal(map[string]string{
		"name":  "Acme Corp",
		"email": "billing@acme.test",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setOwner(c, ownerID)

	h.Upsert(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Upsert_Update(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()
	clientID := uuid.New()

	updated := &domain.Client{ID: clientID, OwnerID: ownerID, Name: "Acme Intl", Email: "billing@acme.test"}
	mockSvc.On("Upsert", mock.Anything, ownerID, mock.MatchedBy(func(input service.UpsertClientInput) bool {
		return input.ID != nil && *input.ID == clientID
	})).Return(updated, false, nil)

	body, _ := json.Marshal(map[string]string{
		"id":    clientID.String(),
		"name":  "Acme Intl",
		"email": "billing@acme.test",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setOwner(c, ownerID)

	h.Upsert(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Upsert_MissingFields(t *testing.T) {
	h, mockSvc := newClientHandler()

	body, _ := json.Marshal(map[string]string{
		"name": "Acme Corp",
		// missing email
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/clients", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	setOwner(c, uuid.New())

	h.Upsert(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Upsert")
}

// --- Delete ---

func TestClientHandler_Delete_Success(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()
	clientID := uuid.New()

	mockSvc.On("Delete", mock.Anything, ownerID, clientID).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/clients?id="+clientID.String(), http.NoBody)
	setOwner(c, ownerID)

	h.Delete(c)

	assert.Equal(t, http.StatusOK, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestClientHandler_Delete_InUse(t *testing.T) {
	h, mockSvc := newClientHandler()
	ownerID := uuid.New()
	clientID := uuid.New()

	mockSvc.On("Delete", mock.Anything, ownerID, clientID).Return(domain.ErrClientInUse)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/clients?id="+clientID.String(), http.NoBody)
	setOwner(c, ownerID)

	h.Delete(c)

	assert.Equal(t, http.StatusConflict, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "CLIENT_IN_USE", resp.Error.Code)
}

func TestClientHandler_Delete_MissingID(t *testing.T) {
	h, mockSvc := newClientHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/clients", http.NoBody)
	setOwner(c, uuid.New())

	h.Delete(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Delete")
}

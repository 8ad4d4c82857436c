package handler_test

import (
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
	"folio/internal/service"
	"folio/mocks"
)

func newPublicHandler() (*handler.PublicHandler, *mocks.MockPublicService) {
	mockSvc := new(mocks.MockPublicService)
	h := handler.NewPublicHandler(mockSvc)
	return h, mockSvc
}

func publicRequest(docType, token string) (*httptest.ResponseRecorder, *gin.Context) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/public/"+docType+"/"+token, http.NoBody)
	c.Params = gin.Params{{Key: "type", Value: docType}, {Key: "token", Value: token}}
	return w, c
}

func TestPublicHandler_Get_Invoice(t *testing.T) {
	h, mockSvc := newPublicHandler()
	token := "01J9ZK3V7N4Q8R2T6W0X5Y1B2C"

	shared := &service.SharedDocument{
		Type: service.SharedTypeInvoice,
		Document: &domain.Invoice{
			ID:            uuid.New(),
			InvoiceNumber: "INV-0042",
			Token:         token,
		},
		Settings: &domain.InvoiceSettings{BusinessName: "Jane Doe Studio"},
	}
	mockSvc.On("GetInvoice", mock.Anything, token).Return(shared, nil)

	w, c := publicRequest("invoices", token)
	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestPublicHandler_Get_DispatchesByType(t *testing.T) {
	h, mockSvc := newPublicHandler()
	token := "01J9ZK3V7N4Q8R2T6W0X5Y1B2C"

	shared := &service.SharedDocument{Type: service.SharedTypeQuotation}
	mockSvc.On("GetQuotation", mock.Anything, token).Return(shared, nil)

	_, c := publicRequest("quotations", token)
	h.Get(c)

	mockSvc.AssertCalled(t, "GetQuotation", mock.Anything, token)
	mockSvc.AssertNotCalled(t, "GetInvoice")
	mockSvc.AssertNotCalled(t, "GetReceipt")
	mockSvc.AssertNotCalled(t, "GetContract")
}

func TestPublicHandler_Get_UnknownToken(t *testing.T) {
	h, mockSvc := newPublicHandler()

	mockSvc.On("GetContract", mock.Anything, "nosuchtoken").Return(nil, domain.ErrNotFound)

	w, c := publicRequest("contracts", "nosuchtoken")
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "NOT_FOUND", resp.Error.Code)
}

func TestPublicHandler_Get_UnknownType(t *testing.T) {
	h, mockSvc := newPublicHandler()

	w, c := publicRequest("resumes", "sometoken")
	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	mockSvc.AssertNotCalled(t, "GetInvoice")
	mockSvc.AssertNotCalled(t, "GetQuotation")
	mockSvc.AssertNotCalled(t, "GetReceipt")
	mockSvc.AssertNotCalled(t, "GetContract")
}

func TestPublicHandler_MissingToken(t *testing.T) {
	h, _ := newPublicHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/public/invoices", http.NoBody)
	c.Params = gin.Params{{Key: "type", Value: "invoices"}}

	h.MissingToken(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "TOKEN_REQUIRED", resp.Error.Code)
}

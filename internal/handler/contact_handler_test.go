package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/handler"
	"folio/internal/service"
	"folio/mocks"
)

func newContactHandler() (*handler.ContactHandler, *mocks.MockContactService) {
	mockSvc := new(mocks.MockContactService)
	h := handler.NewContactHandler(mockSvc)
	return h, mockSvc
}

func contactBody() []byte {
	body, _ := json.Marshal(map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Project inquiry",
		"message": "I'd like to discuss a project.",
	})
	return body
}

func TestContactHandler_Send_Success(t *testing.T) {
	h, mockSvc := newContactHandler()

	mockSvc.On("Send", mock.Anything, mock.MatchedBy(func(input service.ContactInput) bool {
		return input.Email == "visitor@example.com" && input.Subject == "Project inquiry"
	})).Return(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(contactBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Send(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestContactHandler_Send_MissingFields(t *testing.T) {
	h, mockSvc := newContactHandler()

	body, _ := json.Marshal(map[string]string{
		"name":  "Visitor",
		"email": "visitor@example.com",
		// missing subject and message
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Send(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Send")
}

func TestContactHandler_Send_DeliveryFailure(t *testing.T) {
	h, mockSvc := newContactHandler()

	mockSvc.On("Send", mock.Anything, mock.AnythingOfType("service.ContactInput")).
		Return(domain.ErrEmailSendFailed)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/contact", bytes.NewReader(contactBody()))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Send(c)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "EMAIL_SEND_FAILED", resp.Error.Code)
}

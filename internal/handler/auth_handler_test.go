package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/handler"
	"folio/internal/service"
	"folio/mocks"
)

var testCookieCfg = config.JWTConfig{
	CookieName: "folio_session",
}

func newAuthHandler() (*handler.AuthHandler, *mocks.MockAuthService) {
	mockSvc := new(mocks.MockAuthService)
	h := handler.NewAuthHandler(mockSvc, testCookieCfg)
	return h, mockSvc
}

func TestAuthHandler_Login_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	session := &service.Session{
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour),
		User:      &domain.User{ID: uuid.New(), Email: "owner@example.com", Name: "Owner"},
	}
	mockSvc.On("Login", mock.Anything, mock.MatchedBy(func(input service.LoginInput) bool {
		return input.Email == "owner@example.com" && input.Password == "correct horse"
	})).Return(session, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "owner@example.com",
		"password": "correct horse",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusOK, w.Code)

	// Session cookie set as HttpOnly.
	cookies := w.Result().Cookies()
	var found *http.Cookie
	for _, ck := range cookies {
		if ck.Name == "folio_session" {
			found = ck
		}
	}
	assert.NotNil(t, found)
	assert.Equal(t, "signed.jwt.token", found.Value)
	assert.True(t, found.HttpOnly)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, mockSvc := newAuthHandler()

	mockSvc.On("Login", mock.Anything, mock.AnythingOfType("service.LoginInput")).
		Return(nil, domain.ErrInvalidCredentials)

	body, _ := json.Marshal(map[string]string{
		"email":    "owner@example.com",
		"password": "wrong",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp handler.APIResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)
	assert.Equal(t, "INVALID_CREDENTIALS", resp.Error.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestAuthHandler_Login_InvalidEmail(t *testing.T) {
	h, mockSvc := newAuthHandler()

	body, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "whatever",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Login(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Login")
}

func TestAuthHandler_Logout_ClearsCookie(t *testing.T) {
	h, _ := newAuthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodDelete, "/api/auth/login", http.NoBody)

	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	assert.Len(t, cookies, 1)
	assert.Equal(t, "folio_session", cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}

func TestAuthHandler_Register_Success(t *testing.T) {
	h, mockSvc := newAuthHandler()

	user := &domain.User{ID: uuid.New(), Email: "owner@example.com", Name: "Owner"}
	mockSvc.On("Register", mock.Anything, mock.MatchedBy(func(input service.RegisterInput) bool {
		return input.Email == "owner@example.com" && input.Name == "Owner"
	})).Return(user, nil)

	body, _ := json.Marshal(map[string]string{
		"email":    "owner@example.com",
		"password": "long enough password",
		"name":     "Owner",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	mockSvc.AssertExpectations(t)
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	h, mockSvc := newAuthHandler()

	body, _ := json.Marshal(map[string]string{
		"email":    "owner@example.com",
		"password": "short",
		"name":     "Owner",
	})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Register(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockSvc.AssertNotCalled(t, "Register")
}

func TestAuthHandler_Me_WithoutSession(t *testing.T) {
	h, _ := newAuthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/auth/me", http.NoBody)

	h.Me(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthHandler_Me_WithSession(t *testing.T) {
	h, _ := newAuthHandler()

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest(http.MethodGet, "/api/auth/me", http.NoBody)
	c.Set("claims", &service.Claims{UserID: uuid.New(), Email: "owner@example.com"})

	h.Me(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

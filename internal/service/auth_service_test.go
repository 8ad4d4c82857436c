package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "test-secret",
	AccessTokenExpiry: time.Hour,
	Issuer:            "folio",
}

func newAuthService() (service.AuthService, *mocks.MockUserRepo) {
	userRepo := new(mocks.MockUserRepo)
	svc := service.NewAuthService(userRepo, testJWTConfig)
	return svc, userRepo
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	assert.NoError(t, err)
	return string(hash)
}

func TestAuthService_Register_HashesPassword(t *testing.T) {
	svc, userRepo := newAuthService()

	userRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil)

	user, err := svc.Register(context.Background(), service.RegisterInput{
		Email:    "owner@example.com",
		Password: "securepassword123",
		Name:     "Jordan Rivera",
	})

	assert.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "securepassword123", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("securepassword123")))
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, userRepo := newAuthService()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hashPassword(t, "securepassword123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@example.com",
		Password: "securepassword123",
	})

	assert.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, user, session.User)
	assert.WithinDuration(t, time.Now().Add(time.Hour), session.ExpiresAt, 5*time.Second)
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	svc, userRepo := newAuthService()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hashPassword(t, "securepassword123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@example.com",
		Password: "wrong",
	})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc, userRepo := newAuthService()

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, domain.ErrNotFound)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})

	assert.Nil(t, session)
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestAuthService_ValidateToken_RoundTrip(t *testing.T) {
	svc, userRepo := newAuthService()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hashPassword(t, "securepassword123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@example.com",
		Password: "securepassword123",
	})
	assert.NoError(t, err)

	claims, err := svc.ValidateToken(session.Token)

	assert.NoError(t, err)
	assert.Equal(t, user.ID, claims.UserID)
	assert.Equal(t, user.Email, claims.Email)
}

func TestAuthService_ValidateToken_Garbage(t *testing.T) {
	svc, _ := newAuthService()

	claims, err := svc.ValidateToken("not-a-jwt")

	assert.Nil(t, claims)
	assert.Error(t, err)
}

func TestAuthService_ValidateToken_WrongSecret(t *testing.T) {
	svc, userRepo := newAuthService()

	user := &domain.User{
		ID:           uuid.New(),
		Email:        "owner@example.com",
		PasswordHash: hashPassword(t, "securepassword123"),
	}
	userRepo.On("GetByEmail", mock.Anything, "owner@example.com").Return(user, nil)

	session, err := svc.Login(context.Background(), service.LoginInput{
		Email:    "owner@example.com",
		Password: "securepassword123",
	})
	assert.NoError(t, err)

	otherCfg := testJWTConfig
	otherCfg.Secret = "different-secret"
	other := service.NewAuthService(new(mocks.MockUserRepo), otherCfg)

	claims, err := other.ValidateToken(session.Token)

	assert.Nil(t, claims)
	assert.Error(t, err)
}

package mocks

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
)

// MockSettingsService is a mock implementation of service.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get(ctx context.Context, ownerID uuid.UUID) (*domain.InvoiceSettings, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSettings), args.Error(1)
}

func (m *MockSettingsService) Update(ctx context.Context, ownerID uuid.UUID, input service.UpdateSettingsInput) (*domain.InvoiceSettings, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoiceSettings), args.Error(1)
}

func (m *MockSettingsService) UploadLogo(ctx context.Context, ownerID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	args := m.Called(ctx, ownerID, filename, contentType, body)
	return args.String(0), args.Error(1)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
)

// MockClientService is a mock implementation of service.ClientService.
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) Upsert(ctx context.Context, ownerID uuid.UUID, input service.UpsertClientInput) (*domain.Client, bool, error) {
	args := m.Called(ctx, ownerID, input)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Client), args.Bool(1), args.Error(2)
}

func (m *MockClientService) GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*domain.Client, error) {
	args := m.Called(ctx, ownerID, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) Delete(ctx context.Context, ownerID, clientID uuid.UUID) error {
	args := m.Called(ctx, ownerID, clientID)
	return args.Error(0)
}

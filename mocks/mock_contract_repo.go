package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockContractRepo is a mock implementation of port.ContractRepository.
type MockContractRepo struct {
	mock.Mock
}

func (m *MockContractRepo) Create(ctx context.Context, ct *domain.Contract) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockContractRepo) Update(ctx context.Context, ct *domain.Contract) error {
	args := m.Called(ctx, ct)
	return args.Error(0)
}

func (m *MockContractRepo) GetByID(ctx context.Context, ownerID, contractID uuid.UUID) (*domain.Contract, error) {
	args := m.Called(ctx, ownerID, contractID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepo) GetByToken(ctx context.Context, token string) (*domain.Contract, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Contract), args.Error(1)
}

func (m *MockContractRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Contract, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Contract), args.Error(1)
}

func (m *MockContractRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID, clientID)
	return args.Int(0), args.Error(1)
}

func (m *MockContractRepo) Delete(ctx context.Context, ownerID, contractID uuid.UUID) error {
	args := m.Called(ctx, ownerID, contractID)
	return args.Error(0)
}

func (m *MockContractRepo) IncrementViewCount(ctx context.Context, contractID uuid.UUID) error {
	args := m.Called(ctx, contractID)
	return args.Error(0)
}

func (m *MockContractRepo) BackfillTokens(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

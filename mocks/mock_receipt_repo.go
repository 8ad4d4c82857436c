package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockReceiptRepo is a mock implementation of port.ReceiptRepository.
type MockReceiptRepo struct {
	mock.Mock
}

func (m *MockReceiptRepo) Create(ctx context.Context, r *domain.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepo) Update(ctx context.Context, r *domain.Receipt) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReceiptRepo) GetByID(ctx context.Context, ownerID, receiptID uuid.UUID) (*domain.Receipt, error) {
	args := m.Called(ctx, ownerID, receiptID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepo) GetByToken(ctx context.Context, token string) (*domain.Receipt, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Receipt, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Receipt), args.Error(1)
}

func (m *MockReceiptRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID, clientID)
	return args.Int(0), args.Error(1)
}

func (m *MockReceiptRepo) Delete(ctx context.Context, ownerID, receiptID uuid.UUID) error {
	args := m.Called(ctx, ownerID, receiptID)
	return args.Error(0)
}

func (m *MockReceiptRepo) IncrementViewCount(ctx context.Context, receiptID uuid.UUID) error {
	args := m.Called(ctx, receiptID)
	return args.Error(0)
}

func (m *MockReceiptRepo) BackfillTokens(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

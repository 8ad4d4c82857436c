package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockQuotationRepo is a mock implementation of port.QuotationRepository.
type MockQuotationRepo struct {
	mock.Mock
}

func (m *MockQuotationRepo) Create(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepo) Update(ctx context.Context, q *domain.Quotation) error {
	args := m.Called(ctx, q)
	return args.Error(0)
}

func (m *MockQuotationRepo) GetByID(ctx context.Context, ownerID, quotationID uuid.UUID) (*domain.Quotation, error) {
	args := m.Called(ctx, ownerID, quotationID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepo) GetByToken(ctx context.Context, token string) (*domain.Quotation, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quotation, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quotation), args.Error(1)
}

func (m *MockQuotationRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	args := m.Called(ctx, ownerID, clientID)
	return args.Int(0), args.Error(1)
}

func (m *MockQuotationRepo) Delete(ctx context.Context, ownerID, quotationID uuid.UUID) error {
	args := m.Called(ctx, ownerID, quotationID)
	return args.Error(0)
}

func (m *MockQuotationRepo) IncrementViewCount(ctx context.Context, quotationID uuid.UUID) error {
	args := m.Called(ctx, quotationID)
	return args.Error(0)
}

func (m *MockQuotationRepo) BackfillTokens(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

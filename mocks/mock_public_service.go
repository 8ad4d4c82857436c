package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/internal/service"
)

// MockPublicService is a mock implementation of service.PublicService.
type MockPublicService struct {
	mock.Mock
}

func (m *MockPublicService) GetInvoice(ctx context.Context, token string) (*service.SharedDocument, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SharedDocument), args.Error(1)
}

func (m *MockPublicService) GetQuotation(ctx context.Context, token string) (*service.SharedDocument, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SharedDocument), args.Error(1)
}

func (m *MockPublicService) GetReceipt(ctx context.Context, token string) (*service.SharedDocument, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SharedDocument), args.Error(1)
}

func (m *MockPublicService) GetContract(ctx context.Context, token string) (*service.SharedDocument, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SharedDocument), args.Error(1)
}

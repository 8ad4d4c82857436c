package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/internal/service"
)

// MockContactService is a mock implementation of service.ContactService.
type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) Send(ctx context.Context, input service.ContactInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

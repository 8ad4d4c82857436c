package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"folio/internal/port"
)

// MockEmailSender is a mock implementation of port.EmailSender.
type MockEmailSender struct {
	mock.Mock
}

func (m *MockEmailSender) SendContactEmail(ctx context.Context, msg port.ContactMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockResumeRepo is a mock implementation of port.ResumeRepository.
type MockResumeRepo struct {
	mock.Mock
}

func (m *MockResumeRepo) Upsert(ctx context.Context, resume *domain.Resume) (bool, error) {
	args := m.Called(ctx, resume)
	return args.Bool(0), args.Error(1)
}

func (m *MockResumeRepo) GetByID(ctx context.Context, ownerID, resumeID uuid.UUID) (*domain.Resume, error) {
	args := m.Called(ctx, ownerID, resumeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Resume, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Resume), args.Error(1)
}

func (m *MockResumeRepo) Delete(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	args := m.Called(ctx, ownerID, resumeID)
	return args.Error(0)
}

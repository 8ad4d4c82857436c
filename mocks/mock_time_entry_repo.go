package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
)

// MockTimeEntryRepo is a mock implementation of port.TimeEntryRepository.
type MockTimeEntryRepo struct {
	mock.Mock
}

func (m *MockTimeEntryRepo) Upsert(ctx context.Context, entry *domain.TimeEntry) (bool, error) {
	args := m.Called(ctx, entry)
	return args.Bool(0), args.Error(1)
}

func (m *MockTimeEntryRepo) GetByID(ctx context.Context, ownerID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	args := m.Called(ctx, ownerID, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.TimeEntry, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TimeEntry), args.Error(1)
}

func (m *MockTimeEntryRepo) Delete(ctx context.Context, ownerID, entryID uuid.UUID) error {
	args := m.Called(ctx, ownerID, entryID)
	return args.Error(0)
}

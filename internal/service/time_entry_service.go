package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// UpsertTimeEntryInput is the DTO for creating or updating a time entry.
// Timestamps are RFC 3339; duration is derived when an end time is present.
type UpsertTimeEntryInput struct {
	ID          *uuid.UUID `json:"id"`
	ProjectName string     `json:"project_name" binding:"required"`
	Description string     `json:"description"`
	StartTime   time.Time  `json:"start_time" binding:"required"`
	EndTime     *time.Time `json:"end_time"`
}

// TimeEntryService defines the time tracking contract.
type TimeEntryService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertTimeEntryInput) (*domain.TimeEntry, bool, error)
	GetByID(ctx context.Context, ownerID, entryID uuid.UUID) (*domain.TimeEntry, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.TimeEntry, error)
	Delete(ctx context.Context, ownerID, entryID uuid.UUID) error
}

type timeEntryService struct {
	timeEntryRepo port.TimeEntryRepository
}

// NewTimeEntryService creates a new TimeEntryService implementation.
func NewTimeEntryService(timeEntryRepo port.TimeEntryRepository) TimeEntryService {
	return &timeEntryService{timeEntryRepo: timeEntryRepo}
}

func (s *timeEntryService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertTimeEntryInput) (*domain.TimeEntry, bool, error) {
	entry := &domain.TimeEntry{
		OwnerID:     ownerID,
		ProjectName: input.ProjectName,
		Description: input.Description,
		StartTime:   input.StartTime,
		EndTime:     input.EndTime,
	}
	if input.ID != nil {
		entry.ID = *input.ID
	}
	if input.EndTime != nil {
		entry.DurationMinutes = int(input.EndTime.Sub(input.StartTime).Minutes())
	}

	created, err := s.timeEntryRepo.Upsert(ctx, entry)
	if err != nil {
		return nil, false, err
	}
	return entry, created, nil
}

func (s *timeEntryService) GetByID(ctx context.Context, ownerID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	return s.timeEntryRepo.GetByID(ctx, ownerID, entryID)
}

func (s *timeEntryService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.TimeEntry, error) {
	return s.timeEntryRepo.ListByOwner(ctx, ownerID)
}

func (s *timeEntryService) Delete(ctx context.Context, ownerID, entryID uuid.UUID) error {
	return s.timeEntryRepo.Delete(ctx, ownerID, entryID)
}

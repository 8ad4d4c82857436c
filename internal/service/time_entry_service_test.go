package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/service"
	"folio/mocks"
)

func TestTimeEntryService_Upsert_DerivesDuration(t *testing.T) {
	repo := new(mocks.MockTimeEntryRepo)
	svc := service.NewTimeEntryService(repo)

	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.TimeEntry")).Return(true, nil)

	start := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	end := start.Add(90 * time.Minute)

	entry, created, err := svc.Upsert(context.Background(), uuid.New(), service.UpsertTimeEntryInput{
		ProjectName: "Portfolio redesign",
		StartTime:   start,
		EndTime:     &end,
	})

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, 90, entry.DurationMinutes)
}

func TestTimeEntryService_Upsert_OpenEntryHasNoDuration(t *testing.T) {
	repo := new(mocks.MockTimeEntryRepo)
	svc := service.NewTimeEntryService(repo)

	repo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.TimeEntry")).Return(true, nil)

	entry, _, err := svc.Upsert(context.Background(), uuid.New(), service.UpsertTimeEntryInput{
		ProjectName: "Portfolio redesign",
		StartTime:   time.Now(),
	})

	assert.NoError(t, err)
	assert.Nil(t, entry.EndTime)
	assert.Zero(t, entry.DurationMinutes)
}

package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func newResumeService() (service.ResumeService, *mocks.MockResumeRepo) {
	resumeRepo := new(mocks.MockResumeRepo)
	svc := service.NewResumeService(resumeRepo)
	return svc, resumeRepo
}

func TestResumeService_Upsert_BuildsSubEntities(t *testing.T) {
	svc, resumeRepo := newResumeService()
	ownerID := uuid.New()

	resumeRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.Resume")).Return(true, nil)

	input := service.UpsertResumeInput{
		Title:    "Freelance CV",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Experiences: []service.ExperienceInput{
			{Company: "Acme Corp", Position: "Engineer", StartDate: "2020-01-01", EndDate: "2023-06-30"},
			{Company: "Self-employed", Position: "Consultant", StartDate: "2023-07-01"},
		},
		Educations: []service.EducationInput{
			{Institution: "State University", Degree: "BSc", StartDate: "2016-09-01", EndDate: "2020-06-01"},
		},
		Skills: []service.SkillInput{
			{Name: "Go", Level: "expert"},
		},
	}

	resume, created, err := svc.Upsert(context.Background(), ownerID, input)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, ownerID, resume.OwnerID)
	assert.Len(t, resume.Experiences, 2)
	assert.Len(t, resume.Educations, 1)
	assert.Len(t, resume.Skills, 1)

	// Open-ended experience keeps a nil end date.
	assert.NotNil(t, resume.Experiences[0].EndDate)
	assert.Nil(t, resume.Experiences[1].EndDate)
	assert.Equal(t, time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), resume.Experiences[0].StartDate)
	resumeRepo.AssertExpectations(t)
}

func TestResumeService_Upsert_InvalidExperienceDate(t *testing.T) {
	svc, resumeRepo := newResumeService()
	ownerID := uuid.New()

	input := service.UpsertResumeInput{
		Title:    "Freelance CV",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Experiences: []service.ExperienceInput{
			{Company: "Acme Corp", Position: "Engineer", StartDate: "Jan 2020"},
		},
	}

	_, _, err := svc.Upsert(context.Background(), ownerID, input)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	resumeRepo.AssertNotCalled(t, "Upsert")
}

func TestResumeService_Upsert_UpdateKeepsID(t *testing.T) {
	svc, resumeRepo := newResumeService()
	ownerID := uuid.New()
	resumeID := uuid.New()

	resumeRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(r *domain.Resume) bool {
		return r.ID == resumeID
	})).Return(false, nil)

	input := service.UpsertResumeInput{
		ID:       &resumeID,
		Title:    "Freelance CV",
		FullName: "Jane Doe",
		Email:    "jane@example.com",
	}

	resume, created, err := svc.Upsert(context.Background(), ownerID, input)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, resumeID, resume.ID)
	resumeRepo.AssertExpectations(t)
}

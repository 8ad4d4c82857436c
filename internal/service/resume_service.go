package service

import (
	"context"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// ExperienceInput is the DTO for one employment entry.
type ExperienceInput struct {
	Company     string `json:"company" binding:"required"`
	Position    string `json:"position" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
	Description string `json:"description"`
}

// EducationInput is the DTO for one education entry.
type EducationInput struct {
	Institution string `json:"institution" binding:"required"`
	Degree      string `json:"degree" binding:"required"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date"`
}

// SkillInput is the DTO for one skill entry.
type SkillInput struct {
	Name  string `json:"name" binding:"required"`
	Level string `json:"level"`
}

// UpsertResumeInput is the DTO for creating or updating a resume. The
// sub-entity lists fully replace whatever is stored.
type UpsertResumeInput struct {
	ID          *uuid.UUID        `json:"id"`
	Title       string            `json:"title" binding:"required"`
	FullName    string            `json:"full_name" binding:"required"`
	Email       string            `json:"email" binding:"required,email"`
	Phone       string            `json:"phone"`
	Summary     string            `json:"summary"`
	Experiences []ExperienceInput `json:"experiences" binding:"dive"`
	Educations  []EducationInput  `json:"educations" binding:"dive"`
	Skills      []SkillInput      `json:"skills" binding:"dive"`
}

// ResumeService defines the resume builder contract.
type ResumeService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertResumeInput) (*domain.Resume, bool, error)
	GetByID(ctx context.Context, ownerID, resumeID uuid.UUID) (*domain.Resume, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Resume, error)
	Delete(ctx context.Context, ownerID, resumeID uuid.UUID) error
}

type resumeService struct {
	resumeRepo port.ResumeRepository
}

// NewResumeService creates a new ResumeService implementation.
func NewResumeService(resumeRepo port.ResumeRepository) ResumeService {
	return &resumeService{resumeRepo: resumeRepo}
}

func (s *resumeService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertResumeInput) (*domain.Resume, bool, error) {
	resume := &domain.Resume{
		OwnerID:  ownerID,
		Title:    input.Title,
		FullName: input.FullName,
		Email:    input.Email,
		Phone:    input.Phone,
		Summary:  input.Summary,
	}
	if input.ID != nil {
		resume.ID = *input.ID
	}

	for _, exp := range input.Experiences {
		start, err := parseDate(exp.StartDate)
		if err != nil {
			return nil, false, err
		}
		end, err := parseOptionalDate(exp.EndDate)
		if err != nil {
			return nil, false, err
		}
		resume.Experiences = append(resume.Experiences, domain.WorkExperience{
			Company:     exp.Company,
			Position:    exp.Position,
			StartDate:   start,
			EndDate:     end,
			Description: exp.Description,
		})
	}
	for _, edu := range input.Educations {
		start, err := parseDate(edu.StartDate)
		if err != nil {
			return nil, false, err
		}
		end, err := parseOptionalDate(edu.EndDate)
		if err != nil {
			return nil, false, err
		}
		resume.Educations = append(resume.Educations, domain.Education{
			Institution: edu.Institution,
			Degree:      edu.Degree,
			StartDate:   start,
			EndDate:     end,
		})
	}
	for _, skill := range input.Skills {
		resume.Skills = append(resume.Skills, domain.Skill{Name: skill.Name, Level: skill.Level})
	}

	created, err := s.resumeRepo.Upsert(ctx, resume)
	if err != nil {
		return nil, false, err
	}
	return resume, created, nil
}

func (s *resumeService) GetByID(ctx context.Context, ownerID, resumeID uuid.UUID) (*domain.Resume, error) {
	return s.resumeRepo.GetByID(ctx, ownerID, resumeID)
}

func (s *resumeService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Resume, error) {
	return s.resumeRepo.ListByOwner(ctx, ownerID)
}

func (s *resumeService) Delete(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	return s.resumeRepo.Delete(ctx, ownerID, resumeID)
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
	"folio/internal/port"
)

type resumeRepo struct {
	db *sqlx.DB
}

// NewResumeRepo creates a new PostgreSQL-backed ResumeRepository.
func NewResumeRepo(db *sqlx.DB) port.ResumeRepository {
	return &resumeRepo{db: db}
}

// Upsert writes the resume header and replaces its sub-entity graph
// (experiences, educations, skills) in one transaction.
func (r *resumeRepo) Upsert(ctx context.Context, resume *domain.Resume) (bool, error) {
	now := time.Now().UTC()
	created := resume.ID == uuid.Nil
	if created {
		resume.ID = uuid.New()
		resume.CreatedAt = now
	}
	resume.UpdatedAt = now

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("resumeRepo.Upsert: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if !created {
		result, err := tx.ExecContext(ctx, `
			UPDATE resumes SET
				title = $1, full_name = $2, email = $3, phone = $4,
				summary = $5, updated_at = $6
			WHERE id = $7 AND owner_id = $8`,
			resume.Title, resume.FullName, resume.Email, resume.Phone,
			resume.Summary, resume.UpdatedAt, resume.ID, resume.OwnerID)
		if err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert update: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return false, domain.ErrNotFound
		}
	} else {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resumes (id, owner_id, title, full_name, email, phone,
				summary, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
			resume.ID, resume.OwnerID, resume.Title, resume.FullName,
			resume.Email, resume.Phone, resume.Summary,
			resume.CreatedAt, resume.UpdatedAt)
		if err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert insert: %w", err)
		}
	}

	for _, table := range []string{"resume_experiences", "resume_educations", "resume_skills"} {
		if _, err := tx.ExecContext(ctx,
			fmt.Sprintf("DELETE FROM %s WHERE resume_id = $1", table), resume.ID); err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert clearing %s: %w", table, err)
		}
	}

	for i := range resume.Experiences {
		exp := &resume.Experiences[i]
		if exp.ID == uuid.Nil {
			exp.ID = uuid.New()
		}
		exp.ResumeID = resume.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resume_experiences (id, resume_id, position_order,
				company, position, start_date, end_date, description)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			exp.ID, exp.ResumeID, i, exp.Company, exp.Position,
			exp.StartDate, exp.EndDate, exp.Description)
		if err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert experience: %w", err)
		}
	}
	for i := range resume.Educations {
		edu := &resume.Educations[i]
		if edu.ID == uuid.Nil {
			edu.ID = uuid.New()
		}
		edu.ResumeID = resume.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resume_educations (id, resume_id, position_order,
				institution, degree, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			edu.ID, edu.ResumeID, i, edu.Institution, edu.Degree,
			edu.StartDate, edu.EndDate)
		if err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert education: %w", err)
		}
	}
	for i := range resume.Skills {
		skill := &resume.Skills[i]
		if skill.ID == uuid.Nil {
			skill.ID = uuid.New()
		}
		skill.ResumeID = resume.ID
		_, err := tx.ExecContext(ctx, `
			INSERT INTO resume_skills (id, resume_id, position_order, name, level)
			VALUES ($1, $2, $3, $4, $5)`,
			skill.ID, skill.ResumeID, i, skill.Name, skill.Level)
		if err != nil {
			return false, fmt.Errorf("resumeRepo.Upsert skill: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("resumeRepo.Upsert: %w", err)
	}
	return created, nil
}

func (r *resumeRepo) GetByID(ctx context.Context, ownerID, resumeID uuid.UUID) (*domain.Resume, error) {
	var resume domain.Resume
	err := r.db.GetContext(ctx, &resume,
		"SELECT * FROM resumes WHERE id = $1 AND owner_id = $2", resumeID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("resumeRepo.GetByID: %w", err)
	}
	if err := r.hydrate(ctx, &resume); err != nil {
		return nil, fmt.Errorf("resumeRepo.GetByID: %w", err)
	}
	return &resume, nil
}

func (r *resumeRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Resume, error) {
	resumes := []domain.Resume{}
	err := r.db.SelectContext(ctx, &resumes,
		"SELECT * FROM resumes WHERE owner_id = $1 ORDER BY updated_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("resumeRepo.ListByOwner: %w", err)
	}
	for i := range resumes {
		if err := r.hydrate(ctx, &resumes[i]); err != nil {
			return nil, fmt.Errorf("resumeRepo.ListByOwner: %w", err)
		}
	}
	return resumes, nil
}

func (r *resumeRepo) Delete(ctx context.Context, ownerID, resumeID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM resumes WHERE id = $1 AND owner_id = $2", resumeID, ownerID)
	if err != nil {
		return fmt.Errorf("resumeRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *resumeRepo) hydrate(ctx context.Context, resume *domain.Resume) error {
	resume.Experiences = []domain.WorkExperience{}
	if err := r.db.SelectContext(ctx, &resume.Experiences, `
		SELECT id, resume_id, company, position, start_date, end_date, description
		FROM resume_experiences WHERE resume_id = $1 ORDER BY position_order`,
		resume.ID); err != nil {
		return fmt.Errorf("loading experiences: %w", err)
	}
	resume.Educations = []domain.Education{}
	if err := r.db.SelectContext(ctx, &resume.Educations, `
		SELECT id, resume_id, institution, degree, start_date, end_date
		FROM resume_educations WHERE resume_id = $1 ORDER BY position_order`,
		resume.ID); err != nil {
		return fmt.Errorf("loading educations: %w", err)
	}
	resume.Skills = []domain.Skill{}
	if err := r.db.SelectContext(ctx, &resume.Skills, `
		SELECT id, resume_id, name, level
		FROM resume_skills WHERE resume_id = $1 ORDER BY position_order`,
		resume.ID); err != nil {
		return fmt.Errorf("loading skills: %w", err)
	}
	return nil
}

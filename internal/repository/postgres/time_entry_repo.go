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

type timeEntryRepo struct {
	db *sqlx.DB
}

// NewTimeEntryRepo creates a new PostgreSQL-backed TimeEntryRepository.
func NewTimeEntryRepo(db *sqlx.DB) port.TimeEntryRepository {
	return &timeEntryRepo{db: db}
}

func (r *timeEntryRepo) Upsert(ctx context.Context, entry *domain.TimeEntry) (bool, error) {
	if entry.ID != uuid.Nil {
		result, err := r.db.ExecContext(ctx, `
			UPDATE time_entries SET
				project_name = $1, description = $2, start_time = $3,
				end_time = $4, duration_minutes = $5
			WHERE id = $6 AND owner_id = $7`,
			entry.ProjectName, entry.Description, entry.StartTime,
			entry.EndTime, entry.DurationMinutes, entry.ID, entry.OwnerID)
		if err != nil {
			return false, fmt.Errorf("timeEntryRepo.Upsert update: %w", err)
		}
		rows, _ := result.RowsAffected()
		if rows == 0 {
			return false, domain.ErrNotFound
		}
		return false, nil
	}

	entry.ID = uuid.New()
	entry.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO time_entries (id, owner_id, project_name, description,
			start_time, end_time, duration_minutes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID, entry.OwnerID, entry.ProjectName, entry.Description,
		entry.StartTime, entry.EndTime, entry.DurationMinutes, entry.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("timeEntryRepo.Upsert insert: %w", err)
	}
	return true, nil
}

func (r *timeEntryRepo) GetByID(ctx context.Context, ownerID, entryID uuid.UUID) (*domain.TimeEntry, error) {
	var entry domain.TimeEntry
	err := r.db.GetContext(ctx, &entry,
		"SELECT * FROM time_entries WHERE id = $1 AND owner_id = $2", entryID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("timeEntryRepo.GetByID: %w", err)
	}
	return &entry, nil
}

func (r *timeEntryRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.TimeEntry, error) {
	entries := []domain.TimeEntry{}
	err := r.db.SelectContext(ctx, &entries,
		"SELECT * FROM time_entries WHERE owner_id = $1 ORDER BY start_time DESC",
		ownerID)
	if err != nil {
		return nil, fmt.Errorf("timeEntryRepo.ListByOwner: %w", err)
	}
	return entries, nil
}

func (r *timeEntryRepo) Delete(ctx context.Context, ownerID, entryID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM time_entries WHERE id = $1 AND owner_id = $2", entryID, ownerID)
	if err != nil {
		return fmt.Errorf("timeEntryRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

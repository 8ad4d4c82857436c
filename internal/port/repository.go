package port

import (
	"context"

	"github.com/google/uuid"

	"folio/internal/domain"
)

// UserRepository defines the contract for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// ClientRepository defines the contract for client persistence.
// Every query is scoped by ownerID to keep tenant isolation explicit.
type ClientRepository interface {
	Upsert(ctx context.Context, client *domain.Client) (created bool, err error)
	GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*domain.Client, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error)
	Delete(ctx context.Context, ownerID, clientID uuid.UUID) error
}

// SettingsRepository defines the contract for invoice settings persistence.
type SettingsRepository interface {
	GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.InvoiceSettings, error)
	Upsert(ctx context.Context, settings *domain.InvoiceSettings) error
	SetLogo(ctx context.Context, ownerID uuid.UUID, logoURL string) error
}

// ResumeRepository defines the contract for resume persistence. Reads
// materialize the full sub-entity graph; Upsert replaces it.
type ResumeRepository interface {
	Upsert(ctx context.Context, resume *domain.Resume) (created bool, err error)
	GetByID(ctx context.Context, ownerID, resumeID uuid.UUID) (*domain.Resume, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Resume, error)
	Delete(ctx context.Context, ownerID, resumeID uuid.UUID) error
}

// TimeEntryRepository defines the contract for time entry persistence.
type TimeEntryRepository interface {
	Upsert(ctx context.Context, entry *domain.TimeEntry) (created bool, err error)
	GetByID(ctx context.Context, ownerID, entryID uuid.UUID) (*domain.TimeEntry, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.TimeEntry, error)
	Delete(ctx context.Context, ownerID, entryID uuid.UUID) error
}

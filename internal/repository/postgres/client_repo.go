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

type clientRepo struct {
	db *sqlx.DB
}

// NewClientRepo creates a new PostgreSQL-backed ClientRepository.
func NewClientRepo(db *sqlx.DB) port.ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Upsert(ctx context.Context, client *domain.Client) (bool, error) {
	if client.ID != uuid.Nil {
		result, err := r.db.ExecContext(ctx,
			`UPDATE clients SET
				name = $1, email = $2, phone = $3, address = $4, city = $5,
				state = $6, zip_code = $7, country = $8, tax_id = $9
			 WHERE id = $10 AND owner_id = $11`,
			client.Name, client.Email, client.Phone, client.Address, client.City,
			client.State, client.ZipCode, client.Country, client.TaxID,
			client.ID, client.OwnerID)
		if err != nil {
			return false, fmt.Errorf("clientRepo.Upsert update: %w", err)
		}
		if rows, _ := result.RowsAffected(); rows > 0 {
			return false, nil
		}
		// id supplied but no owned row matched: fall through to create
	}

	if client.ID == uuid.Nil {
		client.ID = uuid.New()
	}
	client.CreatedAt = time.Now().UTC()
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO clients (id, owner_id, name, email, phone, address, city,
			state, zip_code, country, tax_id, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`,
		client.ID, client.OwnerID, client.Name, client.Email, client.Phone,
		client.Address, client.City, client.State, client.ZipCode,
		client.Country, client.TaxID, client.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("clientRepo.Upsert insert: %w", err)
	}
	return true, nil
}

func (r *clientRepo) GetByID(ctx context.Context, ownerID, clientID uuid.UUID) (*domain.Client, error) {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1 AND owner_id = $2", clientID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrClientNotFound
		}
		return nil, fmt.Errorf("clientRepo.GetByID: %w", err)
	}
	return &client, nil
}

func (r *clientRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Client, error) {
	clients := []domain.Client{}
	err := r.db.SelectContext(ctx, &clients,
		"SELECT * FROM clients WHERE owner_id = $1 ORDER BY name", ownerID)
	if err != nil {
		return nil, fmt.Errorf("clientRepo.ListByOwner: %w", err)
	}
	return clients, nil
}

func (r *clientRepo) Delete(ctx context.Context, ownerID, clientID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM clients WHERE id = $1 AND owner_id = $2", clientID, ownerID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrClientInUse
		}
		return fmt.Errorf("clientRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

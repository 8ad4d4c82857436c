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
	"folio/internal/token"
)

type contractRepo struct {
	db *sqlx.DB
}

// NewContractRepo creates a new PostgreSQL-backed ContractRepository.
func NewContractRepo(db *sqlx.DB) port.ContractRepository {
	return &contractRepo{db: db}
}

func (r *contractRepo) Create(ctx context.Context, ct *domain.Contract) error {
	if ct.ID == uuid.Nil {
		ct.ID = uuid.New()
	}
	now := time.Now().UTC()
	ct.CreatedAt = now
	ct.UpdatedAt = now

	for attempt := 0; attempt < maxTokenRetries; attempt++ {
		ct.Token = token.New()
		err := r.create(ctx, ct)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err, "token") {
			continue
		}
		return fmt.Errorf("contractRepo.Create: %w", err)
	}
	return domain.ErrTokenExhausted
}

func (r *contractRepo) create(ctx context.Context, ct *domain.Contract) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	ct.ContractNumber, err = consumeContractNumber(ctx, tx, ct.OwnerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO contracts (
			id, owner_id, contract_number, template_type, template_name,
			client_id, project_name, project_scope, deliverables, start_date,
			end_date, signature_date, project_fee, payment_terms, currency,
			client_signature, client_signature_type, business_signature,
			business_signature_type, status, generated_content, notes, token,
			view_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $21, $22, $23, 0, $24, $25)`,
		ct.ID, ct.OwnerID, ct.ContractNumber, ct.TemplateType, ct.TemplateName,
		ct.ClientID, ct.ProjectName, ct.ProjectScope, ct.Deliverables, ct.StartDate,
		ct.EndDate, ct.SignatureDate, ct.ProjectFee, ct.PaymentTerms, ct.Currency,
		ct.ClientSignature, ct.ClientSignatureType, ct.BusinessSignature,
		ct.BusinessSignatureType, ct.Status, ct.GeneratedContent, ct.Notes, ct.Token,
		ct.CreatedAt, ct.UpdatedAt)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *contractRepo) Update(ctx context.Context, ct *domain.Contract) error {
	ct.UpdatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx, `
		UPDATE contracts SET
			template_type = $1, template_name = $2, client_id = $3,
			project_name = $4, project_scope = $5, deliverables = $6,
			start_date = $7, end_date = $8, signature_date = $9,
			project_fee = $10, payment_terms = $11, currency = $12,
			client_signature = $13, client_signature_type = $14,
			business_signature = $15, business_signature_type = $16,
			status = $17, generated_content = $18, notes = $19, updated_at = $20
		WHERE id = $21 AND owner_id = $22`,
		ct.TemplateType, ct.TemplateName, ct.ClientID,
		ct.ProjectName, ct.ProjectScope, ct.Deliverables,
		ct.StartDate, ct.EndDate, ct.SignatureDate,
		ct.ProjectFee, ct.PaymentTerms, ct.Currency,
		ct.ClientSignature, ct.ClientSignatureType,
		ct.BusinessSignature, ct.BusinessSignatureType,
		ct.Status, ct.GeneratedContent, ct.Notes, ct.UpdatedAt,
		ct.ID, ct.OwnerID)
	if err != nil {
		return fmt.Errorf("contractRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contractRepo) GetByID(ctx context.Context, ownerID, contractID uuid.UUID) (*domain.Contract, error) {
	var ct domain.Contract
	err := r.db.GetContext(ctx, &ct,
		"SELECT * FROM contracts WHERE id = $1 AND owner_id = $2", contractID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("contractRepo.GetByID: %w", err)
	}
	if err := r.hydrate(ctx, &ct); err != nil {
		return nil, fmt.Errorf("contractRepo.GetByID: %w", err)
	}
	return &ct, nil
}

func (r *contractRepo) GetByToken(ctx context.Context, tok string) (*domain.Contract, error) {
	var ct domain.Contract
	err := r.db.GetContext(ctx, &ct,
		"SELECT * FROM contracts WHERE token = $1", tok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("contractRepo.GetByToken: %w", err)
	}
	if err := r.hydrate(ctx, &ct); err != nil {
		return nil, fmt.Errorf("contractRepo.GetByToken: %w", err)
	}
	return &ct, nil
}

func (r *contractRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Contract, error) {
	contracts := []domain.Contract{}
	err := r.db.SelectContext(ctx, &contracts,
		"SELECT * FROM contracts WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("contractRepo.ListByOwner: %w", err)
	}
	return contracts, nil
}

func (r *contractRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM contracts WHERE owner_id = $1 AND client_id = $2",
		ownerID, clientID)
	if err != nil {
		return 0, fmt.Errorf("contractRepo.CountByClient: %w", err)
	}
	return count, nil
}

func (r *contractRepo) Delete(ctx context.Context, ownerID, contractID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM contracts WHERE id = $1 AND owner_id = $2", contractID, ownerID)
	if err != nil {
		return fmt.Errorf("contractRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *contractRepo) IncrementViewCount(ctx context.Context, contractID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE contracts SET view_count = view_count + 1 WHERE id = $1", contractID)
	if err != nil {
		return fmt.Errorf("contractRepo.IncrementViewCount: %w", err)
	}
	return nil
}

func (r *contractRepo) BackfillTokens(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT id FROM contracts WHERE token IS NULL OR token = ''")
	if err != nil {
		return 0, fmt.Errorf("contractRepo.BackfillTokens: %w", err)
	}

	updated := 0
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`UPDATE contracts SET token = $1
			 WHERE id = $2 AND (token IS NULL OR token = '')`,
			token.New(), id)
		if err != nil {
			return updated, fmt.Errorf("contractRepo.BackfillTokens %s: %w", id, err)
		}
		updated++
	}
	return updated, nil
}

func (r *contractRepo) hydrate(ctx context.Context, ct *domain.Contract) error {
	var client domain.Client
	err := r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1", ct.ClientID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("loading client: %w", err)
	}
	if err == nil {
		ct.Client = &client
	}
	return nil
}

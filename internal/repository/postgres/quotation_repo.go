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

type quotationRepo struct {
	db *sqlx.DB
}

// NewQuotationRepo creates a new PostgreSQL-backed QuotationRepository.
func NewQuotationRepo(db *sqlx.DB) port.QuotationRepository {
	return &quotationRepo{db: db}
}

// Create draws from the same owner counter as invoices and receipts; the
// quotation keeps its own copy of the stamped number and its own token.
func (r *quotationRepo) Create(ctx context.Context, q *domain.Quotation) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	now := time.Now().UTC()
	q.CreatedAt = now
	q.UpdatedAt = now

	for attempt := 0; attempt < maxTokenRetries; attempt++ {
		q.Token = token.New()
		err := r.create(ctx, q)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err, "token") {
			continue
		}
		return fmt.Errorf("quotationRepo.Create: %w", err)
	}
	return domain.ErrTokenExhausted
}

func (r *quotationRepo) create(ctx context.Context, q *domain.Quotation) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	q.QuotationNumber, err = consumeInvoiceNumber(ctx, tx, q.OwnerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO quotations (
			id, owner_id, quotation_number, client_id, issue_date, valid_until,
			status, subtotal, tax_rate, tax_amount, discount, discount_type,
			total, notes, terms, currency, token, view_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, 0, $18, $19)`,
		q.ID, q.OwnerID, q.QuotationNumber, q.ClientID, q.IssueDate,
		q.ValidUntil, q.Status, q.Subtotal, q.TaxRate, q.TaxAmount,
		q.Discount, q.DiscountType, q.Total, q.Notes, q.Terms,
		q.Currency, q.Token, q.CreatedAt, q.UpdatedAt)
	if err != nil {
		return err
	}

	if err := replaceItems(ctx, tx, "quotation_items", q.ID, q.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *quotationRepo) Update(ctx context.Context, q *domain.Quotation) error {
	q.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("quotationRepo.Update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE quotations SET
			client_id = $1, issue_date = $2, valid_until = $3, status = $4,
			subtotal = $5, tax_rate = $6, tax_amount = $7, discount = $8,
			discount_type = $9, total = $10, notes = $11, terms = $12,
			currency = $13, updated_at = $14
		WHERE id = $15 AND owner_id = $16`,
		q.ClientID, q.IssueDate, q.ValidUntil, q.Status,
		q.Subtotal, q.TaxRate, q.TaxAmount, q.Discount,
		q.DiscountType, q.Total, q.Notes, q.Terms,
		q.Currency, q.UpdatedAt, q.ID, q.OwnerID)
	if err != nil {
		return fmt.Errorf("quotationRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := replaceItems(ctx, tx, "quotation_items", q.ID, q.Items); err != nil {
		return fmt.Errorf("quotationRepo.Update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("quotationRepo.Update: %w", err)
	}
	return nil
}

func (r *quotationRepo) GetByID(ctx context.Context, ownerID, quotationID uuid.UUID) (*domain.Quotation, error) {
	var q domain.Quotation
	err := r.db.GetContext(ctx, &q,
		"SELECT * FROM quotations WHERE id = $1 AND owner_id = $2", quotationID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("quotationRepo.GetByID: %w", err)
	}
	if err := r.hydrate(ctx, &q); err != nil {
		return nil, fmt.Errorf("quotationRepo.GetByID: %w", err)
	}
	return &q, nil
}

func (r *quotationRepo) GetByToken(ctx context.Context, tok string) (*domain.Quotation, error) {
	var q domain.Quotation
	err := r.db.GetContext(ctx, &q,
		"SELECT * FROM quotations WHERE token = $1", tok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("quotationRepo.GetByToken: %w", err)
	}
	if err := r.hydrate(ctx, &q); err != nil {
		return nil, fmt.Errorf("quotationRepo.GetByToken: %w", err)
	}
	return &q, nil
}

func (r *quotationRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quotation, error) {
	quotations := []domain.Quotation{}
	err := r.db.SelectContext(ctx, &quotations,
		"SELECT * FROM quotations WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("quotationRepo.ListByOwner: %w", err)
	}

	ids := make([]uuid.UUID, len(quotations))
	for i := range quotations {
		ids[i] = quotations[i].ID
	}
	grouped, err := loadItemsBulk(ctx, r.db, "quotation_items", ids)
	if err != nil {
		return nil, fmt.Errorf("quotationRepo.ListByOwner: %w", err)
	}
	for i := range quotations {
		items := grouped[quotations[i].ID]
		if items == nil {
			items = []domain.LineItem{}
		}
		quotations[i].Items = items
	}
	return quotations, nil
}

func (r *quotationRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM quotations WHERE owner_id = $1 AND client_id = $2",
		ownerID, clientID)
	if err != nil {
		return 0, fmt.Errorf("quotationRepo.CountByClient: %w", err)
	}
	return count, nil
}

func (r *quotationRepo) Delete(ctx context.Context, ownerID, quotationID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM quotations WHERE id = $1 AND owner_id = $2", quotationID, ownerID)
	if err != nil {
		return fmt.Errorf("quotationRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *quotationRepo) IncrementViewCount(ctx context.Context, quotationID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE quotations SET view_count = view_count + 1 WHERE id = $1", quotationID)
	if err != nil {
		return fmt.Errorf("quotationRepo.IncrementViewCount: %w", err)
	}
	return nil
}

func (r *quotationRepo) BackfillTokens(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT id FROM quotations WHERE token IS NULL OR token = ''")
	if err != nil {
		return 0, fmt.Errorf("quotationRepo.BackfillTokens: %w", err)
	}

	updated := 0
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`UPDATE quotations SET token = $1
			 WHERE id = $2 AND (token IS NULL OR token = '')`,
			token.New(), id)
		if err != nil {
			return updated, fmt.Errorf("quotationRepo.BackfillTokens %s: %w", id, err)
		}
		updated++
	}
	return updated, nil
}

func (r *quotationRepo) hydrate(ctx context.Context, q *domain.Quotation) error {
	items, err := loadItems(ctx, r.db, "quotation_items", q.ID)
	if err != nil {
		return err
	}
	q.Items = items

	var client domain.Client
	err = r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1", q.ClientID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("loading client: %w", err)
	}
	if err == nil {
		q.Client = &client
	}
	return nil
}

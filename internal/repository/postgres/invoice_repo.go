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

type invoiceRepo struct {
	db *sqlx.DB
}

// NewInvoiceRepo creates a new PostgreSQL-backed InvoiceRepository.
func NewInvoiceRepo(db *sqlx.DB) port.InvoiceRepository {
	return &invoiceRepo{db: db}
}

// Create stamps the invoice with the owner's next sequence number and a fresh
// share token, then inserts header and items in one transaction. A token
// collision aborts the transaction and the whole attempt is retried with a
// new token.
func (r *invoiceRepo) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	now := time.Now().UTC()
	inv.CreatedAt = now
	inv.UpdatedAt = now

	for attempt := 0; attempt < maxTokenRetries; attempt++ {
		inv.Token = token.New()
		err := r.create(ctx, inv)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err, "token") {
			continue
		}
		return fmt.Errorf("invoiceRepo.Create: %w", err)
	}
	return domain.ErrTokenExhausted
}

func (r *invoiceRepo) create(ctx context.Context, inv *domain.Invoice) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	inv.InvoiceNumber, err = consumeInvoiceNumber(ctx, tx, inv.OwnerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO invoices (
			id, owner_id, invoice_number, client_id, issue_date, due_date,
			status, subtotal, tax_rate, tax_amount, discount, discount_type,
			total, notes, terms, currency, token, view_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, 0, $18, $19)`,
		inv.ID, inv.OwnerID, inv.InvoiceNumber, inv.ClientID, inv.IssueDate,
		inv.DueDate, inv.Status, inv.Subtotal, inv.TaxRate, inv.TaxAmount,
		inv.Discount, inv.DiscountType, inv.Total, inv.Notes, inv.Terms,
		inv.Currency, inv.Token, inv.CreatedAt, inv.UpdatedAt)
	if err != nil {
		return err
	}

	if err := replaceItems(ctx, tx, "invoice_items", inv.ID, inv.Items); err != nil {
		return err
	}
	return tx.Commit()
}

// Update rewrites the mutable fields and replaces line items. The stamped
// invoice number and token are never touched.
func (r *invoiceRepo) Update(ctx context.Context, inv *domain.Invoice) error {
	inv.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE invoices SET
			client_id = $1, issue_date = $2, due_date = $3, status = $4,
			subtotal = $5, tax_rate = $6, tax_amount = $7, discount = $8,
			discount_type = $9, total = $10, notes = $11, terms = $12,
			currency = $13, updated_at = $14
		WHERE id = $15 AND owner_id = $16`,
		inv.ClientID, inv.IssueDate, inv.DueDate, inv.Status,
		inv.Subtotal, inv.TaxRate, inv.TaxAmount, inv.Discount,
		inv.DiscountType, inv.Total, inv.Notes, inv.Terms,
		inv.Currency, inv.UpdatedAt, inv.ID, inv.OwnerID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := replaceItems(ctx, tx, "invoice_items", inv.ID, inv.Items); err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("invoiceRepo.Update: %w", err)
	}
	return nil
}

func (r *invoiceRepo) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE id = $1 AND owner_id = $2", invoiceID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	if err := r.hydrate(ctx, &inv); err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByID: %w", err)
	}
	return &inv, nil
}

// GetByToken is the public share lookup: exact token match, invoices only,
// no owner scoping.
func (r *invoiceRepo) GetByToken(ctx context.Context, tok string) (*domain.Invoice, error) {
	var inv domain.Invoice
	err := r.db.GetContext(ctx, &inv,
		"SELECT * FROM invoices WHERE token = $1", tok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("invoiceRepo.GetByToken: %w", err)
	}
	if err := r.hydrate(ctx, &inv); err != nil {
		return nil, fmt.Errorf("invoiceRepo.GetByToken: %w", err)
	}
	return &inv, nil
}

func (r *invoiceRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error) {
	invoices := []domain.Invoice{}
	err := r.db.SelectContext(ctx, &invoices,
		"SELECT * FROM invoices WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByOwner: %w", err)
	}

	ids := make([]uuid.UUID, len(invoices))
	for i := range invoices {
		ids[i] = invoices[i].ID
	}
	grouped, err := loadItemsBulk(ctx, r.db, "invoice_items", ids)
	if err != nil {
		return nil, fmt.Errorf("invoiceRepo.ListByOwner: %w", err)
	}
	for i := range invoices {
		items := grouped[invoices[i].ID]
		if items == nil {
			items = []domain.LineItem{}
		}
		invoices[i].Items = items
	}
	return invoices, nil
}

func (r *invoiceRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM invoices WHERE owner_id = $1 AND client_id = $2",
		ownerID, clientID)
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.CountByClient: %w", err)
	}
	return count, nil
}

func (r *invoiceRepo) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM invoices WHERE id = $1 AND owner_id = $2", invoiceID, ownerID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *invoiceRepo) IncrementViewCount(ctx context.Context, invoiceID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE invoices SET view_count = view_count + 1 WHERE id = $1", invoiceID)
	if err != nil {
		return fmt.Errorf("invoiceRepo.IncrementViewCount: %w", err)
	}
	return nil
}

// BackfillTokens assigns a share token to every invoice that lacks one.
// Rows that already carry a token are left untouched, so reruns are no-ops.
func (r *invoiceRepo) BackfillTokens(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT id FROM invoices WHERE token IS NULL OR token = ''")
	if err != nil {
		return 0, fmt.Errorf("invoiceRepo.BackfillTokens: %w", err)
	}

	updated := 0
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`UPDATE invoices SET token = $1
			 WHERE id = $2 AND (token IS NULL OR token = '')`,
			token.New(), id)
		if err != nil {
			return updated, fmt.Errorf("invoiceRepo.BackfillTokens %s: %w", id, err)
		}
		updated++
	}
	return updated, nil
}

func (r *invoiceRepo) hydrate(ctx context.Context, inv *domain.Invoice) error {
	items, err := loadItems(ctx, r.db, "invoice_items", inv.ID)
	if err != nil {
		return err
	}
	inv.Items = items

	var client domain.Client
	err = r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1", inv.ClientID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("loading client: %w", err)
	}
	if err == nil {
		inv.Client = &client
	}
	return nil
}

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

type receiptRepo struct {
	db *sqlx.DB
}

// NewReceiptRepo creates a new PostgreSQL-backed ReceiptRepository.
func NewReceiptRepo(db *sqlx.DB) port.ReceiptRepository {
	return &receiptRepo{db: db}
}

func (r *receiptRepo) Create(ctx context.Context, rec *domain.Receipt) error {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	now := time.Now().UTC()
	rec.CreatedAt = now
	rec.UpdatedAt = now

	for attempt := 0; attempt < maxTokenRetries; attempt++ {
		rec.Token = token.New()
		err := r.create(ctx, rec)
		if err == nil {
			return nil
		}
		if isUniqueViolation(err, "token") {
			continue
		}
		return fmt.Errorf("receiptRepo.Create: %w", err)
	}
	return domain.ErrTokenExhausted
}

func (r *receiptRepo) create(ctx context.Context, rec *domain.Receipt) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	rec.ReceiptNumber, err = consumeInvoiceNumber(ctx, tx, rec.OwnerID)
	if err != nil {
		return err
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO receipts (
			id, owner_id, receipt_number, client_id, issue_date, payment_date,
			payment_method, related_invoice_number, subtotal, tax_rate,
			tax_amount, discount, discount_type, total, amount_paid, notes,
			currency, token, view_count, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, 0, $19, $20)`,
		rec.ID, rec.OwnerID, rec.ReceiptNumber, rec.ClientID, rec.IssueDate,
		rec.PaymentDate, rec.PaymentMethod, rec.RelatedInvoiceNumber,
		rec.Subtotal, rec.TaxRate, rec.TaxAmount, rec.Discount,
		rec.DiscountType, rec.Total, rec.AmountPaid, rec.Notes,
		rec.Currency, rec.Token, rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return err
	}

	if err := replaceItems(ctx, tx, "receipt_items", rec.ID, rec.Items); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *receiptRepo) Update(ctx context.Context, rec *domain.Receipt) error {
	rec.UpdatedAt = time.Now().UTC()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("receiptRepo.Update: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	result, err := tx.ExecContext(ctx, `
		UPDATE receipts SET
			client_id = $1, issue_date = $2, payment_date = $3,
			payment_method = $4, related_invoice_number = $5, subtotal = $6,
			tax_rate = $7, tax_amount = $8, discount = $9, discount_type = $10,
			total = $11, amount_paid = $12, notes = $13, currency = $14,
			updated_at = $15
		WHERE id = $16 AND owner_id = $17`,
		rec.ClientID, rec.IssueDate, rec.PaymentDate,
		rec.PaymentMethod, rec.RelatedInvoiceNumber, rec.Subtotal,
		rec.TaxRate, rec.TaxAmount, rec.Discount, rec.DiscountType,
		rec.Total, rec.AmountPaid, rec.Notes, rec.Currency,
		rec.UpdatedAt, rec.ID, rec.OwnerID)
	if err != nil {
		return fmt.Errorf("receiptRepo.Update: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if err := replaceItems(ctx, tx, "receipt_items", rec.ID, rec.Items); err != nil {
		return fmt.Errorf("receiptRepo.Update: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("receiptRepo.Update: %w", err)
	}
	return nil
}

func (r *receiptRepo) GetByID(ctx context.Context, ownerID, receiptID uuid.UUID) (*domain.Receipt, error) {
	var rec domain.Receipt
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM receipts WHERE id = $1 AND owner_id = $2", receiptID, ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("receiptRepo.GetByID: %w", err)
	}
	if err := r.hydrate(ctx, &rec); err != nil {
		return nil, fmt.Errorf("receiptRepo.GetByID: %w", err)
	}
	return &rec, nil
}

func (r *receiptRepo) GetByToken(ctx context.Context, tok string) (*domain.Receipt, error) {
	var rec domain.Receipt
	err := r.db.GetContext(ctx, &rec,
		"SELECT * FROM receipts WHERE token = $1", tok)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("receiptRepo.GetByToken: %w", err)
	}
	if err := r.hydrate(ctx, &rec); err != nil {
		return nil, fmt.Errorf("receiptRepo.GetByToken: %w", err)
	}
	return &rec, nil
}

func (r *receiptRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Receipt, error) {
	receipts := []domain.Receipt{}
	err := r.db.SelectContext(ctx, &receipts,
		"SELECT * FROM receipts WHERE owner_id = $1 ORDER BY created_at DESC", ownerID)
	if err != nil {
		return nil, fmt.Errorf("receiptRepo.ListByOwner: %w", err)
	}

	ids := make([]uuid.UUID, len(receipts))
	for i := range receipts {
		ids[i] = receipts[i].ID
	}
	grouped, err := loadItemsBulk(ctx, r.db, "receipt_items", ids)
	if err != nil {
		return nil, fmt.Errorf("receiptRepo.ListByOwner: %w", err)
	}
	for i := range receipts {
		items := grouped[receipts[i].ID]
		if items == nil {
			items = []domain.LineItem{}
		}
		receipts[i].Items = items
	}
	return receipts, nil
}

func (r *receiptRepo) CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM receipts WHERE owner_id = $1 AND client_id = $2",
		ownerID, clientID)
	if err != nil {
		return 0, fmt.Errorf("receiptRepo.CountByClient: %w", err)
	}
	return count, nil
}

func (r *receiptRepo) Delete(ctx context.Context, ownerID, receiptID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM receipts WHERE id = $1 AND owner_id = $2", receiptID, ownerID)
	if err != nil {
		return fmt.Errorf("receiptRepo.Delete: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *receiptRepo) IncrementViewCount(ctx context.Context, receiptID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE receipts SET view_count = view_count + 1 WHERE id = $1", receiptID)
	if err != nil {
		return fmt.Errorf("receiptRepo.IncrementViewCount: %w", err)
	}
	return nil
}

func (r *receiptRepo) BackfillTokens(ctx context.Context) (int, error) {
	var ids []uuid.UUID
	err := r.db.SelectContext(ctx, &ids,
		"SELECT id FROM receipts WHERE token IS NULL OR token = ''")
	if err != nil {
		return 0, fmt.Errorf("receiptRepo.BackfillTokens: %w", err)
	}

	updated := 0
	for _, id := range ids {
		_, err := r.db.ExecContext(ctx,
			`UPDATE receipts SET token = $1
			 WHERE id = $2 AND (token IS NULL OR token = '')`,
			token.New(), id)
		if err != nil {
			return updated, fmt.Errorf("receiptRepo.BackfillTokens %s: %w", id, err)
		}
		updated++
	}
	return updated, nil
}

func (r *receiptRepo) hydrate(ctx context.Context, rec *domain.Receipt) error {
	items, err := loadItems(ctx, r.db, "receipt_items", rec.ID)
	if err != nil {
		return err
	}
	rec.Items = items

	var client domain.Client
	err = r.db.GetContext(ctx, &client,
		"SELECT * FROM clients WHERE id = $1", rec.ClientID)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("loading client: %w", err)
	}
	if err == nil {
		rec.Client = &client
	}
	return nil
}

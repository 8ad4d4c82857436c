package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"folio/internal/domain"
)

// maxTokenRetries bounds reissue attempts when a freshly generated share
// token collides with an existing row. Collisions are practically improbable;
// the bound exists so a broken random source cannot loop forever.
const maxTokenRetries = 5

type consumedNumber struct {
	Prefix string `db:"prefix"`
	Number int64  `db:"number"`
}

// consumeInvoiceNumber atomically claims the owner's next invoice sequence
// number. Invoices, quotations, and receipts all draw from this one counter.
// The upsert creates the settings row on first issuance, so an owner who
// never visited the settings page still gets numbered documents; the
// conditional update makes concurrent issuance safe without a second round
// trip.
func consumeInvoiceNumber(ctx context.Context, tx *sqlx.Tx, ownerID uuid.UUID) (string, error) {
	var row consumedNumber
	err := tx.GetContext(ctx, &row, `
		INSERT INTO invoice_settings (
			id, owner_id, default_currency, default_payment_terms,
			invoice_prefix, next_invoice_number,
			contract_prefix, next_contract_number,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 2, $6, 1, NOW(), NOW())
		ON CONFLICT (owner_id) DO UPDATE
		SET next_invoice_number = invoice_settings.next_invoice_number + 1,
		    updated_at = NOW()
		RETURNING invoice_prefix AS prefix, next_invoice_number - 1 AS number`,
		uuid.New(), ownerID, domain.DefaultCurrency, domain.DefaultPaymentTermsLabel,
		domain.DefaultInvoicePrefix, domain.DefaultContractPrefix)
	if err != nil {
		return "", fmt.Errorf("consume invoice number: %w", err)
	}
	return formatSequence(row.Prefix, row.Number), nil
}

// consumeContractNumber claims the owner's next contract sequence number.
// Contracts number independently of the invoice counter.
func consumeContractNumber(ctx context.Context, tx *sqlx.Tx, ownerID uuid.UUID) (string, error) {
	var row consumedNumber
	err := tx.GetContext(ctx, &row, `
		INSERT INTO invoice_settings (
			id, owner_id, default_currency, default_payment_terms,
			invoice_prefix, next_invoice_number,
			contract_prefix, next_contract_number,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, 1, $6, 2, NOW(), NOW())
		ON CONFLICT (owner_id) DO UPDATE
		SET next_contract_number = invoice_settings.next_contract_number + 1,
		    updated_at = NOW()
		RETURNING contract_prefix AS prefix, next_contract_number - 1 AS number`,
		uuid.New(), ownerID, domain.DefaultCurrency, domain.DefaultPaymentTermsLabel,
		domain.DefaultInvoicePrefix, domain.DefaultContractPrefix)
	if err != nil {
		return "", fmt.Errorf("consume contract number: %w", err)
	}
	return formatSequence(row.Prefix, row.Number), nil
}

func formatSequence(prefix string, n int64) string {
	return fmt.Sprintf("%s%04d", prefix, n)
}

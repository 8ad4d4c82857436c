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

type settingsRepo struct {
	db *sqlx.DB
}

// NewSettingsRepo creates a new PostgreSQL-backed SettingsRepository.
func NewSettingsRepo(db *sqlx.DB) port.SettingsRepository {
	return &settingsRepo{db: db}
}

func (r *settingsRepo) GetByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.InvoiceSettings, error) {
	var settings domain.InvoiceSettings
	err := r.db.GetContext(ctx, &settings,
		"SELECT * FROM invoice_settings WHERE owner_id = $1", ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("settingsRepo.GetByOwner: %w", err)
	}
	return &settings, nil
}

// Upsert writes the owner's settings row. The numbering counters are only
// seeded on insert; on update they are left alone so an in-flight issuance
// cannot be rewound by a concurrent settings save.
func (r *settingsRepo) Upsert(ctx context.Context, settings *domain.InvoiceSettings) error {
	if settings.ID == uuid.Nil {
		settings.ID = uuid.New()
	}
	if settings.NextInvoiceNumber < domain.DefaultNextNumber {
		settings.NextInvoiceNumber = domain.DefaultNextNumber
	}
	if settings.NextContractNumber < domain.DefaultNextNumber {
		settings.NextContractNumber = domain.DefaultNextNumber
	}
	now := time.Now().UTC()
	settings.UpdatedAt = now

	err := r.db.GetContext(ctx, settings, `
		INSERT INTO invoice_settings (
			id, owner_id, business_name, business_email, business_phone,
			business_address, business_city, business_state, business_zip_code,
			business_country, tax_id, logo, default_currency, default_tax_rate,
			default_payment_terms, invoice_prefix, next_invoice_number,
			contract_prefix, next_contract_number, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20, $20)
		ON CONFLICT (owner_id) DO UPDATE SET
			business_name = EXCLUDED.business_name,
			business_email = EXCLUDED.business_email,
			business_phone = EXCLUDED.business_phone,
			business_address = EXCLUDED.business_address,
			business_city = EXCLUDED.business_city,
			business_state = EXCLUDED.business_state,
			business_zip_code = EXCLUDED.business_zip_code,
			business_country = EXCLUDED.business_country,
			tax_id = EXCLUDED.tax_id,
			logo = EXCLUDED.logo,
			default_currency = EXCLUDED.default_currency,
			default_tax_rate = EXCLUDED.default_tax_rate,
			default_payment_terms = EXCLUDED.default_payment_terms,
			invoice_prefix = EXCLUDED.invoice_prefix,
			contract_prefix = EXCLUDED.contract_prefix,
			updated_at = EXCLUDED.updated_at
		RETURNING *`,
		settings.ID, settings.OwnerID, settings.BusinessName, settings.BusinessEmail,
		settings.BusinessPhone, settings.BusinessAddress, settings.BusinessCity,
		settings.BusinessState, settings.BusinessZipCode, settings.BusinessCountry,
		settings.TaxID, settings.Logo, settings.DefaultCurrency, settings.DefaultTaxRate,
		settings.DefaultPaymentTerms, settings.InvoicePrefix, settings.NextInvoiceNumber,
		settings.ContractPrefix, settings.NextContractNumber, now)
	if err != nil {
		return fmt.Errorf("settingsRepo.Upsert: %w", err)
	}
	return nil
}

func (r *settingsRepo) SetLogo(ctx context.Context, ownerID uuid.UUID, logoURL string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE invoice_settings SET logo = $1, updated_at = NOW() WHERE owner_id = $2",
		logoURL, ownerID)
	if err != nil {
		return fmt.Errorf("settingsRepo.SetLogo: %w", err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/port"
)

// UpdateSettingsInput is the DTO for updating business defaults. Numbering
// counters are managed by document issuance and are not client-writable.
type UpdateSettingsInput struct {
	BusinessName        string          `json:"business_name"`
	BusinessEmail       string          `json:"business_email"`
	BusinessPhone       string          `json:"business_phone"`
	BusinessAddress     string          `json:"business_address"`
	BusinessCity        string          `json:"business_city"`
	BusinessState       string          `json:"business_state"`
	BusinessZipCode     string          `json:"business_zip_code"`
	BusinessCountry     string          `json:"business_country"`
	TaxID               string          `json:"tax_id"`
	DefaultCurrency     string          `json:"default_currency"`
	DefaultTaxRate      decimal.Decimal `json:"default_tax_rate"`
	DefaultPaymentTerms string          `json:"default_payment_terms"`
	InvoicePrefix       string          `json:"invoice_prefix"`
	ContractPrefix      string          `json:"contract_prefix"`
}

// SettingsService defines the settings store contract.
type SettingsService interface {
	Get(ctx context.Context, ownerID uuid.UUID) (*domain.InvoiceSettings, error)
	Update(ctx context.Context, ownerID uuid.UUID, input UpdateSettingsInput) (*domain.InvoiceSettings, error)
	UploadLogo(ctx context.Context, ownerID uuid.UUID, filename, contentType string, body io.Reader) (string, error)
}

type settingsService struct {
	settingsRepo port.SettingsRepository
	storage      port.ObjectStorage
	s3cfg        config.S3Config
}

// NewSettingsService creates a new SettingsService implementation.
func NewSettingsService(settingsRepo port.SettingsRepository, storage port.ObjectStorage, s3cfg config.S3Config) SettingsService {
	return &settingsService{settingsRepo: settingsRepo, storage: storage, s3cfg: s3cfg}
}

// Get returns the owner's settings. An owner with no stored row gets the
// defaults without a row being created; the first issuance or explicit update
// creates it.
func (s *settingsService) Get(ctx context.Context, ownerID uuid.UUID) (*domain.InvoiceSettings, error) {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultSettings(ownerID), nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *settingsService) Update(ctx context.Context, ownerID uuid.UUID, input UpdateSettingsInput) (*domain.InvoiceSettings, error) {
	settings := &domain.InvoiceSettings{
		OwnerID:             ownerID,
		BusinessName:        input.BusinessName,
		BusinessEmail:       input.BusinessEmail,
		BusinessPhone:       input.BusinessPhone,
		BusinessAddress:     input.BusinessAddress,
		BusinessCity:        input.BusinessCity,
		BusinessState:       input.BusinessState,
		BusinessZipCode:     input.BusinessZipCode,
		BusinessCountry:     input.BusinessCountry,
		TaxID:               input.TaxID,
		DefaultCurrency:     input.DefaultCurrency,
		DefaultTaxRate:      input.DefaultTaxRate,
		DefaultPaymentTerms: input.DefaultPaymentTerms,
		InvoicePrefix:       input.InvoicePrefix,
		ContractPrefix:      input.ContractPrefix,
	}
	if settings.DefaultCurrency == "" {
		settings.DefaultCurrency = domain.DefaultCurrency
	}
	if settings.InvoicePrefix == "" {
		settings.InvoicePrefix = domain.DefaultInvoicePrefix
	}
	if settings.ContractPrefix == "" {
		settings.ContractPrefix = domain.DefaultContractPrefix
	}
	if settings.DefaultPaymentTerms == "" {
		settings.DefaultPaymentTerms = domain.DefaultPaymentTermsLabel
	}

	if err := s.settingsRepo.Upsert(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}

// UploadLogo stores the image in object storage and records its public URL on
// the owner's settings.
func (s *settingsService) UploadLogo(ctx context.Context, ownerID uuid.UUID, filename, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("logos/%s/%d%s", ownerID, time.Now().UnixNano(), path.Ext(filename))
	location, err := s.storage.Upload(ctx, port.UploadInput{
		Bucket:      s.s3cfg.Bucket,
		Key:         key,
		Body:        body,
		ContentType: contentType,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUploadFailed, err)
	}

	if err := s.settingsRepo.SetLogo(ctx, ownerID, location); err != nil {
		return "", err
	}
	return location, nil
}

func defaultSettings(ownerID uuid.UUID) *domain.InvoiceSettings {
	return &domain.InvoiceSettings{
		OwnerID:             ownerID,
		DefaultCurrency:     domain.DefaultCurrency,
		DefaultPaymentTerms: domain.DefaultPaymentTermsLabel,
		InvoicePrefix:       domain.DefaultInvoicePrefix,
		NextInvoiceNumber:   domain.DefaultNextNumber,
		ContractPrefix:      domain.DefaultContractPrefix,
		NextContractNumber:  domain.DefaultNextNumber,
	}
}

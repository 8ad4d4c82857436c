package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"folio/internal/billing"
	"folio/internal/domain"
	"folio/internal/port"
)

// UpsertQuotationInput is the DTO for creating or updating a quotation.
type UpsertQuotationInput struct {
	ID           *uuid.UUID             `json:"id"`
	ClientID     uuid.UUID              `json:"client_id" binding:"required"`
	IssueDate    string                 `json:"issue_date" binding:"required"`
	ValidUntil   string                 `json:"valid_until" binding:"required"`
	Status       domain.QuotationStatus `json:"status"`
	Items        []LineItemInput        `json:"items" binding:"required,min=1,dive"`
	TaxRate      decimal.Decimal        `json:"tax_rate"`
	Discount     decimal.Decimal        `json:"discount"`
	DiscountType domain.DiscountType    `json:"discount_type"`
	Notes        string                 `json:"notes"`
	Terms        string                 `json:"terms"`
	Currency     string                 `json:"currency"`
}

// QuotationService defines the quotation management contract.
type QuotationService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertQuotationInput) (*domain.Quotation, bool, error)
	GetByID(ctx context.Context, ownerID, quotationID uuid.UUID) (*domain.Quotation, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Quotation, error)
	Delete(ctx context.Context, ownerID, quotationID uuid.UUID) error
}

type quotationService struct {
	quotationRepo port.QuotationRepository
	clientRepo    port.ClientRepository
	settingsRepo  port.SettingsRepository
}

// NewQuotationService creates a new QuotationService implementation.
func NewQuotationService(
	quotationRepo port.QuotationRepository,
	clientRepo port.ClientRepository,
	settingsRepo port.SettingsRepository,
) QuotationService {
	return &quotationService{
		quotationRepo: quotationRepo,
		clientRepo:    clientRepo,
		settingsRepo:  settingsRepo,
	}
}

func (s *quotationService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertQuotationInput) (*domain.Quotation, bool, error) {
	if _, err := s.clientRepo.GetByID(ctx, ownerID, input.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrClientNotFound
		}
		return nil, false, err
	}

	status := input.Status
	if status == "" {
		status = domain.QuotationStatusDraft
	}
	if !domain.ValidQuotationStatuses[status] {
		return nil, false, domain.ErrInvalidStatus
	}
	discountType := input.DiscountType
	if discountType == "" {
		discountType = domain.DiscountTypePercentage
	}
	if !domain.ValidDiscountTypes[discountType] {
		return nil, false, domain.ErrInvalidDiscount
	}

	issueDate, err := parseDate(input.IssueDate)
	if err != nil {
		return nil, false, err
	}
	validUntil, err := parseDate(input.ValidUntil)
	if err != nil {
		return nil, false, err
	}

	items := make([]domain.LineItem, len(input.Items))
	for i, it := range input.Items {
		items[i] = domain.LineItem{Description: it.Description, Quantity: it.Quantity, Rate: it.Rate}
	}
	items, totals := billing.Compute(items, input.TaxRate, input.Discount, discountType)

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency(ctx, ownerID)
	}

	if input.ID == nil {
		q := &domain.Quotation{
			OwnerID:      ownerID,
			ClientID:     input.ClientID,
			IssueDate:    issueDate,
			ValidUntil:   validUntil,
			Status:       status,
			Items:        items,
			Subtotal:     totals.Subtotal,
			TaxRate:      input.TaxRate,
			TaxAmount:    totals.TaxAmount,
			Discount:     input.Discount,
			DiscountType: discountType,
			Total:        totals.Total,
			Notes:        input.Notes,
			Terms:        input.Terms,
			Currency:     currency,
		}
		if err := s.quotationRepo.Create(ctx, q); err != nil {
			return nil, false, err
		}
		return q, true, nil
	}

	q, err := s.quotationRepo.GetByID(ctx, ownerID, *input.ID)
	if err != nil {
		return nil, false, err
	}
	q.ClientID = input.ClientID
	q.IssueDate = issueDate
	q.ValidUntil = validUntil
	q.Status = status
	q.Items = items
	q.Subtotal = totals.Subtotal
	q.TaxRate = input.TaxRate
	q.TaxAmount = totals.TaxAmount
	q.Discount = input.Discount
	q.DiscountType = discountType
	q.Total = totals.Total
	q.Notes = input.Notes
	q.Terms = input.Terms
	q.Currency = currency

	if err := s.quotationRepo.Update(ctx, q); err != nil {
		return nil, false, err
	}
	return q, false, nil
}

func (s *quotationService) GetByID(ctx context.Context, ownerID, quotationID uuid.UUID) (*domain.Quotation, error) {
	return s.quotationRepo.GetByID(ctx, ownerID, quotationID)
}

func (s *quotationService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Quotation, error) {
	return s.quotationRepo.ListByOwner(ctx, ownerID)
}

func (s *quotationService) Delete(ctx context.Context, ownerID, quotationID uuid.UUID) error {
	return s.quotationRepo.Delete(ctx, ownerID, quotationID)
}

func (s *quotationService) defaultCurrency(ctx context.Context, ownerID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return domain.DefaultCurrency
	}
	return settings.DefaultCurrency
}

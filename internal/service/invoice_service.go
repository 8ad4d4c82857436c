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

// LineItemInput is the DTO for one billable row. Amounts are always derived
// server side; any client-sent amount is ignored.
type LineItemInput struct {
	Description string          `json:"description" binding:"required"`
	Quantity    decimal.Decimal `json:"quantity" binding:"required"`
	Rate        decimal.Decimal `json:"rate" binding:"required"`
}

// UpsertInvoiceInput is the DTO for creating or updating an invoice.
type UpsertInvoiceInput struct {
	ID           *uuid.UUID           `json:"id"`
	ClientID     uuid.UUID            `json:"client_id" binding:"required"`
	IssueDate    string               `json:"issue_date" binding:"required"`
	DueDate      string               `json:"due_date" binding:"required"`
	Status       domain.InvoiceStatus `json:"status"`
	Items        []LineItemInput      `json:"items" binding:"required,min=1,dive"`
	TaxRate      decimal.Decimal      `json:"tax_rate"`
	Discount     decimal.Decimal      `json:"discount"`
	DiscountType domain.DiscountType  `json:"discount_type"`
	Notes        string               `json:"notes"`
	Terms        string               `json:"terms"`
	Currency     string               `json:"currency"`
}

// InvoiceService defines the invoice management contract.
type InvoiceService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertInvoiceInput) (*domain.Invoice, bool, error)
	GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error)
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error
}

type invoiceService struct {
	invoiceRepo  port.InvoiceRepository
	clientRepo   port.ClientRepository
	settingsRepo port.SettingsRepository
}

// NewInvoiceService creates a new InvoiceService implementation.
func NewInvoiceService(
	invoiceRepo port.InvoiceRepository,
	clientRepo port.ClientRepository,
	settingsRepo port.SettingsRepository,
) InvoiceService {
	return &invoiceService{
		invoiceRepo:  invoiceRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *invoiceService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertInvoiceInput) (*domain.Invoice, bool, error) {
	if _, err := s.clientRepo.GetByID(ctx, ownerID, input.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrClientNotFound
		}
		return nil, false, err
	}

	status := input.Status
	if status == "" {
		status = domain.InvoiceStatusDraft
	}
	if !domain.ValidInvoiceStatuses[status] {
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
	dueDate, err := parseDate(input.DueDate)
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
		inv := &domain.Invoice{
			OwnerID:      ownerID,
			ClientID:     input.ClientID,
			IssueDate:    issueDate,
			DueDate:      dueDate,
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
		if err := s.invoiceRepo.Create(ctx, inv); err != nil {
			return nil, false, err
		}
		return inv, true, nil
	}

	inv, err := s.invoiceRepo.GetByID(ctx, ownerID, *input.ID)
	if err != nil {
		return nil, false, err
	}
	inv.ClientID = input.ClientID
	inv.IssueDate = issueDate
	inv.DueDate = dueDate
	inv.Status = status
	inv.Items = items
	inv.Subtotal = totals.Subtotal
	inv.TaxRate = input.TaxRate
	inv.TaxAmount = totals.TaxAmount
	inv.Discount = input.Discount
	inv.DiscountType = discountType
	inv.Total = totals.Total
	inv.Notes = input.Notes
	inv.Terms = input.Terms
	inv.Currency = currency

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, false, err
	}
	return inv, false, nil
}

func (s *invoiceService) GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error) {
	return s.invoiceRepo.GetByID(ctx, ownerID, invoiceID)
}

func (s *invoiceService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error) {
	return s.invoiceRepo.ListByOwner(ctx, ownerID)
}

func (s *invoiceService) Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, ownerID, invoiceID)
}

func (s *invoiceService) defaultCurrency(ctx context.Context, ownerID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return domain.DefaultCurrency
	}
	return settings.DefaultCurrency
}

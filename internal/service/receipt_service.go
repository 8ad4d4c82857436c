package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"folio/internal/billing"
	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/port"
)

// UpsertReceiptInput is the DTO for creating or updating a receipt.
type UpsertReceiptInput struct {
	ID                   *uuid.UUID          `json:"id"`
	ClientID             uuid.UUID           `json:"client_id" binding:"required"`
	IssueDate            string              `json:"issue_date" binding:"required"`
	PaymentDate          string              `json:"payment_date" binding:"required"`
	PaymentMethod        string              `json:"payment_method" binding:"required"`
	RelatedInvoiceNumber string              `json:"related_invoice_number"`
	Items                []LineItemInput     `json:"items" binding:"required,min=1,dive"`
	TaxRate              decimal.Decimal     `json:"tax_rate"`
	Discount             decimal.Decimal     `json:"discount"`
	DiscountType         domain.DiscountType `json:"discount_type"`
	AmountPaid           *decimal.Decimal    `json:"amount_paid"`
	Notes                string              `json:"notes"`
	Currency             string              `json:"currency"`
}

// ReceiptService defines the receipt management contract.
type ReceiptService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertReceiptInput) (*domain.Receipt, bool, error)
	GetByID(ctx context.Context, ownerID, receiptID uuid.UUID) (*domain.Receipt, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Receipt, error)
	Delete(ctx context.Context, ownerID, receiptID uuid.UUID) error
}

type receiptService struct {
	receiptRepo  port.ReceiptRepository
	clientRepo   port.ClientRepository
	settingsRepo port.SettingsRepository
	billingCfg   config.BillingConfig
}

// NewReceiptService creates a new ReceiptService implementation.
func NewReceiptService(
	receiptRepo port.ReceiptRepository,
	clientRepo port.ClientRepository,
	settingsRepo port.SettingsRepository,
	billingCfg config.BillingConfig,
) ReceiptService {
	return &receiptService{
		receiptRepo:  receiptRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		billingCfg:   billingCfg,
	}
}

func (s *receiptService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertReceiptInput) (*domain.Receipt, bool, error) {
	if _, err := s.clientRepo.GetByID(ctx, ownerID, input.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrClientNotFound
		}
		return nil, false, err
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
	paymentDate, err := parseDate(input.PaymentDate)
	if err != nil {
		return nil, false, err
	}

	items := make([]domain.LineItem, len(input.Items))
	for i, it := range input.Items {
		items[i] = domain.LineItem{Description: it.Description, Quantity: it.Quantity, Rate: it.Rate}
	}
	items, totals := billing.Compute(items, input.TaxRate, input.Discount, discountType)

	// Amount paid defaults to the computed total when omitted.
	amountPaid := totals.Total
	if input.AmountPaid != nil {
		amountPaid = *input.AmountPaid
	}
	if s.billingCfg.RejectOverpaidReceipts && amountPaid.GreaterThan(totals.Total) {
		return nil, false, domain.ErrOverpaidReceipt
	}

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency(ctx, ownerID)
	}

	if input.ID == nil {
		rec := &domain.Receipt{
			OwnerID:              ownerID,
			ClientID:             input.ClientID,
			IssueDate:            issueDate,
			PaymentDate:          paymentDate,
			PaymentMethod:        input.PaymentMethod,
			RelatedInvoiceNumber: input.RelatedInvoiceNumber,
			Items:                items,
			Subtotal:             totals.Subtotal,
			TaxRate:              input.TaxRate,
			TaxAmount:            totals.TaxAmount,
			Discount:             input.Discount,
			DiscountType:         discountType,
			Total:                totals.Total,
			AmountPaid:           amountPaid,
			Notes:                input.Notes,
			Currency:             currency,
		}
		if err := s.receiptRepo.Create(ctx, rec); err != nil {
			return nil, false, err
		}
		return rec, true, nil
	}

	rec, err := s.receiptRepo.GetByID(ctx, ownerID, *input.ID)
	if err != nil {
		return nil, false, err
	}
	rec.ClientID = input.ClientID
	rec.IssueDate = issueDate
	rec.PaymentDate = paymentDate
	rec.PaymentMethod = input.PaymentMethod
	rec.RelatedInvoiceNumber = input.RelatedInvoiceNumber
	rec.Items = items
	rec.Subtotal = totals.Subtotal
	rec.TaxRate = input.TaxRate
	rec.TaxAmount = totals.TaxAmount
	rec.Discount = input.Discount
	rec.DiscountType = discountType
	rec.Total = totals.Total
	rec.AmountPaid = amountPaid
	rec.Notes = input.Notes
	rec.Currency = currency

	if err := s.receiptRepo.Update(ctx, rec); err != nil {
		return nil, false, err
	}
	return rec, false, nil
}

func (s *receiptService) GetByID(ctx context.Context, ownerID, receiptID uuid.UUID) (*domain.Receipt, error) {
	return s.receiptRepo.GetByID(ctx, ownerID, receiptID)
}

func (s *receiptService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Receipt, error) {
	return s.receiptRepo.ListByOwner(ctx, ownerID)
}

func (s *receiptService) Delete(ctx context.Context, ownerID, receiptID uuid.UUID) error {
	return s.receiptRepo.Delete(ctx, ownerID, receiptID)
}

func (s *receiptService) defaultCurrency(ctx context.Context, ownerID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return domain.DefaultCurrency
	}
	return settings.DefaultCurrency
}

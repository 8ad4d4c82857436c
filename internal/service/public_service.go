package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	"folio/internal/domain"
	"folio/internal/port"
)

// Shared document type discriminators.
const (
	SharedTypeInvoice   = "invoice"
	SharedTypeQuotation = "quotation"
	SharedTypeReceipt   = "receipt"
	SharedTypeContract  = "contract"
)

// SharedDocument is the public projection of a token-shared document
// together with the issuing owner's current business settings.
type SharedDocument struct {
	Type     string                  `json:"type"`
	Document interface{}             `json:"document"`
	Settings *domain.InvoiceSettings `json:"settings"`
}

// PublicService defines the unauthenticated token-keyed read contract.
type PublicService interface {
	GetInvoice(ctx context.Context, token string) (*SharedDocument, error)
	GetQuotation(ctx context.Context, token string) (*SharedDocument, error)
	GetReceipt(ctx context.Context, token string) (*SharedDocument, error)
	GetContract(ctx context.Context, token string) (*SharedDocument, error)
}

type publicService struct {
	invoiceRepo   port.InvoiceRepository
	quotationRepo port.QuotationRepository
	receiptRepo   port.ReceiptRepository
	contractRepo  port.ContractRepository
	settingsRepo  port.SettingsRepository
}

// NewPublicService creates a new PublicService implementation.
func NewPublicService(
	invoiceRepo port.InvoiceRepository,
	quotationRepo port.QuotationRepository,
	receiptRepo port.ReceiptRepository,
	contractRepo port.ContractRepository,
	settingsRepo port.SettingsRepository,
) PublicService {
	return &publicService{
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		receiptRepo:   receiptRepo,
		contractRepo:  contractRepo,
		settingsRepo:  settingsRepo,
	}
}

// GetInvoice resolves an invoice by share token. A lookup via an unknown
// token yields domain.ErrNotFound; tokens are never matched across types.
func (s *publicService) GetInvoice(ctx context.Context, token string) (*SharedDocument, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	inv, err := s.invoiceRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	s.countView(ctx, s.invoiceRepo.IncrementViewCount, inv.ID, SharedTypeInvoice)
	return &SharedDocument{
		Type:     SharedTypeInvoice,
		Document: inv,
		Settings: s.ownerSettings(ctx, inv.OwnerID),
	}, nil
}

func (s *publicService) GetQuotation(ctx context.Context, token string) (*SharedDocument, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	q, err := s.quotationRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	s.countView(ctx, s.quotationRepo.IncrementViewCount, q.ID, SharedTypeQuotation)
	return &SharedDocument{
		Type:     SharedTypeQuotation,
		Document: q,
		Settings: s.ownerSettings(ctx, q.OwnerID),
	}, nil
}

func (s *publicService) GetReceipt(ctx context.Context, token string) (*SharedDocument, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	rec, err := s.receiptRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	s.countView(ctx, s.receiptRepo.IncrementViewCount, rec.ID, SharedTypeReceipt)
	return &SharedDocument{
		Type:     SharedTypeReceipt,
		Document: rec,
		Settings: s.ownerSettings(ctx, rec.OwnerID),
	}, nil
}

func (s *publicService) GetContract(ctx context.Context, token string) (*SharedDocument, error) {
	if token == "" {
		return nil, domain.ErrTokenRequired
	}
	ct, err := s.contractRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}
	s.countView(ctx, s.contractRepo.IncrementViewCount, ct.ID, SharedTypeContract)
	return &SharedDocument{
		Type:     SharedTypeContract,
		Document: ct,
		Settings: s.ownerSettings(ctx, ct.OwnerID),
	}, nil
}

// countView bumps the view counter. A failure never blocks the read.
func (s *publicService) countView(ctx context.Context, inc func(context.Context, uuid.UUID) error, docID uuid.UUID, docType string) {
	if err := inc(ctx, docID); err != nil {
		log.Printf("publicService: failed to count view for %s %s: %v", docType, docID, err)
	}
}

// ownerSettings returns the owner's current settings, or nil when none are
// stored. The shared document itself still renders without them.
func (s *publicService) ownerSettings(ctx context.Context, ownerID uuid.UUID) *domain.InvoiceSettings {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			log.Printf("publicService: failed to load settings for owner %s: %v", ownerID, err)
		}
		return nil
	}
	return settings
}

package port

import (
	"context"

	"github.com/google/uuid"

	"folio/internal/domain"
)

// InvoiceRepository defines the contract for invoice persistence.
//
// Create runs as a single transaction: it consumes the owner's next sequence
// number, stamps a share token, and inserts header plus line items. Update
// never touches the stamped number or token. GetByToken is the unscoped
// public lookup; everything else is owner scoped.
type InvoiceRepository interface {
	Create(ctx context.Context, inv *domain.Invoice) error
	Update(ctx context.Context, inv *domain.Invoice) error
	GetByID(ctx context.Context, ownerID, invoiceID uuid.UUID) (*domain.Invoice, error)
	GetByToken(ctx context.Context, token string) (*domain.Invoice, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Invoice, error)
	CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error)
	Delete(ctx context.Context, ownerID, invoiceID uuid.UUID) error
	IncrementViewCount(ctx context.Context, invoiceID uuid.UUID) error
	BackfillTokens(ctx context.Context) (int, error)
}

// QuotationRepository defines the contract for quotation persistence.
type QuotationRepository interface {
	Create(ctx context.Context, q *domain.Quotation) error
	Update(ctx context.Context, q *domain.Quotation) error
	GetByID(ctx context.Context, ownerID, quotationID uuid.UUID) (*domain.Quotation, error)
	GetByToken(ctx context.Context, token string) (*domain.Quotation, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Quotation, error)
	CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error)
	Delete(ctx context.Context, ownerID, quotationID uuid.UUID) error
	IncrementViewCount(ctx context.Context, quotationID uuid.UUID) error
	BackfillTokens(ctx context.Context) (int, error)
}

// ReceiptRepository defines the contract for receipt persistence.
type ReceiptRepository interface {
	Create(ctx context.Context, r *domain.Receipt) error
	Update(ctx context.Context, r *domain.Receipt) error
	GetByID(ctx context.Context, ownerID, receiptID uuid.UUID) (*domain.Receipt, error)
	GetByToken(ctx context.Context, token string) (*domain.Receipt, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Receipt, error)
	CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error)
	Delete(ctx context.Context, ownerID, receiptID uuid.UUID) error
	IncrementViewCount(ctx context.Context, receiptID uuid.UUID) error
	BackfillTokens(ctx context.Context) (int, error)
}

// ContractRepository defines the contract for contract persistence.
// Contracts draw from the owner's independent contract numbering sequence.
type ContractRepository interface {
	Create(ctx context.Context, ct *domain.Contract) error
	Update(ctx context.Context, ct *domain.Contract) error
	GetByID(ctx context.Context, ownerID, contractID uuid.UUID) (*domain.Contract, error)
	GetByToken(ctx context.Context, token string) (*domain.Contract, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Contract, error)
	CountByClient(ctx context.Context, ownerID, clientID uuid.UUID) (int, error)
	Delete(ctx context.Context, ownerID, contractID uuid.UUID) error
	IncrementViewCount(ctx context.Context, contractID uuid.UUID) error
	BackfillTokens(ctx context.Context) (int, error)
}

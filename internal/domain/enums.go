package domain

// InvoiceStatus represents the payment lifecycle of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft     InvoiceStatus = "draft"
	InvoiceStatusSent      InvoiceStatus = "sent"
	InvoiceStatusPaid      InvoiceStatus = "paid"
	InvoiceStatusOverdue   InvoiceStatus = "overdue"
	InvoiceStatusCancelled InvoiceStatus = "cancelled"
)

// ValidInvoiceStatuses enumerates the allowed invoice statuses.
var ValidInvoiceStatuses = map[InvoiceStatus]bool{
	InvoiceStatusDraft:     true,
	InvoiceStatusSent:      true,
	InvoiceStatusPaid:      true,
	InvoiceStatusOverdue:   true,
	InvoiceStatusCancelled: true,
}

// QuotationStatus represents the acceptance lifecycle of a quotation.
type QuotationStatus string

const (
	QuotationStatusDraft    QuotationStatus = "draft"
	QuotationStatusSent     QuotationStatus = "sent"
	QuotationStatusAccepted QuotationStatus = "accepted"
	QuotationStatusRejected QuotationStatus = "rejected"
	QuotationStatusExpired  QuotationStatus = "expired"
)

// ValidQuotationStatuses enumerates the allowed quotation statuses.
var ValidQuotationStatuses = map[QuotationStatus]bool{
	QuotationStatusDraft:    true,
	QuotationStatusSent:     true,
	QuotationStatusAccepted: true,
	QuotationStatusRejected: true,
	QuotationStatusExpired:  true,
}

// ContractStatus represents the signing lifecycle of a contract.
type ContractStatus string

const (
	ContractStatusDraft     ContractStatus = "draft"
	ContractStatusSent      ContractStatus = "sent"
	ContractStatusSigned    ContractStatus = "signed"
	ContractStatusCompleted ContractStatus = "completed"
	ContractStatusCancelled ContractStatus = "cancelled"
)

// ValidContractStatuses enumerates the allowed contract statuses.
var ValidContractStatuses = map[ContractStatus]bool{
	ContractStatusDraft:     true,
	ContractStatusSent:      true,
	ContractStatusSigned:    true,
	ContractStatusCompleted: true,
	ContractStatusCancelled: true,
}

// DiscountType selects how a document discount is applied.
type DiscountType string

const (
	DiscountTypePercentage DiscountType = "percentage"
	DiscountTypeFixed      DiscountType = "fixed"
)

// ValidDiscountTypes enumerates the allowed discount types.
var ValidDiscountTypes = map[DiscountType]bool{
	DiscountTypePercentage: true,
	DiscountTypeFixed:      true,
}

// SignatureType records how a contract signature was captured.
type SignatureType string

const (
	SignatureTypeDrawn SignatureType = "drawn"
	SignatureTypeTyped SignatureType = "typed"
)

// ValidSignatureTypes enumerates the allowed signature types.
var ValidSignatureTypes = map[SignatureType]bool{
	SignatureTypeDrawn: true,
	SignatureTypeTyped: true,
}

// Defaults returned by the settings endpoint when an owner has no row yet.
const (
	DefaultCurrency          = "USD"
	DefaultInvoicePrefix     = "INV-"
	DefaultContractPrefix    = "CT-"
	DefaultNextNumber        = 1
	DefaultPaymentTermsLabel = "Payment due within 30 days"
)

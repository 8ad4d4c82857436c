package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// User represents an authenticated owner of the tools area.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	Name         string    `db:"name" json:"name"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}

// Client represents a customer record referenced by documents.
type Client struct {
	ID        uuid.UUID `db:"id" json:"id"`
	OwnerID   uuid.UUID `db:"owner_id" json:"owner_id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone,omitempty"`
	Address   string    `db:"address" json:"address,omitempty"`
	City      string    `db:"city" json:"city,omitempty"`
	State     string    `db:"state" json:"state,omitempty"`
	ZipCode   string    `db:"zip_code" json:"zip_code,omitempty"`
	Country   string    `db:"country" json:"country,omitempty"`
	TaxID     string    `db:"tax_id" json:"tax_id,omitempty"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// InvoiceSettings holds an owner's business defaults and numbering counters.
// One row per owner; business/branding fields are joined live at read time so
// corrections show up on previously issued documents.
type InvoiceSettings struct {
	ID                  uuid.UUID       `db:"id" json:"id"`
	OwnerID             uuid.UUID       `db:"owner_id" json:"owner_id"`
	BusinessName        string          `db:"business_name" json:"business_name"`
	BusinessEmail       string          `db:"business_email" json:"business_email"`
	BusinessPhone       string          `db:"business_phone" json:"business_phone,omitempty"`
	BusinessAddress     string          `db:"business_address" json:"business_address,omitempty"`
	BusinessCity        string          `db:"business_city" json:"business_city,omitempty"`
	BusinessState       string          `db:"business_state" json:"business_state,omitempty"`
	BusinessZipCode     string          `db:"business_zip_code" json:"business_zip_code,omitempty"`
	BusinessCountry     string          `db:"business_country" json:"business_country,omitempty"`
	TaxID               string          `db:"tax_id" json:"tax_id,omitempty"`
	Logo                string          `db:"logo" json:"logo,omitempty"`
	DefaultCurrency     string          `db:"default_currency" json:"default_currency"`
	DefaultTaxRate      decimal.Decimal `db:"default_tax_rate" json:"default_tax_rate"`
	DefaultPaymentTerms string          `db:"default_payment_terms" json:"default_payment_terms"`
	InvoicePrefix       string          `db:"invoice_prefix" json:"invoice_prefix"`
	NextInvoiceNumber   int64           `db:"next_invoice_number" json:"next_invoice_number"`
	ContractPrefix      string          `db:"contract_prefix" json:"contract_prefix"`
	NextContractNumber  int64           `db:"next_contract_number" json:"next_contract_number"`
	CreatedAt           time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time       `db:"updated_at" json:"updated_at"`
}

// LineItem is one billable row of an invoice, quotation, or receipt.
// Amount is always recomputed as quantity*rate on the server.
type LineItem struct {
	ID          uuid.UUID       `db:"id" json:"id"`
	Description string          `db:"description" json:"description"`
	Quantity    decimal.Decimal `db:"quantity" json:"quantity"`
	Rate        decimal.Decimal `db:"rate" json:"rate"`
	Amount      decimal.Decimal `db:"amount" json:"amount"`
}

// Invoice is a billable document with line items and a payment status.
type Invoice struct {
	ID            uuid.UUID       `db:"id" json:"id"`
	OwnerID       uuid.UUID       `db:"owner_id" json:"owner_id"`
	InvoiceNumber string          `db:"invoice_number" json:"invoice_number"`
	ClientID      uuid.UUID       `db:"client_id" json:"client_id"`
	Client        *Client         `db:"-" json:"client,omitempty"`
	IssueDate     time.Time       `db:"issue_date" json:"issue_date"`
	DueDate       time.Time       `db:"due_date" json:"due_date"`
	Status        InvoiceStatus   `db:"status" json:"status"`
	Items         []LineItem      `db:"-" json:"items"`
	Subtotal      decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxRate       decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	TaxAmount     decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Discount      decimal.Decimal `db:"discount" json:"discount"`
	DiscountType  DiscountType    `db:"discount_type" json:"discount_type"`
	Total         decimal.Decimal `db:"total" json:"total"`
	Notes         string          `db:"notes" json:"notes,omitempty"`
	Terms         string          `db:"terms" json:"terms,omitempty"`
	Currency      string          `db:"currency" json:"currency"`
	Token         string          `db:"token" json:"token"`
	ViewCount     int             `db:"view_count" json:"view_count"`
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// Quotation mirrors Invoice with a validity window and its own status domain.
type Quotation struct {
	ID              uuid.UUID       `db:"id" json:"id"`
	OwnerID         uuid.UUID       `db:"owner_id" json:"owner_id"`
	QuotationNumber string          `db:"quotation_number" json:"quotation_number"`
	ClientID        uuid.UUID       `db:"client_id" json:"client_id"`
	Client          *Client         `db:"-" json:"client,omitempty"`
	IssueDate       time.Time       `db:"issue_date" json:"issue_date"`
	ValidUntil      time.Time       `db:"valid_until" json:"valid_until"`
	Status          QuotationStatus `db:"status" json:"status"`
	Items           []LineItem      `db:"-" json:"items"`
	Subtotal        decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxRate         decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	TaxAmount       decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Discount        decimal.Decimal `db:"discount" json:"discount"`
	DiscountType    DiscountType    `db:"discount_type" json:"discount_type"`
	Total           decimal.Decimal `db:"total" json:"total"`
	Notes           string          `db:"notes" json:"notes,omitempty"`
	Terms           string          `db:"terms" json:"terms,omitempty"`
	Currency        string          `db:"currency" json:"currency"`
	Token           string          `db:"token" json:"token"`
	ViewCount       int             `db:"view_count" json:"view_count"`
	CreatedAt       time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time       `db:"updated_at" json:"updated_at"`
}

// Receipt records a completed payment. Receipts have no status lifecycle.
type Receipt struct {
	ID                   uuid.UUID       `db:"id" json:"id"`
	OwnerID              uuid.UUID       `db:"owner_id" json:"owner_id"`
	ReceiptNumber        string          `db:"receipt_number" json:"receipt_number"`
	ClientID             uuid.UUID       `db:"client_id" json:"client_id"`
	Client               *Client         `db:"-" json:"client,omitempty"`
	IssueDate            time.Time       `db:"issue_date" json:"issue_date"`
	PaymentDate          time.Time       `db:"payment_date" json:"payment_date"`
	PaymentMethod        string          `db:"payment_method" json:"payment_method"`
	RelatedInvoiceNumber string          `db:"related_invoice_number" json:"related_invoice_number,omitempty"`
	Items                []LineItem      `db:"-" json:"items"`
	Subtotal             decimal.Decimal `db:"subtotal" json:"subtotal"`
	TaxRate              decimal.Decimal `db:"tax_rate" json:"tax_rate"`
	TaxAmount            decimal.Decimal `db:"tax_amount" json:"tax_amount"`
	Discount             decimal.Decimal `db:"discount" json:"discount"`
	DiscountType         DiscountType    `db:"discount_type" json:"discount_type"`
	Total                decimal.Decimal `db:"total" json:"total"`
	AmountPaid           decimal.Decimal `db:"amount_paid" json:"amount_paid"`
	Notes                string          `db:"notes" json:"notes,omitempty"`
	Currency             string          `db:"currency" json:"currency"`
	Token                string          `db:"token" json:"token"`
	ViewCount            int             `db:"view_count" json:"view_count"`
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt            time.Time       `db:"updated_at" json:"updated_at"`
}

// Contract holds generated rich content and signatures instead of line items.
type Contract struct {
	ID                    uuid.UUID       `db:"id" json:"id"`
	OwnerID               uuid.UUID       `db:"owner_id" json:"owner_id"`
	ContractNumber        string          `db:"contract_number" json:"contract_number"`
	TemplateType          string          `db:"template_type" json:"template_type"`
	TemplateName          string          `db:"template_name" json:"template_name"`
	ClientID              uuid.UUID       `db:"client_id" json:"client_id"`
	Client                *Client         `db:"-" json:"client,omitempty"`
	ProjectName           string          `db:"project_name" json:"project_name"`
	ProjectScope          string          `db:"project_scope" json:"project_scope"`
	Deliverables          string          `db:"deliverables" json:"deliverables"`
	StartDate             time.Time       `db:"start_date" json:"start_date"`
	EndDate               time.Time       `db:"end_date" json:"end_date"`
	SignatureDate         *time.Time      `db:"signature_date" json:"signature_date,omitempty"`
	ProjectFee            decimal.Decimal `db:"project_fee" json:"project_fee"`
	PaymentTerms          string          `db:"payment_terms" json:"payment_terms"`
	Currency              string          `db:"currency" json:"currency"`
	ClientSignature       string          `db:"client_signature" json:"client_signature,omitempty"`
	ClientSignatureType   SignatureType   `db:"client_signature_type" json:"client_signature_type,omitempty"`
	BusinessSignature     string          `db:"business_signature" json:"business_signature,omitempty"`
	BusinessSignatureType SignatureType   `db:"business_signature_type" json:"business_signature_type,omitempty"`
	Status                ContractStatus  `db:"status" json:"status"`
	GeneratedContent      string          `db:"generated_content" json:"generated_content"`
	Notes                 string          `db:"notes" json:"notes,omitempty"`
	Token                 string          `db:"token" json:"token"`
	ViewCount             int             `db:"view_count" json:"view_count"`
	CreatedAt             time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt             time.Time       `db:"updated_at" json:"updated_at"`
}

// Resume is the header of a resume-builder document.
type Resume struct {
	ID          uuid.UUID        `db:"id" json:"id"`
	OwnerID     uuid.UUID        `db:"owner_id" json:"owner_id"`
	Title       string           `db:"title" json:"title"`
	FullName    string           `db:"full_name" json:"full_name"`
	Email       string           `db:"email" json:"email"`
	Phone       string           `db:"phone" json:"phone,omitempty"`
	Summary     string           `db:"summary" json:"summary,omitempty"`
	Experiences []WorkExperience `db:"-" json:"experiences"`
	Educations  []Education      `db:"-" json:"educations"`
	Skills      []Skill          `db:"-" json:"skills"`
	CreatedAt   time.Time        `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time        `db:"updated_at" json:"updated_at"`
}

// WorkExperience is one employment entry on a resume.
type WorkExperience struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ResumeID    uuid.UUID  `db:"resume_id" json:"resume_id"`
	Company     string     `db:"company" json:"company"`
	Position    string     `db:"position" json:"position"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
	Description string     `db:"description" json:"description,omitempty"`
}

// Education is one education entry on a resume.
type Education struct {
	ID          uuid.UUID  `db:"id" json:"id"`
	ResumeID    uuid.UUID  `db:"resume_id" json:"resume_id"`
	Institution string     `db:"institution" json:"institution"`
	Degree      string     `db:"degree" json:"degree"`
	StartDate   time.Time  `db:"start_date" json:"start_date"`
	EndDate     *time.Time `db:"end_date" json:"end_date,omitempty"`
}

// Skill is one skill entry on a resume.
type Skill struct {
	ID       uuid.UUID `db:"id" json:"id"`
	ResumeID uuid.UUID `db:"resume_id" json:"resume_id"`
	Name     string    `db:"name" json:"name"`
	Level    string    `db:"level" json:"level,omitempty"`
}

// TimeEntry is a tracked block of work time.
type TimeEntry struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	OwnerID         uuid.UUID  `db:"owner_id" json:"owner_id"`
	ProjectName     string     `db:"project_name" json:"project_name"`
	Description     string     `db:"description" json:"description,omitempty"`
	StartTime       time.Time  `db:"start_time" json:"start_time"`
	EndTime         *time.Time `db:"end_time" json:"end_time,omitempty"`
	DurationMinutes int        `db:"duration_minutes" json:"duration_minutes"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
}

// SyncPayload is the full materialized graph of one owner's data.
type SyncPayload struct {
	Clients     []Client         `json:"clients"`
	Invoices    []Invoice        `json:"invoices"`
	Quotations  []Quotation      `json:"quotations"`
	Receipts    []Receipt        `json:"receipts"`
	Contracts   []Contract       `json:"contracts"`
	Resumes     []Resume         `json:"resumes"`
	TimeEntries []TimeEntry      `json:"time_entries"`
	Settings    *InvoiceSettings `json:"settings"`
}

package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"folio/internal/domain"
	"folio/internal/port"
)

// UpsertContractInput is the DTO for creating or updating a contract.
type UpsertContractInput struct {
	ID                    *uuid.UUID            `json:"id"`
	ClientID              uuid.UUID             `json:"client_id" binding:"required"`
	TemplateType          string                `json:"template_type" binding:"required"`
	TemplateName          string                `json:"template_name"`
	ProjectName           string                `json:"project_name" binding:"required"`
	ProjectScope          string                `json:"project_scope"`
	Deliverables          string                `json:"deliverables"`
	StartDate             string                `json:"start_date" binding:"required"`
	EndDate               string                `json:"end_date" binding:"required"`
	SignatureDate         string                `json:"signature_date"`
	ProjectFee            decimal.Decimal       `json:"project_fee"`
	PaymentTerms          string                `json:"payment_terms"`
	Currency              string                `json:"currency"`
	ClientSignature       string                `json:"client_signature"`
	ClientSignatureType   domain.SignatureType  `json:"client_signature_type"`
	BusinessSignature     string                `json:"business_signature"`
	BusinessSignatureType domain.SignatureType  `json:"business_signature_type"`
	Status                domain.ContractStatus `json:"status"`
	GeneratedContent      string                `json:"generated_content"`
	Notes                 string                `json:"notes"`
}

// ContractService defines the contract management contract.
type ContractService interface {
	Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertContractInput) (*domain.Contract, bool, error)
	GetByID(ctx context.Context, ownerID, contractID uuid.UUID) (*domain.Contract, error)
	List(ctx context.Context, ownerID uuid.UUID) ([]domain.Contract, error)
	Delete(ctx context.Context, ownerID, contractID uuid.UUID) error
}

type contractService struct {
	contractRepo port.ContractRepository
	clientRepo   port.ClientRepository
	settingsRepo port.SettingsRepository
}

// NewContractService creates a new ContractService implementation.
func NewContractService(
	contractRepo port.ContractRepository,
	clientRepo port.ClientRepository,
	settingsRepo port.SettingsRepository,
) ContractService {
	return &contractService{
		contractRepo: contractRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
	}
}

func (s *contractService) Upsert(ctx context.Context, ownerID uuid.UUID, input UpsertContractInput) (*domain.Contract, bool, error) {
	if _, err := s.clientRepo.GetByID(ctx, ownerID, input.ClientID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, false, domain.ErrClientNotFound
		}
		return nil, false, err
	}

	status := input.Status
	if status == "" {
		status = domain.ContractStatusDraft
	}
	if !domain.ValidContractStatuses[status] {
		return nil, false, domain.ErrInvalidStatus
	}
	if input.ClientSignatureType != "" && !domain.ValidSignatureTypes[input.ClientSignatureType] {
		return nil, false, domain.ErrInvalidStatus
	}
	if input.BusinessSignatureType != "" && !domain.ValidSignatureTypes[input.BusinessSignatureType] {
		return nil, false, domain.ErrInvalidStatus
	}

	startDate, err := parseDate(input.StartDate)
	if err != nil {
		return nil, false, err
	}
	endDate, err := parseDate(input.EndDate)
	if err != nil {
		return nil, false, err
	}
	signatureDate, err := parseOptionalDate(input.SignatureDate)
	if err != nil {
		return nil, false, err
	}

	currency := input.Currency
	if currency == "" {
		currency = s.defaultCurrency(ctx, ownerID)
	}

	if input.ID == nil {
		ct := &domain.Contract{
			OwnerID:               ownerID,
			TemplateType:          input.TemplateType,
			TemplateName:          input.TemplateName,
			ClientID:              input.ClientID,
			ProjectName:           input.ProjectName,
			ProjectScope:          input.ProjectScope,
			Deliverables:          input.Deliverables,
			StartDate:             startDate,
			EndDate:               endDate,
			SignatureDate:         signatureDate,
			ProjectFee:            input.ProjectFee,
			PaymentTerms:          input.PaymentTerms,
			Currency:              currency,
			ClientSignature:       input.ClientSignature,
			ClientSignatureType:   input.ClientSignatureType,
			BusinessSignature:     input.BusinessSignature,
			BusinessSignatureType: input.BusinessSignatureType,
			Status:                status,
			GeneratedContent:      input.GeneratedContent,
			Notes:                 input.Notes,
		}
		if err := s.contractRepo.Create(ctx, ct); err != nil {
			return nil, false, err
		}
		return ct, true, nil
	}

	ct, err := s.contractRepo.GetByID(ctx, ownerID, *input.ID)
	if err != nil {
		return nil, false, err
	}
	ct.TemplateType = input.TemplateType
	ct.TemplateName = input.TemplateName
	ct.ClientID = input.ClientID
	ct.ProjectName = input.ProjectName
	ct.ProjectScope = input.ProjectScope
	ct.Deliverables = input.Deliverables
	ct.StartDate = startDate
	ct.EndDate = endDate
	ct.SignatureDate = signatureDate
	ct.ProjectFee = input.ProjectFee
	ct.PaymentTerms = input.PaymentTerms
	ct.Currency = currency
	ct.ClientSignature = input.ClientSignature
	ct.ClientSignatureType = input.ClientSignatureType
	ct.BusinessSignature = input.BusinessSignature
	ct.BusinessSignatureType = input.BusinessSignatureType
	ct.Status = status
	ct.GeneratedContent = input.GeneratedContent
	ct.Notes = input.Notes

	if err := s.contractRepo.Update(ctx, ct); err != nil {
		return nil, false, err
	}
	return ct, false, nil
}

func (s *contractService) GetByID(ctx context.Context, ownerID, contractID uuid.UUID) (*domain.Contract, error) {
	return s.contractRepo.GetByID(ctx, ownerID, contractID)
}

func (s *contractService) List(ctx context.Context, ownerID uuid.UUID) ([]domain.Contract, error) {
	return s.contractRepo.ListByOwner(ctx, ownerID)
}

func (s *contractService) Delete(ctx context.Context, ownerID, contractID uuid.UUID) error {
	return s.contractRepo.Delete(ctx, ownerID, contractID)
}

func (s *contractService) defaultCurrency(ctx context.Context, ownerID uuid.UUID) string {
	settings, err := s.settingsRepo.GetByOwner(ctx, ownerID)
	if err != nil {
		return domain.DefaultCurrency
	}
	return settings.DefaultCurrency
}

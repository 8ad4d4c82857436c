package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

func newQuotationService() (service.QuotationService, *mocks.MockQuotationRepo, *mocks.MockClientRepo, *mocks.MockSettingsRepo) {
	quotationRepo := new(mocks.MockQuotationRepo)
	clientRepo := new(mocks.MockClientRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	svc := service.NewQuotationService(quotationRepo, clientRepo, settingsRepo)
	return svc, quotationRepo, clientRepo, settingsRepo
}

func validQuotationInput(clientID uuid.UUID) service.UpsertQuotationInput {
	return service.UpsertQuotationInput{
		ClientID:   clientID,
		IssueDate:  "2026-03-01",
		ValidUntil: "2026-03-31",
		Items: []service.LineItemInput{
			{Description: "Design sprint", Quantity: decimal.NewFromInt(1), Rate: decimal.NewFromInt(500)},
		},
		Currency: "USD",
	}
}

func TestQuotationService_Upsert_CreateComputesTotals(t *testing.T) {
	svc, quotationRepo, clientRepo, _ := newQuotationService()
	ownerID := uuid.New()
	clientID := uuid.New()

	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(&domain.Client{ID: clientID}, nil)
	quotationRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Quotation")).Return(nil)

	input := validQuotationInput(clientID)
	input.TaxRate = decimal.NewFromInt(10)

	q, created, err := svc.Upsert(context.Background(), ownerID, input)
	assert.NoError(t, err)
	assert.True(t, created)
	assert.True(t, q.Subtotal.Equal(decimal.NewFromInt(500)))
	assert.True(t, q.TaxAmount.Equal(decimal.NewFromInt(50)))
	assert.True(t, q.Total.Equal(decimal.NewFromInt(550)))
	assert.Equal(t, domain.QuotationStatusDraft, q.Status)
	quotationRepo.AssertExpectations(t)
}

func TestQuotationService_Upsert_InvalidStatus(t *testing.T) {
	svc, quotationRepo, clientRepo, _ := newQuotationService()
	ownerID := uuid.New()
	clientID := uuid.New()

	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(&domain.Client{ID: clientID}, nil)

	input := validQuotationInput(clientID)
	input.Status = "paid" // invoice status, not a quotation status

	_, _, err := svc.Upsert(context.Background(), ownerID, input)
	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
	quotationRepo.AssertNotCalled(t, "Create")
}

func TestQuotationService_Upsert_InvalidValidUntil(t *testing.T) {
	svc, quotationRepo, clientRepo, _ := newQuotationService()
	ownerID := uuid.New()
	clientID := uuid.New()

	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(&domain.Client{ID: clientID}, nil)

	input := validQuotationInput(clientID)
	input.ValidUntil = "March 31"

	_, _, err := svc.Upsert(context.Background(), ownerID, input)
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
	quotationRepo.AssertNotCalled(t, "Create")
}

func TestQuotationService_Upsert_UpdatePreservesNumberAndToken(t *testing.T) {
	svc, quotationRepo, clientRepo, _ := newQuotationService()
	ownerID := uuid.New()
	clientID := uuid.New()
	quotationID := uuid.New()

	existing := &domain.Quotation{
		ID:              quotationID,
		OwnerID:         ownerID,
		QuotationNumber: "INV-0003",
		Token:           "01J9ZK3V7N4Q8R2T6W0X5Y1B2C",
		Status:          domain.QuotationStatusDraft,
	}
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(&domain.Client{ID: clientID}, nil)
	quotationRepo.On("GetByID", mock.Anything, ownerID, quotationID).Return(existing, nil)
	quotationRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Quotation")).Return(nil)

	input := validQuotationInput(clientID)
	input.ID = &quotationID
	input.Status = domain.QuotationStatusAccepted

	q, created, err := svc.Upsert(context.Background(), ownerID, input)
	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "INV-0003", q.QuotationNumber)
	assert.Equal(t, "01J9ZK3V7N4Q8R2T6W0X5Y1B2C", q.Token)
	assert.Equal(t, domain.QuotationStatusAccepted, q.Status)
	quotationRepo.AssertExpectations(t)
}

func TestQuotationService_Upsert_UnknownClient(t *testing.T) {
	svc, quotationRepo, clientRepo, _ := newQuotationService()
	ownerID := uuid.New()
	clientID := uuid.New()

	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(nil, domain.ErrNotFound)

	_, _, err := svc.Upsert(context.Background(), ownerID, validQuotationInput(clientID))
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
	quotationRepo.AssertNotCalled(t, "Create")
}

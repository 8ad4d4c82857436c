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

func newInvoiceService() (service.InvoiceService, *mocks.MockInvoiceRepo, *mocks.MockClientRepo, *mocks.MockSettingsRepo) {
	invoiceRepo := new(mocks.MockInvoiceRepo)
	clientRepo := new(mocks.MockClientRepo)
	settingsRepo := new(mocks.MockSettingsRepo)
	svc := service.NewInvoiceService(invoiceRepo, clientRepo, settingsRepo)
	return svc, invoiceRepo, clientRepo, settingsRepo
}

func validInvoiceInput(clientID uuid.UUID) service.UpsertInvoiceInput {
	return service.UpsertInvoiceInput{
		ClientID:  clientID,
		IssueDate: "2026-01-15",
		DueDate:   "2026-02-15",
		TaxRate:   decimal.NewFromInt(10),
		Items: []service.LineItemInput{
			{Description: "Design work", Quantity: decimal.NewFromInt(2), Rate: decimal.NewFromInt(100)},
		},
	}
}

func TestInvoiceService_Upsert_CreateComputesTotals(t *testing.T) {
	svc, invoiceRepo, clientRepo, settingsRepo := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID, OwnerID: ownerID}, nil)
	settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, created, err := svc.Upsert(context.Background(), ownerID, validInvoiceInput(clientID))

	assert.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, domain.InvoiceStatusDraft, inv.Status)
	assert.Equal(t, domain.DefaultCurrency, inv.Currency)
	assert.True(t, inv.Subtotal.Equal(decimal.NewFromInt(200)))
	assert.True(t, inv.TaxAmount.Equal(decimal.NewFromInt(20)))
	assert.True(t, inv.Total.Equal(decimal.NewFromInt(220)))
	assert.True(t, inv.Items[0].Amount.Equal(decimal.NewFromInt(200)))
	invoiceRepo.AssertExpectations(t)
}

func TestInvoiceService_Upsert_CurrencyFromSettings(t *testing.T) {
	svc, invoiceRepo, clientRepo, settingsRepo := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID}, nil)
	settingsRepo.On("GetByOwner", mock.Anything, ownerID).
		Return(&domain.InvoiceSettings{DefaultCurrency: "EUR"}, nil)
	invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	inv, _, err := svc.Upsert(context.Background(), ownerID, validInvoiceInput(clientID))

	assert.NoError(t, err)
	assert.Equal(t, "EUR", inv.Currency)
}

func TestInvoiceService_Upsert_UnknownClient(t *testing.T) {
	svc, _, clientRepo, _ := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).Return(nil, domain.ErrNotFound)

	inv, _, err := svc.Upsert(context.Background(), ownerID, validInvoiceInput(clientID))

	assert.Nil(t, inv)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestInvoiceService_Upsert_InvalidStatus(t *testing.T) {
	svc, _, clientRepo, _ := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID}, nil)

	input := validInvoiceInput(clientID)
	input.Status = "archived"

	_, _, err := svc.Upsert(context.Background(), ownerID, input)

	assert.ErrorIs(t, err, domain.ErrInvalidStatus)
}

func TestInvoiceService_Upsert_InvalidDate(t *testing.T) {
	svc, _, clientRepo, _ := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID}, nil)

	input := validInvoiceInput(clientID)
	input.IssueDate = "15/01/2026"

	_, _, err := svc.Upsert(context.Background(), ownerID, input)

	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestInvoiceService_Upsert_UpdatePreservesNumberAndToken(t *testing.T) {
	svc, invoiceRepo, clientRepo, settingsRepo := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	invoiceID := uuid.New()
	existing := &domain.Invoice{
		ID:            invoiceID,
		OwnerID:       ownerID,
		InvoiceNumber: "INV-0007",
		Token:         "01JMXK2V8N0000000000000000",
		Status:        domain.InvoiceStatusSent,
		Currency:      "USD",
	}

	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID}, nil)
	settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)
	invoiceRepo.On("GetByID", mock.Anything, ownerID, invoiceID).Return(existing, nil)
	invoiceRepo.On("Update", mock.Anything, mock.AnythingOfType("*domain.Invoice")).Return(nil)

	input := validInvoiceInput(clientID)
	input.ID = &invoiceID
	input.Status = domain.InvoiceStatusPaid

	inv, created, err := svc.Upsert(context.Background(), ownerID, input)

	assert.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "INV-0007", inv.InvoiceNumber)
	assert.Equal(t, "01JMXK2V8N0000000000000000", inv.Token)
	assert.Equal(t, domain.InvoiceStatusPaid, inv.Status)
}

func TestInvoiceService_Upsert_UpdateUnknownInvoice(t *testing.T) {
	svc, invoiceRepo, clientRepo, _ := newInvoiceService()

	ownerID := uuid.New()
	clientID := uuid.New()
	invoiceID := uuid.New()
	clientRepo.On("GetByID", mock.Anything, ownerID, clientID).
		Return(&domain.Client{ID: clientID}, nil)
	invoiceRepo.On("GetByID", mock.Anything, ownerID, invoiceID).Return(nil, domain.ErrNotFound)

	input := validInvoiceInput(clientID)
	input.ID = &invoiceID
	input.Currency = "USD"

	_, _, err := svc.Upsert(context.Background(), ownerID, input)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

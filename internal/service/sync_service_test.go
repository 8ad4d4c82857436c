package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/domain"
	"folio/internal/service"
	"folio/mocks"
)

type syncMocks struct {
	clientRepo    *mocks.MockClientRepo
	invoiceRepo   *mocks.MockInvoiceRepo
	quotationRepo *mocks.MockQuotationRepo
	receiptRepo   *mocks.MockReceiptRepo
	contractRepo  *mocks.MockContractRepo
	resumeRepo    *mocks.MockResumeRepo
	timeEntryRepo *mocks.MockTimeEntryRepo
	settingsRepo  *mocks.MockSettingsRepo
}

func newSyncService() (service.SyncService, *syncMocks) {
	m := &syncMocks{
		clientRepo:    new(mocks.MockClientRepo),
		invoiceRepo:   new(mocks.MockInvoiceRepo),
		quotationRepo: new(mocks.MockQuotationRepo),
		receiptRepo:   new(mocks.MockReceiptRepo),
		contractRepo:  new(mocks.MockContractRepo),
		resumeRepo:    new(mocks.MockResumeRepo),
		timeEntryRepo: new(mocks.MockTimeEntryRepo),
		settingsRepo:  new(mocks.MockSettingsRepo),
	}
	svc := service.NewSyncService(
		m.clientRepo, m.invoiceRepo, m.quotationRepo, m.receiptRepo,
		m.contractRepo, m.resumeRepo, m.timeEntryRepo, m.settingsRepo)
	return svc, m
}

func (m *syncMocks) expectEmptyLists(ownerID uuid.UUID) {
	m.clientRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Client{}, nil)
	m.invoiceRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Invoice{}, nil)
	m.quotationRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Quotation{}, nil)
	m.receiptRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Receipt{}, nil)
	m.contractRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Contract{}, nil)
	m.resumeRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Resume{}, nil)
	m.timeEntryRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.TimeEntry{}, nil)
}

func TestSyncService_Download_CollectsAllFamilies(t *testing.T) {
	svc, m := newSyncService()

	ownerID := uuid.New()
	clients := []domain.Client{{ID: uuid.New(), Name: "Acme"}}
	invoices := []domain.Invoice{{ID: uuid.New(), InvoiceNumber: "INV-0001"}}
	settings := &domain.InvoiceSettings{OwnerID: ownerID, BusinessName: "Studio North"}

	m.clientRepo.On("ListByOwner", mock.Anything, ownerID).Return(clients, nil)
	m.invoiceRepo.On("ListByOwner", mock.Anything, ownerID).Return(invoices, nil)
	m.quotationRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Quotation{}, nil)
	m.receiptRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Receipt{}, nil)
	m.contractRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Contract{}, nil)
	m.resumeRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.Resume{}, nil)
	m.timeEntryRepo.On("ListByOwner", mock.Anything, ownerID).Return([]domain.TimeEntry{}, nil)
	m.settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(settings, nil)

	payload, err := svc.Download(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Equal(t, clients, payload.Clients)
	assert.Equal(t, invoices, payload.Invoices)
	assert.Equal(t, settings, payload.Settings)
	assert.Empty(t, payload.Quotations)
}

func TestSyncService_Download_MissingSettingsIsNotAnError(t *testing.T) {
	svc, m := newSyncService()

	ownerID := uuid.New()
	m.expectEmptyLists(ownerID)
	m.settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)

	payload, err := svc.Download(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Nil(t, payload.Settings)
}

func TestSyncService_Download_FamilyFailureFailsWhole(t *testing.T) {
	svc, m := newSyncService()

	ownerID := uuid.New()
	m.expectEmptyLists(ownerID)
	m.settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)
	// Override one family with a failure.
	m.invoiceRepo.ExpectedCalls = nil
	m.invoiceRepo.On("ListByOwner", mock.Anything, ownerID).Return(nil, errors.New("query timeout"))

	payload, err := svc.Download(context.Background(), ownerID)

	assert.Nil(t, payload)
	assert.Error(t, err)
}

func TestSyncService_ExportExcel_ProducesWorkbook(t *testing.T) {
	svc, m := newSyncService()

	ownerID := uuid.New()
	m.expectEmptyLists(ownerID)
	m.settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)

	data, err := svc.ExportExcel(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx files are zip archives.
	assert.Equal(t, byte('P'), data[0])
	assert.Equal(t, byte('K'), data[1])
}

package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"folio/internal/config"
	"folio/internal/domain"
	"folio/internal/port"
	"folio/internal/service"
	"folio/mocks"
)

func newSettingsService() (service.SettingsService, *mocks.MockSettingsRepo, *mocks.MockObjectStorage) {
	settingsRepo := new(mocks.MockSettingsRepo)
	storage := new(mocks.MockObjectStorage)
	svc := service.NewSettingsService(settingsRepo, storage, config.S3Config{Bucket: "folio-uploads"})
	return svc, settingsRepo, storage
}

func TestSettingsService_Get_ReturnsDefaultsWithoutRow(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService()

	ownerID := uuid.New()
	settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(nil, domain.ErrNotFound)

	settings, err := svc.Get(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Equal(t, domain.DefaultCurrency, settings.DefaultCurrency)
	assert.Equal(t, domain.DefaultInvoicePrefix, settings.InvoicePrefix)
	assert.Equal(t, domain.DefaultContractPrefix, settings.ContractPrefix)
	assert.Equal(t, int64(domain.DefaultNextNumber), settings.NextInvoiceNumber)
	assert.Equal(t, domain.DefaultPaymentTermsLabel, settings.DefaultPaymentTerms)
	// Reading defaults must not write a row.
	settingsRepo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything)
}

func TestSettingsService_Get_ReturnsStoredRow(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService()

	ownerID := uuid.New()
	stored := &domain.InvoiceSettings{OwnerID: ownerID, DefaultCurrency: "EUR", InvoicePrefix: "RG-"}
	settingsRepo.On("GetByOwner", mock.Anything, ownerID).Return(stored, nil)

	settings, err := svc.Get(context.Background(), ownerID)

	assert.NoError(t, err)
	assert.Equal(t, stored, settings)
}

func TestSettingsService_Update_FillsDefaults(t *testing.T) {
	svc, settingsRepo, _ := newSettingsService()

	ownerID := uuid.New()
	settingsRepo.On("Upsert", mock.Anything, mock.AnythingOfType("*domain.InvoiceSettings")).Return(nil)

	settings, err := svc.Update(context.Background(), ownerID, service.UpdateSettingsInput{
		BusinessName: "Studio North",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Studio North", settings.BusinessName)
	assert.Equal(t, domain.DefaultCurrency, settings.DefaultCurrency)
	assert.Equal(t, domain.DefaultInvoicePrefix, settings.InvoicePrefix)
	assert.Equal(t, domain.DefaultPaymentTermsLabel, settings.DefaultPaymentTerms)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsService_UploadLogo_StoresAndRecords(t *testing.T) {
	svc, settingsRepo, storage := newSettingsService()

	ownerID := uuid.New()
	location := "https://s3.amazonaws.com/folio-uploads/logos/" + ownerID.String() + "/logo.png"
	storage.On("Upload", mock.Anything, mock.MatchedBy(func(input port.UploadInput) bool {
		return input.Bucket == "folio-uploads" &&
			strings.HasPrefix(input.Key, "logos/"+ownerID.String()+"/") &&
			strings.HasSuffix(input.Key, ".png")
	})).Return(location, nil)
	settingsRepo.On("SetLogo", mock.Anything, ownerID, location).Return(nil)

	got, err := svc.UploadLogo(context.Background(), ownerID, "logo.png", "image/png", strings.NewReader("fake"))

	assert.NoError(t, err)
	assert.Equal(t, location, got)
	settingsRepo.AssertExpectations(t)
}

func TestSettingsService_UploadLogo_StorageFailure(t *testing.T) {
	svc, _, storage := newSettingsService()

	storage.On("Upload", mock.Anything, mock.AnythingOfType("port.UploadInput")).
		Return("", errors.New("s3 unavailable"))

	_, err := svc.UploadLogo(context.Background(), uuid.New(), "logo.png", "image/png", strings.NewReader("fake"))

	assert.ErrorIs(t, err, domain.ErrUploadFailed)
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"folio/internal/domain"
	"folio/internal/export"
	"folio/internal/port"
)

// SyncService materializes an owner's complete data graph for download,
// either as JSON or as an Excel workbook.
type SyncService interface {
	Download(ctx context.Context, ownerID uuid.UUID) (*domain.SyncPayload, error)
	ExportExcel(ctx context.Context, ownerID uuid.UUID) ([]byte, error)
}

type syncService struct {
	clientRepo    port.ClientRepository
	invoiceRepo   port.InvoiceRepository
	quotationRepo port.QuotationRepository
	receiptRepo   port.ReceiptRepository
	contractRepo  port.ContractRepository
	resumeRepo    port.ResumeRepository
	timeEntryRepo port.TimeEntryRepository
	settingsRepo  port.SettingsRepository
}

// NewSyncService creates a new SyncService implementation.
func NewSyncService(
	clientRepo port.ClientRepository,
	invoiceRepo port.InvoiceRepository,
	quotationRepo port.QuotationRepository,
	receiptRepo port.ReceiptRepository,
	contractRepo port.ContractRepository,
	resumeRepo port.ResumeRepository,
	timeEntryRepo port.TimeEntryRepository,
	settingsRepo port.SettingsRepository,
) SyncService {
	return &syncService{
		clientRepo:    clientRepo,
		invoiceRepo:   invoiceRepo,
		quotationRepo: quotationRepo,
		receiptRepo:   receiptRepo,
		contractRepo:  contractRepo,
		resumeRepo:    resumeRepo,
		timeEntryRepo: timeEntryRepo,
		settingsRepo:  settingsRepo,
	}
}

// Download fetches every entity family concurrently. Each family is an
// independent query, so one slow table does not serialize the rest.
func (s *syncService) Download(ctx context.Context, ownerID uuid.UUID) (*domain.SyncPayload, error) {
	payload := &domain.SyncPayload{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payload.Clients, err = s.clientRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.Invoices, err = s.invoiceRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.Quotations, err = s.quotationRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.Receipts, err = s.receiptRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.Contracts, err = s.contractRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.Resumes, err = s.resumeRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		var err error
		payload.TimeEntries, err = s.timeEntryRepo.ListByOwner(gctx, ownerID)
		return err
	})
	g.Go(func() error {
		settings, err := s.settingsRepo.GetByOwner(gctx, ownerID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return nil
			}
			return err
		}
		payload.Settings = settings
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("syncService.Download: %w", err)
	}
	return payload, nil
}

// ExportExcel renders the full data graph as an Excel workbook, one sheet
// per entity family.
func (s *syncService) ExportExcel(ctx context.Context, ownerID uuid.UUID) ([]byte, error) {
	payload, err := s.Download(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	data, err := export.Workbook(payload)
	if err != nil {
		return nil, fmt.Errorf("syncService.ExportExcel: %w", err)
	}
	return data, nil
}

package main

import (
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"folio/internal/config"
	"folio/internal/email/noop"
	"folio/internal/email/ses"
	"folio/internal/handler"
	"folio/internal/port"
	"folio/internal/repository/postgres"
	"folio/internal/router"
	"folio/internal/service"
	s3storage "folio/internal/storage/s3"
)

// @title           Folio API
// @version         1.0
// @description     Personal portfolio backend: clients, billing documents, share links and data export.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey CookieAuth
// @in header
// @name Cookie
// @description Session cookie issued by /auth/login.

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Monetary amounts serialize as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	clientRepo := postgres.NewClientRepo(db)
	settingsRepo := postgres.NewSettingsRepo(db)
	invoiceRepo := postgres.NewInvoiceRepo(db)
	quotationRepo := postgres.NewQuotationRepo(db)
	receiptRepo := postgres.NewReceiptRepo(db)
	contractRepo := postgres.NewContractRepo(db)
	resumeRepo := postgres.NewResumeRepo(db)
	timeEntryRepo := postgres.NewTimeEntryRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var sender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		sender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.ToAddress)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		sender = noop.NewNoopSender()
	}

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	clientSvc := service.NewClientService(clientRepo)
	settingsSvc := service.NewSettingsService(settingsRepo, s3Client, cfg.S3)
	invoiceSvc := service.NewInvoiceService(invoiceRepo, clientRepo, settingsRepo)
	quotationSvc := service.NewQuotationService(quotationRepo, clientRepo, settingsRepo)
	receiptSvc := service.NewReceiptService(receiptRepo, clientRepo, settingsRepo, cfg.Billing)
	contractSvc := service.NewContractService(contractRepo, clientRepo, settingsRepo)
	resumeSvc := service.NewResumeService(resumeRepo)
	timeEntrySvc := service.NewTimeEntryService(timeEntryRepo)
	publicSvc := service.NewPublicService(invoiceRepo, quotationRepo, receiptRepo, contractRepo, settingsRepo)
	syncSvc := service.NewSyncService(clientRepo, invoiceRepo, quotationRepo, receiptRepo, contractRepo, resumeRepo, timeEntryRepo, settingsRepo)
	contactSvc := service.NewContactService(sender)

	// Initialize handlers
	h := router.Handlers{
		Auth:      handler.NewAuthHandler(authSvc, cfg.JWT),
		Client:    handler.NewClientHandler(clientSvc),
		Settings:  handler.NewSettingsHandler(settingsSvc, cfg.S3),
		Invoice:   handler.NewInvoiceHandler(invoiceSvc),
		Quotation: handler.NewQuotationHandler(quotationSvc),
		Receipt:   handler.NewReceiptHandler(receiptSvc),
		Contract:  handler.NewContractHandler(contractSvc),
		Resume:    handler.NewResumeHandler(resumeSvc),
		TimeEntry: handler.NewTimeEntryHandler(timeEntrySvc),
		Public:    handler.NewPublicHandler(publicSvc),
		Sync:      handler.NewSyncHandler(syncSvc),
		Contact:   handler.NewContactHandler(contactSvc),
		Health:    handler.NewHealthHandler(db),
	}

	// Setup router
	r := router.Setup(cfg, authSvc, h)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

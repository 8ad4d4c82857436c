package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "folio/docs"
	"folio/internal/config"
	"folio/internal/handler"
	"folio/internal/middleware"
	"folio/internal/service"
)

// Handlers bundles every HTTP handler the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Client    *handler.ClientHandler
	Settings  *handler.SettingsHandler
	Invoice   *handler.InvoiceHandler
	Quotation *handler.QuotationHandler
	Receipt   *handler.ReceiptHandler
	Contract  *handler.ContractHandler
	Resume    *handler.ResumeHandler
	TimeEntry *handler.TimeEntryHandler
	Public    *handler.PublicHandler
	Sync      *handler.SyncHandler
	Contact   *handler.ContactHandler
	Health    *handler.HealthHandler
}

// Setup configures the Gin engine with all routes and middleware.
func Setup(cfg *config.Config, authSvc service.AuthService, h Handlers) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))

	// Health checks
	r.GET("/healthz", h.Health.Liveness)
	r.GET("/readyz", h.Health.Readiness)

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api")

	// Public auth routes
	auth := api.Group("/auth")
	auth.POST("/login", h.Auth.Login)
	auth.POST("/register", h.Auth.Register)

	// Public token-keyed document reads
	public := api.Group("/public")
	public.GET("/:type/:token", h.Public.Get)
	public.GET("/:type", h.Public.MissingToken)

	// Public contact form
	api.POST("/contact", h.Contact.Send)

	// Protected routes - require a valid session
	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc, cfg.JWT.CookieName))

	protected.GET("/auth/me", h.Auth.Me)
	protected.DELETE("/auth/login", h.Auth.Logout)

	protected.GET("/clients", h.Client.Get)
	protected.POST("/clients", h.Client.Upsert)
	protected.DELETE("/clients", h.Client.Delete)

	protected.GET("/settings", h.Settings.Get)
	protected.POST("/settings", h.Settings.Update)
	protected.POST("/settings/logo", h.Settings.UploadLogo)

	protected.GET("/invoices", h.Invoice.Get)
	protected.POST("/invoices", h.Invoice.Upsert)
	protected.DELETE("/invoices", h.Invoice.Delete)

	protected.GET("/quotations", h.Quotation.Get)
	protected.POST("/quotations", h.Quotation.Upsert)
	protected.DELETE("/quotations", h.Quotation.Delete)

	protected.GET("/receipts", h.Receipt.Get)
	protected.POST("/receipts", h.Receipt.Upsert)
	protected.DELETE("/receipts", h.Receipt.Delete)

	protected.GET("/contracts", h.Contract.Get)
	protected.POST("/contracts", h.Contract.Upsert)
	protected.DELETE("/contracts", h.Contract.Delete)

	protected.GET("/resumes", h.Resume.Get)
	protected.POST("/resumes", h.Resume.Upsert)
	protected.DELETE("/resumes", h.Resume.Delete)

	protected.GET("/time-entries", h.TimeEntry.Get)
	protected.POST("/time-entries", h.TimeEntry.Upsert)
	protected.DELETE("/time-entries", h.TimeEntry.Delete)

	protected.GET("/sync/download", h.Sync.Download)
	protected.GET("/sync/export", h.Sync.Export)

	return r
}

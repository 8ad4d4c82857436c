package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	Server  ServerConfig
	DB      DBConfig
	JWT     JWTConfig
	S3      S3Config
	Email   EmailConfig
	CORS    CORSConfig
	Log     LogConfig
	Billing BillingConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port         string        `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Environment  string        `mapstructure:"environment"`
}

// DBConfig holds PostgreSQL connection settings.
type DBConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
	SSLMode  string `mapstructure:"sslmode"`
	MaxOpen  int    `mapstructure:"max_open"`
	MaxIdle  int    `mapstructure:"max_idle"`
}

// DSN returns the PostgreSQL connection string.
func (d *DBConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.Name, d.SSLMode,
	)
}

// JWTConfig holds JWT signing, expiry and session cookie settings.
type JWTConfig struct {
	Secret            string        `mapstructure:"secret"`
	AccessTokenExpiry time.Duration `mapstructure:"access_expiry"`
	Issuer            string        `mapstructure:"issuer"`
	CookieName        string        `mapstructure:"cookie_name"`
	CookieDomain      string        `mapstructure:"cookie_domain"`
	CookieSecure      bool          `mapstructure:"cookie_secure"`
}

// S3Config holds AWS S3 settings for logo storage.
type S3Config struct {
	Region        string `mapstructure:"region"`
	Bucket        string `mapstructure:"bucket"`
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	MaxFileSizeMB int64  `mapstructure:"max_file_size_mb"`
}

// EmailConfig holds contact form email delivery settings.
type EmailConfig struct {
	Provider    string `mapstructure:"provider"`
	Region      string `mapstructure:"region"`
	FromAddress string `mapstructure:"from_address"`
	FromName    string `mapstructure:"from_name"`
	ToAddress   string `mapstructure:"to_address"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// BillingConfig holds document billing behavior settings.
type BillingConfig struct {
	RejectOverpaidReceipts bool `mapstructure:"reject_overpaid_receipts"`
}

// Load reads configuration from environment variables with the FOLIO_ prefix.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("FOLIO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Server defaults
	v.SetDefault("server.port", ":8080")
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "15s")
	v.SetDefault("server.environment", "development")

	// DB defaults
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 5432)
	v.SetDefault("db.user", "folio")
	v.SetDefault("db.password", "folio_secret")
	v.SetDefault("db.name", "folio_db")
	v.SetDefault("db.sslmode", "disable")
	v.SetDefault("db.max_open", 25)
	v.SetDefault("db.max_idle", 10)

	// JWT defaults
	v.SetDefault("jwt.secret", "change-me-in-production")
	v.SetDefault("jwt.access_expiry", "720h")
	v.SetDefault("jwt.issuer", "folio")
	v.SetDefault("jwt.cookie_name", "folio_session")
	v.SetDefault("jwt.cookie_domain", "")
	v.SetDefault("jwt.cookie_secure", false)

	// S3 defaults
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "folio-uploads")
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.max_file_size_mb", 5)

	// Email defaults
	v.SetDefault("email.provider", "noop")
	v.SetDefault("email.region", "us-east-1")
	v.SetDefault("email.from_address", "noreply@folio.local")
	v.SetDefault("email.from_name", "Folio")
	v.SetDefault("email.to_address", "")

	// CORS defaults (localhost origins for development)
	v.SetDefault("cors.allowed_origins", "http://localhost:3000,http://127.0.0.1:3000")

	// Log defaults
	v.SetDefault("log.level", "debug")
	v.SetDefault("log.format", "console")

	// Billing defaults
	v.SetDefault("billing.reject_overpaid_receipts", false)

	// Bind environment variables explicitly for nested keys
	envBindings := map[string]string{
		"server.port":          "FOLIO_SERVER_PORT",
		"server.read_timeout":  "FOLIO_SERVER_READ_TIMEOUT",
		"server.write_timeout": "FOLIO_SERVER_WRITE_TIMEOUT",
		"server.environment":   "FOLIO_SERVER_ENVIRONMENT",
		"db.host":              "FOLIO_DB_HOST",
		"db.port":              "FOLIO_DB_PORT",
		"db.user":              "FOLIO_DB_USER",
		"db.password":          "FOLIO_DB_PASSWORD",
		"db.name":              "FOLIO_DB_NAME",
		"db.sslmode":           "FOLIO_DB_SSLMODE",
		"db.max_open":          "FOLIO_DB_MAX_OPEN",
		"db.max_idle":          "FOLIO_DB_MAX_IDLE",
		"jwt.secret":           "FOLIO_JWT_SECRET",
		"jwt.access_expiry":    "FOLIO_JWT_ACCESS_EXPIRY",
		"jwt.issuer":           "FOLIO_JWT_ISSUER",
		"jwt.cookie_name":      "FOLIO_JWT_COOKIE_NAME",
		"jwt.cookie_domain":    "FOLIO_JWT_COOKIE_DOMAIN",
		"jwt.cookie_secure":    "FOLIO_JWT_COOKIE_SECURE",
		"s3.region":            "FOLIO_S3_REGION",
		"s3.bucket":            "FOLIO_S3_BUCKET",
		"s3.endpoint":          "FOLIO_S3_ENDPOINT",
		"s3.access_key":        "FOLIO_S3_ACCESS_KEY",
		"s3.secret_key":        "FOLIO_S3_SECRET_KEY",
		"s3.max_file_size_mb":  "FOLIO_S3_MAX_FILE_SIZE_MB",
		"email.provider":       "FOLIO_EMAIL_PROVIDER",
		"email.region":         "FOLIO_EMAIL_REGION",
		"email.from_address":   "FOLIO_EMAIL_FROM_ADDRESS",
		"email.from_name":      "FOLIO_EMAIL_FROM_NAME",
		"email.to_address":     "FOLIO_EMAIL_TO_ADDRESS",
		"cors.allowed_origins": "FOLIO_CORS_ALLOWED_ORIGINS",
		"log.level":            "FOLIO_LOG_LEVEL",
		"log.format":           "FOLIO_LOG_FORMAT",
		"billing.reject_overpaid_receipts": "FOLIO_BILLING_REJECT_OVERPAID_RECEIPTS",
	}
	for key, env := range envBindings {
		_ = v.BindEnv(key, env)
	}

	cfg := &Config{}

	// Railway/Heroku/Render set a PORT env var. Use it if FOLIO_SERVER_PORT is not explicitly set.
	serverPort := v.GetString("server.port")
	if port := os.Getenv("PORT"); port != "" && os.Getenv("FOLIO_SERVER_PORT") == "" {
		serverPort = ":" + port
	}

	cfg.Server = ServerConfig{
		Port:         serverPort,
		ReadTimeout:  v.GetDuration("server.read_timeout"),
		WriteTimeout: v.GetDuration("server.write_timeout"),
		Environment:  v.GetString("server.environment"),
	}
	cfg.DB = DBConfig{
		Host:     v.GetString("db.host"),
		Port:     v.GetInt("db.port"),
		User:     v.GetString("db.user"),
		Password: v.GetString("db.password"),
		Name:     v.GetString("db.name"),
		SSLMode:  v.GetString("db.sslmode"),
		MaxOpen:  v.GetInt("db.max_open"),
		MaxIdle:  v.GetInt("db.max_idle"),
	}
	cfg.JWT = JWTConfig{
		Secret:            v.GetString("jwt.secret"),
		AccessTokenExpiry: v.GetDuration("jwt.access_expiry"),
		Issuer:            v.GetString("jwt.issuer"),
		CookieName:        v.GetString("jwt.cookie_name"),
		CookieDomain:      v.GetString("jwt.cookie_domain"),
		CookieSecure:      v.GetBool("jwt.cookie_secure"),
	}
	cfg.S3 = S3Config{
		Region:        v.GetString("s3.region"),
		Bucket:        v.GetString("s3.bucket"),
		Endpoint:      v.GetString("s3.endpoint"),
		AccessKey:     v.GetString("s3.access_key"),
		SecretKey:     v.GetString("s3.secret_key"),
		MaxFileSizeMB: v.GetInt64("s3.max_file_size_mb"),
	}
	cfg.Email = EmailConfig{
		Provider:    v.GetString("email.provider"),
		Region:      v.GetString("email.region"),
		FromAddress: v.GetString("email.from_address"),
		FromName:    v.GetString("email.from_name"),
		ToAddress:   v.GetString("email.to_address"),
	}
	// Parse CORS allowed origins from comma-separated string
	var corsOrigins []string
	for _, o := range strings.Split(v.GetString("cors.allowed_origins"), ",") {
		o = strings.TrimSpace(o)
		if o != "" {
			corsOrigins = append(corsOrigins, o)
		}
	}
	cfg.CORS = CORSConfig{
		AllowedOrigins: corsOrigins,
	}
	cfg.Log = LogConfig{
		Level:  v.GetString("log.level"),
		Format: v.GetString("log.format"),
	}
	cfg.Billing = BillingConfig{
		RejectOverpaidReceipts: v.GetBool("billing.reject_overpaid_receipts"),
	}

	return cfg, nil
}

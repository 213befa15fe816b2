package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
// Handlers and services depend on this interface so tests can supply their own values.
type Provider interface {
	GetAppAddr() string
	GetAppBaseURL() string
	GetSessionSecret() string
	GetDataDir() string
	GetStoreDriver() string
	GetCatalogPath() string
	GetDBURL() string
	GetDBNs() string
	GetDBDb() string
	GetDBUser() string
	GetDBPass() string
	GetAdminUsername() string
	GetAdminPassword() string
	GetEmailProvider() string
	GetEmailAPIKey() string
	GetEmailSender() string
	GetAdminEmail() string
	GetAPITimeout() time.Duration
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	AppAddr       string
	AppBaseURL    string
	SessionSecret string

	// DataDir is the root of the file-backed stores (students, contacts, QR codes).
	DataDir     string
	StoreDriver string
	CatalogPath string

	DBUrl  string
	DBNs   string
	DBDb   string
	DBUser string
	DBPass string

	AdminUsername string
	AdminPassword string

	EmailProvider string
	EmailAPIKey   string
	EmailSender   string
	AdminEmail    string

	// APITimeout bounds every outbound call made by the API client.
	APITimeout time.Duration

	LogFormat string
	LogLevel  string
}

// New loads configuration from the environment, reading a .env file first when present.
func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return FromEnv()
}

// FromEnv builds a Config from the current environment without touching .env files.
func FromEnv() *Config {
	cfg := &Config{
		AppAddr:       getEnv("APP_ADDR", ":5000"),
		AppBaseURL:    getEnv("APP_BASE_URL", "http://localhost:5000"),
		SessionSecret: getEnv("SESSION_SECRET", "zawiya-dev-session-secret"),
		DataDir:       getEnv("DATA_DIR", "data"),
		StoreDriver:   getEnv("STORE_DRIVER", "file"),
		CatalogPath:   os.Getenv("CATALOG_PATH"),
		DBUrl:         os.Getenv("SURREAL_URL"),
		DBNs:          os.Getenv("SURREAL_NS"),
		DBDb:          os.Getenv("SURREAL_DB"),
		DBUser:        os.Getenv("SURREAL_USER"),
		DBPass:        os.Getenv("SURREAL_PASS"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin"),
		EmailProvider: getEnv("EMAIL_PROVIDER", "log"),
		EmailAPIKey:   os.Getenv("EMAIL_API_KEY"),
		EmailSender:   os.Getenv("EMAIL_SENDER"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "director@zawiya-tijania.dz"),
		APITimeout:    getDuration("API_TIMEOUT", 15*time.Second),
		LogFormat:     getEnv("LOG_FORMAT", "text"),
		LogLevel:      getEnv("LOG_LEVEL", "debug"),
	}

	if cfg.StoreDriver == "surreal" && (cfg.DBUrl == "" || cfg.DBNs == "" || cfg.DBDb == "") {
		log.Fatal("STORE_DRIVER=surreal requires SURREAL_URL, SURREAL_NS and SURREAL_DB to be set.")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// getDuration accepts Go duration strings ("15s") or a plain number of seconds.
func getDuration(key string, fallback time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(raw); err == nil {
		return time.Duration(secs) * time.Second
	}
	log.Printf("invalid %s=%q, using %s", key, raw, fallback)
	return fallback
}

func (c *Config) GetAppAddr() string           { return c.AppAddr }
func (c *Config) GetAppBaseURL() string        { return c.AppBaseURL }
func (c *Config) GetSessionSecret() string     { return c.SessionSecret }
func (c *Config) GetDataDir() string           { return c.DataDir }
func (c *Config) GetStoreDriver() string       { return c.StoreDriver }
func (c *Config) GetCatalogPath() string       { return c.CatalogPath }
func (c *Config) GetDBURL() string             { return c.DBUrl }
func (c *Config) GetDBNs() string              { return c.DBNs }
func (c *Config) GetDBDb() string              { return c.DBDb }
func (c *Config) GetDBUser() string            { return c.DBUser }
func (c *Config) GetDBPass() string            { return c.DBPass }
func (c *Config) GetAdminUsername() string     { return c.AdminUsername }
func (c *Config) GetAdminPassword() string     { return c.AdminPassword }
func (c *Config) GetEmailProvider() string     { return c.EmailProvider }
func (c *Config) GetEmailAPIKey() string       { return c.EmailAPIKey }
func (c *Config) GetEmailSender() string       { return c.EmailSender }
func (c *Config) GetAdminEmail() string        { return c.AdminEmail }
func (c *Config) GetAPITimeout() time.Duration { return c.APITimeout }
func (c *Config) GetLogFormat() string         { return c.LogFormat }
func (c *Config) GetLogLevel() string          { return c.LogLevel }

package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port   string
	DBName string

	// BaseURL is the public URL this backend is reachable at. It is used to
	// build download links for exported PDFs. When it points at localhost
	// the WhatsApp gateway cannot fetch media from it.
	BaseURL   string
	ExportDir string
	UploadDir string

	RagApiURL    string // retrieval service (manual excerpts)
	AdaptApiURL  string // AI adaptation service
	RenderApiURL string // PDF render service

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string

	DefaultCountryCode string

	SendGridApiKey string
	EmailSender    string
	AdminEmail     string

	DispatchConcurrency int
	SendTimeoutSec      int
	ExportRetentionDays int
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:   getEnv("PORT", "8000"),
		DBName: getEnv("DB_NAME", "shiksha_setu.db"),

		BaseURL:   getEnv("BASE_URL", "http://localhost:8000"),
		ExportDir: getEnv("EXPORT_DIR", "exports"),
		UploadDir: getEnv("UPLOAD_DIR", "uploads"),

		RagApiURL:    getEnv("RAG_API_URL", "http://localhost:9100"),
		AdaptApiURL:  getEnv("ADAPT_API_URL", "http://localhost:9200"),
		RenderApiURL: getEnv("RENDER_API_URL", "http://localhost:9300"),

		TwilioAccountSID:     getEnv("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      getEnv("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNumber: getEnv("TWILIO_WHATSAPP_NUMBER", ""),

		DefaultCountryCode: getEnv("DEFAULT_COUNTRY_CODE", "+91"),

		SendGridApiKey: getEnv("SENDGRID_API_KEY", ""),
		EmailSender:    getEnv("EMAIL_SENDER", "noreply@shikshasetu.in"),
		AdminEmail:     getEnv("ADMIN_EMAIL", ""),

		DispatchConcurrency: getEnvInt("DISPATCH_CONCURRENCY", 5),
		SendTimeoutSec:      getEnvInt("SEND_TIMEOUT_SEC", 15),
		ExportRetentionDays: getEnvInt("EXPORT_RETENTION_DAYS", 30),
	}

	// Validate critical configuration
	if AppConfig.TwilioAccountSID == "" || AppConfig.TwilioAuthToken == "" || AppConfig.TwilioWhatsAppNumber == "" {
		log.Println("Warning: Twilio WhatsApp is not fully configured. Set TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_WHATSAPP_NUMBER to enable delivery.")
	}
	if AppConfig.SendGridApiKey == "" {
		log.Println("Warning: SENDGRID_API_KEY not set. Approval notification emails are disabled.")
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}

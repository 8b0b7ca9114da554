package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Environment string
	FrontendURL string
	// SMTP Configuration (Gmail by default)
	SMTPHost  string
	SMTPPort  string
	EmailUser string
	EmailPass string
	EmailTo   string
	// Gemini Configuration
	GeminiAPIKey string
	GeminiModel  string
	// Static content
	DataDir string
}

// LoadConfig reads the environment once into a snapshot. It never fails;
// workflows detect absent settings lazily and report them per request.
func LoadConfig() (*Config, error) {
	// Only effective locally, ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "3001"),
		Environment: getEnv("APP_ENV", "development"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:5173"),
		// SMTP Configuration
		SMTPHost:  getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:  getEnv("SMTP_PORT", "587"),
		EmailUser: getEnv("EMAIL_USER", ""),
		EmailPass: getEnv("EMAIL_PASS", ""),
		EmailTo:   getEnv("EMAIL_TO", ""),
		// Gemini Configuration
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		// Static content
		DataDir: getEnv("DATA_DIR", "data"),
	}

	if cfg.EmailUser == "" || cfg.EmailPass == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASS missing. Contact form submissions will fail.")
	}
	if cfg.GeminiAPIKey == "" {
		log.Println("WARNING: GEMINI_API_KEY missing. Chat assistant will be unavailable.")
	}

	return cfg, nil
}

// IsDevelopment reports whether debug detail may be included in responses.
func (c *Config) IsDevelopment() bool {
	return c.Environment != "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

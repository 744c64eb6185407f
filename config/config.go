package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
	"github.com/webirent/webirent-api/errs"
)

// Config holds every environment-driven setting the server needs. It is
// loaded once at startup; missing secrets abort the process there instead
// of failing on first use deep inside a request.
type Config struct {
	Port              string
	DatabaseDSN       string
	JWTSecret         string
	RazorpayKeyID     string
	RazorpayKeySecret string
	ResendAPIKey      string
	AdminEmail        string
	FromEmail         string
	FrontendURL       string
	Currency          string
	S3Bucket          string
}

func Load() (*Config, error) {
	// A .env file is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseDSN:       os.Getenv("DB_DSN"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		ResendAPIKey:      os.Getenv("RESEND_API_KEY"),
		AdminEmail:        os.Getenv("ADMIN_EMAIL"),
		FromEmail:         os.Getenv("FROM_EMAIL"),
		FrontendURL:       getEnv("FRONTEND_URL", "http://localhost:3000"),
		Currency:          getEnv("CURRENCY", "INR"),
		S3Bucket:          os.Getenv("S3_BUCKET"),
	}

	var missing []string
	for key, value := range map[string]string{
		"DB_DSN":              cfg.DatabaseDSN,
		"JWT_SECRET":          cfg.JWTSecret,
		"RAZORPAY_KEY_ID":     cfg.RazorpayKeyID,
		"RAZORPAY_KEY_SECRET": cfg.RazorpayKeySecret,
		"RESEND_API_KEY":      cfg.ResendAPIKey,
		"ADMIN_EMAIL":         cfg.AdminEmail,
		"FROM_EMAIL":          cfg.FromEmail,
	} {
		if value == "" {
			missing = append(missing, key)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, fmt.Errorf("%w: missing environment variables: %s",
			errs.ErrConfiguration, strings.Join(missing, ", "))
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

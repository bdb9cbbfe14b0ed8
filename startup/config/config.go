package config

import (
	"os"
	"strings"
)

type Config struct {
	Port            string
	Env             string
	AuraDBHost      string
	AuraDBPort      string
	SecretKey       string
	StripeSecretKey string
	SMTPHost        string
	SMTPPort        string
	SMTPEmail       string
	SMTPPassword    string
	JaegerAddress   string
	AllowedOrigins  []string
}

func NewConfig() *Config {
	return &Config{
		Port:            getEnv("PORT", "5000"),
		Env:             os.Getenv("NODE_ENV"),
		AuraDBHost:      os.Getenv("AURA_DB_HOST"),
		AuraDBPort:      os.Getenv("AURA_DB_PORT"),
		SecretKey:       os.Getenv("ACCESS_TOKEN_SECRET"),
		StripeSecretKey: os.Getenv("STRIPE_SECRET_KEY"),
		SMTPHost:        os.Getenv("SMTP_HOST"),
		SMTPPort:        getEnv("SMTP_PORT", "587"),
		SMTPEmail:       os.Getenv("SMTP_AUTH_MAIL"),
		SMTPPassword:    os.Getenv("SMTP_AUTH_PASSWORD"),
		JaegerAddress:   os.Getenv("JAEGER_ADDRESS"),
		AllowedOrigins:  splitOrigins(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}

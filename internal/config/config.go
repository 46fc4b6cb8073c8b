package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort     string
	DatabaseDSN  string
	JWTSecret    string
	CORSOrigins  string
	GoogleAPIKey string // menu-generation integration, optional
	ResendAPIKey string // customer email, optional
	MailFrom     string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:     getEnv("HTTP_PORT", "8080"),
		DatabaseDSN:  getEnv("DATABASE_DSN", "host=localhost user=postgres password=postgres dbname=sakura port=5432 sslmode=disable"),
		JWTSecret:    getEnv("JWT_SECRET", ""),
		CORSOrigins:  getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		GoogleAPIKey: getEnv("GOOGLE_API_KEY", ""),
		ResendAPIKey: getEnv("RESEND_API_KEY", ""),
		MailFrom:     getEnv("MAIL_FROM", "Sakura <noreply@sakura.it>"),
	}

	if cfg.JWTSecret == "" {
		log.Fatal("[FATAL] JWT_SECRET is not set; it is required in every environment.")
	}
	if len(cfg.JWTSecret) < 32 {
		log.Fatal("[FATAL] JWT_SECRET must be at least 32 characters.")
	}
	if cfg.DatabaseDSN == "host=localhost user=postgres password=postgres dbname=sakura port=5432 sslmode=disable" {
		log.Println("[WARN] DATABASE_DSN is using the default value; set your own Postgres connection for production.")
	}
	if cfg.ResendAPIKey == "" {
		log.Println("[WARN] RESEND_API_KEY is not set; customer emails will only be logged.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

package config

import (
	"log/slog"
	"os"
	"time"
)

type Config struct {
	Port             string
	Env              string
	DatabaseDSN      string
	JWTSecret        string
	JWTExpiry        time.Duration
	MasterKey        string
	MasterPassphrase string
	StoreTimeout     time.Duration
}

func Load() Config {
	cfg := Config{
		Port:             getEnv("PORT", "8080"),
		Env:              getEnv("ENV", "development"),
		// clientFoundRows makes UPDATE report matched rows instead of changed
		// rows, which the secret repository relies on for not-found detection.
		DatabaseDSN:      getEnv("DATABASE_DSN", "root:password@tcp(127.0.0.1:3306)/lockbox?parseTime=true&clientFoundRows=true"),
		JWTSecret:        getEnv("JWT_SECRET", "dev-secret-change-in-production"),
		JWTExpiry:        time.Hour,
		MasterKey:        os.Getenv("MASTER_KEY"),
		MasterPassphrase: getEnv("MASTER_PASSPHRASE", "dev-passphrase-change-in-production"),
		StoreTimeout:     5 * time.Second,
	}

	if cfg.Env == "production" {
		if cfg.JWTSecret == "dev-secret-change-in-production" {
			slog.Error("JWT_SECRET must be set in production environment")
			os.Exit(1)
		}
		if cfg.MasterKey == "" && cfg.MasterPassphrase == "dev-passphrase-change-in-production" {
			slog.Error("MASTER_KEY or MASTER_PASSPHRASE must be set in production environment")
			os.Exit(1)
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"strings"

	"infohub/internal/apperrors"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	UploadFolder  string
	TokenSecret   string
	KafkaBrokers  []string
	RedisAddr     string
	RedisPassword string
}

// Load reads configuration from the environment (and .env when present).
// A missing or unreadable upload folder is a configuration error: the
// reconciler cannot run without it, so we fail at startup rather than on
// every index request.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getenv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		UploadFolder:  os.Getenv("UPLOAD_FOLDER"),
		TokenSecret:   os.Getenv("TOKEN_SECRET"),
		KafkaBrokers:  strings.Split(getenv("KAFKA_BROKERS", "localhost:9092"), ","),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("%w: DATABASE_URL not set", apperrors.ErrConfiguration)
	}
	if cfg.TokenSecret == "" {
		return nil, fmt.Errorf("%w: TOKEN_SECRET not set", apperrors.ErrConfiguration)
	}
	if cfg.UploadFolder == "" {
		return nil, fmt.Errorf("%w: UPLOAD_FOLDER not set", apperrors.ErrConfiguration)
	}
	info, err := os.Stat(cfg.UploadFolder)
	if err != nil {
		return nil, fmt.Errorf("%w: UPLOAD_FOLDER %q: %v", apperrors.ErrConfiguration, cfg.UploadFolder, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: UPLOAD_FOLDER %q is not a directory", apperrors.ErrConfiguration, cfg.UploadFolder)
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

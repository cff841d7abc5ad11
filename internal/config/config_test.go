package config

import (
	"errors"
	"testing"

	"infohub/internal/apperrors"
)

func setRequired(t *testing.T, uploadDir string) {
	t.Helper()
	t.Setenv("DATABASE_URL", "postgres://localhost/infohub_test")
	t.Setenv("TOKEN_SECRET", "test-secret")
	t.Setenv("UPLOAD_FOLDER", uploadDir)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	setRequired(t, dir)
	t.Setenv("PORT", "")
	t.Setenv("KAFKA_BROKERS", "k1:9092,k2:9092")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("default port = %q", cfg.Port)
	}
	if cfg.UploadFolder != dir {
		t.Fatalf("upload folder = %q", cfg.UploadFolder)
	}
	if len(cfg.KafkaBrokers) != 2 {
		t.Fatalf("brokers = %v", cfg.KafkaBrokers)
	}
}

func TestLoadMissingUploadFolder(t *testing.T) {
	setRequired(t, "/nonexistent/uploads-dir")

	_, err := Load()
	if !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestLoadUnsetUploadFolder(t *testing.T) {
	setRequired(t, "")

	_, err := Load()
	if !errors.Is(err, apperrors.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	defaultDatabaseURL     = "sga.db"
	defaultLabelBaseURL    = "http://localhost:8080"
	defaultItemsPerPage    = "25"
	defaultMaxItemsPerPage = "100"
	defaultQRBoxSize       = "10"
	defaultQRBorder        = "4"
)

// Config holds the runtime settings the API consumes: pagination bounds,
// the QR rendering parameters and the base URL baked into every asset's
// printed label.
type Config struct {
	DatabaseURL     string
	LabelBaseURL    string
	ItemsPerPage    int
	MaxItemsPerPage int
	QRBoxSize       int
	QRBorder        int
}

func Load() (*Config, error) {
	cfg := &Config{}

	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.LabelBaseURL = strings.TrimRight(strings.TrimSpace(getEnv("LABEL_BASE_URL", defaultLabelBaseURL)), "/")

	var err error
	cfg.ItemsPerPage, err = parseIntEnv("ITEMS_PER_PAGE", defaultItemsPerPage)
	if err != nil {
		return nil, err
	}
	cfg.MaxItemsPerPage, err = parseIntEnv("MAX_ITEMS_PER_PAGE", defaultMaxItemsPerPage)
	if err != nil {
		return nil, err
	}
	cfg.QRBoxSize, err = parseIntEnv("QR_CODE_SIZE", defaultQRBoxSize)
	if err != nil {
		return nil, err
	}
	cfg.QRBorder, err = parseIntEnv("QR_CODE_BORDER", defaultQRBorder)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseIntEnv(key, fallback string) (int, error) {
	raw := strings.TrimSpace(getEnv(key, fallback))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %q", key, raw)
	}
	if v <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive, got %d", key, v)
	}
	return v, nil
}

// Package config loads serve-mode settings from the environment.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Auth. Empty disables bearer-token checking.
	APIKey string

	// Upload limits
	MaxUploadBytes int64

	// Conversion defaults
	DefaultImageWidth float64
}

func Load() Config {
	cfg := Config{
		Port:              envOr("PORT", "8091"),
		APIKey:            os.Getenv("MINDCONV_API_KEY"),
		MaxUploadBytes:    envInt64("MAX_UPLOAD_BYTES", 52428800), // 50MB
		DefaultImageWidth: envFloat("DEFAULT_IMG_WIDTH", 6.0),
	}

	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.DefaultImageWidth <= 0 {
		cfg.DefaultImageWidth = 6.0
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

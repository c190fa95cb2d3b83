package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/concursalia/filingdocs/internal/render"
	"github.com/concursalia/filingdocs/pkg/logging"
)

type StorageConfig struct {
	// Driver selects the filing store: "sqlite" or "memory".
	Driver string
	Path   string
}

type Config struct {
	HTTPPort int
	Storage  StorageConfig
	Log      logging.Config
	Fonts    render.FontConfig

	ServiceName string
}

func Load() Config {
	return Config{
		HTTPPort: getEnvInt("HTTP_PORT", 8080),
		Storage: StorageConfig{
			Driver: getEnv("STORAGE_DRIVER", "sqlite"),
			Path:   getEnv("STORAGE_PATH", "filings.db"),
		},
		Log: logging.Config{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "text"),
		},
		Fonts: render.FontConfig{
			Dir:    getEnv("FONT_DIR", ""),
			Family: getEnv("FONT_FAMILY", "Carlito"),
		},
		ServiceName: "filingdocs",
	}
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

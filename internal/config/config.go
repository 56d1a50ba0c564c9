package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port string
	Env  string // development, staging, production

	// Logging
	LogLevel string

	// OpenAI
	OpenAIAPIKey  string
	OpenAIBaseURL string
	OpenAIModel   string
	OpenAITimeout time.Duration

	// Upstream concurrency
	MaxConcurrentCompletions int

	// Uploads
	UploadDir      string
	MaxUploadBytes int64

	// CORS
	AllowedOrigins []string
}

func Load() (*Config, error) {
	// Real env takes precedence; a missing .env is fine.
	_ = godotenv.Load()

	cfg := &Config{
		Port:                     getEnv("PORT", "3000"),
		Env:                      getEnv("ENV", "development"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		OpenAIAPIKey:             os.Getenv("OPENAI_API_KEY"),
		OpenAIBaseURL:            getEnv("OPENAI_BASE_URL", ""),
		OpenAIModel:              getEnv("OPENAI_MODEL", "gpt-3.5-turbo"),
		OpenAITimeout:            getEnvDuration("OPENAI_TIMEOUT", 60*time.Second),
		MaxConcurrentCompletions: getEnvInt("MAX_CONCURRENT_COMPLETIONS", 4),
		UploadDir:                getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:           int64(getEnvInt("MAX_UPLOAD_BYTES", 10*1024*1024)),
		AllowedOrigins:           splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:3000")),
	}

	if cfg.MaxConcurrentCompletions < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENT_COMPLETIONS must be at least 1, got %d", cfg.MaxConcurrentCompletions)
	}
	if cfg.MaxUploadBytes < 1 {
		return nil, fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", cfg.MaxUploadBytes)
	}
	if len(cfg.AllowedOrigins) == 0 {
		return nil, fmt.Errorf("ALLOWED_ORIGINS must list at least one origin")
	}
	for _, origin := range cfg.AllowedOrigins {
		if origin != "*" && !strings.HasPrefix(origin, "http://") && !strings.HasPrefix(origin, "https://") {
			return nil, fmt.Errorf("ALLOWED_ORIGINS entry %q must start with http:// or https://", origin)
		}
	}
	if cfg.OpenAITimeout <= 0 {
		return nil, fmt.Errorf("OPENAI_TIMEOUT must be positive, got %s", cfg.OpenAITimeout)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

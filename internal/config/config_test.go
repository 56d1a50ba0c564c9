package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "LOG_LEVEL", "OPENAI_API_KEY", "OPENAI_BASE_URL", "OPENAI_MODEL",
		"OPENAI_TIMEOUT", "MAX_CONCURRENT_COMPLETIONS", "UPLOAD_DIR", "MAX_UPLOAD_BYTES", "ALLOWED_ORIGINS",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "gpt-3.5-turbo", cfg.OpenAIModel)
	assert.Equal(t, 60*time.Second, cfg.OpenAITimeout)
	assert.Equal(t, 4, cfg.MaxConcurrentCompletions)
	assert.Equal(t, "uploads", cfg.UploadDir)
	assert.Equal(t, int64(10*1024*1024), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o-mini")
	t.Setenv("OPENAI_TIMEOUT", "5s")
	t.Setenv("MAX_CONCURRENT_COMPLETIONS", "2")
	t.Setenv("MAX_UPLOAD_BYTES", "2048")
	t.Setenv("ALLOWED_ORIGINS", " https://a.example , ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, "gpt-4o-mini", cfg.OpenAIModel)
	assert.Equal(t, 5*time.Second, cfg.OpenAITimeout)
	assert.Equal(t, 2, cfg.MaxConcurrentCompletions)
	assert.Equal(t, int64(2048), cfg.MaxUploadBytes)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_InvalidConcurrency(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_COMPLETIONS", "0")

	_, err := Load()
	assert.ErrorContains(t, err, "MAX_CONCURRENT_COMPLETIONS")
}

func TestLoad_UnparsableFallsBack(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_COMPLETIONS", "lots")
	t.Setenv("OPENAI_TIMEOUT", "soon")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.MaxConcurrentCompletions)
	assert.Equal(t, 60*time.Second, cfg.OpenAITimeout)
}

func TestLoad_InvalidOrigins(t *testing.T) {
	tests := map[string]string{
		"only separators": " , ,",
		"missing scheme":  "example.com",
	}

	for name, origins := range tests {
		t.Run(name, func(t *testing.T) {
			t.Setenv("ALLOWED_ORIGINS", origins)

			_, err := Load()
			assert.ErrorContains(t, err, "ALLOWED_ORIGINS")
		})
	}
}

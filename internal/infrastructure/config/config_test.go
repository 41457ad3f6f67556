package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, k := range []string{
		"SERVER_ADDRESS", "SHUTDOWN_TIMEOUT", "LOG_LEVEL", "DATABASE_PATH", "AVATAR_DIR",
		"PUBLIC_BASE_URL", "LLM_PROVIDER", "OPENAI_API_KEY", "LLM_URL", "LLM_MODEL",
		"LLM_MAX_TOKENS", "GEMINI_API_KEY", "GEMINI_MODEL", "GEMINI_URL", "QUIZ_CACHE_TARGET",
		"QUIZ_GENERATE_TIMEOUT",
	} {
		t.Setenv(k, "")
	}

	cfg := Load()

	assert.Equal(t, ":3000", cfg.ServerAddress)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel)
	assert.Equal(t, "codeswap.db", cfg.DatabasePath)
	assert.Equal(t, "data/avatars", cfg.AvatarDir)
	assert.Equal(t, "http://localhost:3000", cfg.PublicBaseURL)
	assert.Equal(t, ProviderOpenAI, cfg.LLMProvider)
	assert.Equal(t, "https://api.openai.com", cfg.LLMURL)
	assert.Equal(t, "gpt-4o", cfg.LLMModel)
	assert.Equal(t, 1024, cfg.LLMMaxTokens)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Empty(t, cfg.GeminiURL)
	assert.Equal(t, 5, cfg.QuizCacheTarget)
	assert.Equal(t, 60*time.Second, cfg.QuizGenerateTimeout)
	assert.Empty(t, cfg.OpenAIAPIKey)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("SERVER_ADDRESS", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("PUBLIC_BASE_URL", "https://codeswap.example.com/")
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GEMINI_API_KEY", "g-key")
	t.Setenv("GEMINI_URL", "http://gemini.internal")
	t.Setenv("QUIZ_CACHE_TARGET", "8")
	t.Setenv("QUIZ_GENERATE_TIMEOUT", "15s")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.ServerAddress)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, "https://codeswap.example.com", cfg.PublicBaseURL)
	assert.Equal(t, ProviderGemini, cfg.LLMProvider)
	assert.Equal(t, "g-key", cfg.GeminiAPIKey)
	assert.Equal(t, "http://gemini.internal", cfg.GeminiURL)
	assert.Equal(t, 8, cfg.QuizCacheTarget)
	assert.Equal(t, 15*time.Second, cfg.QuizGenerateTimeout)
}

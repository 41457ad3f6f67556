package config

import (
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	ServerAddress   string
	ShutdownTimeout time.Duration
	LogLevel        slog.Level

	// Storage
	DatabasePath  string
	AvatarDir     string
	PublicBaseURL string // used to build avatar URLs

	// Quiz generation
	LLMProvider  string // "openai" or "gemini"
	OpenAIAPIKey string
	LLMURL       string // OpenAI-compatible endpoint
	LLMModel     string
	LLMMaxTokens int
	GeminiAPIKey string
	GeminiModel  string
	GeminiURL    string // empty uses the SDK default endpoint

	// Quiz cache
	QuizCacheTarget     int
	QuizGenerateTimeout time.Duration
}

func Load() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddress:   getenvDefault("SERVER_ADDRESS", ":3000"),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
		LogLevel:        getLogLevel("LOG_LEVEL", slog.LevelInfo),

		DatabasePath:  getenvDefault("DATABASE_PATH", "codeswap.db"),
		AvatarDir:     getenvDefault("AVATAR_DIR", "data/avatars"),
		PublicBaseURL: strings.TrimRight(getenvDefault("PUBLIC_BASE_URL", "http://localhost:3000"), "/"),

		LLMProvider:  strings.ToLower(getenvDefault("LLM_PROVIDER", ProviderOpenAI)),
		OpenAIAPIKey: os.Getenv("OPENAI_API_KEY"),
		LLMURL:       getenvDefault("LLM_URL", "https://api.openai.com"),
		LLMModel:     getenvDefault("LLM_MODEL", "gpt-4o"),
		LLMMaxTokens: getInt("LLM_MAX_TOKENS", 1024),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  getenvDefault("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiURL:    os.Getenv("GEMINI_URL"),

		QuizCacheTarget:     getInt("QUIZ_CACHE_TARGET", 5),
		QuizGenerateTimeout: getDuration("QUIZ_GENERATE_TIMEOUT", 60*time.Second),
	}

	switch cfg.LLMProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		log.Fatalf("config: LLM_PROVIDER=%q must be %q or %q", cfg.LLMProvider, ProviderOpenAI, ProviderGemini)
	}
	if cfg.QuizCacheTarget < 1 {
		log.Fatalf("config: QUIZ_CACHE_TARGET must be at least 1, got %d", cfg.QuizCacheTarget)
	}

	return cfg
}

func getenvDefault(k, fallback string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return fallback
}

func getDuration(k string, fallback time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid duration: %v", k, v, err)
	}
	return d
}

func getInt(k string, fallback int) int {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Fatalf("config: %s=%q is not a valid integer: %v", k, v, err)
	}
	return n
}

func getLogLevel(k string, fallback slog.Level) slog.Level {
	v := os.Getenv(k)
	if v == "" {
		return fallback
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(v)); err != nil {
		log.Fatalf("config: %s=%q is not a valid log level: %v", k, v, err)
	}
	return level
}

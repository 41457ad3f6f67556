package generator

import (
	"fmt"

	"github.com/codeswap/backend/internal/infrastructure/config"
)

// FromConfig builds the backend selected by LLM_PROVIDER. Missing keys are
// not an error here; they surface as a GenerationError on each Generate.
func FromConfig(cfg *config.Config) (Generator, error) {
	switch cfg.LLMProvider {
	case config.ProviderOpenAI, "":
		return NewOpenAIGenerator(OpenAIConfig{
			APIKey:    cfg.OpenAIAPIKey,
			URL:       cfg.LLMURL,
			Model:     cfg.LLMModel,
			MaxTokens: cfg.LLMMaxTokens,
			Timeout:   cfg.QuizGenerateTimeout,
		}, nil), nil
	case config.ProviderGemini:
		return NewGeminiGenerator(GeminiConfig{
			APIKey:  cfg.GeminiAPIKey,
			Model:   cfg.GeminiModel,
			BaseURL: cfg.GeminiURL,
		}), nil
	default:
		return nil, fmt.Errorf("unknown LLM provider %q", cfg.LLMProvider)
	}
}

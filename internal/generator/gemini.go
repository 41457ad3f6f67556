package generator

import (
	"context"
	"strings"
	"sync"

	"google.golang.org/genai"

	"github.com/codeswap/backend/internal/domain/quiz"
)

// GeminiGenerator generates quizzes with Google's Gemini API.
//
// The client is created on first use so that a missing key surfaces as a
// GenerationError from Generate, like the OpenAI backend, instead of
// failing process start.
type GeminiGenerator struct {
	apiKey  string
	model   string
	baseURL string

	mu     sync.Mutex
	client *genai.Client
}

var _ Generator = (*GeminiGenerator)(nil)

type GeminiConfig struct {
	APIKey string
	Model  string
	// BaseURL overrides the Gemini API endpoint. Empty means the SDK default.
	BaseURL string
}

func NewGeminiGenerator(cfg GeminiConfig) *GeminiGenerator {
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	return &GeminiGenerator{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
	}
}

func (g *GeminiGenerator) Generate(ctx context.Context) (quiz.Quiz, error) {
	client, err := g.getClient(ctx)
	if err != nil {
		return nil, err
	}

	temperature := float32(0.9)
	result, err := client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(Prompt),
		&genai.GenerateContentConfig{
			Temperature:      &temperature,
			ResponseMIMEType: "application/json",
		},
	)
	if err != nil {
		return nil, &GenerationError{Reason: "Gemini request failed", Wrapped: err}
	}

	text := responseText(result)
	if text == "" {
		return nil, &GenerationError{Reason: "Gemini returned no text"}
	}
	return ParseQuiz(text)
}

func (g *GeminiGenerator) getClient(ctx context.Context) (*genai.Client, error) {
	if g.apiKey == "" {
		return nil, &GenerationError{Reason: "Gemini API key not set"}
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      g.apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: g.baseURL},
	})
	if err != nil {
		return nil, &GenerationError{Reason: "failed to create Gemini client", Wrapped: err}
	}
	g.client = client
	return client, nil
}

// responseText concatenates the text parts of the first candidate.
func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 {
		return ""
	}
	content := resp.Candidates[0].Content
	if content == nil {
		return ""
	}

	var b strings.Builder
	for _, part := range content.Parts {
		if part == nil || part.Thought {
			continue
		}
		b.WriteString(part.Text)
	}
	return b.String()
}

package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/codeswap/backend/internal/domain/quiz"
)

// OpenAIGenerator generates quizzes by calling an OpenAI-compatible
// chat completions endpoint (OpenAI, Ollama, LM Studio, vLLM, etc.).
type OpenAIGenerator struct {
	apiKey    string
	url       string // e.g. "https://api.openai.com"
	model     string // e.g. "gpt-4o"
	maxTokens int
	client    *http.Client // reused across calls
}

// Compile-time check: *OpenAIGenerator satisfies the Generator interface.
var _ Generator = (*OpenAIGenerator)(nil)

type OpenAIConfig struct {
	APIKey    string
	URL       string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewOpenAIGenerator creates a generator for the given endpoint. A nil
// client gets a default one with cfg.Timeout.
func NewOpenAIGenerator(cfg OpenAIConfig, client *http.Client) *OpenAIGenerator {
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = 120 * time.Second
		}
		client = &http.Client{Timeout: timeout}
	}
	return &OpenAIGenerator{
		apiKey:    cfg.APIKey,
		url:       strings.TrimRight(cfg.URL, "/"),
		model:     cfg.Model,
		maxTokens: cfg.MaxTokens,
		client:    client,
	}
}

// Generate asks the model for one quiz and parses the answer.
// A missing API key fails before any network call.
func (g *OpenAIGenerator) Generate(ctx context.Context) (quiz.Quiz, error) {
	if g.apiKey == "" {
		return nil, &GenerationError{Reason: "OpenAI API key not set"}
	}

	content, err := g.callLLM(ctx, Prompt)
	if err != nil {
		return nil, &GenerationError{Reason: "LLM request failed", Wrapped: err}
	}
	return ParseQuiz(content)
}

// ============================================================================
// LLM communication
// ============================================================================

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// callLLM sends a single request to the LLM and returns the raw text response.
func (g *OpenAIGenerator) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: g.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		MaxTokens: g.maxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.url+"/v1/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+g.apiKey)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("LLM returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", fmt.Errorf("failed to decode LLM response: %w", err)
	}

	if len(chatResp.Choices) == 0 {
		return "", fmt.Errorf("LLM returned no choices")
	}

	content := chatResp.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		return "", fmt.Errorf("LLM returned empty content")
	}

	return content, nil
}

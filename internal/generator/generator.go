package generator

import (
	"context"
	"fmt"

	"github.com/codeswap/backend/internal/domain/quiz"
)

// Generator produces one freshly generated quiz per call.
// Implementations may call an LLM or return canned quizzes (for tests).
type Generator interface {
	Generate(ctx context.Context) (quiz.Quiz, error)
}

// GenerationError is returned for every generation failure: missing
// credentials, transport errors, and unusable model output.
type GenerationError struct {
	Reason  string
	Wrapped error
}

func (e *GenerationError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("quiz generation failed: %s: %v", e.Reason, e.Wrapped)
	}
	return fmt.Sprintf("quiz generation failed: %s", e.Reason)
}

func (e *GenerationError) Unwrap() error {
	return e.Wrapped
}

// Prompt is the fixed instruction sent to every backend.
const Prompt = `Generate a fresh coding quiz. Vary the topics/questions each time.
Provide EXACTLY 5 multiple-choice questions in this format:
[
  {
    "question": "string",
    "options": ["string", "string", "string", "string"],
    "correct": 0
  },
  ...
]
"correct" is the zero-based index of the right option.
No explanation. JSON only.`

package generator

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/codeswap/backend/internal/domain/quiz"
)

var (
	leadingFence  = regexp.MustCompile("(?i)^```json\\n?")
	trailingFence = regexp.MustCompile("```$")
)

// stripCodeFence removes an optional ```json ... ``` wrapper that chat
// models like to put around JSON answers.
func stripCodeFence(raw string) string {
	s := strings.TrimSpace(raw)
	s = leadingFence.ReplaceAllString(s, "")
	s = trailingFence.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}

// ParseQuiz turns a model response into a validated quiz.
//
// Two shapes are accepted: a bare array of questions, or an object with a
// "quiz" array. Anything else, and any quiz that fails quiz.Validate, is a
// *GenerationError.
func ParseQuiz(raw string) (quiz.Quiz, error) {
	clean := stripCodeFence(raw)
	if clean == "" {
		return nil, &GenerationError{Reason: "empty model response"}
	}

	var parsed any
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return nil, &GenerationError{Reason: "model response is not valid JSON", Wrapped: err}
	}

	var payload json.RawMessage
	switch v := parsed.(type) {
	case []any:
		payload = json.RawMessage(clean)
	case map[string]any:
		if _, ok := v["quiz"].([]any); !ok {
			return nil, &GenerationError{Reason: "unexpected format: object without a quiz array"}
		}
		var wrapped struct {
			Quiz json.RawMessage `json:"quiz"`
		}
		if err := json.Unmarshal([]byte(clean), &wrapped); err != nil {
			return nil, &GenerationError{Reason: "unexpected format", Wrapped: err}
		}
		payload = wrapped.Quiz
	default:
		return nil, &GenerationError{Reason: "unexpected format: neither an array nor an object"}
	}

	var items []wireQuestion
	if err := json.Unmarshal(payload, &items); err != nil {
		return nil, &GenerationError{Reason: "questions do not match the expected schema", Wrapped: err}
	}
	q := make(quiz.Quiz, 0, len(items))
	for i, item := range items {
		question, err := item.toQuestion()
		if err != nil {
			return nil, &GenerationError{Reason: fmt.Sprintf("question %d", i+1), Wrapped: err}
		}
		q = append(q, question)
	}
	if err := q.Validate(); err != nil {
		return nil, &GenerationError{Reason: "quiz failed validation", Wrapped: err}
	}
	return q, nil
}

// wireQuestion mirrors quiz.Question with pointers so that absent and null
// fields can be told apart from zero values.
type wireQuestion struct {
	Question *string   `json:"question"`
	Options  []*string `json:"options"`
	Correct  *int      `json:"correct"`
}

func (w wireQuestion) toQuestion() (quiz.Question, error) {
	if w.Question == nil {
		return quiz.Question{}, fmt.Errorf("%w: question text is missing", quiz.ErrMalformed)
	}
	if w.Correct == nil {
		return quiz.Question{}, fmt.Errorf("%w: correct answer is missing", quiz.ErrMalformed)
	}
	options := make([]string, 0, len(w.Options))
	for i, opt := range w.Options {
		if opt == nil {
			return quiz.Question{}, fmt.Errorf("%w: option %d is null", quiz.ErrMalformed, i+1)
		}
		options = append(options, *opt)
	}
	return quiz.Question{Text: *w.Question, Options: options, CorrectIndex: *w.Correct}, nil
}

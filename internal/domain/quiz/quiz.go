package quiz

import (
	"errors"
	"fmt"
	"strings"
)

const (
	QuestionsPerQuiz   = 5
	OptionsPerQuestion = 4
)

// Question is one multiple-choice item. The JSON field names are the wire
// format the mobile client and the generation prompt both use.
type Question struct {
	Text         string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correct"`
}

// Quiz is an ordered batch of questions served in one response.
type Quiz []Question

var ErrMalformed = errors.New("malformed quiz")

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return fmt.Errorf("%w: question text is empty", ErrMalformed)
	}
	if len(q.Options) != OptionsPerQuestion {
		return fmt.Errorf("%w: expected %d options, got %d", ErrMalformed, OptionsPerQuestion, len(q.Options))
	}
	for i, opt := range q.Options {
		if strings.TrimSpace(opt) == "" {
			return fmt.Errorf("%w: option %d is empty", ErrMalformed, i+1)
		}
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return fmt.Errorf("%w: correct index %d out of range", ErrMalformed, q.CorrectIndex)
	}
	return nil
}

// Validate checks the quiz shape: exactly QuestionsPerQuiz questions, each
// with OptionsPerQuestion non-blank options and an in-range correct index.
func (q Quiz) Validate() error {
	if len(q) != QuestionsPerQuiz {
		return fmt.Errorf("%w: expected %d questions, got %d", ErrMalformed, QuestionsPerQuiz, len(q))
	}
	for i, question := range q {
		if err := question.Validate(); err != nil {
			return fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return nil
}

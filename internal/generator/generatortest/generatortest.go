// Package generatortest provides canned quiz generators for tests.
package generatortest

import (
	"context"
	"fmt"
	"sync"

	"github.com/codeswap/backend/internal/domain/quiz"
)

// SampleQuiz returns a valid quiz whose question texts carry tag, so tests
// can tell quizzes apart.
func SampleQuiz(tag string) quiz.Quiz {
	q := make(quiz.Quiz, 0, quiz.QuestionsPerQuiz)
	for i := 0; i < quiz.QuestionsPerQuiz; i++ {
		q = append(q, quiz.Question{
			Text:         fmt.Sprintf("%s: question %d", tag, i+1),
			Options:      []string{"a", "b", "c", "d"},
			CorrectIndex: i % quiz.OptionsPerQuestion,
		})
	}
	return q
}

// Func adapts a function to the generator interface and counts calls.
// call is 1 for the first invocation.
type Func struct {
	mu    sync.Mutex
	calls int
	fn    func(ctx context.Context, call int) (quiz.Quiz, error)
}

func NewFunc(fn func(ctx context.Context, call int) (quiz.Quiz, error)) *Func {
	return &Func{fn: fn}
}

func (f *Func) Generate(ctx context.Context) (quiz.Quiz, error) {
	f.mu.Lock()
	f.calls++
	call := f.calls
	f.mu.Unlock()
	return f.fn(ctx, call)
}

func (f *Func) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

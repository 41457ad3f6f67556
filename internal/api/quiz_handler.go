package api

import (
	"net/http"

	"github.com/codeswap/backend/internal/domain/quiz"
	"github.com/codeswap/backend/internal/service"
)

// quiz.Question carries its own JSON tags; these aliases only exist so the
// swagger annotations below can name the types.
type (
	QuizQuestion = quiz.Question
	QuizStatus   = service.QuizCacheStats
)

const quizPendingMessage = "Quiz is being generated. Try again soon."

// generateQuiz serves one pre-generated quiz.
// @Summary      Get a quiz
// @Description  Pops the most recently generated quiz from the buffer and schedules a background refill. Never waits for generation: when the buffer is empty it answers 503 and the client should retry.
// @Tags         Quiz
// @Produce      json
// @Success      200  {array}   QuizQuestion
// @Failure      503  {object}  ErrorResponse  "no quiz buffered yet"
// @Router       /generate [get]
func (h *Handler) generateQuiz(w http.ResponseWriter, r *http.Request) {
	q, ok := h.quizzes.TryTake()
	if !ok {
		respondError(w, http.StatusServiceUnavailable, quizPendingMessage)
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// quizStatus reports how full the quiz buffer is.
// @Summary      Quiz buffer status
// @Tags         Quiz
// @Produce      json
// @Success      200  {object}  QuizStatus
// @Router       /generate/status [get]
func (h *Handler) quizStatus(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.quizzes.Stats())
}

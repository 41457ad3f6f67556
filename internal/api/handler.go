// internal/api/handler.go
package api

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/codeswap/backend/internal/domain/forum"
	"github.com/codeswap/backend/internal/domain/quiz"
	"github.com/codeswap/backend/internal/domain/rating"
	"github.com/codeswap/backend/internal/service"
	"github.com/codeswap/backend/internal/store"
)

// QuizSource hands out pre-generated quizzes without blocking.
type QuizSource interface {
	TryTake() (quiz.Quiz, bool)
	Stats() service.QuizCacheStats
}

// Store is the persistence used directly by the forum and rating handlers.
type Store interface {
	SaveTopic(ctx context.Context, t *forum.Topic) error
	GetTopic(ctx context.Context, id string) (*forum.Topic, error)
	ListTopics(ctx context.Context) ([]*forum.Topic, error)
	SaveComment(ctx context.Context, c *forum.Comment) error
	ListComments(ctx context.Context, topicID string) ([]*forum.Comment, error)

	SaveRating(ctx context.Context, r *rating.Rating) error
	ListRatings(ctx context.Context, userID string) ([]rating.Rating, error)
}

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	store    Store
	quizzes  QuizSource
	accounts *service.AccountService
	profiles *service.ProfileService
	logger   *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(
	s Store,
	quizzes QuizSource,
	accounts *service.AccountService,
	profiles *service.ProfileService,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		store:    s,
		quizzes:  quizzes,
		accounts: accounts,
		profiles: profiles,
		logger:   logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type ErrorResponse struct {
	Error string `json:"error" example:"Invalid email or password"`
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, ErrorResponse{Error: msg})
}

type validator interface {
	Validate() error
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}

// decodeAndValidate decodes the body and runs its Validate method, writing
// a 400 with the validation message on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleStoreError checks for common store errors and writes the appropriate
// HTTP response. Returns true if an error was handled (caller should return).
func (h *Handler) handleStoreError(w http.ResponseWriter, err error, entity string) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, http.StatusNotFound, entity+" not found")
		return true
	}
	h.logger.Error("store error", "error", err, "entity", entity)
	respondError(w, http.StatusInternalServerError, "internal error")
	return true
}

// handleServiceError extends handleStoreError with the account and
// profile service errors.
func (h *Handler) handleServiceError(w http.ResponseWriter, err error, entity string) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, service.ErrInvalidCredentials):
		respondError(w, http.StatusUnauthorized, "Invalid email or password")
		return true
	case errors.Is(err, service.ErrInvalidInput):
		respondError(w, http.StatusBadRequest, inputMessage(err))
		return true
	case errors.Is(err, store.ErrEmailTaken):
		respondError(w, http.StatusConflict, "Email already registered")
		return true
	}
	return h.handleStoreError(w, err, entity)
}

// inputMessage returns the message of the error wrapped together with
// ErrInvalidInput, without the "invalid input" prefix.
func inputMessage(err error) string {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		for _, inner := range multi.Unwrap() {
			if inner != service.ErrInvalidInput {
				return inner.Error()
			}
		}
	}
	return err.Error()
}

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/codeswap/backend/internal/domain/quiz"
	"github.com/codeswap/backend/internal/generator"
	"github.com/codeswap/backend/internal/generator/generatortest"
	"github.com/codeswap/backend/internal/objectstore"
	"github.com/codeswap/backend/internal/service"
	"github.com/codeswap/backend/internal/store"
)

type testEnv struct {
	mux   http.Handler
	cache *service.QuizCache
	db    *store.SQLiteStore
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// idleGenerator never produces a quiz.
func idleGenerator() generator.Generator {
	return generatortest.NewFunc(func(ctx context.Context, call int) (quiz.Quiz, error) {
		return nil, &generator.GenerationError{Reason: "disabled in tests"}
	})
}

func newTestEnv(t *testing.T, gen generator.Generator) *testEnv {
	t.Helper()
	logger := discardLogger()

	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	objects, err := objectstore.NewLocal(t.TempDir(), "http://localhost:3000/avatars")
	require.NoError(t, err)

	cache := service.NewQuizCache(gen, service.QuizCacheConfig{Target: 5, GenerateTimeout: time.Minute}, logger)
	t.Cleanup(cache.Close)

	accounts := service.NewAccountService(db, logger)
	profiles := service.NewProfileService(accounts, db, objects, logger)
	h := NewHandler(db, cache, accounts, profiles, logger)

	mux := http.NewServeMux()
	RegisterRoutes(mux, h)
	mux.Handle("GET /avatars/", http.StripPrefix("/avatars/", objects.Handler()))

	return &testEnv{mux: Logging(logger)(CORS(mux)), cache: cache, db: db}
}

func (e *testEnv) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.mux.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), "body: %s", rec.Body.String())
	return v
}

func (e *testEnv) register(t *testing.T, email, password, fullName string) {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/register", RegisterRequest{Email: email, Password: password, FullName: fullName})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func (e *testEnv) login(t *testing.T, email, password string) LoginResponse {
	t.Helper()
	rec := e.do(t, http.MethodPost, "/login", CredentialsRequest{Email: email, Password: password})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decodeBody[LoginResponse](t, rec)
}

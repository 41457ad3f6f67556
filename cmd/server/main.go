package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/codeswap/backend/internal/api"
	"github.com/codeswap/backend/internal/generator"
	"github.com/codeswap/backend/internal/infrastructure/config"
	"github.com/codeswap/backend/internal/objectstore"
	"github.com/codeswap/backend/internal/service"
	"github.com/codeswap/backend/internal/store"

	_ "github.com/codeswap/backend/docs" // generated swagger docs
)

// @title           CodeSwap API
// @version         1.0
// @description     Study-partner matching backend: accounts, profiles, forum, ratings and AI-generated coding quizzes.

// @host      localhost:3000
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.LogLevel}))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	avatars, err := objectstore.NewLocal(cfg.AvatarDir, cfg.PublicBaseURL+"/avatars")
	if err != nil {
		logger.Error("failed to open avatar store", "error", err)
		os.Exit(1)
	}

	gen, err := generator.FromConfig(cfg)
	if err != nil {
		logger.Error("failed to configure quiz generator", "error", err)
		os.Exit(1)
	}

	quizzes := service.NewQuizCache(gen, service.QuizCacheConfig{
		Target:          cfg.QuizCacheTarget,
		GenerateTimeout: cfg.QuizGenerateTimeout,
	}, logger)
	defer quizzes.Close()

	accounts := service.NewAccountService(db, logger)
	profiles := service.NewProfileService(accounts, db, avatars, logger)
	handler := api.NewHandler(db, quizzes, accounts, profiles, logger)

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Uploaded avatars, addressed by the URLs the object store hands out
	mux.Handle("GET /avatars/", http.StripPrefix("/avatars/", avatars.Handler()))

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       30 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	// Fill the quiz buffer in the background before the first request.
	quizzes.Start()

	logger.Info("starting server", "address", cfg.ServerAddress, "llm_provider", cfg.LLMProvider)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

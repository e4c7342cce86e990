package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"github.com/lockbox/lockbox-go/internal/config"
	"github.com/lockbox/lockbox-go/internal/crypto"
	"github.com/lockbox/lockbox-go/internal/handler"
	"github.com/lockbox/lockbox-go/internal/middleware"
	"github.com/lockbox/lockbox-go/internal/repository"
	"github.com/lockbox/lockbox-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	encryptor, err := crypto.NewEncryptor(cfg.MasterKey, cfg.MasterPassphrase)
	if err != nil {
		slog.Error("encryptor setup failed", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.StoreTimeout)
	authHandler := handler.NewAuthHandler(authService)

	secretRepo := repository.NewSecretRepository(db)
	secretService := service.NewSecretService(secretRepo, encryptor, cfg.StoreTimeout)
	secretHandler := handler.NewSecretHandler(secretService)

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService())
	strengthHandler := handler.NewStrengthHandler()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Post("/api/v1/generate", genHandler.HandleGenerate)
	r.Post("/api/v1/strength", strengthHandler.HandleAnalyze)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Get("/api/v1/auth/me", authHandler.HandleMe)

		r.Get("/api/v1/secrets", secretHandler.HandleList)
		r.Post("/api/v1/secrets", secretHandler.HandleCreate)
		r.Put("/api/v1/secrets/{secret_id}", secretHandler.HandleUpdate)
		r.Delete("/api/v1/secrets/{secret_id}", secretHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

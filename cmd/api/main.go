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

	"github.com/moodlog/moodlog-go/internal/config"
	"github.com/moodlog/moodlog-go/internal/handler"
	"github.com/moodlog/moodlog-go/internal/middleware"
	"github.com/moodlog/moodlog-go/internal/repository"
	"github.com/moodlog/moodlog-go/internal/repository/migrations"
	"github.com/moodlog/moodlog-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database open failed", "error", err)
		os.Exit(1)
	}

	if err := migrations.Apply(context.Background(), db); err != nil {
		slog.Warn("migrations failed, schema may be stale", "error", err)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.SessionTTL)
	authHandler := handler.NewAuthHandler(authService)

	moodRepo := repository.NewMoodRepository(db)
	moodService := service.NewMoodService(moodRepo)
	moodHandler := handler.NewMoodHandler(moodService)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Metrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", middleware.MetricsHandler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(5, 10))
		r.Post("/api/v1/auth/register", authHandler.HandleRegister)
		r.Post("/api/v1/auth/login", authHandler.HandleLogin)
	})

	r.Post("/api/v1/auth/logout", authHandler.HandleLogout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionAuth(cfg.JWTSecret))

		r.Get("/api/v1/profile", authHandler.HandleGetProfile)
		r.Put("/api/v1/profile", authHandler.HandleUpdateProfile)

		r.Get("/api/v1/moods", moodHandler.HandleListEntries)
		r.Post("/api/v1/moods", moodHandler.HandleCreateEntry)
		r.Delete("/api/v1/moods", moodHandler.HandleDeleteEntry)
		r.Get("/api/v1/moods/summary", moodHandler.HandleSummary)
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

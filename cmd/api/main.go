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
	"github.com/randkit/randkit-go/internal/config"
	"github.com/randkit/randkit-go/internal/crypto"
	"github.com/randkit/randkit-go/internal/generator"
	"github.com/randkit/randkit-go/internal/handler"
	"github.com/randkit/randkit-go/internal/logging"
	"github.com/randkit/randkit-go/internal/middleware"
	"github.com/randkit/randkit-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	logger, logCloser := logging.New(logging.Options{
		Level: cfg.LogLevel,
		File:  cfg.LogFile,
		JSON:  cfg.IsProduction(),
	})
	defer logCloser.Close()
	slog.SetDefault(logger)

	var src generator.Source = generator.CryptoSource{}
	if cfg.RandSeed != nil {
		slog.Warn("using seeded random source, output is reproducible", "seed", *cfg.RandSeed)
		src = generator.NewSeededSource(*cfg.RandSeed)
	}

	genService := service.NewGeneratorService(generator.New(src), crypto.NewHasher(crypto.DefaultHashParams()))
	genHandler := handler.NewGeneratorHandler(genService)
	echoHandler := handler.NewEchoHandler()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.NewIPRateLimiter(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst).Handler)
		genHandler.Register(r)
		echoHandler.Register(r)
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

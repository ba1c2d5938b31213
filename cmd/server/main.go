package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/playforge/tictactoe-backend/internal/api/controller"
	"github.com/playforge/tictactoe-backend/internal/api/middleware"
	"github.com/playforge/tictactoe-backend/internal/api/repository"
	"github.com/playforge/tictactoe-backend/internal/api/service"
	"github.com/playforge/tictactoe-backend/internal/auth"
	"github.com/playforge/tictactoe-backend/internal/bot"
	"github.com/playforge/tictactoe-backend/internal/config"
	"github.com/playforge/tictactoe-backend/internal/db"
	"github.com/playforge/tictactoe-backend/internal/logger"
	"github.com/playforge/tictactoe-backend/internal/server"
	"github.com/playforge/tictactoe-backend/internal/telemetry"
)

func main() {
	cfg := config.MustLoad()

	logger.Init(cfg.LogLevel)

	ctx := context.Background()

	// Initialize telemetry
	shutdown, err := telemetry.Init(ctx, cfg.Otel.Endpoint, cfg.Otel.ServiceName, cfg.Otel.ServiceVersion)
	if err != nil {
		slog.Error("failed to initialize telemetry", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	// Initialize Redis
	rdb, err := db.NewRedisClient(ctx, cfg.Redis.Addr)
	if err != nil {
		slog.Error("failed to initialize redis", "error", err)
		os.Exit(1)
	}
	defer rdb.Close()

	// Initialize SQLite
	pool, err := db.Connect(cfg.SQLitePath)
	if err != nil {
		slog.Error("failed to open sqlite database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()
	if err := db.InitSchema(pool); err != nil {
		slog.Error("failed to initialize schema", "error", err)
		os.Exit(1)
	}

	// Create repositories
	playerRepo := repository.NewPlayerRepository(pool)
	gameRepo := repository.NewGameRepository(pool)
	leaderboardCache := repository.NewLeaderboardCache(rdb)

	// Create services
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	playerService := service.NewPlayerService(playerRepo, tokens)
	gameService := service.NewGameService(gameRepo, playerRepo, leaderboardCache, bot.NewRandomPicker())

	// Create controllers
	playerController := controller.NewPlayerController(playerService)
	gameController := controller.NewGameController(gameService)

	srv := server.New(cfg.HTTPPort, playerController, gameController,
		middleware.RequireAuth(tokens, playerRepo))

	// Graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			slog.Error("http server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-stop

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	}

	slog.Info("server exiting")
}

// @title Quiz Board API
// @version 1.0
// @description Two-player trivia board game.
// @host localhost:8090
// @BasePath /api
// @schemes http
package main

import (
	"context"
	"errors"
	"log"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "quiz-board/cmd/api/docs"
	"quiz-board/internal/app"
	"quiz-board/internal/bank"
	"quiz-board/internal/config"
	"quiz-board/internal/handler"
	"quiz-board/internal/logger"
	"quiz-board/internal/middleware"
	"quiz-board/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 10 * time.Second

// requestLogger is a middleware that logs HTTP requests
func requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		logger.Get().Info("HTTP Request",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(start)),
			zap.String("ip", c.IP()),
		)
		return err
	}
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	appLogger := logger.Get()
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	loader, err := bank.LoadFile(cfg.Bank.Path)
	if err != nil {
		appLogger.Fatal("Failed to load question bank", zap.String("path", cfg.Bank.Path), zap.Error(err))
	}

	snapshotCache, closeStore, err := app.OpenSnapshotCache(ctx, cfg)
	if err != nil {
		appLogger.Fatal("Failed to open snapshot store", zap.String("backend", cfg.Store.Backend), zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			appLogger.Warn("Failed to close snapshot store", zap.Error(err))
		}
	}()

	gameService := service.NewGameService(ctx, loader, service.NewSnapshotStore(snapshotCache))
	gameHandler := handler.NewGameHandler(gameService)

	server := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  20 * time.Second,
		ErrorHandler: middleware.ErrorHandler(),
	})
	server.Use(recover.New())
	server.Use(requestLogger())

	server.Get("/health", gameHandler.Health)
	server.Get("/swagger/*", swagger.HandlerDefault)
	gameHandler.RegisterRoutes(server.Group("/api"), middleware.NewValidationMiddleware())

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		appLogger.Info("Starting server", zap.Int("port", cfg.Server.Port), zap.String("env", cfg.Logger.Env))
		return server.Listen(":" + strconv.Itoa(cfg.Server.Port))
	})
	g.Go(func() error {
		<-gctx.Done()
		appLogger.Info("Shutting down server...")
		return server.ShutdownWithTimeout(shutdownTimeout)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		appLogger.Error("Server stopped with error", zap.Error(err))
		return
	}
	appLogger.Info("Server exited gracefully")
}

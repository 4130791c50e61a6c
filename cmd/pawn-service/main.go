package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/LavaJover/shvark-pawn-service/internal/app/background"
	"github.com/LavaJover/shvark-pawn-service/internal/app/setup"
	"github.com/LavaJover/shvark-pawn-service/internal/config"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/logger"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/migrate"
	"github.com/LavaJover/shvark-pawn-service/internal/infrastructure/tracing"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()

	_, logCloser, err := logger.Initialize(cfg.LogLevel, cfg.LogFormat, cfg.LogOutput)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logCloser.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Setup(ctx, tracing.Config{
		Enabled:     cfg.Tracing.Enabled,
		Endpoint:    cfg.Tracing.Endpoint,
		ServiceName: cfg.Tracing.ServiceName,
	})
	if err != nil {
		log.Fatalf("failed to init tracing: %v", err)
	}

	deps, err := setup.InitializeDependencies(cfg)
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}

	if !cfg.PawnDB.AutoMigrate {
		if err := migrate.RunMigrations(deps.DB, cfg.PawnDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	useCases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	tasks := background.NewBackgroundTasks(useCases.ContractUsecase, deps.Clock.Location())
	if err := tasks.StartAll(ctx, cfg.Contracts.SweepSchedule); err != nil {
		log.Fatalf("failed to start background tasks: %v", err)
	}

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.HTTPServer.Host, cfg.HTTPServer.Port),
		Handler:           setup.NewHTTPHandler(deps, useCases),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		slog.Info("http server started", "addr", server.Addr, "timezone", cfg.Clock.Timezone)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server failed", "error", err.Error())
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	timeout, err := time.ParseDuration(cfg.HTTPServer.ShutdownTimeout)
	if err != nil {
		timeout = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("http server shutdown", "error", err.Error())
	}
	select {
	case <-tasks.Stop().Done():
	case <-shutdownCtx.Done():
	}
	if err := deps.Close(); err != nil {
		slog.Error("close dependencies", "error", err.Error())
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		slog.Error("tracing shutdown", "error", err.Error())
	}
}

package cmd

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	httpLayer "mortgage-calc/http"
	"mortgage-calc/logger"
	"mortgage-calc/repository"
	"mortgage-calc/service"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the calculator JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serve(cmd.Context())
		},
	}
}

func serve(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	validate := service.NewValidator()
	renderer := httpLayer.NewRenderer(formatter)

	handlers := httpLayer.Handlers{
		Amortization: httpLayer.NewAmortizationHandler(service.NewAmortizationService(validate), renderer),
		Mortgage:     httpLayer.NewMortgageHandler(service.NewMortgageService(validate), renderer),
		DeedStamps:   httpLayer.NewDeedStampHandler(service.NewDeedStampService(validate), renderer),
		Scenarios: httpLayer.NewScenarioHandler(
			service.NewScenarioService(validate, cfg.Scenarios.Max, cfg.Scenarios.Workers),
			renderer,
		),
	}

	limiter, cleanup := newLimiter(ctx)
	defer cleanup()

	server := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      httpLayer.NewRouter(handlers, limiter),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.CtxInfo(ctx, "calculator API listening", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		logger.CtxError(ctx, "Error starting server", err)
		return err
	case <-ctx.Done():
		logger.CtxInfo(context.Background(), "Shutting down server...")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.CtxError(shutdownCtx, "Error during server shutdown", err)
		return err
	}

	logger.CtxInfo(shutdownCtx, "Server exited")
	return nil
}

// newLimiter prefers a Redis fixed window shared across instances. Without
// Redis, or when it cannot be reached, it falls back to an in-process store.
func newLimiter(ctx context.Context) (httpLayer.Limiter, func()) {
	if cfg.Redis.Addr == "" {
		rl := httpLayer.NewRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst)
		return rl, rl.Stop
	}

	connectCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	client, err := repository.Connect(connectCtx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err == nil {
		logger.CtxInfo(ctx, "rate limiting through redis", slog.String("addr", cfg.Redis.Addr))
		limiter := httpLayer.NewWindowLimiter(repository.NewRedisCounter(client), cfg.RateLimit.PerMinute, time.Minute)
		return limiter, func() { _ = client.Close() }
	}

	logger.CtxWarn(ctx, "redis unavailable, counting requests in memory", slog.String("error", err.Error()))
	counter := repository.NewMemoryCounter()
	sweepCtx, stopSweep := context.WithCancel(ctx)
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				counter.Sweep()
			case <-sweepCtx.Done():
				return
			}
		}
	}()
	return httpLayer.NewWindowLimiter(counter, cfg.RateLimit.PerMinute, time.Minute), stopSweep
}

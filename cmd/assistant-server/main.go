// cmd/assistant-server/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"voice-command-engine/internal/common/config"
	"voice-command-engine/internal/common/database"
	"voice-command-engine/internal/common/logger"
	"voice-command-engine/internal/common/observability"
	"voice-command-engine/internal/engine/capability"
	"voice-command-engine/internal/engine/dispatcher"
	"voice-command-engine/internal/handlers/aiquery"
	"voice-command-engine/internal/handlers/apps"
	"voice-command-engine/internal/handlers/calculator"
	"voice-command-engine/internal/handlers/clock"
	"voice-command-engine/internal/handlers/device"
	"voice-command-engine/internal/handlers/smalltalk"
	"voice-command-engine/internal/handlers/telephony"
	"voice-command-engine/internal/handlers/weatherinfo"
	"voice-command-engine/internal/server"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting assistant server...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	zapLog = logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log = logger.NewZapAdapter(zapLog)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Init Redis (weather cache) with retry ---
	var weatherCache weatherinfo.Cache
	if cfg.Database.Redis.Address != "" {
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")

		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		weatherCache = redis
		zapLog.Info("Redis connected successfully")
	} else {
		zapLog.Info("Redis not configured, weather caching disabled")
	}

	// --- Capability provider ---
	// Standalone deployments run against the loopback provider; embedded
	// hosts supply their own implementation.
	provider := capability.NewLoopback(nil, log)

	// --- Handlers ---
	deviceH := device.NewHandler(&device.Config{VolumeStep: cfg.Engine.VolumeStep}, provider, log)
	telephonyH := telephony.NewHandler(provider, log)
	appsH := apps.NewHandler(provider, log)
	clockH := clock.NewHandler(provider, log)
	calculatorH := calculator.NewHandler(log)
	smalltalkH := smalltalk.NewHandler()

	aiqueryH := aiquery.NewHandler(&aiquery.Config{
		BaseURL:        cfg.APIs.GenAI.BaseURL,
		APIKey:         cfg.APIs.GenAI.APIKey,
		Model:          cfg.APIs.GenAI.Model,
		Timeout:        config.GetDuration(cfg.APIs.GenAI.Timeout),
		MaxAnswerRunes: cfg.Engine.AIAnswerMaxRunes,
	}, log)

	weatherinfoH := weatherinfo.NewHandler(&weatherinfo.Config{
		BaseURL:  cfg.APIs.Weather.BaseURL,
		APIKey:   cfg.APIs.Weather.APIKey,
		Timeout:  config.GetDuration(cfg.APIs.Weather.Timeout),
		CacheTTL: time.Duration(cfg.APIs.Weather.CacheTTL) * time.Second,
	}, weatherCache, log)

	d := dispatcher.New(
		&dispatcher.Config{DefaultCity: cfg.Engine.DefaultCity},
		deviceH, telephonyH, appsH, clockH, calculatorH, smalltalkH, aiqueryH, weatherinfoH,
		obs, log,
	)

	// --- HTTP server ---
	srv := server.New(cfg.Server, d, log)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		zapLog.Info("Shutdown signal received, stopping server...", zap.String("signal", sig.String()))
	case err := <-errCh:
		zapLog.Error("server stopped", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("server shutdown failed", zap.Error(err))
	}
	zapLog.Info("Shutdown complete")
}

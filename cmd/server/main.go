package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/weddingtools/seating-planner/internal/application"
	"github.com/weddingtools/seating-planner/internal/config"
	"github.com/weddingtools/seating-planner/internal/logging"
)

const defaultOutput = "Wedding_seating_plan.xlsx"

var signalNotify = signal.Notify

func main() {
	kingpinApp := kingpin.New("seating-planner", "Wedding Seating Planner - packs RSVP guests onto tables and produces the Excel seating plan")
	configFile := kingpinApp.Flag("config", "Path to YAML configuration file").String()
	port := kingpinApp.Flag("port", "HTTP port exposed by the service").String()
	tableSizeFlag := kingpinApp.Flag("table-size", "Base number of seats per table").Default("-1").Int()
	categoryOrder := kingpinApp.Flag("category-order", "Category packing order: first-seen or largest-first").String()
	inputFile := kingpinApp.Flag("input", "Guest-list CSV; when set, run a one-shot conversion instead of serving").String()
	outputFile := kingpinApp.Flag("output", "Workbook path for one-shot conversions").Default(defaultOutput).String()
	rateLimitRPSFlag := kingpinApp.Flag("rate-limit-rps", "Requests per second allowed (set 0 to disable)").Default("-1").Float64()
	rateLimitBurstFlag := kingpinApp.Flag("rate-limit-burst", "Burst capacity for rate limiter (set 0 to disable)").Default("-1").Int()

	kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *port != "" {
		overrides.Port = port
	}

	if *tableSizeFlag > 0 {
		overrides.TableSize = tableSizeFlag
	}

	if *categoryOrder != "" {
		overrides.CategoryOrder = categoryOrder
	}

	if *rateLimitRPSFlag >= 0 {
		overrides.RateLimitRPS = rateLimitRPSFlag
	}

	if *rateLimitBurstFlag >= 0 {
		overrides.RateLimitBurst = rateLimitBurstFlag
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *inputFile != "" {
		if err := application.RunBatch(cfg, logger, *inputFile, *outputFile); err != nil {
			logger.Fatal("failed to generate seating plan", zap.Error(err))
		}
		return
	}

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	if err := app.Start(); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}

	shutdown(app.Server(), cfg.ShutdownGracePeriod, logger)
}

func shutdown(server *http.Server, timeout time.Duration, logger *zap.Logger) {
	quit := make(chan os.Signal, 1)
	signalNotify(quit, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	<-quit
	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Warn("graceful shutdown failed", zap.Error(err))
		if closeErr := server.Close(); closeErr != nil {
			logger.Error("forced close failed", zap.Error(closeErr))
		}
	}
}

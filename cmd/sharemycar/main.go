package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"sharemycar/internal/cli"
	"sharemycar/internal/config"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository/sqlite"
	"sharemycar/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting ShareMyCar...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Database configuration", "path", cfg.Database.Path)

	// Initialize Database
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to initialize schema", "error", err)
		log.Fatalf("Failed to initialize schema: %v", err)
	}
	logger.Info("Database ready")

	// Initialize Repositories
	store := sqlite.NewStore(db)

	// Initialize Services
	fees := cfg.FeeSchedule()
	vehicleService := service.NewVehicleService(store)
	ledgerService := service.NewLedgerService(store)
	bookingService := service.NewBookingService(store, ledgerService)
	maintenanceService := service.NewMaintenanceService(store, fees)
	returnService := service.NewReturnService(store, maintenanceService, ledgerService, fees)
	metricsService := service.NewMetricsService(store)

	app := cli.New(
		os.Stdin,
		os.Stdout,
		vehicleService,
		bookingService,
		returnService,
		maintenanceService,
		ledgerService,
		metricsService,
	)

	if err := app.Run(ctx); err != nil {
		logger.Error("Session ended with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Session ended")
}

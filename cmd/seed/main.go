// Command seed populates an empty database with a sample fleet. Running it
// against a database that already holds ten or more vehicles is a no-op.
package main

import (
	"context"
	"flag"
	"log"

	"sharemycar/internal/config"
	"sharemycar/internal/domain"
	"sharemycar/internal/logger"
	"sharemycar/internal/repository"
	"sharemycar/internal/repository/sqlite"
)

var fleet = []domain.Vehicle{
	{Brand: "BMW", Model: "320i", Mileage: 45000, DailyRentalPrice: 120, MaintenanceCostPerKm: 0.35, IsAvailable: true},
	{Brand: "BMW", Model: "X5 xDrive40i", Mileage: 35000, DailyRentalPrice: 250, MaintenanceCostPerKm: 0.45, IsAvailable: true},
	{Brand: "BMW", Model: "530e", Mileage: 28000, DailyRentalPrice: 180, MaintenanceCostPerKm: 0.40, IsAvailable: true},
	{Brand: "Audi", Model: "A4 2.0 TFSI", Mileage: 55000, DailyRentalPrice: 110, MaintenanceCostPerKm: 0.30, IsAvailable: true},
	{Brand: "Audi", Model: "Q5 45 TFSI", Mileage: 42000, DailyRentalPrice: 200, MaintenanceCostPerKm: 0.35, IsAvailable: true},
	{Brand: "Audi", Model: "A6 3.0 TDI", Mileage: 38000, DailyRentalPrice: 170, MaintenanceCostPerKm: 0.38, IsAvailable: true},
	{Brand: "Mercedes", Model: "C300", Mileage: 48000, DailyRentalPrice: 130, MaintenanceCostPerKm: 0.42, IsAvailable: true},
	{Brand: "Mercedes", Model: "E350", Mileage: 32000, DailyRentalPrice: 220, MaintenanceCostPerKm: 0.48, IsAvailable: true},
	{Brand: "Toyota", Model: "Camry Hybrid", Mileage: 65000, DailyRentalPrice: 80, MaintenanceCostPerKm: 0.15, IsAvailable: true},
	{Brand: "Toyota", Model: "RAV4", Mileage: 52000, DailyRentalPrice: 90, MaintenanceCostPerKm: 0.18, IsAvailable: true},
	{Brand: "Toyota", Model: "Corolla", Mileage: 50000, DailyRentalPrice: 50, MaintenanceCostPerKm: 0.1, IsAvailable: true},
	{Brand: "Honda", Model: "Civic", Mileage: 30000, DailyRentalPrice: 45, MaintenanceCostPerKm: 0.08, IsAvailable: true},
}

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
	logger.Info("Starting seeder...", "database", cfg.Database.Path)

	// Initialize Database
	db, err := sqlite.Open(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to open database", "error", err)
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := sqlite.EnsureSchema(ctx, db); err != nil {
		logger.Error("Failed to initialize schema", "error", err)
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	store := sqlite.NewStore(db)

	existing, err := store.Vehicles().List(ctx)
	if err != nil {
		logger.Error("Failed to inspect fleet", "error", err)
		log.Fatalf("Failed to inspect fleet: %v", err)
	}
	if len(existing) >= 10 {
		logger.Info("Fleet already seeded", "vehicles", len(existing))
		return
	}

	err = store.ExecTx(ctx, func(tx repository.Store) error {
		for i := range fleet {
			if err := tx.Vehicles().Create(ctx, &fleet[i]); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		logger.Error("Failed to seed fleet", "error", err)
		log.Fatalf("Failed to seed fleet: %v", err)
	}
	logger.Info("Fleet seeded", "vehicles", len(fleet))
}

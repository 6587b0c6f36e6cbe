package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"sharemycar/internal/utils"
)

// Config represents the application configuration
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Log      LogConfig      `yaml:"log"`
	Pricing  PricingConfig  `yaml:"pricing"`
}

// DatabaseConfig contains SQLite settings
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// LogConfig contains logging settings
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format"` // "json" or "text"
}

// PricingConfig contains the fee schedule applied at settlement time
type PricingConfig struct {
	LateFeePerDay         float64 `yaml:"late_fee_per_day"`
	CleaningFee           float64 `yaml:"cleaning_fee"`
	MaintenanceIntervalKm int64   `yaml:"maintenance_interval_km"`
}

// Load reads configuration from a YAML file. A missing file yields the
// defaults so the tool runs without any setup.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
		// Defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	// Override with environment variables if present
	cfg.overrideWithEnv()

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// overrideWithEnv overrides config values with environment variables
func (c *Config) overrideWithEnv() {
	if val := os.Getenv("SHAREMYCAR_DB_PATH"); val != "" {
		c.Database.Path = val
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = val
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = val
	}
	if val := os.Getenv("SHAREMYCAR_LATE_FEE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.Pricing.LateFeePerDay = f
		}
	}
	if val := os.Getenv("SHAREMYCAR_CLEANING_FEE"); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			c.Pricing.CleaningFee = f
		}
	}
}

// Validate checks the configuration and fills defaults.
func (c *Config) Validate() error {
	if c.Database.Path == "" {
		c.Database.Path = "./vehicles.db"
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	defaults := utils.DefaultFeeSchedule()
	if c.Pricing.LateFeePerDay == 0 {
		c.Pricing.LateFeePerDay = defaults.LateFeePerDay
	}
	if c.Pricing.CleaningFee == 0 {
		c.Pricing.CleaningFee = defaults.CleaningFee
	}
	if c.Pricing.MaintenanceIntervalKm == 0 {
		c.Pricing.MaintenanceIntervalKm = defaults.MaintenanceIntervalKm
	}

	if c.Pricing.LateFeePerDay < 0 {
		return fmt.Errorf("late fee per day must not be negative")
	}
	if c.Pricing.CleaningFee < 0 {
		return fmt.Errorf("cleaning fee must not be negative")
	}
	if c.Pricing.MaintenanceIntervalKm < 0 {
		return fmt.Errorf("maintenance interval must not be negative")
	}

	return nil
}

// FeeSchedule converts the pricing section into the settlement fee schedule.
func (c *Config) FeeSchedule() utils.FeeSchedule {
	return utils.FeeSchedule{
		LateFeePerDay:         c.Pricing.LateFeePerDay,
		CleaningFee:           c.Pricing.CleaningFee,
		MaintenanceIntervalKm: c.Pricing.MaintenanceIntervalKm,
	}
}

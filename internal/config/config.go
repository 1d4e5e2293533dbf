// Package config loads the service configuration from a TOML file.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/titikcuci/booking-service/internal/domain"
)

// Config is the full service configuration.
type Config struct {
	Server   Server   `toml:"server"`
	Database Database `toml:"database"`
	Logs     Logs     `toml:"logs"`
	Metrics  Metrics  `toml:"metrics"`
	Booking  Booking  `toml:"booking"`
}

// Server holds the HTTP server settings. Timeouts are in seconds.
type Server struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
	RateLimitRPS    int `toml:"rate_limit_rps"`
	RateLimitBurst  int `toml:"rate_limit_burst"`
}

// Database holds the PostgreSQL connection settings.
type Database struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

// DSN returns the lib/pq connection string.
func (d Database) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.DBName, d.SSLMode)
}

// Logs holds the logger settings.
type Logs struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Metrics holds the Prometheus settings.
type Metrics struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// Booking holds the slot policy shared by the capacity ledger and the
// availability projector. OpenHour/CloseHour are civil hours in Timezone.
type Booking struct {
	OpenHour          int    `toml:"open_hour"`
	CloseHour         int    `toml:"close_hour"`
	SlotMinutes       int    `toml:"slot_minutes"`
	SlotCapacity      int    `toml:"slot_capacity"`
	NumberPrefix      string `toml:"number_prefix"`
	Timezone          string `toml:"timezone"`
	StrictTransitions bool   `toml:"strict_transitions"`
}

// Schedule builds the domain schedule from the booking section.
func (b Booking) Schedule() (domain.Schedule, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return domain.Schedule{}, fmt.Errorf("config: load timezone %q: %w", b.Timezone, err)
	}
	return domain.NewSchedule(loc, b.OpenHour, b.CloseHour, b.SlotMinutes), nil
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		Server: Server{
			HTTPPort:        8080,
			ReadTimeout:     10,
			WriteTimeout:    10,
			IdleTimeout:     60,
			ShutdownTimeout: 15,
			RateLimitRPS:    10,
			RateLimitBurst:  20,
		},
		Database: Database{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    25,
			MaxIdleConns:    5,
			ConnMaxLifetime: 300,
		},
		Logs: Logs{
			File:  "stderr",
			Level: "info",
		},
		Metrics: Metrics{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "booking-service",
		},
		Booking: Booking{
			OpenHour:     domain.DefaultOpenHour,
			CloseHour:    domain.DefaultCloseHour,
			SlotMinutes:  domain.DefaultSlotMinutes,
			SlotCapacity: domain.DefaultSlotCapacity,
			NumberPrefix: domain.DefaultNumberPrefix,
			Timezone:     "UTC",
		},
	}
}

func (c *Config) validate() error {
	if c.Booking.OpenHour < 0 || c.Booking.CloseHour > 24 || c.Booking.OpenHour >= c.Booking.CloseHour {
		return fmt.Errorf("config: invalid operating window %d-%d", c.Booking.OpenHour, c.Booking.CloseHour)
	}
	if c.Booking.SlotMinutes <= 0 || 60%c.Booking.SlotMinutes != 0 {
		return fmt.Errorf("config: slot_minutes must divide an hour, got %d", c.Booking.SlotMinutes)
	}
	if c.Booking.SlotCapacity <= 0 {
		return fmt.Errorf("config: slot_capacity must be positive, got %d", c.Booking.SlotCapacity)
	}
	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("config: invalid timezone %q: %w", c.Booking.Timezone, err)
	}
	if c.Database.DBName == "" || c.Database.User == "" {
		return fmt.Errorf("config: database user and dbname are required")
	}
	return nil
}

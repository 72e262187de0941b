package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database DatabaseConfig
	JWT      JWTConfig
	App      AppConfig
	Timeline TimelineConfig
	Cron     CronConfig
}

type DatabaseConfig struct {
	// Driver is "postgres" or "sqlite".
	Driver     string
	Host       string
	Port       int
	User       string
	Password   string
	Name       string
	SSLMode    string
	SQLitePath string
	MaxConns   int32
	MinConns   int32
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string
	AccessExpiration string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port           int
	Env            string
	LogLevel       string
	FrontendOrigin string
	// DefaultTimeZone is used when a request carries no tz parameter.
	DefaultTimeZone string
}

// TimelineConfig is the visible working window of the weekly timeline.
type TimelineConfig struct {
	StartHour      int
	EndHour        int
	MinimumMinutes int
}

type CronConfig struct {
	HolidayRefreshInterval time.Duration
}

// Load reads .env when present and builds the server configuration from
// the environment.
func Load() (*Config, error) {
	return load(true)
}

// LoadCLI is Load without the JWT secret requirement. Operator commands
// read the database directly.
func LoadCLI() (*Config, error) {
	return load(false)
}

func load(requireSecret bool) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}
	maxConns, err := getEnvInt("DB_MAX_CONNS", 10)
	if err != nil {
		return nil, err
	}
	minConns, err := getEnvInt("DB_MIN_CONNS", 0)
	if err != nil {
		return nil, err
	}

	config.Database = DatabaseConfig{
		Driver:     strings.ToLower(getEnv("DB_DRIVER", "postgres")),
		Host:       getEnv("DB_HOST", "localhost"),
		Port:       dbPort,
		User:       getEnv("DB_USER", "postgres"),
		Password:   getEnv("DB_PASSWORD", ""),
		Name:       getEnv("DB_NAME", "hris_portal"),
		SSLMode:    getEnv("DB_SSL_MODE", "disable"),
		SQLitePath: getEnv("SQLITE_PATH", "portal.db"),
		MaxConns:   int32(maxConns),
		MinConns:   int32(minConns),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:            appPort,
		Env:             getEnv("APP_ENV", "development"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		FrontendOrigin:  getEnv("FRONTEND_ORIGIN", "http://localhost:3000"),
		DefaultTimeZone: getEnv("APP_TIME_ZONE", "Local"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Timeline configuration
	startHour, err := getEnvInt("TIMELINE_START_HOUR", 9)
	if err != nil {
		return nil, err
	}
	endHour, err := getEnvInt("TIMELINE_END_HOUR", 24)
	if err != nil {
		return nil, err
	}
	minHours, err := getEnvInt("TIMELINE_MINIMUM_HOURS", 8)
	if err != nil {
		return nil, err
	}

	config.Timeline = TimelineConfig{
		StartHour:      startHour,
		EndHour:        endHour,
		MinimumMinutes: minHours * 60,
	}

	// Cron configuration
	refresh, err := time.ParseDuration(getEnv("HOLIDAY_REFRESH_INTERVAL", "6h"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_REFRESH_INTERVAL: %w", err)
	}
	config.Cron = CronConfig{HolidayRefreshInterval: refresh}

	// Validate required fields
	if err := config.validate(requireSecret); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	return c.validate(true)
}

func (c *Config) validate(requireSecret bool) error {
	switch c.Database.Driver {
	case "postgres":
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case "sqlite":
		if c.Database.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required")
		}
	default:
		return fmt.Errorf("DB_DRIVER must be postgres or sqlite, got %q", c.Database.Driver)
	}
	if requireSecret && c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Timeline.StartHour < 0 || c.Timeline.EndHour > 24 || c.Timeline.StartHour >= c.Timeline.EndHour {
		return fmt.Errorf("timeline window %d..%d is invalid", c.Timeline.StartHour, c.Timeline.EndHour)
	}
	if c.Timeline.MinimumMinutes < 0 {
		return fmt.Errorf("TIMELINE_MINIMUM_HOURS must not be negative")
	}
	if _, err := c.App.Location(); err != nil {
		return err
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// Location resolves DefaultTimeZone. "Local" and "" mean the host zone.
func (a AppConfig) Location() (*time.Location, error) {
	if a.DefaultTimeZone == "" || a.DefaultTimeZone == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(a.DefaultTimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIME_ZONE: %w", err)
	}
	return loc, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

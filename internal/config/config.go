// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Database drivers supported by repository.NewDB.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Site     SiteConfig
	Proxy    ProxyConfig
	Log      LogConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host         string
	Port         string
	GinMode      string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// DatabaseConfig contains database connection settings.
// Host, port, user, password, name and sslmode apply to PostgreSQL,
// SQLitePath applies to SQLite.
type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         string
	User         string
	Password     string
	DBName       string
	SSLMode      string
	SQLitePath   string
	MaxOpenConns int
	MaxIdleConns int
}

// SiteConfig contains settings used when building pages and meta tags.
type SiteConfig struct {
	BaseURL         string
	Name            string
	AdminDiscordID  string
	DefaultLanguage string
}

// ProxyConfig contains settings for the Discord avatar proxy.
type ProxyConfig struct {
	DiscordCDNBase string
	Timeout        time.Duration
	RatePerSecond  float64
	Burst          int
}

// LogConfig contains logger settings.
type LogConfig struct {
	Level string
	Dev   bool
}

// Load reads configuration from environment variables.
// Returns error if required variables are not set or values cannot be parsed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	serverPort, err := getRequiredEnv("SERVER_PORT")
	if err != nil {
		return nil, err
	}

	driver := getEnv("DB_DRIVER", DriverPostgres)

	db := DatabaseConfig{
		Driver:     driver,
		SQLitePath: getEnv("DB_SQLITE_PATH", "db.sqlite3"),
	}

	switch driver {
	case DriverPostgres:
		required := map[string]*string{
			"DB_HOST":     &db.Host,
			"DB_PORT":     &db.Port,
			"DB_USER":     &db.User,
			"DB_PASSWORD": &db.Password,
			"DB_NAME":     &db.DBName,
		}
		for key, dst := range required {
			value, err := getRequiredEnv(key)
			if err != nil {
				return nil, err
			}
			*dst = value
		}
		db.SSLMode = getEnv("DB_SSLMODE", "disable")
	case DriverSQLite:
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q (must be one of: %s, %s)", driver, DriverPostgres, DriverSQLite)
	}

	if db.MaxOpenConns, err = getIntEnv("DB_MAX_OPEN_CONNS", 25); err != nil {
		return nil, err
	}
	if db.MaxIdleConns, err = getIntEnv("DB_MAX_IDLE_CONNS", 25); err != nil {
		return nil, err
	}

	readTimeout, err := getDurationEnv("SERVER_READ_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	writeTimeout, err := getDurationEnv("SERVER_WRITE_TIMEOUT", 30*time.Second)
	if err != nil {
		return nil, err
	}

	proxyTimeout, err := getDurationEnv("PROXY_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	proxyRate, err := getFloatEnv("PROXY_RATE_PER_SECOND", 20)
	if err != nil {
		return nil, err
	}
	proxyBurst, err := getIntEnv("PROXY_BURST", 40)
	if err != nil {
		return nil, err
	}

	logDev, err := getBoolEnv("LOG_DEV", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:         getEnv("SERVER_HOST", "0.0.0.0"),
			Port:         serverPort,
			GinMode:      getEnv("GIN_MODE", "release"),
			ReadTimeout:  readTimeout,
			WriteTimeout: writeTimeout,
		},
		Database: db,
		Site: SiteConfig{
			BaseURL:         getEnv("SITE_BASE_URL", "https://sendou.ink"),
			Name:            getEnv("SITE_NAME", "sendou.ink"),
			AdminDiscordID:  getEnv("ADMIN_DISCORD_ID", ""),
			DefaultLanguage: getEnv("DEFAULT_LANGUAGE", "en"),
		},
		Proxy: ProxyConfig{
			DiscordCDNBase: getEnv("DISCORD_CDN_BASE", ""),
			Timeout:        proxyTimeout,
			RatePerSecond:  proxyRate,
			Burst:          proxyBurst,
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			Dev:   logDev,
		},
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

// getRequiredEnv reads required environment variable or returns error.
func getRequiredEnv(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("required environment variable %s is not set", key)
	}
	return value, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getIntEnv(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be an integer: %w", key, err)
	}
	return n, nil
}

func getFloatEnv(key string, fallback float64) (float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a number: %w", key, err)
	}
	return f, nil
}

func getBoolEnv(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return b, nil
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return d, nil
}

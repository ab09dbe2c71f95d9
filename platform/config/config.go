// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetRateLimitRPS() float64
	GetRateLimitBurst() int
}

// DataWarehouseConfig provides settings for the data warehouse reader client.
type DataWarehouseConfig interface {
	GetDataWarehouseURL() string
	GetDataWarehouseToken() string
	GetDataWarehouseTimeout() time.Duration
	GetMunicipalityID() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	CORSAllowAll         bool
	CORSOrigins          []string
	RateLimitRPS         float64
	RateLimitBurst       int
	DataWarehouseURL     string
	DataWarehouseToken   string
	DataWarehouseTimeout time.Duration
	MunicipalityID       string
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetRateLimitRPS() float64 { return c.RateLimitRPS }
func (c *Config) GetRateLimitBurst() int { return c.RateLimitBurst }

// DataWarehouseConfig implementation
func (c *Config) GetDataWarehouseURL() string   { return c.DataWarehouseURL }
func (c *Config) GetDataWarehouseToken() string { return c.DataWarehouseToken }
func (c *Config) GetDataWarehouseTimeout() time.Duration {
	return c.DataWarehouseTimeout
}
func (c *Config) GetMunicipalityID() string { return c.MunicipalityID }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", ""))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		RateLimitRPS:         mustFloat(getEnv("RATE_LIMIT_RPS", "50")),
		RateLimitBurst:       mustInt(getEnv("RATE_LIMIT_BURST", "100")),
		DataWarehouseURL:     strings.TrimRight(getEnv("DATAWAREHOUSE_URL", ""), "/"),
		DataWarehouseToken:   getEnv("DATAWAREHOUSE_TOKEN", ""),
		DataWarehouseTimeout: mustDuration(getEnv("DATAWAREHOUSE_TIMEOUT", "30s")),
		MunicipalityID:       getEnv("MUNICIPALITY_ID", "2281"),
	}

	if cfg.DataWarehouseURL == "" {
		return nil, fmt.Errorf("DATAWAREHOUSE_URL is required")
	}
	if cfg.MunicipalityID == "" {
		return nil, fmt.Errorf("MUNICIPALITY_ID is required")
	}
	if cfg.RateLimitRPS <= 0 || cfg.RateLimitBurst < 1 {
		return nil, fmt.Errorf("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be positive")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	result, err := strconv.Atoi(value)
	if err != nil {
		return 0
	}
	return result
}

func mustFloat(value string) float64 {
	result, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}

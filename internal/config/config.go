package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Production  Environment = "production"
)

// DefaultRosetteURL is the public Rosette API endpoint.
const DefaultRosetteURL = "https://api.rosette.com/rest/v1"

type AppConfig struct {
	Env                Environment
	LogLevel           string
	ServerPort         string
	RawBodyLog         bool
	HttpTimeoutSeconds int
}

type RosetteConfig struct {
	URL string
	Key string
}

type SummaryConfig struct {
	Percent float64
	TopN    int
}

type Config struct {
	App     AppConfig
	Rosette RosetteConfig
	Summary SummaryConfig
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	appEnv := getEnv("APP_ENV", "development")
	env := parseEnvironment(appEnv)

	logLevel := getLogLevel(env)

	return &Config{
		App: AppConfig{
			Env:                env,
			LogLevel:           logLevel,
			ServerPort:         getEnv("APP_SERVER_PORT", "8080"),
			RawBodyLog:         getEnvBool("APP_RAW_BODY_LOG", false),
			HttpTimeoutSeconds: getEnvInt("APP_HTTP_TIMEOUT_SECONDS", 30),
		},
		Rosette: RosetteConfig{
			URL: getEnv("ROSETTE_API_URL", DefaultRosetteURL),
			Key: getEnv("ROSETTE_API_KEY", ""),
		},
		Summary: SummaryConfig{
			Percent: getEnvFloat("SUMMARY_PERCENT", 0.15),
			TopN:    getEnvInt("SUMMARY_TOP_N", 0),
		},
	}, nil
}

func (c *Config) Validate() error {
	if c.Rosette.URL == "" || c.Rosette.Key == "" {
		return fmt.Errorf("ROSETTE_API_URL and ROSETTE_API_KEY are required")
	}
	if c.Summary.Percent <= 0 || c.Summary.Percent > 1 {
		return fmt.Errorf("SUMMARY_PERCENT must be in (0, 1], got %v", c.Summary.Percent)
	}
	if c.Summary.TopN < 0 {
		return fmt.Errorf("SUMMARY_TOP_N must be positive, got %d", c.Summary.TopN)
	}
	return nil
}

func parseEnvironment(envStr string) Environment {
	env := Environment(strings.ToLower(envStr))

	switch env {
	case Development, Production:
		return env
	default:
		return Development
	}
}

func getLogLevel(env Environment) string {
	if env == Production {
		return getEnv("APP_LOG_LEVEL", "info")
	}

	return getEnv("APP_LOG_LEVEL", "debug")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value == "true" {
		return true
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// VersionVar is the variable served by /worker-version.
const VersionVar = "WORKERS_RS_VERSION"

// Config holds all configuration for the service
type Config struct {
	Environment    string
	Port           string
	RedirectHost   string
	RequestTimeout time.Duration
	RateLimit      RateLimitConfig
	Log            LogConfig
}

// RateLimitConfig holds request rate limiting settings
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Enabled reports whether rate limiting is switched on.
func (c RateLimitConfig) Enabled() bool {
	return c.RequestsPerSecond > 0
}

// LogConfig holds logger settings
type LogConfig struct {
	Level  string
	Format string
}

// Load reads an optional .env file and the process environment.
func Load() (*Config, *Env, error) {
	_ = godotenv.Load()
	return FromViper(viper.New())
}

// FromViper builds the configuration from v, applying defaults.
func FromViper(v *viper.Viper) (*Config, *Env, error) {
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("REDIRECT_HOST", "https://amazon.co.jp/")
	v.SetDefault("REQUEST_TIMEOUT", "5s")
	v.SetDefault("RATE_LIMIT_RPS", 0)
	v.SetDefault("RATE_LIMIT_BURST", 10)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	cfg := &Config{
		Environment:    v.GetString("ENVIRONMENT"),
		Port:           v.GetString("PORT"),
		RedirectHost:   v.GetString("REDIRECT_HOST"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
		Log: LogConfig{
			Level:  strings.ToLower(v.GetString("LOG_LEVEL")),
			Format: strings.ToLower(v.GetString("LOG_FORMAT")),
		},
	}

	if cfg.RequestTimeout <= 0 {
		return nil, nil, fmt.Errorf("invalid REQUEST_TIMEOUT %q", v.GetString("REQUEST_TIMEOUT"))
	}
	if cfg.RateLimit.Enabled() && cfg.RateLimit.Burst < 1 {
		return nil, nil, fmt.Errorf("invalid RATE_LIMIT_BURST %d", cfg.RateLimit.Burst)
	}

	return cfg, &Env{v: v}, nil
}

// IsServerless reports whether the process runs inside AWS Lambda.
func IsServerless() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

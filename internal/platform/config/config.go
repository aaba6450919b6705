// Package config loads pbi settings with koanf from built-in defaults,
// configs/base.yaml, a profile file such as configs/prod.yaml, and PBI_
// environment variables, in that order of precedence.
package config

import (
	"strings"
	"time"
)

// Config is the full pbi configuration.
type Config struct {
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Auth      AuthConfig      `koanf:"auth"`
	Fanout    FanoutConfig    `koanf:"fanout"`
	Export    ExportConfig    `koanf:"export"`
	Doctor    DoctorConfig    `koanf:"doctor"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// LogConfig selects the slog level and handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds Power BI REST client settings.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	APIVersion     string               `koanf:"api_version"`
	Org            string               `koanf:"org"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// APIRoot returns the URL every endpoint path is appended to, e.g.
// https://api.powerbi.com/v1.0/myorg.
func (c *ClientConfig) APIRoot() string {
	return strings.TrimRight(c.BaseURL, "/") + "/" + c.APIVersion + "/" + c.Org
}

// RetryConfig is the backoff policy for throttled and failed calls.
// MaxAttempts of 1 disables retries.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig opens the breaker after MaxFailures consecutive
// failures and lets a trial call through after Timeout. MaxFailures of 0 disables it.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// RateLimitConfig holds client-side rate limiting. A RequestsPerSecond of 0
// disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// AuthConfig holds bearer token settings. Token, when set, takes precedence
// over the keyring.
type AuthConfig struct {
	Token          string `koanf:"token"`
	KeyringService string `koanf:"keyring_service"`
	KeyringUser    string `koanf:"keyring_user"`
}

// FanoutConfig bounds concurrent lookups in access audits.
type FanoutConfig struct {
	MaxWorkers int `koanf:"max_workers"`
}

// ExportConfig holds defaults for report export.
type ExportConfig struct {
	Dir string `koanf:"dir"`

	// S3Region overrides the AWS SDK region for s3:// destinations.
	S3Region string `koanf:"s3_region"`
}

// DoctorConfig bounds each pbi doctor check. Zero means no per-check limit.
type DoctorConfig struct {
	Timeout time.Duration `koanf:"timeout"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

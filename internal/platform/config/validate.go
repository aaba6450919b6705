package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
	exporters  = []string{"stdout", "otlp"}
)

// problems collects every invalid setting so one run reports them all.
type problems []error

func (p *problems) add(key, format string, args ...any) {
	*p = append(*p, fmt.Errorf("%s %s", key, fmt.Sprintf(format, args...)))
}

func (p *problems) oneOf(key, got string, allowed []string) {
	if !slices.Contains(allowed, got) {
		p.add(key, "must be one of %v, got %q", allowed, got)
	}
}

// Validate reports every invalid setting, each prefixed with its key.
func (c *Config) Validate() error {
	var p problems

	p.oneOf("log.level", c.Log.Level, logLevels)
	p.oneOf("log.format", c.Log.Format, logFormats)

	cl := c.Client
	if u, err := url.Parse(cl.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		p.add("client.base_url", "must be an absolute URL, got %q", cl.BaseURL)
	}
	if cl.APIVersion == "" {
		p.add("client.api_version", "must not be empty")
	}
	if cl.Org == "" {
		p.add("client.org", "must not be empty")
	}
	if cl.Timeout <= 0 {
		p.add("client.timeout", "must be positive")
	}
	if cl.Retry.MaxAttempts < 1 {
		p.add("client.retry.max_attempts", "must be at least 1, got %d", cl.Retry.MaxAttempts)
	}
	if cl.Retry.Multiplier <= 0 {
		p.add("client.retry.multiplier", "must be positive, got %g", cl.Retry.Multiplier)
	}
	if cl.Retry.MaxInterval < cl.Retry.InitialInterval {
		p.add("client.retry.max_interval", "must not be below initial_interval")
	}
	if cl.CircuitBreaker.MaxFailures < 0 {
		p.add("client.circuit_breaker.max_failures", "must not be negative, got %d", cl.CircuitBreaker.MaxFailures)
	}
	if cl.RateLimit.RequestsPerSecond < 0 {
		p.add("client.rate_limit.requests_per_second", "must not be negative, got %g", cl.RateLimit.RequestsPerSecond)
	}
	if cl.RateLimit.RequestsPerSecond > 0 && cl.RateLimit.BurstSize < 1 {
		p.add("client.rate_limit.burst_size", "must be at least 1 when rate limiting, got %d", cl.RateLimit.BurstSize)
	}

	if c.Auth.Token == "" && c.Auth.KeyringService == "" {
		p.add("auth.keyring_service", "must not be empty when auth.token is unset")
	}
	if c.Fanout.MaxWorkers < 1 {
		p.add("fanout.max_workers", "must be at least 1, got %d", c.Fanout.MaxWorkers)
	}
	if c.Doctor.Timeout < 0 {
		p.add("doctor.timeout", "must not be negative, got %v", c.Doctor.Timeout)
	}

	if t := c.Telemetry; t.Enabled {
		p.oneOf("telemetry.exporter", t.Exporter, exporters)
		if t.Exporter == "otlp" && t.Endpoint == "" {
			p.add("telemetry.endpoint", "must not be empty when exporter is otlp")
		}
	}

	return errors.Join(p...)
}

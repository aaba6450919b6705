package config

const (
	defaultRetryMultiplier = 2.0

	defaultCircuitBreakerHalfOpen = 1

	defaultFanoutMaxWorkers = 4
)

// defaults is the bottom layer of Load. Every key listed here can be
// overridden by a PBI_ variable even when no file mentions it.
func defaults() map[string]any {
	return map[string]any{
		"log.level":  "info",
		"log.format": "text",

		"client.base_url":                        "https://api.powerbi.com",
		"client.api_version":                     "v1.0",
		"client.org":                             "myorg",
		"client.timeout":                         "60s",
		"client.retry.max_attempts":              1,
		"client.retry.initial_interval":          "500ms",
		"client.retry.max_interval":              "30s",
		"client.retry.multiplier":                defaultRetryMultiplier,
		"client.circuit_breaker.max_failures":    0,
		"client.circuit_breaker.timeout":         "30s",
		"client.circuit_breaker.half_open_limit": defaultCircuitBreakerHalfOpen,
		"client.rate_limit.requests_per_second":  0,
		"client.rate_limit.burst_size":           1,

		"auth.token":           "",
		"auth.keyring_service": "go-powerbi",
		"auth.keyring_user":    "default",

		"fanout.max_workers": defaultFanoutMaxWorkers,

		"export.dir":       ".",
		"export.s3_region": "",

		"doctor.timeout": "10s",

		"telemetry.enabled":      false,
		"telemetry.exporter":     "stdout",
		"telemetry.endpoint":     "",
		"telemetry.service_name": "pbi",
	}
}

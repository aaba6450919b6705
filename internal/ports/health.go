package ports

import "context"

// HealthChecker is one line of pbi doctor output, such as the API circuit
// breaker ("powerbi-api") or the stored credentials ("token").
type HealthChecker interface {
	// Name identifies the check in doctor output.
	Name() string

	// HealthCheck returns nil when healthy. It must return once ctx is done.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry collects the checks doctor runs.
type HealthRegistry interface {
	// Register adds a check. A later check with the same name replaces it.
	Register(checker HealthChecker)

	// CheckAll runs every check and returns its error by name; nil means
	// healthy.
	CheckAll(ctx context.Context) map[string]error
}

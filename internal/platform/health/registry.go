// Package health holds the checks behind pbi doctor: the API circuit
// breaker and the stored credentials. Checks run concurrently, each with its
// own deadline, so one hung check cannot stall the report.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/go-powerbi/internal/ports"
)

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry implements [ports.HealthRegistry]. It is safe for concurrent use.
type Registry struct {
	timeout time.Duration

	mu     sync.RWMutex
	checks map[string]ports.HealthChecker
}

// New returns an empty registry. Each check gets at most timeout; zero
// leaves checks bounded only by the caller's context.
func New(timeout time.Duration) *Registry {
	return &Registry{
		timeout: timeout,
		checks:  make(map[string]ports.HealthChecker),
	}
}

// Register adds checker under its Name, replacing an earlier checker with
// the same name.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks[checker.Name()] = checker
}

// CheckAll runs every check and returns its error by name. Nil means
// healthy. A check that panics is reported as failed.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	names := make([]string, 0, len(r.checks))
	checks := make([]ports.HealthChecker, 0, len(r.checks))
	for name, c := range r.checks {
		names = append(names, name)
		checks = append(checks, c)
	}
	r.mu.RUnlock()

	errs := make([]error, len(checks))
	var g errgroup.Group
	for i, c := range checks {
		g.Go(func() error {
			errs[i] = r.run(ctx, names[i], c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(names))
	for i, name := range names {
		results[name] = errs[i]
	}
	return results
}

func (r *Registry) run(ctx context.Context, name string, c ports.HealthChecker) (err error) {
	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: check panicked: %v", name, p)
		}
	}()
	return c.HealthCheck(ctx)
}

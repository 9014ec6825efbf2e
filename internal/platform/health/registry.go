// Package health tracks the health of the front-end's downstream
// dependencies for the readiness probe.
package health

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// DefaultCheckTimeout bounds a single check when no other timeout is set.
const DefaultCheckTimeout = 2 * time.Second

var _ ports.HealthRegistry = (*Registry)(nil)

// Registry is a thread-safe [ports.HealthRegistry]. Checks run concurrently,
// each under its own timeout.
type Registry struct {
	mu       sync.RWMutex
	checkers []ports.HealthChecker
	timeout  time.Duration
}

// Option configures a Registry.
type Option func(*Registry)

// WithCheckTimeout sets the per-check timeout. Non-positive values keep the
// default.
func WithCheckTimeout(d time.Duration) Option {
	return func(r *Registry) {
		if d > 0 {
			r.timeout = d
		}
	}
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	r := &Registry{timeout: DefaultCheckTimeout}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the results keyed by
// checker name; nil means healthy. When two checkers share a name the one
// registered last wins. A check that panics is reported as unhealthy.
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	errs := make([]error, len(checkers))
	var g errgroup.Group
	for i, c := range checkers {
		g.Go(func() error {
			errs[i] = r.check(ctx, c)
			return nil
		})
	}
	_ = g.Wait()

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = errs[i]
	}
	return results
}

func (r *Registry) check(ctx context.Context, c ports.HealthChecker) (err error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	defer func() {
		if v := recover(); v != nil {
			err = fmt.Errorf("health check %s panicked: %v", c.Name(), v)
		}
	}()
	return c.HealthCheck(ctx)
}

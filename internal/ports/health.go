package ports

import "context"

// HealthChecker reports whether a dependency of the front-end, in practice
// the resource API client, can currently serve requests.
type HealthChecker interface {
	// Name keys the result in the readiness report, e.g. "resource-api".
	Name() string

	// HealthCheck returns nil when healthy. It must return promptly once ctx
	// is done; the registry applies a per-check deadline.
	HealthCheck(ctx context.Context) error
}

// HealthRegistry runs the registered checkers for the readiness probe.
type HealthRegistry interface {
	Register(checker HealthChecker)

	// CheckAll runs every checker and maps its name to the result. A nil
	// value means healthy.
	CheckAll(ctx context.Context) map[string]error
}

// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Client    ClientConfig    `koanf:"client"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
	UI        UIConfig        `koanf:"ui"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
	// RequestTimeout bounds page handling. It stays below WriteTimeout so the
	// timeout page can still be written.
	RequestTimeout time.Duration `koanf:"request_timeout"`
	// HealthCheckTimeout bounds each readiness check.
	HealthCheckTimeout time.Duration `koanf:"health_check_timeout"`
	// StrictReadiness answers 503 on the readiness probe when the resource
	// API is unhealthy instead of reporting "degraded".
	StrictReadiness bool `koanf:"strict_readiness"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ClientConfig holds settings for the downstream REST API client.
// BaseURL may be empty: pages then report a configuration error instead of
// the process refusing to start.
type ClientConfig struct {
	BaseURL        string               `koanf:"base_url"`
	Timeout        time.Duration        `koanf:"timeout"`
	Retry          RetryConfig          `koanf:"retry"`
	CircuitBreaker CircuitBreakerConfig `koanf:"circuit_breaker"`
	RateLimit      RateLimitConfig      `koanf:"rate_limit"`
}

// RateLimitConfig holds outbound rate limiter settings.
// A zero RequestsPerSecond disables the limiter.
type RateLimitConfig struct {
	RequestsPerSecond float64 `koanf:"requests_per_second"`
	BurstSize         int     `koanf:"burst_size"`
}

// RetryConfig holds retry policy settings with exponential backoff.
type RetryConfig struct {
	MaxAttempts     int           `koanf:"max_attempts"`
	InitialInterval time.Duration `koanf:"initial_interval"`
	MaxInterval     time.Duration `koanf:"max_interval"`
	Multiplier      float64       `koanf:"multiplier"`
}

// CircuitBreakerConfig holds circuit breaker settings.
type CircuitBreakerConfig struct {
	MaxFailures   int           `koanf:"max_failures"`
	Timeout       time.Duration `koanf:"timeout"`
	HalfOpenLimit int           `koanf:"half_open_limit"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}

// UIConfig holds page rendering settings.
type UIConfig struct {
	// RedirectDelay is how long a success message stays on screen before the
	// browser navigates back to the list view.
	RedirectDelay time.Duration `koanf:"redirect_delay"`
	// PageSize is the number of records requested for list views.
	PageSize int `koanf:"page_size"`
	// DashboardWorkers bounds the concurrent fetches of the home page.
	DashboardWorkers int `koanf:"dashboard_workers"`
}

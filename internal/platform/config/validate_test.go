package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/config"
)

// validConfig mirrors base.yaml with the local API URL.
func validConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host:               "0.0.0.0",
			Port:               8080,
			ReadTimeout:        5 * time.Second,
			WriteTimeout:       10 * time.Second,
			IdleTimeout:        2 * time.Minute,
			RequestTimeout:     8 * time.Second,
			HealthCheckTimeout: 2 * time.Second,
		},
		Log: config.LogConfig{Level: "info", Format: "json"},
		Client: config.ClientConfig{
			BaseURL: "http://localhost:8081",
			Timeout: 30 * time.Second,
			Retry: config.RetryConfig{
				MaxAttempts:     3,
				InitialInterval: 100 * time.Millisecond,
				MaxInterval:     10 * time.Second,
				Multiplier:      2,
			},
			CircuitBreaker: config.CircuitBreakerConfig{MaxFailures: 5, Timeout: 30 * time.Second, HalfOpenLimit: 1},
		},
		Telemetry: config.TelemetryConfig{Exporter: "stdout", ServiceName: "disaster-response-web"},
		UI:        config.UIConfig{RedirectDelay: 2 * time.Second, PageSize: 10, DashboardWorkers: 4},
	}
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(c *config.Config)
		wantKey string // empty when the config must pass
	}{
		{name: "as shipped", mutate: func(*config.Config) {}},
		{name: "no base url", mutate: func(c *config.Config) { c.Client.BaseURL = "" }},
		{name: "https base url with path", mutate: func(c *config.Config) { c.Client.BaseURL = "https://api.example.com/api" }},
		{name: "zero redirect delay", mutate: func(c *config.Config) { c.UI.RedirectDelay = 0 }},
		{name: "telemetry off ignores exporter", mutate: func(c *config.Config) { c.Telemetry.Exporter = "zipkin" }},

		{name: "port zero", mutate: func(c *config.Config) { c.Server.Port = 0 }, wantKey: "server.port"},
		{name: "port too high", mutate: func(c *config.Config) { c.Server.Port = 70000 }, wantKey: "server.port"},
		{name: "no read timeout", mutate: func(c *config.Config) { c.Server.ReadTimeout = 0 }, wantKey: "server.read_timeout"},
		{name: "no request timeout", mutate: func(c *config.Config) { c.Server.RequestTimeout = 0 }, wantKey: "server.request_timeout"},
		{
			name:    "request timeout equal to write timeout",
			mutate:  func(c *config.Config) { c.Server.RequestTimeout = c.Server.WriteTimeout },
			wantKey: "server.request_timeout",
		},
		{
			name:    "request timeout past write timeout",
			mutate:  func(c *config.Config) { c.Server.RequestTimeout = 15 * time.Second },
			wantKey: "server.request_timeout",
		},
		{name: "no health check timeout", mutate: func(c *config.Config) { c.Server.HealthCheckTimeout = 0 }, wantKey: "server.health_check_timeout"},
		{name: "unknown log level", mutate: func(c *config.Config) { c.Log.Level = "verbose" }, wantKey: "log.level"},
		{name: "unknown log format", mutate: func(c *config.Config) { c.Log.Format = "xml" }, wantKey: "log.format"},
		{name: "relative base url", mutate: func(c *config.Config) { c.Client.BaseURL = "/api" }, wantKey: "client.base_url"},
		{name: "ftp base url", mutate: func(c *config.Config) { c.Client.BaseURL = "ftp://example.com" }, wantKey: "client.base_url"},
		{name: "base url without host", mutate: func(c *config.Config) { c.Client.BaseURL = "http://" }, wantKey: "client.base_url"},
		{name: "no client timeout", mutate: func(c *config.Config) { c.Client.Timeout = 0 }, wantKey: "client.timeout"},
		{name: "no attempts", mutate: func(c *config.Config) { c.Client.Retry.MaxAttempts = 0 }, wantKey: "client.retry.max_attempts"},
		{name: "zero multiplier", mutate: func(c *config.Config) { c.Client.Retry.Multiplier = 0 }, wantKey: "client.retry.multiplier"},
		{
			name:    "breaker never trips",
			mutate:  func(c *config.Config) { c.Client.CircuitBreaker.MaxFailures = 0 },
			wantKey: "client.circuit_breaker.max_failures",
		},
		{
			name:    "negative rate",
			mutate:  func(c *config.Config) { c.Client.RateLimit.RequestsPerSecond = -1 },
			wantKey: "client.rate_limit.requests_per_second",
		},
		{
			name:    "rate limit without burst",
			mutate:  func(c *config.Config) { c.Client.RateLimit = config.RateLimitConfig{RequestsPerSecond: 10} },
			wantKey: "client.rate_limit.burst_size",
		},
		{
			name: "otlp without endpoint",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "otlp"
			},
			wantKey: "telemetry.endpoint",
		},
		{
			name: "unknown exporter",
			mutate: func(c *config.Config) {
				c.Telemetry.Enabled = true
				c.Telemetry.Exporter = "zipkin"
			},
			wantKey: "telemetry.exporter",
		},
		{name: "negative redirect delay", mutate: func(c *config.Config) { c.UI.RedirectDelay = -time.Second }, wantKey: "ui.redirect_delay"},
		{name: "empty page", mutate: func(c *config.Config) { c.UI.PageSize = 0 }, wantKey: "ui.page_size"},
		{name: "no dashboard workers", mutate: func(c *config.Config) { c.UI.DashboardWorkers = 0 }, wantKey: "ui.dashboard_workers"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantKey == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantKey)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Server.Port = 0
	cfg.Log.Format = "xml"
	cfg.UI.PageSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	for _, key := range []string{"server.port", "log.format", "ui.page_size"} {
		assert.Contains(t, err.Error(), key)
	}
}

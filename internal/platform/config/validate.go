package config

import (
	"errors"
	"fmt"
	"net/url"
	"slices"
	"time"
)

// problems collects validation failures for one configuration section.
type problems []error

func (p *problems) addf(format string, args ...any) {
	*p = append(*p, fmt.Errorf(format, args...))
}

func (p *problems) positive(key string, d time.Duration) bool {
	if d <= 0 {
		p.addf("%s must be positive, got %s", key, d)
		return false
	}
	return true
}

func (p *problems) atLeast(key string, v, lowest int) {
	if v < lowest {
		p.addf("%s must be >= %d, got %d", key, lowest, v)
	}
}

func (p *problems) oneOf(key, v string, allowed ...string) {
	if !slices.Contains(allowed, v) {
		p.addf("%s must be one of %v, got %q", key, allowed, v)
	}
}

func (p problems) err() error { return errors.Join(p...) }

// Validate checks every section and joins all failures into one error.
func (c *Config) Validate() error {
	return errors.Join(
		c.Server.validate(),
		c.Log.validate(),
		c.Client.validate(),
		c.Telemetry.validate(),
		c.UI.validate(),
	)
}

func (s *ServerConfig) validate() error {
	var p problems
	if s.Port < 1 || s.Port > 65535 {
		p.addf("server.port must be in 1..65535, got %d", s.Port)
	}
	p.positive("server.read_timeout", s.ReadTimeout)
	writeOK := p.positive("server.write_timeout", s.WriteTimeout)
	if p.positive("server.request_timeout", s.RequestTimeout) && writeOK && s.RequestTimeout >= s.WriteTimeout {
		p.addf("server.request_timeout (%s) must be shorter than server.write_timeout (%s)",
			s.RequestTimeout, s.WriteTimeout)
	}
	p.positive("server.health_check_timeout", s.HealthCheckTimeout)
	return p.err()
}

func (l *LogConfig) validate() error {
	var p problems
	p.oneOf("log.level", l.Level, "debug", "info", "warn", "error")
	p.oneOf("log.format", l.Format, "json", "text")
	return p.err()
}

func (cl *ClientConfig) validate() error {
	var p problems
	if cl.BaseURL != "" && !absoluteHTTP(cl.BaseURL) {
		p.addf("client.base_url must be an absolute http(s) URL, got %q", cl.BaseURL)
	}
	p.positive("client.timeout", cl.Timeout)
	p.atLeast("client.retry.max_attempts", cl.Retry.MaxAttempts, 1)
	if cl.Retry.Multiplier <= 0 {
		p.addf("client.retry.multiplier must be positive, got %g", cl.Retry.Multiplier)
	}
	p.atLeast("client.circuit_breaker.max_failures", cl.CircuitBreaker.MaxFailures, 1)

	switch rps := cl.RateLimit.RequestsPerSecond; {
	case rps < 0:
		p.addf("client.rate_limit.requests_per_second must not be negative, got %g", rps)
	case rps > 0:
		p.atLeast("client.rate_limit.burst_size", cl.RateLimit.BurstSize, 1)
	}
	return p.err()
}

func absoluteHTTP(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}

func (t *TelemetryConfig) validate() error {
	if !t.Enabled {
		return nil
	}
	var p problems
	p.oneOf("telemetry.exporter", t.Exporter, "stdout", "otlp")
	if t.Exporter == "otlp" && t.Endpoint == "" {
		p.addf("telemetry.endpoint is required for the otlp exporter")
	}
	return p.err()
}

func (u *UIConfig) validate() error {
	var p problems
	if u.RedirectDelay < 0 {
		p.addf("ui.redirect_delay must not be negative, got %s", u.RedirectDelay)
	}
	p.atLeast("ui.page_size", u.PageSize, 1)
	p.atLeast("ui.dashboard_workers", u.DashboardWorkers, 1)
	return p.err()
}

package config

// defaults is the bottom layer of Load, keyed by section. Anything here can
// be overridden by the YAML files or the environment.
func defaults() map[string]any {
	sections := map[string]map[string]any{
		"server": {
			"host":                 "0.0.0.0",
			"port":                 8080,
			"read_timeout":         "5s",
			"write_timeout":        "10s",
			"idle_timeout":         "120s",
			"request_timeout":      "8s",
			"health_check_timeout": "2s",
			"strict_readiness":     false,
		},
		"log": {
			"level":  "info",
			"format": "json",
		},
		// No base URL: pages report "URL da API não configurada." until one
		// is set.
		"client": {
			"base_url":                        "",
			"timeout":                         "30s",
			"retry.max_attempts":              3,
			"retry.initial_interval":          "100ms",
			"retry.max_interval":              "10s",
			"retry.multiplier":                2.0,
			"circuit_breaker.max_failures":    5,
			"circuit_breaker.timeout":         "30s",
			"circuit_breaker.half_open_limit": 1,
			"rate_limit.requests_per_second":  0,
			"rate_limit.burst_size":           20,
		},
		"telemetry": {
			"enabled":  false,
			"exporter": "stdout",
			"endpoint": "",
		},
		"ui": {
			"redirect_delay":    "2s",
			"page_size":         10,
			"dashboard_workers": 4,
		},
	}

	flat := make(map[string]any)
	for section, values := range sections {
		for key, v := range values {
			flat[section+"."+key] = v
		}
	}
	return flat
}

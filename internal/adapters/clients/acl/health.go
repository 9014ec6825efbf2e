package acl

import (
	"context"
	"fmt"
)

// Name returns the identifier used when this component is registered with a
// [ports.HealthRegistry].
func (c *ResourceClient) Name() string {
	return c.req.Name()
}

// HealthCheck reports the resource API's availability without a network
// call: an unset base URL fails, otherwise the circuit breaker state decides.
//
//   - "closed": nil.
//   - "half-open": degraded, the breaker is probing recovery.
//   - "open": failing, requests are being rejected.
func (c *ResourceClient) HealthCheck(_ context.Context) error {
	name := c.req.Name()
	if c.req.BaseURL() == "" {
		return fmt.Errorf("%s: base url not configured", name)
	}
	switch state := c.req.CircuitBreakerState(); state {
	case "closed":
		return nil
	case "half-open":
		return fmt.Errorf("%s: degraded (circuit breaker half-open)", name)
	case "open":
		return fmt.Errorf("%s: failing (circuit breaker open)", name)
	default:
		return fmt.Errorf("%s: unknown circuit breaker state %q", name, state)
	}
}

package httpclient

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"math/rand/v2"
	"net/http"
	"strconv"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/platform/config"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/logging"
)

// jitter is the spread applied around each computed delay, as a fraction.
const jitter = 0.25

type retryPolicy struct {
	attempts int
	initial  time.Duration
	max      time.Duration
	factor   float64
}

func newRetryPolicy(cfg config.RetryConfig) retryPolicy {
	p := retryPolicy{
		attempts: cfg.MaxAttempts,
		initial:  cfg.InitialInterval,
		max:      cfg.MaxInterval,
		factor:   cfg.Multiplier,
	}
	if p.attempts < 1 {
		p.attempts = 1
	}
	return p
}

// attemptsFor returns how many times a method may be sent. Creates are sent
// once so a lost response cannot register the same shelter or report twice.
func (p retryPolicy) attemptsFor(method string) int {
	switch method {
	case http.MethodGet, http.MethodHead, http.MethodPut, http.MethodDelete, http.MethodOptions:
		return p.attempts
	default:
		return 1
	}
}

// delay is the wait before retry number n (1 for the first retry). A
// Retry-After header on the failed response overrides the backoff, still
// capped at the maximum interval.
func (p retryPolicy) delay(n int, failed *http.Response) time.Duration {
	if d, ok := retryAfter(failed); ok {
		return min(d, p.max)
	}

	d := float64(p.initial) * math.Pow(p.factor, float64(n-1))
	d = min(d, float64(p.max))
	d += d * jitter * (2*rand.Float64() - 1)
	return time.Duration(max(d, 0))
}

// retryAfter parses a Retry-After header given in seconds or as an HTTP date.
func retryAfter(resp *http.Response) (time.Duration, bool) {
	if resp == nil {
		return 0, false
	}
	v := resp.Header.Get("Retry-After")
	if v == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(v); err == nil && secs >= 0 {
		return time.Duration(secs) * time.Second, true
	}
	if at, err := http.ParseTime(v); err == nil {
		return max(time.Until(at), 0), true
	}
	return 0, false
}

// send runs the retry loop. The request body is buffered once and replayed
// on every attempt.
func (c *Client) send(ctx context.Context, req *http.Request) (*http.Response, error) {
	body, err := snapshotBody(req)
	if err != nil {
		return nil, err
	}

	attempts := c.policy.attemptsFor(req.Method)
	var (
		lastErr    error
		lastFailed *http.Response
	)
	for attempt := range attempts {
		if attempt > 0 {
			if err := c.pause(ctx, req, attempt, lastFailed, lastErr); err != nil {
				return nil, err
			}
		}
		rewind(req, body)

		resp, err := c.http.Do(req)
		if err != nil {
			if !retryableErr(err) {
				return nil, err
			}
			lastErr, lastFailed = err, nil
			continue
		}
		if !retryableStatus(resp.StatusCode) {
			return resp, nil
		}

		lastErr = fmt.Errorf("HTTP %d from %s", resp.StatusCode, c.name)
		if attempt == attempts-1 {
			return resp, lastErr
		}
		discard(resp)
		lastFailed = resp
	}
	return nil, lastErr
}

func (c *Client) pause(ctx context.Context, req *http.Request, attempt int, failed *http.Response, cause error) error {
	wait := c.policy.delay(attempt, failed)

	logging.FromContext(ctx).WarnContext(ctx, "retrying resource API call",
		slog.String("operation", "httpclient.Do"),
		slog.String("method", req.Method),
		slog.String("url", req.URL.String()),
		slog.String("peer_service", c.name),
		slog.Int("attempt", attempt+1),
		slog.Int("max_attempts", c.policy.attempts),
		slog.Duration("backoff", wait),
		slog.Any("error", cause),
	)

	t := time.NewTimer(wait)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func snapshotBody(req *http.Request) ([]byte, error) {
	if req.Body == nil || req.Body == http.NoBody {
		return nil, nil
	}
	defer req.Body.Close()

	b, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, fmt.Errorf("reading request body: %w", err)
	}
	return b, nil
}

func rewind(req *http.Request, body []byte) {
	if body == nil {
		return
	}
	req.Body = io.NopCloser(bytes.NewReader(body))
	req.ContentLength = int64(len(body))
}

// discard drains and closes a response that is about to be retried so its
// connection can be reused.
func discard(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	_ = resp.Body.Close()
}

// retryableErr is false only for cancellation and expired deadlines.
func retryableErr(err error) bool {
	return err != nil &&
		!errors.Is(err, context.Canceled) &&
		!errors.Is(err, context.DeadlineExceeded)
}

// retryableStatus is true for 429 and every 5xx.
func retryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

package oracle

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"google.golang.org/api/googleapi"
)

const (
	defaultMaxAttempts  = 3
	defaultInitialDelay = time.Second
)

// withRetry runs fn up to maxAttempts times, doubling the delay between
// attempts starting from initialDelay. Only transient failures are retried;
// anything else fails immediately.
func withRetry(ctx context.Context, maxAttempts int, initialDelay time.Duration, fn func() (string, error)) (string, error) {
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	if initialDelay <= 0 {
		initialDelay = defaultInitialDelay
	}

	var lastErr error
	delay := initialDelay
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return "", ctx.Err()
			}
			delay *= 2
		}

		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err
		if !isTransient(err) {
			break
		}
	}
	return "", lastErr
}

// isTransient reports whether an error is worth retrying: network failures,
// timeouts, rate limits, and server-side 5xx responses
func isTransient(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
		return false
	}

	return errors.Is(err, context.DeadlineExceeded)
}

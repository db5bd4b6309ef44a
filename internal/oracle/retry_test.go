package oracle

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"
)

func TestWithRetry_TransientErrorsAreRetried(t *testing.T) {
	calls := 0
	result, err := withRetry(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		if calls < 3 {
			return "", &googleapi.Error{Code: http.StatusServiceUnavailable}
		}
		return "ok", nil
	})

	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_NonTransientErrorFailsImmediately(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		return "", &googleapi.Error{Code: http.StatusBadRequest}
	})

	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestWithRetry_ExhaustedAttemptsReturnLastError(t *testing.T) {
	calls := 0
	_, err := withRetry(context.Background(), 3, time.Millisecond, func() (string, error) {
		calls++
		return "", &googleapi.Error{Code: http.StatusTooManyRequests}
	})

	require.Error(t, err)
	assert.Equal(t, 3, calls)
}

func TestWithRetry_ContextCancellationStopsWaiting(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := withRetry(ctx, 3, time.Minute, func() (string, error) {
		return "", &googleapi.Error{Code: http.StatusServiceUnavailable}
	})

	assert.ErrorIs(t, err, context.Canceled)
}

func TestIsTransient_Classification(t *testing.T) {
	assert.True(t, isTransient(&googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, isTransient(&googleapi.Error{Code: http.StatusBadGateway}))
	assert.False(t, isTransient(&googleapi.Error{Code: http.StatusUnauthorized}))
	assert.True(t, isTransient(context.DeadlineExceeded))
	assert.False(t, isTransient(fmt.Errorf("prompt rejected")))
	assert.False(t, isTransient(nil))
}

package oracle

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// newBreaker builds the circuit breaker guarding oracle calls. It trips
// after a 60% failure ratio across at least 5 requests and probes again
// after 30 seconds open.
func newBreaker() *gobreaker.CircuitBreaker[string] {
	settings := gobreaker.Settings{
		Name:        "rewrite-oracle",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 5 && failureRatio >= 0.6
		},
	}
	return gobreaker.NewCircuitBreaker[string](settings)
}

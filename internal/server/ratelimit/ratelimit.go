// Package ratelimit implements per-client token-bucket rate limiting for the
// optimizer's API. Endpoint tiers come from the configuration: the optimize
// endpoint gets an hour-long window with a small burst, analysis endpoints
// refill every minute, and the health check is unlimited.
package ratelimit

import (
	"sync"
	"time"
)

// Info reports the outcome of a rate-limit check, with enough detail for the
// standard X-RateLimit response headers.
type Info struct {
	Allowed    bool
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Whitelist       map[string]bool
	Blacklist       map[string]bool
	EndpointConfigs []EndpointConfig
}

// bucket tracks tokens for one client+endpoint pair. Tokens refill
// continuously at rate per second up to capacity; lastSeen drives eviction.
type bucket struct {
	tokens   float64
	capacity float64
	rate     float64
	refilled time.Time
	lastSeen time.Time
}

// refill advances the bucket to now. The caller holds the limiter lock.
func (b *bucket) refill(now time.Time) {
	b.tokens = min(b.capacity, b.tokens+now.Sub(b.refilled).Seconds()*b.rate)
	b.refilled = now
}

// resetAt reports when the bucket will be full again.
func (b *bucket) resetAt(now time.Time) time.Time {
	if b.tokens >= b.capacity {
		return now
	}
	deficit := b.capacity - b.tokens
	return now.Add(time.Duration(deficit / b.rate * float64(time.Second)))
}

// Limiter keeps one token bucket per client and endpoint under a single lock.
// A background goroutine evicts idle buckets; the idle age is derived from
// the longest configured window, so a client cannot dodge the hour-long
// optimize limit by waiting for eviction.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket

	config  *Config
	idleTTL time.Duration

	ticker *time.Ticker
	stop   chan struct{}
}

// NewLimiter creates a rate limiter. A nil config enables limiting with a
// 1000-per-minute default and no endpoint tiers.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{
			Enabled:         true,
			DefaultLimit:    1000,
			DefaultWindow:   time.Minute,
			CleanupInterval: 5 * time.Minute,
		}
	}

	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		idleTTL: idleTTL(config),
	}

	if config.Enabled && config.CleanupInterval > 0 {
		l.ticker = time.NewTicker(config.CleanupInterval)
		l.stop = make(chan struct{})
		go l.evictLoop()
	}

	return l
}

// idleTTL returns the eviction age: the longest window any endpoint uses. A
// bucket idle that long has refilled completely, so dropping it changes
// nothing the client can observe.
func idleTTL(config *Config) time.Duration {
	ttl := config.DefaultWindow
	for _, ec := range config.EndpointConfigs {
		if ec.Window > ttl {
			ttl = ec.Window
		}
	}
	if ttl <= 0 {
		ttl = time.Hour
	}
	return ttl
}

// Allow checks whether a request from clientID to the given endpoint and
// method may proceed, consuming a token when it does.
func (l *Limiter) Allow(clientID string, endpoint string, method string) (bool, Info) {
	if !l.config.Enabled || l.config.Whitelist[clientID] {
		return true, Info{Allowed: true}
	}
	if l.config.Blacklist[clientID] {
		return false, Info{}
	}

	ec := MatchEndpoint(endpoint, method, l.config.EndpointConfigs)
	if ec == nil {
		ec = &EndpointConfig{Limit: l.config.DefaultLimit, Window: l.config.DefaultWindow}
	}
	if ec.Limit <= 0 {
		// unlimited tier (health check)
		return true, Info{Allowed: true}
	}

	now := time.Now()
	key := clientID + ":" + method + " " + endpoint

	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		capacity := ec.Burst
		if capacity <= 0 {
			capacity = ec.Limit
		}
		b = &bucket{
			tokens:   float64(capacity),
			capacity: float64(capacity),
			rate:     float64(ec.Limit) / ec.Window.Seconds(),
			refilled: now,
		}
		l.buckets[key] = b
	}
	b.lastSeen = now
	b.refill(now)

	allowed := b.tokens >= 1
	if allowed {
		b.tokens--
	}
	remaining := int(b.tokens)
	reset := b.resetAt(now)
	l.mu.Unlock()

	info := Info{
		Allowed:   allowed,
		Limit:     ec.Limit,
		Remaining: remaining,
		ResetTime: reset,
	}
	if !allowed {
		if wait := time.Until(reset); wait > 0 {
			info.RetryAfter = wait
		}
	}
	return allowed, info
}

func (l *Limiter) evictLoop() {
	for {
		select {
		case <-l.ticker.C:
			l.evictIdle(time.Now())
		case <-l.stop:
			return
		}
	}
}

// evictIdle drops every bucket whose last request is at least one full
// window old.
func (l *Limiter) evictIdle(now time.Time) {
	cutoff := now.Add(-l.idleTTL)

	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if b.lastSeen.Before(cutoff) {
			delete(l.buckets, key)
		}
	}
}

// Stop halts the eviction goroutine.
func (l *Limiter) Stop() {
	if l.ticker != nil {
		l.ticker.Stop()
	}
	if l.stop != nil {
		close(l.stop)
	}
}

// Package ratelimit provides per-client token bucket rate limiting for the
// import API.
package ratelimit

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// bucket holds the token state for one client.
type bucket struct {
	tokens     float64
	lastRefill time.Time
	lastAccess time.Time
}

// Info describes the rate limit status returned with each decision.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	Capacity        int
	RefillPerSecond float64
	CleanupInterval time.Duration
}

// LoadConfig reads rate limit settings from the environment, falling back to
// defaults suitable for an import endpoint that does real parsing work per
// request.
func LoadConfig() Config {
	cfg := Config{
		Enabled:         true,
		Capacity:        30,
		RefillPerSecond: 0.5,
		CleanupInterval: 5 * time.Minute,
	}
	if v := os.Getenv("RATE_LIMIT_ENABLED"); v != "" {
		cfg.Enabled = v != "false" && v != "0"
	}
	if v := os.Getenv("RATE_LIMIT_CAPACITY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Capacity = n
		}
	}
	if v := os.Getenv("RATE_LIMIT_REFILL_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.RefillPerSecond = f
		}
	}
	return cfg
}

// Limiter manages token buckets for multiple clients.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	config  Config
	stop    chan struct{}
}

// NewLimiter creates a limiter and starts its idle-bucket cleanup loop.
func NewLimiter(config Config) *Limiter {
	l := &Limiter{
		buckets: make(map[string]*bucket),
		config:  config,
		stop:    make(chan struct{}),
	}
	if config.CleanupInterval > 0 {
		go l.cleanupLoop()
	}
	return l
}

// Allow reports whether the client may proceed and consumes a token if so.
func (l *Limiter) Allow(clientID string) (bool, Info) {
	if !l.config.Enabled {
		return true, Info{}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()
	b, ok := l.buckets[clientID]
	if !ok {
		b = &bucket{tokens: float64(l.config.Capacity), lastRefill: now}
		l.buckets[clientID] = b
	}
	b.lastAccess = now

	elapsed := now.Sub(b.lastRefill).Seconds()
	b.tokens += elapsed * l.config.RefillPerSecond
	if b.tokens > float64(l.config.Capacity) {
		b.tokens = float64(l.config.Capacity)
	}
	b.lastRefill = now

	info := Info{Limit: l.config.Capacity}

	if b.tokens >= 1 {
		b.tokens--
		info.Remaining = int(b.tokens)
		info.ResetTime = l.refillTime(b, now)
		return true, info
	}

	info.Remaining = 0
	info.RetryAfter = time.Duration((1 - b.tokens) / l.config.RefillPerSecond * float64(time.Second))
	info.ResetTime = now.Add(info.RetryAfter)
	return false, info
}

// Stop terminates the cleanup loop.
func (l *Limiter) Stop() {
	close(l.stop)
}

// refillTime is when the bucket will be full again.
func (l *Limiter) refillTime(b *bucket, now time.Time) time.Time {
	missing := float64(l.config.Capacity) - b.tokens
	if missing <= 0 {
		return now
	}
	return now.Add(time.Duration(missing / l.config.RefillPerSecond * float64(time.Second)))
}

// cleanupLoop drops buckets idle for longer than the cleanup interval.
func (l *Limiter) cleanupLoop() {
	ticker := time.NewTicker(l.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for id, b := range l.buckets {
				if now.Sub(b.lastAccess) > l.config.CleanupInterval {
					delete(l.buckets, id)
				}
			}
			l.mu.Unlock()
		}
	}
}

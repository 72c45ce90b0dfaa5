package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// ClientLimiter keeps one token bucket per client key (usually the client
// IP). Buckets idle for longer than the configured window are dropped by
// Sweep so the map does not grow without bound.
type ClientLimiter struct {
	limiters map[string]*entry
	mu       sync.RWMutex
	config   RateLimitConfig
	now      func() time.Time
}

type entry struct {
	limiter  *rate.Limiter
	lastSeen atomic.Int64
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
	IdleTimeout       time.Duration
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
		IdleTimeout:       10 * time.Minute,
	}
}

func NewClientLimiter(config RateLimitConfig) *ClientLimiter {
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = DefaultConfig().IdleTimeout
	}
	return &ClientLimiter{
		limiters: make(map[string]*entry),
		config:   config,
		now:      time.Now,
	}
}

func (c *ClientLimiter) GetLimiter(key string) *rate.Limiter {
	now := c.now()

	c.mu.RLock()
	e, exists := c.limiters[key]
	c.mu.RUnlock()

	if exists {
		e.lastSeen.Store(now.UnixNano())
		return e.limiter
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if e, exists = c.limiters[key]; exists {
		e.lastSeen.Store(now.UnixNano())
		return e.limiter
	}

	e = &entry{limiter: rate.NewLimiter(rate.Limit(c.config.RequestsPerSecond), c.config.BurstSize)}
	e.lastSeen.Store(now.UnixNano())
	c.limiters[key] = e
	return e.limiter
}

// Allow reports whether key may make a request now, consuming a token if so.
func (c *ClientLimiter) Allow(key string) bool {
	return c.GetLimiter(key).AllowN(c.now(), 1)
}

func (c *ClientLimiter) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.limiters)
}

// Sweep removes buckets that have not been used within the idle timeout and
// returns how many were removed.
func (c *ClientLimiter) Sweep() int {
	cutoff := c.now().Add(-c.config.IdleTimeout).UnixNano()

	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, e := range c.limiters {
		if e.lastSeen.Load() < cutoff {
			delete(c.limiters, key)
			removed++
		}
	}
	return removed
}

// Run sweeps every interval until ctx is done.
func (c *ClientLimiter) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Sweep()
		}
	}
}

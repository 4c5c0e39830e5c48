// Package ratelimit implements the fixed-window counter guarding the lead
// endpoint: 5 requests per 10 minutes per client IP.
package ratelimit

import (
	"log"
	"sync"
	"time"

	"velour_backend/pkg/config"
)

const (
	Limit  = 5
	Window = 10 * time.Minute
)

type Limiter interface {
	IsRateLimited(ip string) bool
}

// New picks the backend from config: "redis" for a shared counter across
// instances, anything else for the per-process in-memory map.
func New(cfg config.RateLimitConfig) Limiter {
	if cfg.Backend == "redis" {
		log.Printf("Rate limiter using redis backend at %s", cfg.RedisAddr)
		return NewRedisLimiter(cfg.RedisAddr)
	}
	return NewMemoryLimiter()
}

type rateEntry struct {
	count          int
	firstRequestAt time.Time
}

// MemoryLimiter counts requests in a per-process map. Entries are only ever
// reset lazily on the next request from the same IP; IPs that never return
// stay in the map for the life of the process.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*rateEntry
	limit   int
	window  time.Duration
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*rateEntry),
		limit:   Limit,
		window:  Window,
		now:     time.Now,
	}
}

func (l *MemoryLimiter) IsRateLimited(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	entry, ok := l.entries[ip]
	if !ok || now.Sub(entry.firstRequestAt) > l.window {
		l.entries[ip] = &rateEntry{count: 1, firstRequestAt: now}
		return false
	}

	// Requests past the limit keep incrementing; the window does not slide.
	entry.count++
	return entry.count > l.limit
}

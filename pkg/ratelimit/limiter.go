package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

type entry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// LimiterStore hands out one token bucket per key.
type LimiterStore struct {
	limiters map[string]*entry
	mu       sync.Mutex
	r        rate.Limit
	burst    int
}

func NewLimiterStore(r rate.Limit, burst int) *LimiterStore {
	if burst < 1 {
		burst = 1
	}
	return &LimiterStore{
		limiters: make(map[string]*entry),
		r:        r,
		burst:    burst,
	}
}

func (s *LimiterStore) GetLimiter(key string) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	if e, exists := s.limiters[key]; exists {
		e.lastAccess = time.Now()
		return e.limiter
	}
	limiter := rate.NewLimiter(s.r, s.burst)
	s.limiters[key] = &entry{limiter: limiter, lastAccess: time.Now()}
	return limiter
}

// Allow reports whether key may proceed right now without waiting.
func (s *LimiterStore) Allow(key string) bool {
	return s.GetLimiter(key).Allow()
}

// Prune drops limiters idle for longer than ttl and returns how many were removed.
func (s *LimiterStore) Prune(ttl time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := time.Now()
	for key, e := range s.limiters {
		if now.Sub(e.lastAccess) > ttl {
			delete(s.limiters, key)
			removed++
		}
	}
	return removed
}

func (s *LimiterStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}

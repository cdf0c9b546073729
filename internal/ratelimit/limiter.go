package ratelimit

import (
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultIdle is how long an unused limiter is kept by the shared registry.
const DefaultIdle = 10 * time.Minute

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// Registry hands out one limiter per key, so every client talking to the
// same gateway account draws from one budget. Callers fetch the limiter on
// every use; entries not fetched for longer than the idle period are dropped
// on the next Get.
type Registry struct {
	mu      sync.Mutex
	entries map[string]*entry
	idle    time.Duration
	now     func() time.Time
}

func NewRegistry(idle time.Duration) *Registry {
	return &Registry{
		entries: make(map[string]*entry),
		idle:    idle,
		now:     time.Now,
	}
}

// Get returns the limiter for key, creating it when needed. An existing
// limiter is retuned to limit and burst. A burst below 1 is raised to 1.
func (r *Registry) Get(key string, limit rate.Limit, burst int) *rate.Limiter {
	if burst < 1 {
		burst = 1
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	r.prune(now)

	e, ok := r.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(limit, burst)}
		r.entries[key] = e
	} else {
		if e.limiter.Limit() != limit {
			e.limiter.SetLimitAt(now, limit)
		}
		if e.limiter.Burst() != burst {
			e.limiter.SetBurstAt(now, burst)
		}
	}
	e.lastSeen = now
	return e.limiter
}

func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}

func (r *Registry) prune(now time.Time) {
	for key, e := range r.entries {
		if now.Sub(e.lastSeen) > r.idle {
			delete(r.entries, key)
		}
	}
}

var shared = NewRegistry(DefaultIdle)

// Shared returns the process-wide limiter for key. Call it before every Wait
// so the entry stays alive while it is in use.
func Shared(key string, limit rate.Limit, burst int) *rate.Limiter {
	return shared.Get(key, limit, burst)
}

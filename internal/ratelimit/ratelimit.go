// Package ratelimit guards the lead-submission endpoint with a per-client
// sliding-window counter.
package ratelimit

import (
	"strings"
	"sync"
	"time"
)

// FallbackIdentity is used when no client address is available.
const FallbackIdentity = "unknown"

// Limiter allows at most maxAttempts submissions per identity within a
// trailing window. State lives in memory for the process lifetime; the
// number of tracked identities is capped to keep the map bounded.
type Limiter struct {
	mu            sync.Mutex
	window        time.Duration
	maxAttempts   int
	maxIdentities int
	attempts      map[string][]time.Time
	now           func() time.Time
}

// New creates a limiter. maxIdentities <= 0 disables eviction.
func New(window time.Duration, maxAttempts, maxIdentities int) *Limiter {
	return &Limiter{
		window:        window,
		maxAttempts:   maxAttempts,
		maxIdentities: maxIdentities,
		attempts:      make(map[string][]time.Time),
		now:           time.Now,
	}
}

// Allow reports whether a submission attempt from identity may proceed.
// Expired timestamps are purged first; if the remaining count has reached
// the limit the attempt is rejected and not recorded. Check and record
// happen atomically: two concurrent attempts cannot both take the last
// slot.
func (l *Limiter) Allow(identity string) bool {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		identity = FallbackIdentity
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-l.window)

	kept := l.attempts[identity][:0]
	for _, ts := range l.attempts[identity] {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}

	if len(kept) >= l.maxAttempts {
		l.attempts[identity] = kept
		return false
	}

	l.attempts[identity] = append(kept, now)
	l.evictLocked(identity)
	return true
}

// evictLocked drops the identity whose most recent attempt is oldest when
// the tracked-identity cap is exceeded. The identity just touched is never
// the victim.
func (l *Limiter) evictLocked(current string) {
	if l.maxIdentities <= 0 || len(l.attempts) <= l.maxIdentities {
		return
	}
	var victim string
	var victimLast time.Time
	for id, times := range l.attempts {
		if id == current || len(times) == 0 {
			continue
		}
		last := times[len(times)-1]
		if victim == "" || last.Before(victimLast) {
			victim = id
			victimLast = last
		}
	}
	if victim != "" {
		delete(l.attempts, victim)
	}
}

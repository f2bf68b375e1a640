package ratelimit

import (
	"fmt"
	"sync"
	"testing"
	"time"
)

// fakeClock lets tests advance time manually.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestLimiter(maxIdentities int) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Unix(1700000000, 0)}
	l := New(time.Minute, 5, maxIdentities)
	l.now = clock.Now
	return l, clock
}

func TestAllowWithinLimit(t *testing.T) {
	l, clock := newTestLimiter(0)

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
		clock.Advance(100 * time.Millisecond)
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("6th attempt within the window should be rejected")
	}
}

func TestWindowSlides(t *testing.T) {
	l, clock := newTestLimiter(0)

	for i := 0; i < 5; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("expected rejection at the limit")
	}

	clock.Advance(61 * time.Second)
	if !l.Allow("1.2.3.4") {
		t.Fatal("expected allowance after the window elapsed")
	}
}

func TestRejectedAttemptIsNotRecorded(t *testing.T) {
	l, clock := newTestLimiter(0)

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4")
	}
	// Hammering while over the limit must not extend the lockout.
	for i := 0; i < 20; i++ {
		if l.Allow("1.2.3.4") {
			t.Fatal("expected rejection")
		}
		clock.Advance(time.Second)
	}
	clock.Advance(41 * time.Second) // first window fully elapsed by now
	if !l.Allow("1.2.3.4") {
		t.Fatal("rejected attempts must not count against the window")
	}
}

func TestIdentitiesAreIndependent(t *testing.T) {
	l, _ := newTestLimiter(0)

	for i := 0; i < 5; i++ {
		l.Allow("1.2.3.4")
	}
	if l.Allow("1.2.3.4") {
		t.Fatal("expected first identity to be limited")
	}
	if !l.Allow("5.6.7.8") {
		t.Fatal("expected second identity to be unaffected")
	}
}

func TestEmptyIdentityFallsBackToSentinel(t *testing.T) {
	l, _ := newTestLimiter(0)

	for i := 0; i < 5; i++ {
		if !l.Allow("") {
			t.Fatalf("attempt %d should be allowed", i+1)
		}
	}
	// "  " and "" share the sentinel bucket.
	if l.Allow("  ") {
		t.Fatal("expected sentinel identity to be limited")
	}
}

func TestIdentityCapEvictsStalest(t *testing.T) {
	l, clock := newTestLimiter(3)

	l.Allow("a")
	clock.Advance(time.Second)
	l.Allow("b")
	clock.Advance(time.Second)
	l.Allow("c")
	clock.Advance(time.Second)
	l.Allow("d") // exceeds the cap; "a" has the oldest last attempt

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.attempts) != 3 {
		t.Fatalf("expected 3 tracked identities, got %d", len(l.attempts))
	}
	if _, ok := l.attempts["a"]; ok {
		t.Fatal("expected stalest identity to be evicted")
	}
	for _, id := range []string{"b", "c", "d"} {
		if _, ok := l.attempts[id]; !ok {
			t.Fatalf("expected identity %q to survive eviction", id)
		}
	}
}

func TestConcurrentAllowNeverOverAdmits(t *testing.T) {
	l, _ := newTestLimiter(0)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("1.2.3.4") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 5 {
		t.Fatalf("expected exactly 5 admissions, got %d", allowed)
	}
}

func TestManyIdentitiesStayBounded(t *testing.T) {
	l, clock := newTestLimiter(100)

	for i := 0; i < 1000; i++ {
		l.Allow(fmt.Sprintf("10.0.0.%d", i))
		clock.Advance(time.Millisecond)
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.attempts) > 100 {
		t.Fatalf("expected at most 100 tracked identities, got %d", len(l.attempts))
	}
}

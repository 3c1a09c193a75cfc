package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Pacer enforces a minimum interval between consecutive calls. It is a
// single process-wide clock: all fetchers sharing one Pacer are paced
// globally, regardless of how many callers there are. The interval is a
// floor, not a target — a fast upstream call still waits out the spacing.
type Pacer struct {
	mu       sync.Mutex
	interval time.Duration
	last     time.Time
}

// DefaultInterval is the stock floor between provider fetches; the
// provider's implicit rate limit sits around 3 req/s.
const DefaultInterval = 300 * time.Millisecond

// NewPacer creates a pacer with the given minimum spacing.
func NewPacer(interval time.Duration) *Pacer {
	return &Pacer{interval: interval}
}

// Wait blocks until at least the configured interval has passed since the
// previous Wait returned a slot, or until ctx is cancelled. The first call
// never waits.
func (p *Pacer) Wait(ctx context.Context) error {
	p.mu.Lock()
	now := time.Now()
	var sleep time.Duration
	if !p.last.IsZero() {
		if elapsed := now.Sub(p.last); elapsed < p.interval {
			sleep = p.interval - elapsed
		}
	}
	// Reserve the slot before sleeping so concurrent callers queue up
	// behind each other instead of sharing one gap.
	p.last = now.Add(sleep)
	p.mu.Unlock()

	if sleep <= 0 {
		return nil
	}
	timer := time.NewTimer(sleep)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

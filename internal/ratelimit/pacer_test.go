package ratelimit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

func TestPacer_FirstCallDoesNotWait(t *testing.T) {
	p := NewPacer(time.Second)
	start := time.Now()
	if err := p.Wait(context.Background()); err != nil {
		t.Fatal(err)
	}
	if elapsed := time.Since(start); elapsed > 100*time.Millisecond {
		t.Errorf("first Wait took %v, should be immediate", elapsed)
	}
}

func TestPacer_EnforcesFloorBetweenCalls(t *testing.T) {
	interval := 20 * time.Millisecond
	p := NewPacer(interval)
	ctx := context.Background()

	start := time.Now()
	for i := 0; i < 3; i++ {
		if err := p.Wait(ctx); err != nil {
			t.Fatal(err)
		}
	}
	// Three calls mean two enforced gaps.
	if elapsed := time.Since(start); elapsed < 2*interval {
		t.Errorf("3 calls finished in %v, want at least %v", elapsed, 2*interval)
	}
}

func TestPacer_CancelledContext(t *testing.T) {
	p := NewPacer(time.Hour)
	ctx := context.Background()
	if err := p.Wait(ctx); err != nil {
		t.Fatal(err)
	}

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	if err := p.Wait(cancelled); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestPacer_ConcurrentCallersQueue(t *testing.T) {
	interval := 10 * time.Millisecond
	p := NewPacer(interval)
	const n = 4

	start := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = p.Wait(context.Background())
		}()
	}
	wg.Wait()

	// n callers share one clock: n-1 enforced gaps, not one shared gap.
	if elapsed := time.Since(start); elapsed < (n-1)*interval {
		t.Errorf("%d concurrent calls finished in %v, want at least %v", n, elapsed, (n-1)*interval)
	}
}

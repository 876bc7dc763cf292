package engine

import (
	"context"
	"testing"
	"time"
)

func TestNextTickDelay(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Duration
	}{
		{"exactly on the boundary",
			time.Date(2024, 6, 4, 9, 0, 0, 0, time.Local), time.Minute},
		{"mid minute",
			time.Date(2024, 6, 4, 9, 0, 30, 0, time.Local), 30 * time.Second},
		{"one second left",
			time.Date(2024, 6, 4, 9, 0, 59, 0, time.Local), time.Second},
		{"sub-second remainder",
			time.Date(2024, 6, 4, 9, 0, 59, 750_000_000, time.Local), 250 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := nextTickDelay(tt.now); got != tt.want {
				t.Fatalf("nextTickDelay(%v) = %v, want %v", tt.now, got, tt.want)
			}
		})
	}
}

func TestNextTickDelayNeverNonPositive(t *testing.T) {
	for _, now := range []time.Time{
		time.Date(2024, 6, 4, 9, 0, 59, 999_999_999, time.Local),
		time.Date(2024, 6, 4, 23, 59, 59, 999_999_999, time.Local),
	} {
		if got := nextTickDelay(now); got <= 0 {
			t.Fatalf("nextTickDelay(%v) = %v, must be positive", now, got)
		}
	}
}

func TestSafeTickRecoversPanic(t *testing.T) {
	calls := 0
	tick := func(time.Time) {
		calls++
		panic("boom")
	}

	// A panicking callback must not take down the loop; firing twice proves
	// the recovery happened.
	safeTick(tick, time.Now())
	safeTick(tick, time.Now())
	if calls != 2 {
		t.Fatalf("callback ran %d times, want 2", calls)
	}
}

func TestTickerNotifyFiresOutOfBand(t *testing.T) {
	fired := make(chan time.Time, 1)
	ticker := StartTicker(context.Background(), func(now time.Time) {
		select {
		case fired <- now:
		default:
		}
	})
	defer ticker.Stop()

	ticker.Notify()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("notify did not trigger a check")
	}
}

func TestTickerStopIsIdempotent(t *testing.T) {
	ticker := StartTicker(context.Background(), func(time.Time) {})
	ticker.Stop()
	ticker.Stop()
	ticker.Stop()
}

func TestTickerStopAfterContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ticker := StartTicker(ctx, func(time.Time) {})
	cancel()
	ticker.Stop()
}

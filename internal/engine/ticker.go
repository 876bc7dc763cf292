package engine

import (
	"context"
	"log"
	"sync"
	"time"
)

// Ticker fires its callback once per wall-clock minute, aligned to the
// minute boundary. Each firing arms a fresh one-shot timer for the exact
// remaining time to the next boundary, so timer drift or a slow callback
// never accumulates; it is not a fixed 60-second interval.
type Ticker struct {
	cancel   context.CancelFunc
	notifyCh chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// StartTicker arms the first tick and returns the running ticker. The
// callback receives the firing instant. Callback panics are recovered and
// logged so a single bad tick never stops future ticks.
func StartTicker(ctx context.Context, onTick func(now time.Time)) *Ticker {
	ctx, cancel := context.WithCancel(ctx)
	t := &Ticker{
		cancel:   cancel,
		notifyCh: make(chan struct{}, 1),
		done:     make(chan struct{}),
	}
	go t.run(ctx, onTick)
	return t
}

// Notify triggers an immediate out-of-band check. Non-blocking if one is
// already pending.
func (t *Ticker) Notify() {
	select {
	case t.notifyCh <- struct{}{}:
	default:
	}
}

// Stop cancels the pending timer and waits for the loop to exit. Safe to
// call multiple times and after the ticker has fired.
func (t *Ticker) Stop() {
	t.stopOnce.Do(t.cancel)
	<-t.done
}

func (t *Ticker) run(ctx context.Context, onTick func(time.Time)) {
	defer close(t.done)

	timer := time.NewTimer(nextTickDelay(time.Now()))
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-timer.C:
			safeTick(onTick, now)
			timer.Reset(nextTickDelay(time.Now()))
		case <-t.notifyCh:
			safeTick(onTick, time.Now())
		}
	}
}

// nextTickDelay returns the exact remaining time until the top of the next
// minute. Invoked exactly on a boundary it returns a full minute; a
// non-positive result (clock precision artifacts) is clamped to a minimal
// positive delay so the tick fires immediately rather than being skipped.
func nextTickDelay(now time.Time) time.Duration {
	next := now.Truncate(time.Minute).Add(time.Minute)
	delay := next.Sub(now)
	if delay <= 0 {
		return time.Millisecond
	}
	return delay
}

func safeTick(onTick func(time.Time), now time.Time) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Tick callback panicked: %v", r)
		}
	}()
	onTick(now)
}

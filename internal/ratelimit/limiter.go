package ratelimit

import (
	"context"
	"sync"
	"time"

	"rift-rewind/internal/constants"
)

type window struct {
	stamps []time.Time
	limit  int
	span   time.Duration
}

func (w *window) prune(now time.Time) {
	cutoff := now.Add(-w.span)
	i := 0
	for i < len(w.stamps) && !w.stamps[i].After(cutoff) {
		i++
	}
	w.stamps = w.stamps[i:]
}

func (w *window) saturated() bool {
	return len(w.stamps) >= w.limit
}

// wait returns how long until the oldest stamp falls out of the window.
func (w *window) wait(now time.Time) time.Duration {
	if !w.saturated() {
		return 0
	}
	return w.stamps[0].Add(w.span).Sub(now)
}

type WindowStatus struct {
	Used      int `json:"used"`
	Limit     int `json:"limit"`
	Remaining int `json:"remaining"`
}

type Status struct {
	Short WindowStatus `json:"shortWindow"`
	Long  WindowStatus `json:"longWindow"`
}

// Limiter throttles outbound Riot API calls under two sliding windows: a
// short burst window and a long sustained window. A slot is granted only
// when both windows have room, and the grant records a timestamp in both.
// One instance is shared process-wide by every caller touching the API.
type Limiter struct {
	mu    sync.Mutex
	short window
	long  window

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

func New(shortLimit int, shortSpan time.Duration, longLimit int, longSpan time.Duration) *Limiter {
	return &Limiter{
		short: window{limit: shortLimit, span: shortSpan},
		long:  window{limit: longLimit, span: longSpan},
		now:   time.Now,
		sleep: sleepContext,
	}
}

// AcquireSlot blocks until both windows have capacity, then records the
// call in both and returns. It only fails when ctx is cancelled; given an
// advancing clock a slot is always eventually granted. There is no fairness
// guarantee across concurrent waiters beyond scheduling order.
func (l *Limiter) AcquireSlot(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := l.now()
		l.short.prune(now)
		l.long.prune(now)

		if !l.short.saturated() && !l.long.saturated() {
			l.short.stamps = append(l.short.stamps, now)
			l.long.stamps = append(l.long.stamps, now)
			l.mu.Unlock()
			return nil
		}

		wait := l.short.wait(now)
		if lw := l.long.wait(now); lw > wait {
			wait = lw
		}
		l.mu.Unlock()

		recordWait(wait)

		// The buffer avoids waking exactly on the window boundary and
		// spinning on a stamp that has not quite expired yet.
		if err := l.sleep(ctx, wait+constants.AcquireSlotBuffer); err != nil {
			return err
		}
	}
}

// Status returns a read-only snapshot of both windows, surfaced to clients
// during long batch fetches.
func (l *Limiter) Status() Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.short.prune(now)
	l.long.prune(now)

	return Status{
		Short: WindowStatus{
			Used:      len(l.short.stamps),
			Limit:     l.short.limit,
			Remaining: l.short.limit - len(l.short.stamps),
		},
		Long: WindowStatus{
			Used:      len(l.long.stamps),
			Limit:     l.long.limit,
			Remaining: l.long.limit - len(l.long.stamps),
		},
	}
}

// Reset drops all recorded timestamps. Intended for tests.
func (l *Limiter) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.short.stamps = nil
	l.long.stamps = nil
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

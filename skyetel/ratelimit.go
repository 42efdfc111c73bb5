package skyetel

import (
	"context"
	"sync"
	"time"
)

// Limiter admits API calls. The default implementation enforces the
// documented quota over a rolling window. Anything with a compatible Wait
// method, such as *rate.Limiter from golang.org/x/time/rate, can be
// substituted through WithRateLimiter, for example to share one quota
// across several clients.
type Limiter interface {
	Wait(ctx context.Context) error
}

// callLimiter is a sliding-log admitter. It remembers when each of the
// last quota admissions happened and blocks a call until the oldest of
// them has left the window, so no rolling window ever carries more than
// quota calls in aggregate. A plain token bucket cannot give this
// guarantee: a full bucket plus its refill admits more than the quota
// inside a single window.
type callLimiter struct {
	mu     sync.Mutex
	quota  int
	window time.Duration

	// log is a ring of admission times; head indexes the oldest entry.
	log   []time.Time
	head  int
	count int
}

func newCallLimiter(quota int, window time.Duration) *callLimiter {
	return &callLimiter{
		quota:  quota,
		window: window,
		log:    make([]time.Time, quota),
	}
}

// Wait blocks until the call may proceed or the context ends.
func (l *callLimiter) Wait(ctx context.Context) error {
	for {
		l.mu.Lock()
		now := time.Now()

		if l.count < l.quota {
			l.log[(l.head+l.count)%l.quota] = now
			l.count++
			l.mu.Unlock()
			return nil
		}

		ready := l.log[l.head].Add(l.window)
		if !now.Before(ready) {
			l.log[l.head] = now
			l.head = (l.head + 1) % l.quota
			l.mu.Unlock()
			return nil
		}
		l.mu.Unlock()

		timer := time.NewTimer(ready.Sub(now))
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
			// Another waiter may have been admitted first; re-check.
		}
	}
}

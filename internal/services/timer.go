package services

import (
	"context"
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-deposit-checkout/internal/models"
)

// DefaultTickInterval is the countdown refresh period.
const DefaultTickInterval = 100 * time.Millisecond

// ExpiryTimer counts down to the expiry of a deposit. The total duration is
// taken once from the persisted start time, so a timer rebuilt after a reload
// keeps its baseline.
type ExpiryTimer struct {
	expiresAt time.Time
	total     time.Duration
	interval  time.Duration
	now       func() time.Time

	once sync.Once
}

// NewExpiryTimer creates a timer running from start to expiresAt. A nil now
// uses time.Now and a non-positive interval uses DefaultTickInterval.
func NewExpiryTimer(start, expiresAt time.Time, interval time.Duration, now func() time.Time) *ExpiryTimer {
	if now == nil {
		now = time.Now
	}
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	return &ExpiryTimer{
		expiresAt: expiresAt,
		total:     expiresAt.Sub(start),
		interval:  interval,
		now:       now,
	}
}

// Total returns the duration the countdown started with.
func (t *ExpiryTimer) Total() time.Duration {
	return t.total
}

// View computes the countdown as of now.
func (t *ExpiryTimer) View() models.CountdownView {
	return countdownView(t.expiresAt.Sub(t.now()), t.total)
}

func countdownView(remaining, total time.Duration) models.CountdownView {
	var progress float64
	if total > 0 {
		progress = float64(remaining) / float64(total) * 100
	}
	progress = math.Max(0, math.Min(100, progress))

	if remaining < 0 {
		remaining = 0
	}
	secs := int64(remaining / time.Second)

	return models.CountdownView{
		TimeLeft:  fmt.Sprintf("%02d:%02d", secs/60, secs%60),
		Progress:  progress,
		Urgency:   urgency(progress),
		Expired:   remaining <= 0,
		Remaining: remaining,
	}
}

func urgency(progress float64) string {
	switch {
	case progress >= 50:
		return models.UrgencyOK
	case progress >= 20:
		return models.UrgencyWarn
	default:
		return models.UrgencyCritical
	}
}

// Run ticks until the deadline passes or ctx is done. onExpire is called
// exactly once, on the first tick that sees no time left, and never after
// ctx is cancelled.
func (t *ExpiryTimer) Run(ctx context.Context, onExpire func()) {
	if t.fire(ctx, onExpire) {
		return
	}

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if t.fire(ctx, onExpire) {
				return
			}
		}
	}
}

// fire reports whether the deadline has passed, calling onExpire the first time it has.
func (t *ExpiryTimer) fire(ctx context.Context, onExpire func()) bool {
	if t.expiresAt.Sub(t.now()) > 0 {
		return false
	}
	if ctx.Err() != nil {
		return true
	}
	t.once.Do(onExpire)
	return true
}

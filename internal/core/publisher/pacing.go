package publisher

import (
	"context"
	"time"
)

// Pacer spaces successive publish calls to one platform. The fan-out
// calls Wait between targets (never before the first), so a request
// with a single target pays no delay.
type Pacer interface {
	Wait(ctx context.Context)
}

// LinkedIn tolerates roughly one post per second per member
const defaultLinkedInInterval = 1 * time.Second

type fixedIntervalPacer struct {
	interval time.Duration
}

// NewFixedIntervalPacer creates a pacer that blocks for a flat
// interval on every Wait. A zero or negative interval never blocks
// (useful in tests).
func NewFixedIntervalPacer(interval time.Duration) Pacer {
	return &fixedIntervalPacer{interval: interval}
}

// NewDefaultPacer returns the production pacing policy for LinkedIn
func NewDefaultPacer() Pacer {
	return NewFixedIntervalPacer(defaultLinkedInInterval)
}

func (p *fixedIntervalPacer) Wait(ctx context.Context) {
	if p.interval <= 0 {
		return
	}

	timer := time.NewTimer(p.interval)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Package clock provides waiting primitives for polling loops.
package clock

import (
	"context"
	"time"
)

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// LinearBackoff yields waits that start at Initial and grow by Step on every call to Next.
// A zero Max leaves the growth uncapped.
type LinearBackoff struct {
	Initial time.Duration
	Step    time.Duration
	Max     time.Duration

	calls int
}

// Next returns the wait for the current attempt and advances the sequence.
func (b *LinearBackoff) Next() time.Duration {
	d := b.Initial + time.Duration(b.calls)*b.Step
	b.calls++
	if b.Max > 0 && d > b.Max {
		return b.Max
	}
	return d
}

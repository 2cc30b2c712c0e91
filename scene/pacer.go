package scene

import (
	"context"
	"time"
)

// Pacer blocks between animation frames
type Pacer interface {
	Pause(ctx context.Context, d time.Duration) error
}

// Sleeper pauses on the wall clock and wakes early on cancellation
type Sleeper struct{}

// Pause sleeps for d or until ctx is done
func (Sleeper) Pause(ctx context.Context, d time.Duration) error {
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

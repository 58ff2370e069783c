package utils

import (
	"context"
	"time"
)

// Delay blocks for d or until ctx is done.
type Delay func(ctx context.Context, d time.Duration) error

var after = time.After

// WaitFor is the real-clock Delay.
func WaitFor(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-after(d):
		return nil
	}
}

// NoDelay returns immediately unless ctx is already done.
func NoDelay(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

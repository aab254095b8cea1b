package services

import (
	"context"
	"time"
)

// Latency holds the artificial delays applied to store operations so the
// terminal client behaves like the networked build it mirrors.
type Latency struct {
	Auth    time.Duration
	Save    time.Duration
	History time.Duration
}

// DefaultLatency returns the delays of the reference client.
func DefaultLatency() Latency {
	return Latency{
		Auth:    800 * time.Millisecond,
		Save:    500 * time.Millisecond,
		History: 600 * time.Millisecond,
	}
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

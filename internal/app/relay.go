package app

import (
	"context"
	"time"
)

const defaultHeartbeat = 2 * time.Second

// StartRelay launches a background goroutine that forwards deck change
// signals to the returned channel, with a heartbeat tick in between so
// time-based views (the activity log) stay fresh. Signals coalesce. The
// channel is closed once ctx is done. It returns immediately.
func StartRelay(ctx context.Context, changes <-chan struct{}, heartbeat time.Duration) <-chan struct{} {
	if heartbeat <= 0 {
		heartbeat = defaultHeartbeat
	}
	out := make(chan struct{}, 1)
	go func() {
		defer close(out)

		ticker := time.NewTicker(heartbeat)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					changes = nil
					continue
				}
			case <-ticker.C:
			}
			select {
			case out <- struct{}{}:
			default:
			}
		}
	}()
	return out
}

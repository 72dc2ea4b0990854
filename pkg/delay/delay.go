// Package delay holds the artificial submission pause shared by form commands.
package delay

import (
	"context"
	"time"
)

// Wait blocks for d unless ctx ends first
func Wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Package waiter computes the delays between the attempts of a polling
// operation.
package waiter

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"time"
)

// ComputeDelay returns the delay before the given attempt, doubling from
// minDelay up to maxDelay with random jitter above minDelay. done reports
// that no attempt fits after this one in remainingTime. Attempt zero has no
// delay.
func ComputeDelay(attempt int64, minDelay, maxDelay, remainingTime time.Duration) (delay time.Duration, done bool, err error) {
	if minDelay > maxDelay {
		return 0, true, fmt.Errorf("maximum delay must be greater than minimum delay, %v > %v", minDelay, maxDelay)
	}
	if attempt <= 0 || remainingTime <= 0 || maxDelay < 1 {
		return 0, true, nil
	}
	if minDelay < 1 {
		minDelay = 1
	}

	delay = maxDelay
	if attempt <= doublings(minDelay, maxDelay) {
		delay = minDuration(maxDelay, minDelay<<uint(attempt-1))
	}
	if delay > minDelay {
		delay = minDelay + time.Duration(rand.Int63n(int64(delay-minDelay)))
	}

	if remainingTime-delay <= minDelay {
		// last attempt, use what is left of the wait
		delay = remainingTime - minDelay
		if delay < 0 {
			delay = 0
		}
		return delay, true, nil
	}
	return delay, false, nil
}

// SleepWithContext blocks for dur, or until ctx is done in which case the
// context's error is returned.
func SleepWithContext(ctx context.Context, dur time.Duration) error {
	timer := time.NewTimer(dur)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// doublings is the number of attempts before doubling minDelay passes
// maxDelay.
func doublings(minDelay, maxDelay time.Duration) int64 {
	return int64(math.Log2(float64(maxDelay/minDelay))) + 1
}

func minDuration(a, b time.Duration) time.Duration {
	if a < b {
		return a
	}
	return b
}

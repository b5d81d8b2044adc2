package bpost

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bpost/shm-go/logging"
	"github.com/bpost/shm-go/types"
	"github.com/bpost/shm-go/waiter"
)

// ErrWaitTimeout is returned by WaitUntilOrderStatus when the order did not
// reach the status within the maximum wait time.
var ErrWaitTimeout = errors.New("exceeded max wait time")

// WaitUntilOrderStatusOptions configures WaitUntilOrderStatus.
type WaitUntilOrderStatusOptions struct {
	// MinDelay is the minimum delay between attempts, defaults to 2s.
	MinDelay time.Duration

	// MaxDelay is the maximum delay between attempts, defaults to 30s.
	MaxDelay time.Duration

	// LogWaitAttempts logs each attempt at Debug level.
	LogWaitAttempts bool
}

// WaitUntilOrderStatus polls the order with the given reference until its
// status is status, or maxWait elapses.
func (c *Client) WaitUntilOrderStatus(ctx context.Context, reference string, status types.OrderStatus,
	maxWait time.Duration, optFns ...func(*WaitUntilOrderStatusOptions),
) (*types.Order, error) {
	const operation = "WaitUntilOrderStatus"

	if maxWait <= 0 {
		return nil, &OperationError{OperationName: operation, Err: fmt.Errorf("maximum wait time must be greater than zero")}
	}
	status, err := types.ParseOrderStatus(string(status))
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	options := WaitUntilOrderStatusOptions{
		MinDelay: 2 * time.Second,
		MaxDelay: 30 * time.Second,
	}
	for _, fn := range optFns {
		fn(&options)
	}
	if options.MaxDelay <= 0 {
		options.MaxDelay = 30 * time.Second
	}
	if options.MinDelay > options.MaxDelay {
		return nil, &OperationError{
			OperationName: operation,
			Err:           fmt.Errorf("minimum waiter delay %v must be lesser than or equal to maximum waiter delay of %v", options.MinDelay, options.MaxDelay),
		}
	}

	ctx, cancelFn := context.WithTimeout(ctx, maxWait)
	defer cancelFn()

	logger := logging.WithContext(ctx, c.options.Logger)
	remainingTime := maxWait

	var attempt int64
	for {
		attempt++
		start := time.Now()

		if options.LogWaitAttempts {
			logger.Logf(logging.Debug, "attempting waiter request, attempt count: %d", attempt)
		}

		order, err := c.FetchOrder(ctx, reference)
		if err != nil {
			return nil, err
		}
		if strings.EqualFold(string(order.Status), string(status)) {
			return order, nil
		}

		remainingTime -= time.Since(start)
		if remainingTime < options.MinDelay || remainingTime <= 0 {
			break
		}

		delay, _, err := waiter.ComputeDelay(attempt, options.MinDelay, options.MaxDelay, remainingTime)
		if err != nil {
			return nil, &OperationError{OperationName: operation, Err: fmt.Errorf("error computing waiter delay, %w", err)}
		}
		remainingTime -= delay

		if err := waiter.SleepWithContext(ctx, delay); err != nil {
			return nil, &OperationError{OperationName: operation, Err: fmt.Errorf("request cancelled while waiting, %w", err)}
		}
	}
	return nil, &OperationError{OperationName: operation, Err: ErrWaitTimeout}
}

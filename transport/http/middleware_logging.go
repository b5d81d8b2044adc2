package http

import (
	"context"
	"fmt"
	"time"

	"github.com/bpost/shm-go/logging"
	"github.com/bpost/shm-go/middleware"
	"github.com/bpost/shm-go/middleware/id"
)

// AddRequestLoggerMiddleware adds the middleware logging each request and
// the status it completed with, using the logger found on the context.
func AddRequestLoggerMiddleware(stack *middleware.Stack) error {
	return stack.Add(&requestLogger{}, middleware.After)
}

type requestLogger struct{}

func (*requestLogger) ID() string {
	return id.RequestLogger
}

func (m *requestLogger) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	req, ok := input.(*Request)
	if !ok {
		return nil, fmt.Errorf("unknown transport type %T", input)
	}

	logger := middleware.GetLogger(ctx)
	start := time.Now()

	out, err := next.Handle(ctx, input)
	if err != nil {
		logger.Logf(logging.Warn, "%s %s failed after %s, %v", req.Method, req.URL.Path, time.Since(start), err)
		return out, err
	}

	if resp, ok := out.(*Response); ok {
		logger.Logf(logging.Debug, "%s %s %d in %s", req.Method, req.URL.Path, resp.StatusCode, time.Since(start))
	}
	return out, nil
}

package http

import (
	"context"

	"github.com/bpost/shm-go/middleware"
	"github.com/bpost/shm-go/middleware/id"
)

// AddResponseErrorMiddleware adds the middleware that turns a response with
// a non 2xx status into a *ResponseError.
func AddResponseErrorMiddleware(stack *middleware.Stack) error {
	return stack.Add(&responseErrorMiddleware{}, middleware.After)
}

type responseErrorMiddleware struct{}

func (*responseErrorMiddleware) ID() string {
	return id.ResponseErrorHandler
}

func (m *responseErrorMiddleware) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	out, err := next.Handle(ctx, input)
	if err != nil {
		return out, err
	}

	if resp, ok := out.(*Response); ok {
		if err := CheckResponse(resp); err != nil {
			return out, err
		}
	}
	return out, nil
}

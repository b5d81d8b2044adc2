package http

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/bpost/shm-go/middleware"
	"github.com/bpost/shm-go/middleware/id"
)

// AddErrorCloseResponseBodyMiddleware adds the middleware to automatically
// close the response body of an operation request if the request response
// failed.
func AddErrorCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Add(&errorCloseResponseBodyMiddleware{}, middleware.Before)
}

type errorCloseResponseBodyMiddleware struct{}

func (*errorCloseResponseBodyMiddleware) ID() string {
	return id.ErrorCloseResponseBody
}

func (m *errorCloseResponseBodyMiddleware) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	out, err := next.Handle(ctx, input)
	if err != nil {
		if resp, ok := out.(*Response); ok {
			// Do not validate that the response closes successfully.
			EnsureBodyClosed(resp)
		}
	}

	return out, err
}

// AddCloseResponseBodyMiddleware adds the middleware to read the response
// body to completion and close the transport stream. The returned response
// carries an in memory copy of the body.
func AddCloseResponseBodyMiddleware(stack *middleware.Stack) error {
	return stack.Add(&closeResponseBody{}, middleware.After)
}

type closeResponseBody struct{}

func (*closeResponseBody) ID() string {
	return id.CloseResponseBody
}

func (m *closeResponseBody) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	out, err := next.Handle(ctx, input)
	if err != nil {
		return out, err
	}

	resp, ok := out.(*Response)
	if !ok || resp.Body == nil {
		return out, nil
	}

	body, err := io.ReadAll(resp.Body)
	if cerr := resp.Body.Close(); err == nil && cerr != nil {
		err = fmt.Errorf("close response body failed, %w", cerr)
	}
	if err != nil {
		return out, fmt.Errorf("failed to read response body, %w", err)
	}
	resp.Body = io.NopCloser(bytes.NewReader(body))

	return resp, nil
}

package http

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/bpost/shm-go/middleware"
	"github.com/bpost/shm-go/middleware/id"
)

// AddUserAgentMiddleware adds the middleware setting the User-Agent header
// of every request to value.
func AddUserAgentMiddleware(stack *middleware.Stack, value string) error {
	return stack.Add(&userAgentMiddleware{value: value}, middleware.After)
}

type userAgentMiddleware struct {
	value string
}

func (*userAgentMiddleware) ID() string {
	return id.UserAgent
}

func (m *userAgentMiddleware) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	req, ok := input.(*Request)
	if !ok {
		return nil, fmt.Errorf("unknown transport type %T", input)
	}

	req.Header.Set("User-Agent", m.value)
	return next.Handle(ctx, req)
}

// AddBasicAuthMiddleware adds the middleware signing every request with
// the Basic Authorization header for the given credentials.
func AddBasicAuthMiddleware(stack *middleware.Stack, username, password string) error {
	return stack.Add(&basicAuthMiddleware{
		value: "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password)),
	}, middleware.After)
}

type basicAuthMiddleware struct {
	value string
}

func (*basicAuthMiddleware) ID() string {
	return id.BasicAuth
}

func (m *basicAuthMiddleware) HandleMiddleware(
	ctx context.Context, input interface{}, next middleware.Handler,
) (
	output interface{}, err error,
) {
	req, ok := input.(*Request)
	if !ok {
		return nil, fmt.Errorf("unknown transport type %T", input)
	}

	req.Header.Set("Authorization", m.value)
	return next.Handle(ctx, req)
}

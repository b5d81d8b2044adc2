package bpost

import (
	"context"
	"net/http"

	"github.com/bpost/shm-go/types"
)

// FetchOrder returns the order with the given reference.
//
// Attributes are not read back, so notifications come back in Dutch and an
// additional insurance at level 1, whatever was sent.
func (c *Client) FetchOrder(ctx context.Context, reference string) (*types.Order, error) {
	const operation = "FetchOrder"

	if len(reference) == 0 {
		return nil, &OperationError{OperationName: operation, Err: errNilParam("reference")}
	}

	resp, err := c.invoke(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      "/orders/{reference}",
		uri:       map[string]string{"reference": reference},
	})
	if err != nil {
		return nil, err
	}

	// the document root may be the order element or a wrapper around it.
	m, err := c.decode(resp, "order || @")
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	order, err := types.OrderFromMapping(m)
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}
	return order, nil
}

package bpost

import (
	"context"
	"net/http"

	"github.com/bpost/shm-go/types"
)

// CreateOrReplaceOrder creates the order, or replaces the order with the
// same reference.
func (c *Client) CreateOrReplaceOrder(ctx context.Context, order *types.Order) error {
	const operation = "CreateOrReplaceOrder"

	if order == nil {
		return &OperationError{OperationName: operation, Err: errNilParam("order")}
	}
	if err := order.Validate(); err != nil {
		return &OperationError{OperationName: operation, Err: err}
	}

	doc, err := c.encoder.EncodeDocument("order", order.XMLValue(c.options.AccountID))
	if err != nil {
		return &OperationError{OperationName: operation, Err: err}
	}

	_, err = c.invoke(ctx, request{
		operation:   operation,
		method:      http.MethodPost,
		path:        "/orders",
		contentType: contentTypeOrder,
		body:        doc,
	})
	return err
}

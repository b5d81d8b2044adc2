package bpost

import (
	"context"
	"net/http"

	"github.com/bpost/shm-go/types"
	"github.com/bpost/shm-go/xml"
)

// CreateOrderAndNationalLabel creates the order and its labels in one call.
func (c *Client) CreateOrderAndNationalLabel(ctx context.Context, order *types.Order, amount int) (*types.LabelEntry, error) {
	const operation = "CreateOrderAndNationalLabel"

	if order == nil {
		return nil, &OperationError{OperationName: operation, Err: errNilParam("order")}
	}
	if amount < 1 {
		return nil, &OperationError{
			OperationName: operation,
			Err:           &types.InvalidValueError{Field: "labelAmount", Value: amount, Reason: "must be at least 1"},
		}
	}
	if err := order.Validate(); err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	doc, err := c.encoder.EncodeDocument("orderWithLabelAmount", namespaced(xml.Record{
		{Name: "order", Value: order.XMLValue(c.options.AccountID)},
		{Name: "labelAmount", Value: xml.Int(int64(amount))},
	}))
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	resp, err := c.invoke(ctx, request{
		operation:   operation,
		method:      http.MethodPost,
		path:        "/orderAndLabels",
		contentType: contentTypeOrderAndNatLabels,
		body:        doc,
	})
	if err != nil {
		return nil, err
	}

	return c.labelEntry(operation, resp)
}

// CreateOrderAndInternationalLabel is not supported and returns
// ErrNotImplemented.
func (c *Client) CreateOrderAndInternationalLabel(ctx context.Context, order *types.Order) (*types.LabelEntry, error) {
	return nil, &OperationError{OperationName: "CreateOrderAndInternationalLabel", Err: ErrNotImplemented}
}

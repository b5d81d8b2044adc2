package bpost

import (
	"context"
	"net/http"

	"github.com/bpost/shm-go/types"
	"github.com/bpost/shm-go/xml"
)

// ModifyOrderStatus sets the status of the order with the given reference.
// The status is matched without regard to case.
func (c *Client) ModifyOrderStatus(ctx context.Context, reference string, status types.OrderStatus) error {
	const operation = "ModifyOrderStatus"

	if len(reference) == 0 {
		return &OperationError{OperationName: operation, Err: errNilParam("reference")}
	}
	status, err := types.ParseOrderStatus(string(status))
	if err != nil {
		return &OperationError{OperationName: operation, Err: err}
	}

	doc, err := c.encoder.EncodeDocument("orderStatusMap", namespaced(xml.Record{
		{Name: "entry", Value: xml.Record{
			{Name: "orderReference", Value: xml.String(reference)},
			{Name: "status", Value: xml.String(string(status))},
		}},
	}))
	if err != nil {
		return &OperationError{OperationName: operation, Err: err}
	}

	_, err = c.invoke(ctx, request{
		operation:   operation,
		method:      http.MethodPut,
		path:        "/orders/status",
		header:      http.Header{methodOverrideHeader: []string{http.MethodPatch}},
		contentType: contentTypeOrderStatus,
		body:        doc,
	})
	return err
}

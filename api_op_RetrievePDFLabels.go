package bpost

import (
	"context"
	"net/http"
	"sync"

	"github.com/bpost/shm-go/types"
	"golang.org/x/sync/errgroup"
)

// RetrievePDFLabelsForBox returns the label document of the box with the
// given barcode. An empty format leaves the account default.
func (c *Client) RetrievePDFLabelsForBox(ctx context.Context, barcode string, format types.LabelFormat) ([]byte, error) {
	const operation = "RetrievePDFLabelsForBox"

	if len(barcode) == 0 {
		return nil, &OperationError{OperationName: operation, Err: errNilParam("barcode")}
	}
	return c.retrievePDF(ctx, operation, "/labels/{barcode}/pdf", map[string]string{"barcode": barcode}, format)
}

// RetrievePDFLabelsForOrder returns the label document of every box of the
// order with the given reference.
func (c *Client) RetrievePDFLabelsForOrder(ctx context.Context, reference string, format types.LabelFormat) ([]byte, error) {
	const operation = "RetrievePDFLabelsForOrder"

	if len(reference) == 0 {
		return nil, &OperationError{OperationName: operation, Err: errNilParam("reference")}
	}
	return c.retrievePDF(ctx, operation, "/orders/{reference}/pdf", map[string]string{"reference": reference}, format)
}

// RetrievePDFLabelsForBoxes retrieves the label documents of the boxes
// concurrently, at most Options.MaxConcurrency at a time. The documents are
// keyed by barcode. The first failure cancels the remaining calls and is
// returned.
func (c *Client) RetrievePDFLabelsForBoxes(ctx context.Context, barcodes []string, format types.LabelFormat) (map[string][]byte, error) {
	if len(format) != 0 {
		if err := format.Validate(); err != nil {
			return nil, &OperationError{OperationName: "RetrievePDFLabelsForBoxes", Err: err}
		}
	}

	var mu sync.Mutex
	labels := make(map[string][]byte, len(barcodes))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.options.MaxConcurrency)
	for _, barcode := range barcodes {
		barcode := barcode
		g.Go(func() error {
			b, err := c.RetrievePDFLabelsForBox(ctx, barcode, format)
			if err != nil {
				return err
			}

			mu.Lock()
			defer mu.Unlock()
			labels[barcode] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return labels, nil
}

func (c *Client) retrievePDF(ctx context.Context, operation, path string, uri map[string]string,
	format types.LabelFormat,
) ([]byte, error) {
	if len(format) != 0 {
		if err := format.Validate(); err != nil {
			return nil, &OperationError{OperationName: operation, Err: err}
		}
	}

	resp, err := c.invoke(ctx, request{
		operation: operation,
		method:    http.MethodGet,
		path:      path,
		uri:       uri,
		query:     labelFormatQuery(format),
		header:    http.Header{"Accept": []string{contentTypePDF}},
	})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

package bpost

import (
	"context"
	"net/http"
	"net/url"

	"github.com/bpost/shm-go/types"
	"github.com/bpost/shm-go/xml"
)

// labelEntryExpression selects the entry of a label response, the first one
// when a schema table makes entry a repeated field.
const labelEntryExpression = "entry[0] || entry"

// CreateNationalLabelInput holds the parameters of CreateNationalLabel.
type CreateNationalLabelInput struct {
	// Reference of the order to create labels for.
	Reference string

	// Amount of labels.
	Amount int

	// WithRetour requests return labels.
	WithRetour *bool

	// ReturnLabels requests the label documents in the response.
	ReturnLabels *bool

	// LabelFormat is left to the account default when empty.
	LabelFormat types.LabelFormat
}

func (in *CreateNationalLabelInput) validate() error {
	if in == nil {
		return errNilParam("params")
	}
	if len(in.Reference) == 0 {
		return errNilParam("Reference")
	}
	if in.Amount < 1 {
		return &types.InvalidValueError{Field: "labelAmount", Value: in.Amount, Reason: "must be at least 1"}
	}
	if len(in.LabelFormat) != 0 {
		return in.LabelFormat.Validate()
	}
	return nil
}

// CreateNationalLabel creates labels for an existing national order.
func (c *Client) CreateNationalLabel(ctx context.Context, params *CreateNationalLabelInput) (*types.LabelEntry, error) {
	const operation = "CreateNationalLabel"

	if err := params.validate(); err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	entry := xml.Record{
		{Name: "orderReference", Value: xml.String(params.Reference)},
		{Name: "labelAmount", Value: xml.Int(int64(params.Amount))},
	}
	if params.WithRetour != nil {
		entry.Set("withRetour", xml.Bool(*params.WithRetour))
	}
	if params.ReturnLabels != nil {
		flag := "0"
		if *params.ReturnLabels {
			flag = "1"
		}
		entry.Set("returnLabels", xml.String(flag))
	}

	doc, err := c.encoder.EncodeDocument("orderRefLabelAmountMap", namespaced(xml.Record{
		{Name: "entry", Value: entry},
	}))
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	resp, err := c.invoke(ctx, request{
		operation:   operation,
		method:      http.MethodPost,
		path:        "/labels",
		query:       labelFormatQuery(params.LabelFormat),
		contentType: contentTypeNationalLabel,
		body:        doc,
	})
	if err != nil {
		return nil, err
	}

	return c.labelEntry(operation, resp)
}

// CreateInternationalLabelInput holds the parameters of
// CreateInternationalLabel.
type CreateInternationalLabelInput struct {
	Reference    string
	ReturnLabels *bool
}

// CreateInternationalLabel is not supported and returns ErrNotImplemented.
func (c *Client) CreateInternationalLabel(ctx context.Context, params *CreateInternationalLabelInput) (*types.LabelEntry, error) {
	return nil, &OperationError{OperationName: "CreateInternationalLabel", Err: ErrNotImplemented}
}

func (c *Client) labelEntry(operation string, resp *response) (*types.LabelEntry, error) {
	m, err := c.decode(resp, labelEntryExpression)
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}

	entry, err := types.LabelEntryFromMapping(m)
	if err != nil {
		return nil, &OperationError{OperationName: operation, Err: err}
	}
	return entry, nil
}

func labelFormatQuery(format types.LabelFormat) url.Values {
	if len(format) == 0 {
		return nil
	}
	return url.Values{"labelFormat": []string{string(format)}}
}

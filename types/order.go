package types

import (
	"github.com/bpost/shm-go/xml"
)

// Namespace is the XML namespace of the Shipping Manager documents.
const Namespace = "http://schema.post.be/shm/deepintegration/v2/"

// OrderLine is a line of an order.
type OrderLine struct {
	Text      string `mapstructure:"text"`
	NbOfItems int    `mapstructure:"nbOfItems"`
}

// Order is a shipping order.
type Order struct {
	Reference      string
	Status         OrderStatus
	CostCenter     string
	Lines          []OrderLine
	Customer       *Customer
	DeliveryMethod DeliveryMethod

	// Total is the total price of the order in eurocents.
	Total *int64
}

// NewOrder returns an order with the given reference.
func NewOrder(reference string) *Order {
	return &Order{Reference: reference}
}

// AddOrderLine appends a line to the order.
func (o *Order) AddOrderLine(text string, nbOfItems int) {
	o.Lines = append(o.Lines, OrderLine{Text: text, NbOfItems: nbOfItems})
}

// SetTotal sets the total price of the order in eurocents.
func (o *Order) SetTotal(total int64) {
	o.Total = &total
}

// XMLValue returns the order element content for the account, the
// document namespace set on the element.
func (o *Order) XMLValue(accountID string) xml.Value {
	r := xml.Record{{Name: "accountId", Value: xml.String(accountID)}}
	setString(&r, "orderReference", o.Reference)
	setString(&r, "status", string(o.Status))
	setString(&r, "costCenter", o.CostCenter)

	if len(o.Lines) != 0 {
		group := make(xml.RepeatedGroup, 0, len(o.Lines))
		for _, l := range o.Lines {
			group = append(group, xml.Record{
				{Name: "text", Value: xml.String(l.Text)},
				{Name: "nbOfItems", Value: xml.Int(int64(l.NbOfItems))},
			})
		}
		r.Set("orderLine", group)
	}

	if o.Customer != nil {
		r.Set("customer", o.Customer.XMLValue())
	}
	if o.DeliveryMethod != nil {
		r.Set("deliveryMethod", o.DeliveryMethod.XMLValue())
	}
	if o.Total != nil {
		r.Set("totalPrice", xml.Int(*o.Total))
	}

	return xml.Attributed{
		Attr:  []xml.Attr{*xml.NewNamespaceAttribute("", Namespace)},
		Value: r,
	}
}

// Validate reports every invalid value of the order and its parts.
func (o *Order) Validate() error {
	var v validator
	v.required("orderReference", o.Reference)
	if len(o.Status) != 0 {
		v.add(o.Status.Validate())
	}
	for _, l := range o.Lines {
		if l.NbOfItems < 0 {
			v.add(&InvalidValueError{Field: "nbOfItems", Value: l.NbOfItems, Reason: "must not be negative"})
		}
	}
	if o.Customer != nil {
		o.Customer.validate(&v)
	}
	if o.DeliveryMethod != nil {
		v.add(o.DeliveryMethod.Validate())
	}
	if o.Total != nil && *o.Total < 0 {
		v.add(&InvalidValueError{Field: "totalPrice", Value: *o.Total, Reason: "must not be negative"})
	}
	return v.err()
}

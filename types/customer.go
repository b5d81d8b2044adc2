package types

import (
	"github.com/bpost/shm-go/xml"
)

// Customer is the receiver of an order.
type Customer struct {
	FirstName       string   `mapstructure:"firstName"`
	LastName        string   `mapstructure:"lastName"`
	DeliveryAddress *Address `mapstructure:"deliveryAddress"`
	Email           string   `mapstructure:"email"`
	PhoneNumber     string   `mapstructure:"phoneNumber"`
}

// NewCustomer returns a customer with the given name.
func NewCustomer(firstName, lastName string) *Customer {
	return &Customer{FirstName: firstName, LastName: lastName}
}

// XMLValue returns the customer fields in schema order.
func (c *Customer) XMLValue() xml.Value {
	var r xml.Record
	setString(&r, "firstName", c.FirstName)
	setString(&r, "lastName", c.LastName)
	if c.DeliveryAddress != nil {
		r.Set("deliveryAddress", c.DeliveryAddress.XMLValue())
	}
	setString(&r, "email", c.Email)
	setString(&r, "phoneNumber", c.PhoneNumber)
	return r
}

// Validate reports the fields exceeding the carrier's length limits.
func (c *Customer) Validate() error {
	var v validator
	c.validate(&v)
	return v.err()
}

func (c *Customer) validate(v *validator) {
	v.maxLength("firstName", c.FirstName, 40)
	v.maxLength("lastName", c.LastName, 40)
	v.maxLength("email", c.Email, 50)
	v.maxLength("phoneNumber", c.PhoneNumber, 20)
	if c.DeliveryAddress != nil {
		c.DeliveryAddress.validate(v)
	}
}

package types

import (
	"github.com/bpost/shm-go/xml"
)

// DefaultCountryCode is the country code of addresses built by NewAddress.
const DefaultCountryCode = "BE"

// Address is a postal address.
type Address struct {
	StreetName  string `mapstructure:"streetName"`
	Number      string `mapstructure:"number"`
	Box         string `mapstructure:"box"`
	PostalCode  string `mapstructure:"postalCode"`
	Locality    string `mapstructure:"locality"`
	CountryCode string `mapstructure:"countryCode"`
}

// NewAddress returns a Belgian address.
func NewAddress(streetName, number, postalCode, locality string) *Address {
	return &Address{
		StreetName:  streetName,
		Number:      number,
		PostalCode:  postalCode,
		Locality:    locality,
		CountryCode: DefaultCountryCode,
	}
}

// XMLValue returns the address fields in schema order. Empty fields are
// left out.
func (a *Address) XMLValue() xml.Value {
	var r xml.Record
	setString(&r, "streetName", a.StreetName)
	setString(&r, "number", a.Number)
	setString(&r, "box", a.Box)
	setString(&r, "postalCode", a.PostalCode)
	setString(&r, "locality", a.Locality)
	setString(&r, "countryCode", a.CountryCode)
	return r
}

// Validate reports the fields exceeding the carrier's length limits.
func (a *Address) Validate() error {
	var v validator
	a.validate(&v)
	return v.err()
}

func (a *Address) validate(v *validator) {
	v.maxLength("streetName", a.StreetName, 40)
	v.maxLength("number", a.Number, 8)
	v.maxLength("box", a.Box, 8)
	v.maxLength("postalCode", a.PostalCode, 8)
	v.maxLength("locality", a.Locality, 40)
	v.maxLength("countryCode", a.CountryCode, 2)
}

// setString adds the field when value is not empty.
func setString(r *xml.Record, name, value string) {
	if len(value) != 0 {
		r.Set(name, xml.String(value))
	}
}

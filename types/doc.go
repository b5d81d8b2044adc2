// Package types provides the domain model of the Shipping Manager API:
// orders, customers, addresses, delivery methods and notifications.
//
// Every entity renders itself to an xml.Value for the request documents,
// reports invalid values with Validate, and the order can be rebuilt from
// the mapping the xml.Decoder returns for a response.
package types

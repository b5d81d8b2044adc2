// Package bpost provides a client for the bpost Shipping Manager API.
//
// The client creates and modifies shipping orders and retrieves their
// labels. Requests are XML documents built with the xml package from the
// domain model of the types package, and responses are decoded back into
// it.
//
//	client := bpost.New(bpost.Options{
//		AccountID:  "107423",
//		Passphrase: "secret",
//	})
//
//	order := types.NewOrder("REF1")
//	order.AddOrderLine("Beer", 2)
//	if err := client.CreateOrReplaceOrder(ctx, order); err != nil {
//		return err
//	}
package bpost

// Version is the version of the client, sent in the User-Agent header.
const Version = "1.0.0"

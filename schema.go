package bpost

import (
	"github.com/bpost/shm-go/types"
	"github.com/bpost/shm-go/xml"
)

// Namespace is the XML namespace of the request documents.
const Namespace = types.Namespace

// Field tables of the v2 schema. Options copy them when left unset, a
// different schema version can override them with the Options fields.
var (
	// DefaultRepeatedFields are the elements decoded as lists regardless of
	// how many times they occur.
	DefaultRepeatedFields = []string{"barcode", "orderLine"}

	// DefaultIntegerFields are the elements decoded as integers.
	DefaultIntegerFields = []string{"totalPrice"}

	// DefaultRepeatedGroups are the list fields encoded as repeated groups.
	DefaultRepeatedGroups = []string{"orderLine"}
)

// Content types of the request and response documents.
const (
	contentTypeOrder             = "application/vnd.bpost.shm-order-v2+XML"
	contentTypeOrderStatus       = "application/vnd.bpost.shm-order-status-v2+XML"
	contentTypeNationalLabel     = "application/vnd.bpost.shm-nat-label-v2+XML"
	contentTypeOrderAndNatLabels = "application/vnd.bpost.shm-orderAndNatLabels-v2+XML"
	contentTypePDF               = "application/vnd.bpost.shm-pdf-v2+XML"
	businessExceptionRootElement = "businessException"
	methodOverrideHeader         = "X-HTTP-Method-Override"
)

func fieldSet(names []string, defaults []string) xml.FieldSet {
	if names == nil {
		names = defaults
	}
	return xml.NewFieldSet(names...)
}

// namespaced sets the document namespace on the root element content.
func namespaced(r xml.Record) xml.Value {
	return xml.Attributed{
		Attr:  []xml.Attr{*xml.NewNamespaceAttribute("", Namespace)},
		Value: r,
	}
}

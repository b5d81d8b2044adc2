package types

import (
	"encoding/base64"
	"fmt"
)

// LabelEntry is a label created for an order.
type LabelEntry struct {
	OrderReference string   `mapstructure:"orderReference"`
	Barcodes       []string `mapstructure:"barcode"`
	MimeType       string   `mapstructure:"mimeType"`

	// Bytes is the base64 encoded label document.
	Bytes string `mapstructure:"bytes"`
}

// Document returns the decoded label document.
func (e *LabelEntry) Document() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(e.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to decode label document, %w", err)
	}
	return b, nil
}

// LabelEntryFromMapping returns the label entry held by a decoded entry
// element.
func LabelEntryFromMapping(m map[string]interface{}) (*LabelEntry, error) {
	var e LabelEntry
	if err := decodeMapping(m, &e); err != nil {
		return nil, fmt.Errorf("failed to decode label entry, %w", err)
	}
	return &e, nil
}

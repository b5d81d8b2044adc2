package xml

import (
	"strconv"
)

// defaultNilAttribute is the attribute marking an element as null.
const defaultNilAttribute = "nil"

// DecoderOptions configures a Decoder.
type DecoderOptions struct {
	// RepeatedFields names the elements that always decode to a list,
	// whatever number of occurrences the document holds.
	RepeatedFields FieldSet

	// IntegerFields names the elements that always decode to an int64.
	IntegerFields FieldSet

	// NilAttribute is the local name of the attribute which, set to
	// `true`, marks an element as null. Defaults to `nil`.
	NilAttribute string
}

// Decoder converts parsed XML elements into nested mappings.
//
// The wire format gives no hint to tell a singular field from a single
// element list, or a string from an integer, so the Decoder relies on
// the fixed field tables of its options instead of the document shape.
// A Decoder holds no state between calls and is safe for concurrent use.
type Decoder struct {
	options DecoderOptions
}

// NewDecoder returns an XML decoder.
func NewDecoder(optFns ...func(*DecoderOptions)) *Decoder {
	options := DecoderOptions{NilAttribute: defaultNilAttribute}
	for _, fn := range optFns {
		fn(&options)
	}
	if len(options.NilAttribute) == 0 {
		options.NilAttribute = defaultNilAttribute
	}
	return &Decoder{options: options}
}

// Decode returns the mapping for the child elements of n. Values in the
// mapping are nil, bool, int64, string, a nested mapping, or a
// []interface{} for repeated fields.
//
// Decode returns ErrInvalidInput if n is not an element.
func (d *Decoder) Decode(n *Node) (map[string]interface{}, error) {
	if n == nil || n.Name.isZero() {
		return nil, ErrInvalidInput
	}

	m := map[string]interface{}{}
	for _, c := range n.Children {
		key := c.Name.Local
		repeated := d.options.RepeatedFields.Has(key)

		if d.isNil(c) {
			m[key] = nil
			continue
		}

		v, err := d.decodeChild(c, repeated)
		if err != nil {
			return nil, err
		}

		if repeated {
			l, _ := m[key].([]interface{})
			m[key] = append(l, v)
			continue
		}

		// duplicate siblings overwrite each other, the last one wins.
		m[key] = v
	}
	return m, nil
}

func (d *Decoder) isNil(n *Node) bool {
	v, ok := n.Attribute(d.options.NilAttribute)
	return ok && v == "true"
}

// decodeChild returns the value of a single child element.
//
// An empty element decodes to an empty mapping, as an empty leaf and an
// empty container look the same on the wire.
func (d *Decoder) decodeChild(c *Node, repeated bool) (interface{}, error) {
	if c.IsEmpty() {
		return d.Decode(c)
	}

	text := c.TrimmedText()
	if len(c.Children) != 0 {
		if len(text) != 0 {
			return nil, &MixedContentError{Name: c.Name.Local}
		}
		return d.Decode(c)
	}

	switch {
	case repeated:
		return text, nil
	case text == "true":
		return true, nil
	case text == "false":
		return false, nil
	case d.options.IntegerFields.Has(c.Name.Local):
		i, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, &IntegerFieldError{Name: c.Name.Local, Text: text, Err: err}
		}
		return i, nil
	default:
		return text, nil
	}
}

package xml

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// cdataCharacters are the characters that make a string be written as a
// CDATA section rather than plain text.
const cdataCharacters = `&<>"'`

// EncoderOptions configures an Encoder.
type EncoderOptions struct {
	// Prefix is prepended to every emitted element name as `prefix:name`.
	Prefix string

	// RepeatedGroups names the fields whose List value is encoded as a
	// RepeatedGroup.
	RepeatedGroups FieldSet

	// Indent is used by EncodeDocument when rendering the document.
	Indent string
}

// Encoder builds XML element trees from Values.
//
// An Encoder holds no state between calls and is safe for concurrent use.
type Encoder struct {
	options EncoderOptions
}

// NewEncoder returns an XML encoder. The default document indent is two
// spaces.
func NewEncoder(optFns ...func(*EncoderOptions)) *Encoder {
	options := EncoderOptions{Indent: "  "}
	for _, fn := range optFns {
		fn(&options)
	}
	return &Encoder{options: options}
}

// EncodeDocument encodes v as the root element of a new document.
func (e *Encoder) EncodeDocument(root string, v Value) (*Document, error) {
	nodes, err := e.Encode(root, v)
	if err != nil {
		return nil, err
	}
	if len(nodes) != 1 {
		return nil, fmt.Errorf("document root %q must encode to one element, got %d", root, len(nodes))
	}
	return &Document{Root: nodes[0], Indent: e.options.Indent}, nil
}

// Encode returns the elements for the named value, for the caller to
// attach. A null value yields no elements, a repeated group yields one
// element per entry and any other value yields exactly one element.
func (e *Encoder) Encode(name string, v Value) ([]*Node, error) {
	switch tv := v.(type) {
	case RepeatedGroup:
		return e.encodeGroup(name, tv)

	case List:
		if e.options.RepeatedGroups.Has(name) {
			group, err := toGroup(name, tv)
			if err != nil {
				return nil, err
			}
			return e.encodeGroup(name, group)
		}

	case Scalar:
		if tv.V == nil {
			return nil, nil
		}

	case Null, nil:
		return nil, nil
	}

	el := e.newElement(name)
	if err := e.encodeContent(el, v); err != nil {
		return nil, err
	}
	return []*Node{el}, nil
}

func (e *Encoder) newElement(name string) *Node {
	return NewNode(Name{Space: e.options.Prefix, Local: name})
}

// encodeContent writes v as the content of el.
func (e *Encoder) encodeContent(el *Node, v Value) error {
	switch tv := v.(type) {
	case Scalar:
		return encodeScalar(el, tv.V)

	case Attributed:
		el.Attr = append(el.Attr, tv.Attr...)
		switch tv.Value.(type) {
		case nil, Null:
			return nil
		}
		return e.encodeContent(el, tv.Value)

	case Record:
		return e.encodeFields(el, tv)

	case List:
		// list entries are flattened into el, entries without fields have
		// nothing to emit.
		for _, entry := range tv {
			r, ok := entry.(Record)
			if !ok {
				continue
			}
			if err := e.encodeFields(el, r); err != nil {
				return err
			}
		}
		return nil

	case Null, nil:
		return nil

	default:
		return fmt.Errorf("value %T cannot be the content of element %q", v, el.Name.Local)
	}
}

func (e *Encoder) encodeFields(el *Node, r Record) error {
	for _, f := range r {
		nodes, err := e.Encode(f.Name, f.Value)
		if err != nil {
			return err
		}
		el.AddChild(nodes...)
	}
	return nil
}

// encodeGroup emits one element per entry, with a leaf element per entry
// field. Null fields emit an empty leaf.
func (e *Encoder) encodeGroup(name string, group RepeatedGroup) ([]*Node, error) {
	nodes := make([]*Node, 0, len(group))
	for _, entry := range group {
		el := e.newElement(name)
		for _, f := range entry {
			leaf := e.newElement(f.Name)
			switch fv := f.Value.(type) {
			case Null, nil:
			case Scalar:
				if fv.V == nil {
					break
				}
				if err := encodeScalar(leaf, fv.V); err != nil {
					return nil, err
				}
			default:
				return nil, &GroupEntryError{Group: name, Field: f.Name, Value: f.Value}
			}
			el.AddChild(leaf)
		}
		nodes = append(nodes, el)
	}
	return nodes, nil
}

func toGroup(name string, l List) (RepeatedGroup, error) {
	group := make(RepeatedGroup, 0, len(l))
	for _, entry := range l {
		r, ok := entry.(Record)
		if !ok {
			return nil, &GroupEntryError{Group: name, Value: entry}
		}
		group = append(group, r)
	}
	return group, nil
}

// encodeScalar sets the text of el from v by runtime type.
func encodeScalar(el *Node, v interface{}) error {
	switch tv := v.(type) {
	case bool:
		el.SetText(strconv.FormatBool(tv))
	case int:
		el.SetText(strconv.FormatInt(int64(tv), 10))
	case int8:
		el.SetText(strconv.FormatInt(int64(tv), 10))
	case int16:
		el.SetText(strconv.FormatInt(int64(tv), 10))
	case int32:
		el.SetText(strconv.FormatInt(int64(tv), 10))
	case int64:
		el.SetText(strconv.FormatInt(tv, 10))
	case uint:
		el.SetText(strconv.FormatUint(uint64(tv), 10))
	case uint8:
		el.SetText(strconv.FormatUint(uint64(tv), 10))
	case uint16:
		el.SetText(strconv.FormatUint(uint64(tv), 10))
	case uint32:
		el.SetText(strconv.FormatUint(uint64(tv), 10))
	case uint64:
		el.SetText(strconv.FormatUint(tv, 10))
	case float32:
		return encodeFloat(el, float64(tv), 32)
	case float64:
		return encodeFloat(el, tv, 64)
	case string:
		if strings.ContainsAny(tv, cdataCharacters) {
			el.SetCDATA(tv)
		} else {
			el.SetText(tv)
		}
	default:
		return &UnsupportedTypeError{Name: el.Name.Local, Value: v}
	}
	return nil
}

// encodeFloat writes v the way the standard library xml encoder does,
// switching to exponent form for very small and very large magnitudes.
func encodeFloat(el *Node, v float64, bits int) error {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return &InvalidFloatError{Name: el.Name.Local, Value: v}
	}

	abs := math.Abs(v)
	format := byte('f')

	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) || bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}

	dst := strconv.AppendFloat(nil, v, format, -1, bits)

	if format == 'e' {
		// clean up e-09 to e-9
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}

	el.SetText(string(dst))
	return nil
}

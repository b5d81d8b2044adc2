package xml

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned by the Decoder when it is handed something
// other than a parsed element node.
var ErrInvalidInput = errors.New("invalid input, expect a parsed xml element")

// UnsupportedTypeError is returned by the Encoder when a Scalar wraps a
// value of a type the wire format has no representation for.
type UnsupportedTypeError struct {
	Name  string
	Value interface{}
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("unsupported scalar type %T for element %q", e.Value, e.Name)
}

// InvalidFloatError is returned by the Encoder for NaN and infinite floats.
type InvalidFloatError struct {
	Name  string
	Value float64
}

func (e *InvalidFloatError) Error() string {
	return fmt.Sprintf("invalid float value %v for element %q", e.Value, e.Name)
}

// GroupEntryError is returned by the Encoder when a repeated group holds
// something other than flat records of scalars.
type GroupEntryError struct {
	Group string
	Field string
	Value Value
}

func (e *GroupEntryError) Error() string {
	if len(e.Field) == 0 {
		return fmt.Sprintf("repeated group %q entry must be a record, got %T", e.Group, e.Value)
	}
	return fmt.Sprintf("repeated group %q field %q must be a scalar, got %T", e.Group, e.Field, e.Value)
}

// MixedContentError is returned by the Decoder for an element holding both
// text and child elements.
type MixedContentError struct {
	Name string
}

func (e *MixedContentError) Error() string {
	return fmt.Sprintf("element %q has both text and child elements", e.Name)
}

// IntegerFieldError is returned by the Decoder when an integer field holds
// text that is not a base 10 integer.
type IntegerFieldError struct {
	Name string
	Text string
	Err  error
}

func (e *IntegerFieldError) Error() string {
	return fmt.Sprintf("integer field %q has non numeric value %q, %v", e.Name, e.Text, e.Err)
}

func (e *IntegerFieldError) Unwrap() error {
	return e.Err
}

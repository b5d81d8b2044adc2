package types

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

// InvalidValueError is returned for a field value the carrier would
// reject.
type InvalidValueError struct {
	Field  string
	Value  interface{}
	Reason string
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("invalid value (%v) for %s, %s", e.Value, e.Field, e.Reason)
}

// UnknownDeliveryMethodError is returned when a response holds a delivery
// method the client does not model.
type UnknownDeliveryMethodError struct {
	Names []string
}

func (e *UnknownDeliveryMethodError) Error() string {
	return fmt.Sprintf("unknown delivery method %s", strings.Join(e.Names, ", "))
}

// validator collects the problems found while validating an entity.
type validator struct {
	errs *multierror.Error
}

func (v *validator) add(err error) {
	if err != nil {
		v.errs = multierror.Append(v.errs, err)
	}
}

func (v *validator) required(field, value string) {
	if len(value) == 0 {
		v.add(&InvalidValueError{Field: field, Value: value, Reason: "value is required"})
	}
}

func (v *validator) maxLength(field, value string, max int) {
	if utf8.RuneCountInString(value) > max {
		v.add(&InvalidValueError{
			Field:  field,
			Value:  value,
			Reason: fmt.Sprintf("maximum length is %d", max),
		})
	}
}

func (v *validator) oneOf(field, value string, allowed []string) {
	for _, a := range allowed {
		if value == a {
			return
		}
	}
	v.add(&InvalidValueError{
		Field:  field,
		Value:  value,
		Reason: "allowed values are: " + strings.Join(allowed, ", "),
	})
}

func (v *validator) err() error {
	return v.errs.ErrorOrNil()
}

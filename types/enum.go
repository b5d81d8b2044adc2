package types

import (
	"strings"
)

// OrderStatus is the processing state of an order.
type OrderStatus string

// Enumeration values for OrderStatus.
const (
	OrderStatusOpen      OrderStatus = "OPEN"
	OrderStatusPending   OrderStatus = "PENDING"
	OrderStatusCancelled OrderStatus = "CANCELLED"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusOnHold    OrderStatus = "ON-HOLD"
)

// Values returns all known values for OrderStatus.
func (OrderStatus) Values() []OrderStatus {
	return []OrderStatus{
		OrderStatusOpen,
		OrderStatusPending,
		OrderStatusCancelled,
		OrderStatusCompleted,
		OrderStatusOnHold,
	}
}

// Validate returns an *InvalidValueError if s is not a known status.
func (s OrderStatus) Validate() error {
	var v validator
	v.oneOf("status", string(s), enumStrings(s.Values()))
	return v.err()
}

// ParseOrderStatus returns the status named by s, in any case.
func ParseOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(strings.ToUpper(s))
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}

// LabelFormat is the paper format of generated labels.
type LabelFormat string

// Enumeration values for LabelFormat.
const (
	LabelFormatA4 LabelFormat = "A_4"
	LabelFormatA5 LabelFormat = "A_5"
)

// Values returns all known values for LabelFormat.
func (LabelFormat) Values() []LabelFormat {
	return []LabelFormat{
		LabelFormatA4,
		LabelFormatA5,
	}
}

// Validate returns an *InvalidValueError if f is not a known format.
func (f LabelFormat) Validate() error {
	var v validator
	v.oneOf("labelFormat", string(f), enumStrings(f.Values()))
	return v.err()
}

// Language is the language notifications are sent in.
type Language string

// Enumeration values for Language.
const (
	LanguageEN Language = "EN"
	LanguageNL Language = "NL"
	LanguageFR Language = "FR"
	LanguageDE Language = "DE"
)

// Values returns all known values for Language.
func (Language) Values() []Language {
	return []Language{
		LanguageEN,
		LanguageNL,
		LanguageFR,
		LanguageDE,
	}
}

// Validate returns an *InvalidValueError if l is not a known language.
func (l Language) Validate() error {
	var v validator
	v.oneOf("language", string(l), enumStrings(l.Values()))
	return v.err()
}

func enumStrings[T ~string](vs []T) []string {
	s := make([]string, len(vs))
	for i, v := range vs {
		s[i] = string(v)
	}
	return s
}

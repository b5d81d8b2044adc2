package types

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
)

// decodeMapping copies a decoded XML mapping onto out.
//
// Text values are loosely typed on the wire, so numbers and booleans are
// converted to the field types, and an empty element read as an empty
// mapping is accepted for scalar fields.
func decodeMapping(input interface{}, out interface{}) error {
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       emptyMappingHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return d.Decode(input)
}

// emptyMappingHook turns the empty mapping of an empty element into the
// zero value of a scalar target.
func emptyMappingHook(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Map {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Map, reflect.Struct, reflect.Ptr, reflect.Interface, reflect.Slice:
		return data, nil
	}
	if reflect.ValueOf(data).Len() != 0 {
		return data, nil
	}
	return reflect.Zero(to).Interface(), nil
}

// OrderFromMapping rebuilds an order from the decoded order element.
func OrderFromMapping(m map[string]interface{}) (*Order, error) {
	reference, err := stringField(m, "orderReference")
	if err != nil {
		return nil, err
	}
	o := NewOrder(reference)

	status, err := stringField(m, "status")
	if err != nil {
		return nil, err
	}
	o.Status = OrderStatus(status)

	if o.CostCenter, err = stringField(m, "costCenter"); err != nil {
		return nil, err
	}

	if lines, ok := m["orderLine"]; ok && lines != nil {
		if err := decodeMapping(lines, &o.Lines); err != nil {
			return nil, fmt.Errorf("failed to decode orderLine, %w", err)
		}
	}

	if c, ok := m["customer"]; ok && c != nil {
		var customer Customer
		if err := decodeMapping(c, &customer); err != nil {
			return nil, fmt.Errorf("failed to decode customer, %w", err)
		}
		o.Customer = &customer
	}

	if dm, ok := m["deliveryMethod"].(map[string]interface{}); ok {
		if o.DeliveryMethod, err = DeliveryMethodFromMapping(dm); err != nil {
			return nil, err
		}
	}

	if v, ok := m["totalPrice"]; ok && v != nil {
		total, err := cast.ToInt64E(v)
		if err != nil {
			return nil, fmt.Errorf("failed to decode totalPrice, %w", err)
		}
		o.Total = &total
	}

	return o, nil
}

// DeliveryMethodFromMapping rebuilds the delivery method held by a decoded
// deliveryMethod element. An empty mapping yields a nil method.
func DeliveryMethodFromMapping(m map[string]interface{}) (DeliveryMethod, error) {
	for name, v := range m {
		fields, _ := v.(map[string]interface{})

		switch name {
		case DeliveryMethodAtHomeName:
			d, err := atHomeFromMapping(fields)
			if err != nil {
				return nil, err
			}
			return d, nil

		case DeliveryMethodAtShopName:
			d := &DeliveryMethodAtShop{}
			if err := decodeMapping(fields["infoPugo"], &d.InfoPugo); err != nil {
				return nil, fmt.Errorf("failed to decode infoPugo, %w", err)
			}
			if n, ok := fields["infoDistributed"].(map[string]interface{}); ok {
				notification, err := notificationFromMapping(n)
				if err != nil {
					return nil, err
				}
				d.InfoDistributed = notification
			}
			d.Insurance = insuranceFromMapping(fields["insurance"])
			return d, nil

		case DeliveryMethodAt247Name:
			d := &DeliveryMethodAt247{}
			if err := decodeMapping(fields["infoParcelsDepot"], &d.InfoParcelsDepot); err != nil {
				return nil, fmt.Errorf("failed to decode infoParcelsDepot, %w", err)
			}
			memberID, err := stringField(fields, "memberId")
			if err != nil {
				return nil, err
			}
			d.MemberID = memberID
			_, d.Signature = fields["signature"]
			d.Insurance = insuranceFromMapping(fields["insurance"])
			return d, nil

		case DeliveryMethodIntExpressName:
			return &DeliveryMethodIntExpress{Insured: insuranceFromMapping(fields["insured"])}, nil

		case DeliveryMethodIntBusinessName:
			return &DeliveryMethodIntBusiness{Insured: insuranceFromMapping(fields["insured"])}, nil
		}
	}

	if len(m) == 0 {
		return nil, nil
	}

	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	return nil, &UnknownDeliveryMethodError{Names: names}
}

// defaultNotificationLanguage is the language of notifications read back
// from a response, which does not carry the language attribute.
const defaultNotificationLanguage = LanguageNL

func atHomeFromMapping(m map[string]interface{}) (*DeliveryMethodAtHome, error) {
	d := &DeliveryMethodAtHome{Insurance: insuranceFromMapping(m["insurance"])}

	normal, _ := m["normal"].(map[string]interface{})
	options, _ := normal["options"].(map[string]interface{})

	names := make([]string, 0, len(options))
	for name := range options {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		v := options[name]
		if name == "automaticSecondPresentation" {
			b, err := cast.ToBoolE(v)
			if err != nil {
				return nil, fmt.Errorf("failed to decode automaticSecondPresentation, %w", err)
			}
			d.AutomaticSecondPresentation = &b
			continue
		}

		fields, ok := v.(map[string]interface{})
		if !ok {
			continue
		}
		n, err := notificationFromMapping(fields)
		if err != nil {
			return nil, err
		}
		if n == nil {
			continue
		}
		d.Options = append(d.Options, NotificationOption{Name: name, Notification: *n})
	}
	return d, nil
}

// notificationFromMapping returns nil for a notification without channel.
func notificationFromMapping(m map[string]interface{}) (*Notification, error) {
	n := Notification{Language: defaultNotificationLanguage}
	if err := decodeMapping(m, &n); err != nil {
		return nil, fmt.Errorf("failed to decode notification, %w", err)
	}
	if len(n.EmailAddress) == 0 && len(n.MobilePhone) == 0 && len(n.FixedPhone) == 0 {
		return nil, nil
	}
	return &n, nil
}

// insuranceFromMapping reads the insurance level. The response mapping does
// not carry the additional insurance level attribute, so any additional
// insurance reads back as level 1.
func insuranceFromMapping(v interface{}) *Insurance {
	m, _ := v.(map[string]interface{})
	if _, ok := m["basicInsurance"]; ok {
		return InsuranceLevel(0)
	}
	if _, ok := m["additionalInsurance"]; ok {
		return InsuranceLevel(1)
	}
	return nil
}

// stringField returns the named scalar field. Absent, null and empty
// fields return the empty string.
func stringField(m map[string]interface{}, name string) (string, error) {
	v, ok := m[name]
	if !ok || v == nil {
		return "", nil
	}
	if e, ok := v.(map[string]interface{}); ok && len(e) == 0 {
		return "", nil
	}
	s, err := cast.ToStringE(v)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s, %w", name, err)
	}
	return s, nil
}

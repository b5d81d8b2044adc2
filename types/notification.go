package types

import (
	"github.com/bpost/shm-go/xml"
)

// Notification sends a message about a parcel on a single channel.
type Notification struct {
	Language     Language `mapstructure:"language"`
	EmailAddress string   `mapstructure:"emailAddress"`
	MobilePhone  string   `mapstructure:"mobilePhone"`
	FixedPhone   string   `mapstructure:"fixedPhone"`
}

// XMLValue returns the notification, its language set as attribute.
func (n *Notification) XMLValue() xml.Value {
	var r xml.Record
	setString(&r, "emailAddress", n.EmailAddress)
	setString(&r, "mobilePhone", n.MobilePhone)
	setString(&r, "fixedPhone", n.FixedPhone)
	return xml.Attributed{
		Attr:  []xml.Attr{*xml.NewAttribute("language", string(n.Language))},
		Value: r,
	}
}

// Validate reports an unknown language, values exceeding the length
// limits, and notifications using more than one channel.
func (n *Notification) Validate() error {
	var v validator
	n.validate(&v)
	return v.err()
}

func (n *Notification) validate(v *validator) {
	v.add(n.Language.Validate())
	v.maxLength("emailAddress", n.EmailAddress, 50)
	v.maxLength("mobilePhone", n.MobilePhone, 20)
	v.maxLength("fixedPhone", n.FixedPhone, 20)

	var channels int
	for _, c := range []string{n.EmailAddress, n.MobilePhone, n.FixedPhone} {
		if len(c) != 0 {
			channels++
		}
	}
	if channels > 1 {
		v.add(&InvalidValueError{
			Field:  "notification",
			Value:  channels,
			Reason: "multiple notification channels can't be specified",
		})
	}
}

// Unregistered holds the notification settings of a national box sent
// without registration.
type Unregistered struct {
	Language                        Language
	MobilePhone                     string
	EmailAddress                    string
	ParcelLockerReducedMobilityZone bool
}

// XMLValue returns the unregistered box options in schema order.
func (u *Unregistered) XMLValue() xml.Value {
	var r xml.Record
	setString(&r, "language", string(u.Language))
	setString(&r, "mobilePhone", u.MobilePhone)
	setString(&r, "emailAddress", u.EmailAddress)
	if u.ParcelLockerReducedMobilityZone {
		r.Set("parcelLockerReducedMobilityZone", xml.Record{})
	}
	return r
}

// Validate reports an unknown language and values exceeding the length
// limits.
func (u *Unregistered) Validate() error {
	var v validator
	if len(u.Language) != 0 {
		v.add(u.Language.Validate())
	}
	v.maxLength("mobilePhone", u.MobilePhone, 20)
	v.maxLength("emailAddress", u.EmailAddress, 50)
	return v.err()
}

package types

import (
	"strconv"

	"github.com/bpost/shm-go/xml"
)

// MaxInsuranceLevel is the highest additional insurance level.
const MaxInsuranceLevel = 11

// Insurance is the insurance level of a parcel. Level 0 is the basic
// insurance, levels 1 to 11 are additional insurances.
type Insurance int

// XMLValue returns the insurance element content.
func (i Insurance) XMLValue() xml.Value {
	if i == 0 {
		return xml.Record{{Name: "basicInsurance", Value: xml.String("")}}
	}
	return xml.Record{{Name: "additionalInsurance", Value: xml.Attributed{
		Attr: []xml.Attr{*xml.NewAttribute("value", strconv.Itoa(int(i)))},
	}}}
}

// Validate returns an *InvalidValueError for a level outside 0 to 11.
func (i Insurance) Validate() error {
	if i < 0 || i > MaxInsuranceLevel {
		return &InvalidValueError{
			Field:  "insurance",
			Value:  int(i),
			Reason: "level must be from 0 to " + strconv.Itoa(MaxInsuranceLevel),
		}
	}
	return nil
}

// DeliveryMethod is the way a parcel is delivered to the customer.
type DeliveryMethod interface {
	// Name returns the element name of the delivery method.
	Name() string

	// XMLValue returns the content of the deliveryMethod element.
	XMLValue() xml.Value

	// Validate reports the invalid values of the delivery method.
	Validate() error
}

// Names of the supported delivery methods.
const (
	DeliveryMethodAtHomeName      = "atHome"
	DeliveryMethodAtShopName      = "atShop"
	DeliveryMethodAt247Name       = "at24-7"
	DeliveryMethodIntExpressName  = "intExpress"
	DeliveryMethodIntBusinessName = "intBusiness"
)

// NotificationOption is a named option of a home delivery, such as
// infoDistributed or infoNextDay.
type NotificationOption struct {
	Name         string
	Notification Notification
}

// DeliveryMethodAtHome delivers the parcel at the customer's address.
type DeliveryMethodAtHome struct {
	Insurance *Insurance

	// Options are the notifications of the normal delivery.
	Options []NotificationOption

	AutomaticSecondPresentation *bool
}

// Name returns atHome.
func (*DeliveryMethodAtHome) Name() string { return DeliveryMethodAtHomeName }

// XMLValue returns the atHome delivery. Without options the normal
// element is left empty.
func (d *DeliveryMethodAtHome) XMLValue() xml.Value {
	var r xml.Record
	setInsurance(&r, "insurance", d.Insurance)

	var options xml.Record
	for _, o := range d.Options {
		options.Set(o.Name, o.Notification.XMLValue())
	}
	if d.AutomaticSecondPresentation != nil {
		options.Set("automaticSecondPresentation", xml.Bool(*d.AutomaticSecondPresentation))
	}

	if len(options) == 0 {
		r.Set("normal", xml.String(""))
	} else {
		r.Set("normal", xml.Record{{Name: "options", Value: options}})
	}
	return xml.Record{{Name: d.Name(), Value: r}}
}

// Validate reports an invalid insurance level and invalid notifications.
func (d *DeliveryMethodAtHome) Validate() error {
	var v validator
	validateInsurance(&v, d.Insurance)
	for _, o := range d.Options {
		v.required("option", o.Name)
		o.Notification.validate(&v)
	}
	return v.err()
}

// PugoInfo identifies the pick-up point a parcel is delivered at.
type PugoInfo struct {
	PugoID      string   `mapstructure:"pugoId"`
	PugoName    string   `mapstructure:"pugoName"`
	PugoAddress *Address `mapstructure:"pugoAddress"`
}

// DeliveryMethodAtShop delivers the parcel at a pick-up point.
type DeliveryMethodAtShop struct {
	InfoPugo        PugoInfo
	InfoDistributed *Notification
	Insurance       *Insurance
}

// Name returns atShop.
func (*DeliveryMethodAtShop) Name() string { return DeliveryMethodAtShopName }

// XMLValue returns the atShop delivery.
func (d *DeliveryMethodAtShop) XMLValue() xml.Value {
	var info xml.Record
	setString(&info, "pugoId", d.InfoPugo.PugoID)
	setString(&info, "pugoName", d.InfoPugo.PugoName)
	if d.InfoPugo.PugoAddress != nil {
		info.Set("pugoAddress", d.InfoPugo.PugoAddress.XMLValue())
	}

	r := xml.Record{{Name: "infoPugo", Value: info}}
	if d.InfoDistributed != nil {
		r.Set("infoDistributed", d.InfoDistributed.XMLValue())
	}
	setInsurance(&r, "insurance", d.Insurance)
	return xml.Record{{Name: d.Name(), Value: r}}
}

// Validate reports missing pick-up point details and invalid values.
func (d *DeliveryMethodAtShop) Validate() error {
	var v validator
	v.required("pugoId", d.InfoPugo.PugoID)
	v.maxLength("pugoName", d.InfoPugo.PugoName, 40)
	if d.InfoPugo.PugoAddress != nil {
		d.InfoPugo.PugoAddress.validate(&v)
	}
	if d.InfoDistributed != nil {
		d.InfoDistributed.validate(&v)
	}
	validateInsurance(&v, d.Insurance)
	return v.err()
}

// ParcelsDepotInfo identifies the parcel locker a parcel is delivered at.
type ParcelsDepotInfo struct {
	ParcelsDepotID      string   `mapstructure:"parcelsDepotId"`
	ParcelsDepotName    string   `mapstructure:"parcelsDepotName"`
	ParcelsDepotAddress *Address `mapstructure:"parcelsDepotAddress"`
}

// DeliveryMethodAt247 delivers the parcel in a parcel locker.
type DeliveryMethodAt247 struct {
	InfoParcelsDepot ParcelsDepotInfo
	MemberID         string
	Signature        bool
	Insurance        *Insurance
}

// Name returns at24-7.
func (*DeliveryMethodAt247) Name() string { return DeliveryMethodAt247Name }

// XMLValue returns the at24-7 delivery.
func (d *DeliveryMethodAt247) XMLValue() xml.Value {
	var info xml.Record
	setString(&info, "parcelsDepotId", d.InfoParcelsDepot.ParcelsDepotID)
	setString(&info, "parcelsDepotName", d.InfoParcelsDepot.ParcelsDepotName)
	if d.InfoParcelsDepot.ParcelsDepotAddress != nil {
		info.Set("parcelsDepotAddress", d.InfoParcelsDepot.ParcelsDepotAddress.XMLValue())
	}

	r := xml.Record{{Name: "infoParcelsDepot", Value: info}}
	setString(&r, "memberId", d.MemberID)
	if d.Signature {
		r.Set("signature", xml.Record{})
	}
	setInsurance(&r, "insurance", d.Insurance)
	return xml.Record{{Name: d.Name(), Value: r}}
}

// Validate reports missing parcel locker details and invalid values.
func (d *DeliveryMethodAt247) Validate() error {
	var v validator
	v.required("parcelsDepotId", d.InfoParcelsDepot.ParcelsDepotID)
	v.required("memberId", d.MemberID)
	if d.InfoParcelsDepot.ParcelsDepotAddress != nil {
		d.InfoParcelsDepot.ParcelsDepotAddress.validate(&v)
	}
	validateInsurance(&v, d.Insurance)
	return v.err()
}

// DeliveryMethodIntExpress is the international express delivery.
type DeliveryMethodIntExpress struct {
	Insured *Insurance
}

// Name returns intExpress.
func (*DeliveryMethodIntExpress) Name() string { return DeliveryMethodIntExpressName }

// XMLValue returns the intExpress delivery.
func (d *DeliveryMethodIntExpress) XMLValue() xml.Value {
	return internationalXMLValue(d.Name(), d.Insured)
}

// Validate reports an invalid insurance level.
func (d *DeliveryMethodIntExpress) Validate() error {
	var v validator
	validateInsurance(&v, d.Insured)
	return v.err()
}

// DeliveryMethodIntBusiness is the international business delivery.
type DeliveryMethodIntBusiness struct {
	Insured *Insurance
}

// Name returns intBusiness.
func (*DeliveryMethodIntBusiness) Name() string { return DeliveryMethodIntBusinessName }

// XMLValue returns the intBusiness delivery.
func (d *DeliveryMethodIntBusiness) XMLValue() xml.Value {
	return internationalXMLValue(d.Name(), d.Insured)
}

// Validate reports an invalid insurance level.
func (d *DeliveryMethodIntBusiness) Validate() error {
	var v validator
	validateInsurance(&v, d.Insured)
	return v.err()
}

func internationalXMLValue(name string, insured *Insurance) xml.Value {
	var r xml.Record
	setInsurance(&r, "insured", insured)
	return xml.Record{{Name: name, Value: r}}
}

func setInsurance(r *xml.Record, name string, i *Insurance) {
	if i != nil {
		r.Set(name, i.XMLValue())
	}
}

func validateInsurance(v *validator, i *Insurance) {
	if i != nil {
		v.add(i.Validate())
	}
}

// InsuranceLevel returns a pointer to the insurance level.
func InsuranceLevel(level int) *Insurance {
	i := Insurance(level)
	return &i
}

package types

import (
	"errors"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bpost/shm-go/xml"
)

func encode(t *testing.T, name string, v xml.Value) string {
	t.Helper()

	nodes, err := xml.NewEncoder().Encode(name, v)
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	return nodes[0].String()
}

func testAddress() *Address {
	a := NewAddress("Afrikalaan", "2890", "9000", "Gent")
	a.Box = "3"
	return a
}

func TestAddressXMLValue(t *testing.T) {
	expect := `<deliveryAddress>` +
		`<streetName>Afrikalaan</streetName><number>2890</number><box>3</box>` +
		`<postalCode>9000</postalCode><locality>Gent</locality><countryCode>BE</countryCode>` +
		`</deliveryAddress>`
	assert.Equal(t, expect, encode(t, "deliveryAddress", testAddress().XMLValue()))

	// empty fields are left out.
	assert.Equal(t, `<pugoAddress><locality>Gent</locality></pugoAddress>`,
		encode(t, "pugoAddress", (&Address{Locality: "Gent"}).XMLValue()))
}

func TestAddressValidate(t *testing.T) {
	assert.NoError(t, testAddress().Validate())

	cases := map[string]func(a *Address){
		"streetName":  func(a *Address) { a.StreetName = strings.Repeat("a", 41) },
		"number":      func(a *Address) { a.Number = strings.Repeat("a", 9) },
		"box":         func(a *Address) { a.Box = strings.Repeat("a", 9) },
		"postalCode":  func(a *Address) { a.PostalCode = strings.Repeat("a", 9) },
		"locality":    func(a *Address) { a.Locality = strings.Repeat("a", 41) },
		"countryCode": func(a *Address) { a.CountryCode = strings.Repeat("a", 3) },
	}
	for field, fn := range cases {
		t.Run(field, func(t *testing.T) {
			a := testAddress()
			fn(a)

			var invalid *InvalidValueError
			require.True(t, errors.As(a.Validate(), &invalid))
			assert.Equal(t, field, invalid.Field)
			assert.Contains(t, invalid.Error(), "maximum length")
		})
	}

	// lengths count characters, not bytes.
	a := testAddress()
	a.Locality = strings.Repeat("é", 40)
	assert.NoError(t, a.Validate())
}

func TestCustomerXMLValue(t *testing.T) {
	c := NewCustomer("Tijs", "Verkoyen")
	c.DeliveryAddress = &Address{Locality: "Gent"}
	c.Email = "bpost@verkoyen.eu"
	c.PhoneNumber = "+32 9 123 45 67"

	expect := `<customer><firstName>Tijs</firstName><lastName>Verkoyen</lastName>` +
		`<deliveryAddress><locality>Gent</locality></deliveryAddress>` +
		`<email>bpost@verkoyen.eu</email><phoneNumber>+32 9 123 45 67</phoneNumber></customer>`
	assert.Equal(t, expect, encode(t, "customer", c.XMLValue()))
}

func TestCustomerValidate(t *testing.T) {
	c := NewCustomer(strings.Repeat("a", 41), strings.Repeat("b", 41))
	c.Email = strings.Repeat("c", 51)
	c.PhoneNumber = strings.Repeat("1", 21)
	c.DeliveryAddress = &Address{Box: strings.Repeat("a", 9)}

	err := c.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "expect *multierror.Error, got %T", err)

	var fields []string
	for _, e := range merr.Errors {
		var invalid *InvalidValueError
		require.True(t, errors.As(e, &invalid))
		fields = append(fields, invalid.Field)
	}
	assert.Equal(t, []string{"firstName", "lastName", "email", "phoneNumber", "box"}, fields)
}

func TestNotification(t *testing.T) {
	n := &Notification{Language: LanguageEN, EmailAddress: "a&b@example.com"}
	assert.NoError(t, n.Validate())
	assert.Equal(t,
		`<infoDistributed language="EN"><emailAddress><![CDATA[a&b@example.com]]></emailAddress></infoDistributed>`,
		encode(t, "infoDistributed", n.XMLValue()))

	n = &Notification{Language: "XX", MobilePhone: "0470", FixedPhone: "09"}
	merr, ok := n.Validate().(*multierror.Error)
	require.True(t, ok)
	require.Len(t, merr.Errors, 2)
	assert.Contains(t, merr.Errors[0].Error(), "allowed values are: EN, NL, FR, DE")
	assert.Contains(t, merr.Errors[1].Error(), "multiple notification channels")
}

func TestUnregisteredDocument(t *testing.T) {
	u := &Unregistered{
		Language:                        LanguageEN,
		EmailAddress:                    "pomme@antidot.com",
		MobilePhone:                     "0123456789",
		ParcelLockerReducedMobilityZone: true,
	}
	require.NoError(t, u.Validate())

	expect := `<?xml version="1.0" encoding="utf-8"?>
<unregistered>
  <language>EN</language>
  <mobilePhone>0123456789</mobilePhone>
  <emailAddress>pomme@antidot.com</emailAddress>
  <parcelLockerReducedMobilityZone/>
</unregistered>
`
	doc, err := xml.NewEncoder().EncodeDocument("unregistered", u.XMLValue())
	require.NoError(t, err)
	assert.Equal(t, expect, doc.String())

	prefixed := `<?xml version="1.0" encoding="utf-8"?>
<test:unregistered>
  <test:language>EN</test:language>
  <test:mobilePhone>0123456789</test:mobilePhone>
  <test:emailAddress>pomme@antidot.com</test:emailAddress>
  <test:parcelLockerReducedMobilityZone/>
</test:unregistered>
`
	doc, err = xml.NewEncoder(func(o *xml.EncoderOptions) { o.Prefix = "test" }).
		EncodeDocument("unregistered", u.XMLValue())
	require.NoError(t, err)
	assert.Equal(t, prefixed, doc.String())
}

func TestInsurance(t *testing.T) {
	assert.Equal(t, `<insurance><basicInsurance/></insurance>`,
		encode(t, "insurance", Insurance(0).XMLValue()))
	assert.Equal(t, `<insurance><additionalInsurance value="3"/></insurance>`,
		encode(t, "insurance", Insurance(3).XMLValue()))

	assert.NoError(t, Insurance(11).Validate())
	assert.Error(t, Insurance(12).Validate())
	assert.Error(t, Insurance(-1).Validate())
}

func TestDeliveryMethodXMLValue(t *testing.T) {
	yes := true
	cases := map[string]struct {
		Method DeliveryMethod
		Expect string
	}{
		"at home without options": {
			Method: &DeliveryMethodAtHome{},
			Expect: `<deliveryMethod><atHome><normal/></atHome></deliveryMethod>`,
		},
		"at home": {
			Method: &DeliveryMethodAtHome{
				Insurance: InsuranceLevel(0),
				Options: []NotificationOption{
					{Name: "infoNextDay", Notification: Notification{Language: LanguageNL, MobilePhone: "0470123456"}},
				},
				AutomaticSecondPresentation: &yes,
			},
			Expect: `<deliveryMethod><atHome>` +
				`<insurance><basicInsurance/></insurance>` +
				`<normal><options>` +
				`<infoNextDay language="NL"><mobilePhone>0470123456</mobilePhone></infoNextDay>` +
				`<automaticSecondPresentation>true</automaticSecondPresentation>` +
				`</options></normal>` +
				`</atHome></deliveryMethod>`,
		},
		"at shop": {
			Method: &DeliveryMethodAtShop{
				InfoPugo: PugoInfo{PugoID: "207500", PugoName: "Shop", PugoAddress: &Address{Locality: "Gent"}},
			},
			Expect: `<deliveryMethod><atShop><infoPugo>` +
				`<pugoId>207500</pugoId><pugoName>Shop</pugoName>` +
				`<pugoAddress><locality>Gent</locality></pugoAddress>` +
				`</infoPugo></atShop></deliveryMethod>`,
		},
		"at 24-7": {
			Method: &DeliveryMethodAt247{
				InfoParcelsDepot: ParcelsDepotInfo{ParcelsDepotID: "14472", ParcelsDepotName: "Gent Dampoort"},
				MemberID:         "188565346",
				Signature:        true,
				Insurance:        InsuranceLevel(2),
			},
			Expect: `<deliveryMethod><at24-7>` +
				`<infoParcelsDepot><parcelsDepotId>14472</parcelsDepotId><parcelsDepotName>Gent Dampoort</parcelsDepotName></infoParcelsDepot>` +
				`<memberId>188565346</memberId><signature/>` +
				`<insurance><additionalInsurance value="2"/></insurance>` +
				`</at24-7></deliveryMethod>`,
		},
		"international express": {
			Method: &DeliveryMethodIntExpress{Insured: InsuranceLevel(1)},
			Expect: `<deliveryMethod><intExpress><insured><additionalInsurance value="1"/></insured></intExpress></deliveryMethod>`,
		},
		"international business": {
			Method: &DeliveryMethodIntBusiness{},
			Expect: `<deliveryMethod><intBusiness/></deliveryMethod>`,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, c.Method.Validate())
			assert.Equal(t, c.Expect, encode(t, "deliveryMethod", c.Method.XMLValue()))
		})
	}
}

func TestDeliveryMethodValidate(t *testing.T) {
	cases := map[string]DeliveryMethod{
		"at home insurance": &DeliveryMethodAtHome{Insurance: InsuranceLevel(12)},
		"at home notification": &DeliveryMethodAtHome{Options: []NotificationOption{
			{Name: "infoDistributed", Notification: Notification{Language: "PL", EmailAddress: "a@b.c"}},
		}},
		"at shop without pugo":    &DeliveryMethodAtShop{},
		"at 24-7 without member":  &DeliveryMethodAt247{InfoParcelsDepot: ParcelsDepotInfo{ParcelsDepotID: "1"}},
		"international insurance": &DeliveryMethodIntExpress{Insured: InsuranceLevel(20)},
	}
	for name, m := range cases {
		t.Run(name, func(t *testing.T) {
			var invalid *InvalidValueError
			assert.True(t, errors.As(m.Validate(), &invalid))
		})
	}
}

func TestEnums(t *testing.T) {
	status, err := ParseOrderStatus("on-hold")
	require.NoError(t, err)
	assert.Equal(t, OrderStatusOnHold, status)

	_, err = ParseOrderStatus("shipped")
	assert.ErrorContains(t, err, "allowed values are: OPEN, PENDING, CANCELLED, COMPLETED, ON-HOLD")

	assert.NoError(t, LabelFormatA4.Validate())
	assert.NoError(t, LabelFormatA5.Validate())
	assert.Error(t, LabelFormat("A_3").Validate())

	assert.NoError(t, LanguageDE.Validate())
	assert.Error(t, Language("de").Validate())
}

package xml_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/bpost/shm-go/xml"
)

func newTestDecoder() *xml.Decoder {
	return xml.NewDecoder(func(o *xml.DecoderOptions) {
		o.RepeatedFields = xml.NewFieldSet("barcode", "orderLine")
		o.IntegerFields = xml.NewFieldSet("totalPrice")
	})
}

func decodeString(t *testing.T, d *xml.Decoder, doc string) (map[string]interface{}, error) {
	t.Helper()

	n, err := xml.ParseBytes([]byte(doc))
	if err != nil {
		t.Fatalf("failed to parse test document, %v", err)
	}
	return d.Decode(n)
}

func TestDecoder(t *testing.T) {
	cases := map[string]struct {
		doc    string
		expect map[string]interface{}
	}{
		"string field": {
			doc:    `<r><locality>Gent</locality></r>`,
			expect: map[string]interface{}{"locality": "Gent"},
		},
		"text is trimmed": {
			doc:    "<r><locality>\n   Gent  \n</locality></r>",
			expect: map[string]interface{}{"locality": "Gent"},
		},
		"numeric text outside integer table stays string": {
			doc:    `<r><postalCode>9000</postalCode></r>`,
			expect: map[string]interface{}{"postalCode": "9000"},
		},
		"integer field": {
			doc:    `<r><totalPrice>1250</totalPrice></r>`,
			expect: map[string]interface{}{"totalPrice": int64(1250)},
		},
		"integer field with whitespace": {
			doc:    "<r><totalPrice> 42 </totalPrice></r>",
			expect: map[string]interface{}{"totalPrice": int64(42)},
		},
		"boolean true": {
			doc:    `<r><withRetour>true</withRetour></r>`,
			expect: map[string]interface{}{"withRetour": true},
		},
		"boolean false": {
			doc:    `<r><withRetour>false</withRetour></r>`,
			expect: map[string]interface{}{"withRetour": false},
		},
		"boolean is case sensitive": {
			doc:    `<r><withRetour>TRUE</withRetour></r>`,
			expect: map[string]interface{}{"withRetour": "TRUE"},
		},
		"nil marker": {
			doc:    `<r><email nil="true">ignored</email></r>`,
			expect: map[string]interface{}{"email": nil},
		},
		"namespaced nil marker": {
			doc: `<r xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">` +
				`<email xsi:nil="true"/></r>`,
			expect: map[string]interface{}{"email": nil},
		},
		"nil marker false": {
			doc:    `<r><email nil="false">a@b.be</email></r>`,
			expect: map[string]interface{}{"email": "a@b.be"},
		},
		"nil marker on repeated field": {
			doc:    `<r><barcode nil="true"/></r>`,
			expect: map[string]interface{}{"barcode": nil},
		},
		"empty element is an empty object": {
			doc:    `<r><basicInsurance/></r>`,
			expect: map[string]interface{}{"basicInsurance": map[string]interface{}{}},
		},
		"whitespace only element is an empty object": {
			doc:    "<r><box>  \n </box></r>",
			expect: map[string]interface{}{"box": map[string]interface{}{}},
		},
		"nested object": {
			doc: `<r><customer><firstName>Tijs</firstName>` +
				`<deliveryAddress><locality>Gent</locality></deliveryAddress></customer></r>`,
			expect: map[string]interface{}{
				"customer": map[string]interface{}{
					"firstName": "Tijs",
					"deliveryAddress": map[string]interface{}{
						"locality": "Gent",
					},
				},
			},
		},
		"single repeated field": {
			doc:    `<r><barcode>323212345659900357664030</barcode></r>`,
			expect: map[string]interface{}{"barcode": []interface{}{"323212345659900357664030"}},
		},
		"three repeated fields": {
			doc:    `<r><barcode>1</barcode><barcode>2</barcode><barcode>3</barcode></r>`,
			expect: map[string]interface{}{"barcode": []interface{}{"1", "2", "3"}},
		},
		"repeated field never coerced": {
			doc:    `<r><barcode>true</barcode></r>`,
			expect: map[string]interface{}{"barcode": []interface{}{"true"}},
		},
		"empty repeated field": {
			doc:    `<r><barcode/></r>`,
			expect: map[string]interface{}{"barcode": []interface{}{map[string]interface{}{}}},
		},
		"repeated records": {
			doc: `<order>
  <orderReference>REF1</orderReference>
  <orderLine>
    <text>Item 1</text>
    <nbOfItems>2</nbOfItems>
  </orderLine>
  <orderLine>
    <text>Item 2</text>
    <nbOfItems>1</nbOfItems>
  </orderLine>
  <totalPrice>500</totalPrice>
</order>`,
			expect: map[string]interface{}{
				"orderReference": "REF1",
				"orderLine": []interface{}{
					map[string]interface{}{"text": "Item 1", "nbOfItems": "2"},
					map[string]interface{}{"text": "Item 2", "nbOfItems": "1"},
				},
				"totalPrice": int64(500),
			},
		},
		"duplicate siblings last wins": {
			doc:    `<r><status>OPEN</status><status>PENDING</status></r>`,
			expect: map[string]interface{}{"status": "PENDING"},
		},
		"duplicate nested siblings last wins": {
			doc:    `<r><entry><a>1</a></entry><entry><b>2</b></entry></r>`,
			expect: map[string]interface{}{"entry": map[string]interface{}{"b": "2"}},
		},
		"cdata text": {
			doc:    `<r><text><![CDATA[Fish & Chips]]></text></r>`,
			expect: map[string]interface{}{"text": "Fish & Chips"},
		},
		"namespaced elements use local name": {
			doc:    `<r xmlns:common="urn:common"><common:locality>Gent</common:locality></r>`,
			expect: map[string]interface{}{"locality": "Gent"},
		},
		"no children": {
			doc:    `<r/>`,
			expect: map[string]interface{}{},
		},
	}

	d := newTestDecoder()
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			actual, err := decodeString(t, d, c.doc)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}
			if diff := cmp.Diff(c.expect, actual); len(diff) != 0 {
				t.Errorf("expect decoded mapping match\n%s", diff)
			}
		})
	}
}

func TestDecoderRepeatedCardinality(t *testing.T) {
	cases := map[string]struct {
		doc    string
		expect int
	}{
		"zero": {
			doc:    `<labels><mimeType>application/pdf</mimeType></labels>`,
			expect: 0,
		},
		"one": {
			doc:    `<labels><barcode>A</barcode></labels>`,
			expect: 1,
		},
		"three": {
			doc:    `<labels><barcode>A</barcode><mimeType>x</mimeType><barcode>B</barcode><barcode>C</barcode></labels>`,
			expect: 3,
		},
	}

	d := newTestDecoder()
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			m, err := decodeString(t, d, c.doc)
			if err != nil {
				t.Fatalf("expect no error, got %v", err)
			}

			v, present := m["barcode"]
			l, isList := v.([]interface{})
			if present && !isList {
				t.Fatalf("expect barcode to be a list, got %T", v)
			}
			if e, a := c.expect, len(l); e != a {
				t.Errorf("expect %v barcodes, got %v", e, a)
			}
		})
	}
}

func TestDecoderErrors(t *testing.T) {
	cases := map[string]struct {
		doc    string
		expect func(error) bool
	}{
		"non numeric integer field": {
			doc: `<r><totalPrice>12.50 EUR</totalPrice></r>`,
			expect: func(err error) bool {
				var e *xml.IntegerFieldError
				return errors.As(err, &e) && e.Name == "totalPrice" && e.Text == "12.50 EUR"
			},
		},
		"mixed content": {
			doc: `<r><customer>Tijs<firstName>Tijs</firstName></customer></r>`,
			expect: func(err error) bool {
				var e *xml.MixedContentError
				return errors.As(err, &e) && e.Name == "customer"
			},
		},
		"nested error": {
			doc: `<r><order><totalPrice>abc</totalPrice></order></r>`,
			expect: func(err error) bool {
				var e *xml.IntegerFieldError
				return errors.As(err, &e)
			},
		},
	}

	d := newTestDecoder()
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := decodeString(t, d, c.doc)
			if err == nil {
				t.Fatalf("expect error, got none")
			}
			if !c.expect(err) {
				t.Errorf("unexpected error %v", err)
			}
		})
	}
}

func TestDecoderInvalidInput(t *testing.T) {
	d := newTestDecoder()

	for name, n := range map[string]*xml.Node{
		"nil node":     nil,
		"unnamed node": {Text: "text"},
	} {
		t.Run(name, func(t *testing.T) {
			if _, err := d.Decode(n); !errors.Is(err, xml.ErrInvalidInput) {
				t.Errorf("expect ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestDecoderCustomNilAttribute(t *testing.T) {
	d := xml.NewDecoder(func(o *xml.DecoderOptions) {
		o.NilAttribute = "null"
	})

	actual, err := decodeString(t, d, `<r><a null="true">x</a><b nil="true">y</b></r>`)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}
	expect := map[string]interface{}{"a": nil, "b": "y"}
	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("expect decoded mapping match\n%s", diff)
	}
}

func TestDecodeDocumentExample(t *testing.T) {
	actual, err := decodeString(t, newTestDecoder(),
		`<order xmlns="urn:x"><orderReference>REF1</orderReference><totalPrice>500</totalPrice></order>`)
	if err != nil {
		t.Fatalf("expect no error, got %v", err)
	}

	expect := map[string]interface{}{"orderReference": "REF1", "totalPrice": int64(500)}
	if diff := cmp.Diff(expect, actual); len(diff) != 0 {
		t.Errorf("expect decoded mapping match\n%s", diff)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := map[string]struct {
		value  xml.Record
		expect map[string]interface{}
	}{
		"scalars": {
			value: xml.Record{
				{Name: "orderReference", Value: xml.String("REF1")},
				{Name: "costCenter", Value: xml.String("R&D")},
				{Name: "withRetour", Value: xml.Bool(true)},
				{Name: "totalPrice", Value: xml.Int(500)},
			},
			expect: map[string]interface{}{
				"orderReference": "REF1",
				"costCenter":     "R&D",
				"withRetour":     true,
				"totalPrice":     int64(500),
			},
		},
		"nested records": {
			value: xml.Record{
				{Name: "customer", Value: xml.Record{
					{Name: "firstName", Value: xml.String("Tijs")},
					{Name: "deliveryAddress", Value: xml.Record{
						{Name: "streetName", Value: xml.String("Afrikalaan")},
						{Name: "number", Value: xml.String("289")},
					}},
				}},
				{Name: "email", Value: xml.Null{}},
			},
			expect: map[string]interface{}{
				"customer": map[string]interface{}{
					"firstName": "Tijs",
					"deliveryAddress": map[string]interface{}{
						"streetName": "Afrikalaan",
						"number":     "289",
					},
				},
			},
		},
		"numbers outside the integer table come back as text": {
			value: xml.Record{
				{Name: "labelAmount", Value: xml.Int(3)},
				{Name: "weight", Value: xml.Float(1.5)},
			},
			expect: map[string]interface{}{
				"labelAmount": "3",
				"weight":      "1.5",
			},
		},
	}

	enc := xml.NewEncoder()
	dec := newTestDecoder()
	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			doc, err := enc.EncodeDocument("root", c.value)
			if err != nil {
				t.Fatalf("expect no encode error, got %v", err)
			}

			n, err := xml.ParseBytes(doc.Bytes())
			if err != nil {
				t.Fatalf("expect no parse error, got %v", err)
			}

			actual, err := dec.Decode(n)
			if err != nil {
				t.Fatalf("expect no decode error, got %v", err)
			}
			if diff := cmp.Diff(c.expect, actual); len(diff) != 0 {
				t.Errorf("expect round trip match\n%s", diff)
			}
		})
	}
}

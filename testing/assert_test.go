package testing

import (
	"testing"
)

func TestAssertXML(t *testing.T) {
	cases := map[string]struct {
		X, Y  []byte
		Equal bool
	}{
		"equal ignoring indentation": {
			X: []byte(`<order><orderReference>REF1</orderReference></order>`),
			Y: []byte(`<?xml version="1.0" encoding="utf-8"?>
<order>
  <orderReference>REF1</orderReference>
</order>
`),
			Equal: true,
		},
		"equal ignoring attribute order": {
			X:     []byte(`<order a="1" b="2"/>`),
			Y:     []byte(`<order b="2" a="1"/>`),
			Equal: true,
		},
		"child order matters": {
			X:     []byte(`<order><a>1</a><b>2</b></order>`),
			Y:     []byte(`<order><b>2</b><a>1</a></order>`),
			Equal: false,
		},
		"text differs": {
			X:     []byte(`<order><a>1</a></order>`),
			Y:     []byte(`<order><a>2</a></order>`),
			Equal: false,
		},
		"malformed": {
			X:     []byte(`<order>`),
			Y:     []byte(`<order/>`),
			Equal: false,
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			err := XMLEqual(c.X, c.Y)
			if c.Equal {
				if err != nil {
					t.Fatalf("expect XML to be equal, %v", err)
				}
			} else if err == nil {
				t.Fatalf("expect XML not to be equal")
			}
		})
	}
}

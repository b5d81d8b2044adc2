package xml

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
)

// Parse reads an XML document from r and returns its root element.
//
// Element and attribute names carry the resolved namespace URL in
// Name.Space. Comments, processing instructions and directives are
// dropped, CDATA sections become plain text.
func Parse(r io.Reader) (*Node, error) {
	d := xml.NewDecoder(r)

	var root *Node
	var stack []*Node

	for {
		tok, err := d.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse xml document, %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			n := &Node{Name: Name{Space: t.Name.Space, Local: t.Name.Local}}
			for _, a := range t.Attr {
				n.Attr = append(n.Attr, Attr{
					Name:  Name{Space: a.Name.Space, Local: a.Name.Local},
					Value: a.Value,
				})
			}

			if len(stack) == 0 {
				if root != nil {
					return nil, fmt.Errorf("xml document has more than one root element, found %q", t.Name.Local)
				}
				root = n
			} else {
				stack[len(stack)-1].AddChild(n)
			}
			stack = append(stack, n)

		case xml.CharData:
			if len(stack) != 0 {
				stack[len(stack)-1].Text += string(t)
			}

		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}

	if root == nil {
		return nil, fmt.Errorf("xml document has no root element")
	}
	return root, nil
}

// ParseBytes is Parse over a byte slice.
func ParseBytes(b []byte) (*Node, error) {
	return Parse(bytes.NewReader(b))
}
